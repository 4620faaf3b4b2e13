package gridconv_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/gridpoint/gridconv"
)

func TestNewEllipsoidRejectsBadAxes(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
	}{
		{"zero semi-major", 0, 6356256.910},
		{"negative semi-major", -6377563.396, 6356256.910},
		{"zero semi-minor", 6377563.396, 0},
		{"negative semi-minor", 6377563.396, -6356256.910},
		{"semi-minor equals semi-major", 6377563.396, 6377563.396},
		{"semi-minor exceeds semi-major", 6356256.910, 6377563.396},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := gridconv.NewEllipsoid(c.a, c.b)
			if err == nil {
				t.Fatalf("expected error constructing ellipsoid a=%v b=%v", c.a, c.b)
			}
			assert.Equal(t, gridconv.ErrInvalidEllipsoid, errors.Cause(err))
		})
	}
}

func TestEllipsoidDerivesEccentricity(t *testing.T) {
	e, err := gridconv.NewEllipsoid(6377563.396, 6356256.910)
	if err != nil {
		t.Fatalf("error constructing ellipsoid: %s", err)
	}
	assert.Equal(t, 6377563.396, e.SemiMajorAxis())
	assert.Equal(t, 6356256.910, e.SemiMinorAxis())
	// Airy 1830 squared eccentricity, published to ten places.
	assert.InDelta(t, 0.0066705398, e.EccentricitySquared(), 1e-8)
}

func TestNamedEllipsoids(t *testing.T) {
	assert.InDelta(t, 0.00669438, gridconv.WGS84.EccentricitySquared(), 1e-7)
	assert.InDelta(t, 0.00672267, gridconv.International1924.EccentricitySquared(), 1e-7)
	assert.InDelta(t, 0.00669342, gridconv.Krassowsky1940.EccentricitySquared(), 1e-7)
}
