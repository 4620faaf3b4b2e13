package gridconv_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/gridpoint/gridconv"
)

func TestNewProjectionRejectsBadOrigin(t *testing.T) {
	cases := []struct {
		name     string
		lat, lng float64
	}{
		{"latitude at north pole", 90, 0},
		{"latitude at south pole", -90, 0},
		{"latitude beyond north pole", 100, 0},
		{"longitude at antimeridian", 0, 180},
		{"longitude at negative antimeridian", 0, -180},
		{"longitude beyond antimeridian", 0, 210},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := gridconv.NewProjection(gridconv.WGS84, 0.9996, 500000, 0, c.lat, c.lng)
			if err == nil {
				t.Fatalf("expected error constructing projection with origin %v, %v", c.lat, c.lng)
			}
			assert.Equal(t, gridconv.ErrInvalidProjection, errors.Cause(err))
		})
	}
}

func TestGBNationalGridParameters(t *testing.T) {
	p := gridconv.GBNationalGrid
	assert.Equal(t, gridconv.Airy1830, p.Ellipsoid())
	assert.Equal(t, 0.9996012717, p.ScaleFactor())
	assert.Equal(t, 400000.0, p.OriginEasting())
	assert.Equal(t, -100000.0, p.OriginNorthing())
	assert.Equal(t, 49.0, p.OriginLat())
	assert.Equal(t, -2.0, p.OriginLng())
}

func TestUTMZoneParameters(t *testing.T) {
	p, err := gridconv.UTMZone(31, gridconv.HemisphereNorth, gridconv.WGS84)
	if err != nil {
		t.Fatalf("error constructing UTM zone 31: %s", err)
	}
	assert.Equal(t, 3.0, p.OriginLng())
	assert.Equal(t, 0.0, p.OriginLat())
	assert.Equal(t, 500000.0, p.OriginEasting())
	assert.Equal(t, 0.0, p.OriginNorthing())
	assert.Equal(t, 0.9996, p.ScaleFactor())

	south, err := gridconv.UTMZone(31, gridconv.HemisphereSouth, gridconv.WGS84)
	if err != nil {
		t.Fatalf("error constructing southern UTM zone 31: %s", err)
	}
	assert.Equal(t, 10000000.0, south.OriginNorthing())
}

func TestUTMZoneRejectsBadArguments(t *testing.T) {
	if _, err := gridconv.UTMZone(0, gridconv.HemisphereNorth, gridconv.WGS84); err == nil {
		t.Fatal("expected error for zone 0")
	}
	if _, err := gridconv.UTMZone(61, gridconv.HemisphereNorth, gridconv.WGS84); err == nil {
		t.Fatal("expected error for zone 61")
	}
	_, err := gridconv.UTMZone(30, gridconv.HemisphereInvalid, gridconv.WGS84)
	if err == nil {
		t.Fatal("expected error for invalid hemisphere")
	}
	assert.Equal(t, gridconv.ErrInvalidProjection, errors.Cause(err))
}
