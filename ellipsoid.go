package gridconv

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidEllipsoid is the cause of all ellipsoid construction failures.
var ErrInvalidEllipsoid = errors.New("invalid ellipsoid")

// Ellipsoid holds the geometric constants of a reference ellipsoid. It is
// immutable after construction and safe to share between projections.
type Ellipsoid struct {
	semiMajorAxis float64 // a, meters
	semiMinorAxis float64 // b, meters
	eccSquared    float64 // e², derived from a and b
}

// NewEllipsoid constructs an Ellipsoid from its semi-major and semi-minor
// axes in meters. The squared eccentricity is derived as (a² − b²) / a².
func NewEllipsoid(semiMajorAxis, semiMinorAxis float64) (Ellipsoid, error) {
	if semiMajorAxis <= 0.0 {
		return Ellipsoid{}, errors.Wrapf(ErrInvalidEllipsoid,
			"semi-major axis must be greater than zero, got %v", semiMajorAxis)
	}
	if semiMinorAxis <= 0.0 {
		return Ellipsoid{}, errors.Wrapf(ErrInvalidEllipsoid,
			"semi-minor axis must be greater than zero, got %v", semiMinorAxis)
	}
	if semiMinorAxis >= semiMajorAxis {
		return Ellipsoid{}, errors.Wrapf(ErrInvalidEllipsoid,
			"semi-minor axis %v must be less than semi-major axis %v",
			semiMinorAxis, semiMajorAxis)
	}
	return Ellipsoid{
		semiMajorAxis: semiMajorAxis,
		semiMinorAxis: semiMinorAxis,
		eccSquared: (semiMajorAxis*semiMajorAxis - semiMinorAxis*semiMinorAxis) /
			(semiMajorAxis * semiMajorAxis),
	}, nil
}

// SemiMajorAxis returns a in meters.
func (e Ellipsoid) SemiMajorAxis() float64 { return e.semiMajorAxis }

// SemiMinorAxis returns b in meters.
func (e Ellipsoid) SemiMinorAxis() float64 { return e.semiMinorAxis }

// EccentricitySquared returns e².
func (e Ellipsoid) EccentricitySquared() float64 { return e.eccSquared }

// Survey ellipsoids used by the grid systems shipped with this package.
var (
	// Airy1830 is the ellipsoid of the GB national grid (OSGB36).
	Airy1830 Ellipsoid
	// AiryModified1849 is the ellipsoid of the Irish national grid.
	AiryModified1849 Ellipsoid
	// International1924 (Hayford) underlies the European Datum 1950.
	International1924 Ellipsoid
	// WGS84 is the GPS reference ellipsoid.
	WGS84 Ellipsoid
	// GRS80 differs from WGS84 only in the tenth significant digit of b.
	GRS80 Ellipsoid
	// Krassowsky1940 underlies the Pulkovo 1942 (SK-42) datum.
	Krassowsky1940 Ellipsoid
)

func init() {
	Airy1830 = mustEllipsoid("Airy 1830", 6377563.396, 6356256.910)
	AiryModified1849 = mustEllipsoid("Airy Modified 1849", 6377340.189, 6356034.447)
	International1924 = mustEllipsoid("International 1924", 6378388.000, 6356911.946)
	WGS84 = mustEllipsoid("WGS84", 6378137.000, 6356752.3142)
	GRS80 = mustEllipsoid("GRS80", 6378137.000, 6356752.3141)
	Krassowsky1940 = mustEllipsoid("Krassowsky 1940", 6378245.000, 6356863.019)
}

func mustEllipsoid(name string, a, b float64) Ellipsoid {
	e, err := NewEllipsoid(a, b)
	if err != nil {
		panic(fmt.Sprintf("error constructing %s ellipsoid: %s", name, err))
	}
	return e
}
