package gridconv

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidProjection is the cause of all projection construction failures.
var ErrInvalidProjection = errors.New("invalid projection definition")

// Hemisphere represents the hemisphere, north or south
type Hemisphere byte

// Hemisphere constants
const (
	HemisphereInvalid Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
)

// Projection is the fixed parameter bundle of a Transverse Mercator grid
// system: a reference ellipsoid, the scale factor on the central meridian,
// and the true origin in both grid and geographic coordinates. The bundle
// never changes after construction; a named grid system is just a
// Projection value.
type Projection struct {
	ellipsoid      Ellipsoid
	scaleFactor    float64 // F0, scale on the central meridian
	originEasting  float64 // E0, meters
	originNorthing float64 // N0, meters
	originLat      float64 // φ0, degrees
	originLng      float64 // λ0, degrees
}

// NewProjection constructs the parameter bundle for a Transverse Mercator
// grid system. Origin latitude and longitude are in degrees; the origin
// easting and northing are the grid coordinates assigned to the true
// origin, in meters.
func NewProjection(ellipsoid Ellipsoid, scaleFactor, originEasting,
	originNorthing, originLat, originLng float64) (Projection, error) {
	if originLat <= -90.0 || originLat >= 90.0 {
		return Projection{}, errors.Wrapf(ErrInvalidProjection,
			"origin latitude %v out of range (-90, 90)", originLat)
	}
	if originLng <= -180.0 || originLng >= 180.0 {
		return Projection{}, errors.Wrapf(ErrInvalidProjection,
			"origin longitude %v out of range (-180, 180)", originLng)
	}
	return Projection{
		ellipsoid:      ellipsoid,
		scaleFactor:    scaleFactor,
		originEasting:  originEasting,
		originNorthing: originNorthing,
		originLat:      originLat,
		originLng:      originLng,
	}, nil
}

// Ellipsoid returns the reference ellipsoid the grid is defined on.
func (p Projection) Ellipsoid() Ellipsoid { return p.ellipsoid }

// ScaleFactor returns F0, the scale factor on the central meridian.
func (p Projection) ScaleFactor() float64 { return p.scaleFactor }

// OriginEasting returns E0, the grid easting of the true origin in meters.
func (p Projection) OriginEasting() float64 { return p.originEasting }

// OriginNorthing returns N0, the grid northing of the true origin in meters.
func (p Projection) OriginNorthing() float64 { return p.originNorthing }

// OriginLat returns φ0, the latitude of the true origin in degrees.
func (p Projection) OriginLat() float64 { return p.originLat }

// OriginLng returns λ0, the longitude of the true origin in degrees.
func (p Projection) OriginLng() float64 { return p.originLng }

const utmScaleFactor = 0.9996
const utmFalseEasting = 500000.0
const utmSouthFalseNorthing = 10000000.0

// UTMZone constructs the Projection for a UTM zone on the given ellipsoid.
// Zones are numbered 1 to 60 eastward from the antimeridian; southern
// hemisphere zones carry a 10,000,000 m false northing.
func UTMZone(zone int, hemisphere Hemisphere, ellipsoid Ellipsoid) (Projection, error) {
	if zone < 1 || zone > 60 {
		return Projection{}, errors.Wrapf(ErrInvalidProjection,
			"UTM zone %d out of range [1, 60]", zone)
	}
	var falseNorthing float64
	switch hemisphere {
	case HemisphereNorth:
		falseNorthing = 0.0
	case HemisphereSouth:
		falseNorthing = utmSouthFalseNorthing
	default:
		return Projection{}, errors.Wrap(ErrInvalidProjection, "hemisphere out of range")
	}
	centralMeridian := float64(6*zone - 183)
	return NewProjection(ellipsoid, utmScaleFactor, utmFalseEasting,
		falseNorthing, 0.0, centralMeridian)
}

// Grid systems shipped with this package.
var (
	// GBNationalGrid is the Ordnance Survey national grid of Great
	// Britain (OSGB36, Airy 1830).
	GBNationalGrid Projection
	// IrishNationalGrid is the Irish transverse Mercator grid
	// (Ireland 1965, Airy Modified 1849).
	IrishNationalGrid Projection
)

func init() {
	var err error
	GBNationalGrid, err = NewProjection(Airy1830, 0.9996012717, 400000, -100000, 49, -2)
	if err != nil {
		panic(fmt.Sprintf("error constructing GB national grid: %s", err))
	}
	IrishNationalGrid, err = NewProjection(AiryModified1849, 1.000035, 200000, 250000, 53.5, -8)
	if err != nil {
		panic(fmt.Sprintf("error constructing Irish national grid: %s", err))
	}
}
