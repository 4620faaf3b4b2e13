package gridconv

import (
	"github.com/golang/geo/s2"
)

// GeoPoint is a geodetic coordinate together with the reference ellipsoid
// it is expressed on. The pairing matters: the same latitude and longitude
// name different ground positions on different ellipsoids.
type GeoPoint struct {
	s2.LatLng
	Ellipsoid Ellipsoid
}
