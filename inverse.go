package gridconv

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/pkg/errors"
)

// ErrNonConvergence is the cause returned when the footpoint-latitude
// iteration cannot reduce the meridional-arc residual below tolerance.
var ErrNonConvergence = errors.New("footpoint latitude iteration did not converge")

// arcTolerance is the convergence threshold for the meridional-arc
// residual, in meters.
const arcTolerance = 0.001

// maxFootpointIterations bounds the footpoint refinement. Realistic
// ellipsoids converge within a handful of passes; the cap only trips on
// degenerate axis ratios, where the fixed-point update stops contracting.
const maxFootpointIterations = 50

// ConvertToGeodetic converts a whole-meter grid reference to a geodetic
// coordinate on the projection's ellipsoid.
func (p Projection) ConvertToGeodetic(ref GridRef) (GeoPoint, error) {
	return p.ToGeodetic(ref.Easting(), ref.Northing())
}

// ToGeodetic converts a raw easting and northing, in meters, to a geodetic
// coordinate on the projection's ellipsoid. Unlike the GridRef path it
// preserves sub-meter precision in the input.
//
// The conversion computes the footpoint latitude iteratively from the
// northing and the meridional-arc series, then applies the series
// corrections (terms VII through XIIA of the published inverse formulas)
// to obtain latitude and longitude.
func (p Projection) ToGeodetic(easting, northing float64) (GeoPoint, error) {
	origin := s2.LatLngFromDegrees(p.originLat, p.originLng)
	lat0 := origin.Lat.Radians()
	lng0 := origin.Lng.Radians()

	a := p.ellipsoid.SemiMajorAxis()
	b := p.ellipsoid.SemiMinorAxis()
	e2 := p.ellipsoid.EccentricitySquared()
	n := (a - b) / (a + b)

	aF0 := a * p.scaleFactor
	bF0 := b * p.scaleFactor

	//  Footpoint latitude
	//  --------- --------

	// Refine the estimate until the meridional arc from the true origin
	// matches the northing offset to within a millimeter. The residual is
	// folded back into the estimate before it is tested, so the body runs
	// at least once.
	latF := lat0 + (northing-p.originNorthing)/aF0
	residual := math.Inf(1)
	for i := 0; i < maxFootpointIterations && !(math.Abs(residual) < arcTolerance); i++ {
		m := meridionalArc(n, bF0, lat0, latF)
		residual = northing - p.originNorthing - m
		latF += residual / aF0
	}
	if !(math.Abs(residual) < arcTolerance) {
		return GeoPoint{}, errors.Wrapf(ErrNonConvergence,
			"meridional arc residual %v m after %d iterations",
			residual, maxFootpointIterations)
	}

	//  Series corrections
	//  ------ -----------

	sinLat := math.Sin(latF)
	tanLat := math.Tan(latF)
	secLat := 1 / math.Cos(latF)

	// Transverse and meridional radii of curvature, scaled by F0.
	nu := aF0 / math.Sqrt(1-e2*sinLat*sinLat)
	rho := aF0 * (1 - e2) / math.Pow(1-e2*sinLat*sinLat, 1.5)
	eta2 := nu/rho - 1

	tan2 := tanLat * tanLat
	tan4 := tan2 * tan2
	tan6 := tan4 * tan2

	nu3 := nu * nu * nu
	nu5 := nu3 * nu * nu
	nu7 := nu5 * nu * nu

	VII := tanLat / (2 * rho * nu)
	VIII := tanLat / (24 * rho * nu3) *
		(5 + 3*tan2 + eta2 - 9*tan2*eta2)
	IX := tanLat / (720 * rho * nu5) *
		(61 + 90*tan2 + 45*tan4)
	X := secLat / nu
	XI := secLat / (6 * nu3) *
		(nu/rho + 2*tan2)
	XII := secLat / (120 * nu5) *
		(5 + 28*tan2 + 24*tan4)
	XIIA := secLat / (5040 * nu7) *
		(61 + 662*tan2 + 1320*tan4 + 720*tan6)

	dE := easting - p.originEasting
	dE2 := dE * dE
	dE3 := dE2 * dE
	dE4 := dE3 * dE
	dE5 := dE4 * dE
	dE6 := dE5 * dE
	dE7 := dE6 * dE

	lat := latF - VII*dE2 + VIII*dE4 - IX*dE6
	lng := lng0 + X*dE - XI*dE3 + XII*dE5 - XIIA*dE7

	return GeoPoint{
		LatLng:    s2.LatLng{Lat: s1.Angle(lat), Lng: s1.Angle(lng)},
		Ellipsoid: p.ellipsoid,
	}, nil
}

// meridionalArc computes the arc length along the central meridian from
// latitude lat0 to lat, using the fourth-order series in n = (a−b)/(a+b).
func meridionalArc(n, bF0, lat0, lat float64) float64 {
	n2 := n * n
	n3 := n2 * n
	dLat := lat - lat0
	sLat := lat + lat0
	return bF0 * ((1+n+(5.0/4.0)*n2+(5.0/4.0)*n3)*dLat -
		(3*n+3*n2+(21.0/8.0)*n3)*math.Sin(dLat)*math.Cos(sLat) +
		((15.0/8.0)*n2+(15.0/8.0)*n3)*math.Sin(2*dLat)*math.Cos(2*sLat) -
		(35.0/24.0)*n3*math.Sin(3*dLat)*math.Cos(3*sLat))
}
