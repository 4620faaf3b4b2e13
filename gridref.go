package gridconv

import (
	"fmt"
	"math"
)

// GridRef is an absolute grid position, meters east and north of the grid's
// false origin. Grid references carry whole-meter resolution: construction
// rounds both values to the nearest meter, matching grid-reference notation.
// Callers holding sub-meter survey coordinates should use
// Projection.ToGeodetic directly, which does not round.
type GridRef struct {
	easting  float64
	northing float64
}

// NewGridRef constructs a grid reference, rounding easting and northing to
// the nearest whole meter.
func NewGridRef(easting, northing float64) GridRef {
	return GridRef{
		easting:  math.Round(easting),
		northing: math.Round(northing),
	}
}

// Easting returns the easting in whole meters.
func (g GridRef) Easting() float64 { return g.easting }

// Northing returns the northing in whole meters.
func (g GridRef) Northing() float64 { return g.northing }

// String renders the reference as "(easting, northing)" for diagnostics.
func (g GridRef) String() string {
	return fmt.Sprintf("(%.0f, %.0f)", g.easting, g.northing)
}
