package turn

import (
	"math"

	"github.com/katalvlaran/lvguide/core"
)

// Degree returns the clockwise turn angle in [0,360) from heading from to
// heading to. Inputs outside [0,360) are normalised first.
func Degree(from, to int) int {
	return ((to-from)%360 + 360) % 360
}

// Threshold is one row of a classification table: turn degrees strictly below
// Below (and not matched by an earlier row) map to Category.
type Threshold struct {
	Below    int
	Category core.TurnCategory
}

// Table maps turn degrees to categories. Straight is matched separately by the
// symmetric StraightWithin window around 0.
type Table struct {
	StraightWithin int
	Rows           []Threshold
}

// DefaultTable is the conventional driving classification:
//
//	straight     > 349 or < 11
//	slight right < 45
//	right        < 136
//	sharp right  < 180
//	reverse      == 180
//	sharp left   < 225
//	left         < 316
//	slight left  otherwise
var DefaultTable = Table{
	StraightWithin: 11,
	Rows: []Threshold{
		{Below: 45, Category: core.TurnSlightRight},
		{Below: 136, Category: core.TurnRight},
		{Below: 180, Category: core.TurnSharpRight},
		{Below: 181, Category: core.TurnReverse},
		{Below: 225, Category: core.TurnSharpLeft},
		{Below: 316, Category: core.TurnLeft},
		{Below: 360 - 11 + 1, Category: core.TurnSlightLeft},
	},
}

// Classify maps a turn degree with DefaultTable.
func Classify(degree int) core.TurnCategory {
	return DefaultTable.Classify(degree)
}

// Classify maps a turn degree to a category using the table.
func (t Table) Classify(degree int) core.TurnCategory {
	d := Degree(0, degree)
	if d < t.StraightWithin || d > 360-t.StraightWithin {
		return core.TurnStraight
	}
	for _, row := range t.Rows {
		if d < row.Below {
			return row.Category
		}
	}

	return core.TurnStraight
}

// Cardinal is an 8-way compass direction.
type Cardinal uint8

const (
	North Cardinal = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// String returns the snake_case direction key used by phrase dictionaries.
func (c Cardinal) String() string {
	return [...]string{"north", "northeast", "east", "southeast", "south", "southwest", "west", "northwest"}[c%8]
}

// CardinalOf returns the 45-degree sector of a heading; sector boundaries are
// centred on the compass points (north covers 338..22).
func CardinalOf(heading int) Cardinal {
	h := Degree(0, heading)

	return Cardinal(((h + 22) / 45) % 8)
}

// Time returns the travel time in whole seconds for km kilometers at kph.
// A non-positive speed yields zero.
func Time(km, kph float64) int {
	if kph <= 0 {
		return 0
	}

	return int(math.Round(km / kph * 3600))
}
