package phrase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingTemplate indicates that no template is registered for a Key.
	ErrMissingTemplate = errors.New("phrase: missing template")

	// ErrBadDictionary indicates an undecodable or inconsistent dictionary.
	ErrBadDictionary = errors.New("phrase: bad dictionary")
)

// Placeholders understood by the templates.
const (
	TokenStreetNames       = "<STREET_NAMES>"
	TokenNumber            = "<NUMBER>"
	TokenBranchSign        = "<BRANCH_SIGN>"
	TokenTowardSign        = "<TOWARD_SIGN>"
	TokenNameSign          = "<NAME_SIGN>"
	TokenRelativeDirection = "<RELATIVE_DIRECTION>"
	TokenCardinalDirection = "<CARDINAL_DIRECTION>"
	TokenOrdinalValue      = "<ORDINAL_VALUE>"
	TokenLength            = "<LENGTH>"
	TokenDistance          = "<DISTANCE>"
)

var knownTokens = map[string]bool{
	TokenStreetNames: true, TokenNumber: true, TokenBranchSign: true,
	TokenTowardSign: true, TokenNameSign: true, TokenRelativeDirection: true,
	TokenCardinalDirection: true, TokenOrdinalValue: true, TokenLength: true,
	TokenDistance: true,
}

// Group is a maneuver family sharing one set of phrases.
type Group uint8

const (
	GroupStart Group = iota
	GroupContinue
	GroupBear
	GroupTurn
	GroupSharp
	GroupUturn
	GroupRampStraight
	GroupRamp
	GroupExit         // exit on the driving side
	GroupExitOpposite // exit against the driving side
	GroupMerge
	GroupEnterRoundabout
	GroupExitRoundabout
	GroupDestination

	groupCount
)

var groupNames = [groupCount]string{
	"start", "continue", "bear", "turn", "sharp", "uturn", "ramp_straight", "ramp",
	"exit", "exit_opposite", "merge", "enter_roundabout", "exit_roundabout", "destination",
}

func (g Group) String() string {
	if g < groupCount {
		return groupNames[g]
	}

	return "unknown"
}

// Variant is the instruction field a template produces.
type Variant uint8

const (
	VariantInstruction Variant = iota
	VariantVerbalSuccinct
	VariantVerbalAlert
	VariantVerbalPre
	VariantVerbalPost

	variantCount
)

var variantNames = [variantCount]string{
	"instruction", "verbal_succinct", "verbal_alert", "verbal_pre", "verbal_post",
}

func (v Variant) String() string {
	if v < variantCount {
		return variantNames[v]
	}

	return "unknown"
}

// Shape is the set of elements bound into a template.
type Shape uint8

const (
	ShapeStreet Shape = 1 << iota
	ShapeNumber
	ShapeBranch
	ShapeToward
	ShapeName
	ShapeOrdinal
)

// ShapeBare binds no element.
const ShapeBare Shape = 0

var shapeTokens = [...]struct {
	bit  Shape
	name string
}{
	{ShapeStreet, "street"},
	{ShapeNumber, "number"},
	{ShapeBranch, "branch"},
	{ShapeToward, "toward"},
	{ShapeName, "name"},
	{ShapeOrdinal, "ordinal"},
}

// Has reports whether every bit of o is set in s.
func (s Shape) Has(o Shape) bool {
	return s&o == o
}

// String returns the '+'-joined tokens in canonical order, or "bare".
func (s Shape) String() string {
	if s == ShapeBare {
		return "bare"
	}
	parts := make([]string, 0, len(shapeTokens))
	for _, t := range shapeTokens {
		if s.Has(t.bit) {
			parts = append(parts, t.name)
		}
	}

	return strings.Join(parts, "+")
}

// parseShape accepts tokens in any order.
func parseShape(s string) (Shape, error) {
	if s == "bare" {
		return ShapeBare, nil
	}
	var out Shape
next:
	for _, tok := range strings.Split(s, "+") {
		for _, t := range shapeTokens {
			if t.name == tok {
				out |= t.bit
				continue next
			}
		}
		return 0, fmt.Errorf("%w: unknown shape token %q", ErrBadDictionary, tok)
	}

	return out, nil
}

// Count is the cardinality class of the bound lists.
type Count uint8

const (
	// CountAny matches regardless of cardinality; also used for bare shapes.
	CountAny Count = iota
	// CountOne: every bound list holds one element.
	CountOne
	// CountMany: at least one bound list holds two or more.
	CountMany
)

func (c Count) String() string {
	switch c {
	case CountOne:
		return "one"
	case CountMany:
		return "many"
	default:
		return "any"
	}
}

// CountOf classifies the longest bound list length.
func CountOf(longest int) Count {
	switch {
	case longest <= 0:
		return CountAny
	case longest == 1:
		return CountOne
	default:
		return CountMany
	}
}

// Key selects one template.
type Key struct {
	Group   Group
	Variant Variant
	Shape   Shape
	Count   Count
}

// String renders the key in dictionary path form.
func (k Key) String() string {
	s := k.Group.String() + "." + k.Variant.String() + "." + k.Shape.String()
	if k.Count != CountAny {
		s += "/" + k.Count.String()
	}

	return s
}

// Units selects the measurement system of lengths.
type Units uint8

const (
	UnitsMetric Units = iota
	UnitsImperial
)

func (u Units) String() string {
	if u == UnitsImperial {
		return "imperial"
	}

	return "metric"
}

// ParseUnits maps "metric" or "imperial" to Units.
func ParseUnits(s string) (Units, error) {
	switch s {
	case "metric":
		return UnitsMetric, nil
	case "imperial":
		return UnitsImperial, nil
	}

	return 0, fmt.Errorf("phrase: unknown units %q", s)
}

// UnitPhrases are the length phrases of one measurement system. Short and
// Long carry a <DISTANCE> placeholder.
type UnitPhrases struct {
	LessThanTen string `yaml:"less_than_ten"` // below ten of the small unit
	Short       string `yaml:"short"`         // meters or feet
	One         string `yaml:"one"`           // exactly one of the large unit
	Long        string `yaml:"long"`          // kilometers or miles
}
