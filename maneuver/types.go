// Package maneuver defines the Maneuver type, its kinds and the options of the
// maneuver builder.
package maneuver

import (
	"github.com/katalvlaran/lvguide/core"
)

// Kind is the closed set of maneuver kinds.
type Kind uint8

const (
	KindStart Kind = iota
	KindContinue
	KindSlightRight
	KindRight
	KindSharpRight
	KindUturnRight
	KindUturnLeft
	KindSharpLeft
	KindLeft
	KindSlightLeft
	KindRampStraight
	KindRampRight
	KindRampLeft
	KindExitRight
	KindExitLeft
	KindMerge
	KindRoundaboutEnter
	KindRoundaboutExit
	KindDestination
)

var kindNames = [...]string{
	KindStart:           "start",
	KindContinue:        "continue",
	KindSlightRight:     "slight_right",
	KindRight:           "right",
	KindSharpRight:      "sharp_right",
	KindUturnRight:      "uturn_right",
	KindUturnLeft:       "uturn_left",
	KindSharpLeft:       "sharp_left",
	KindLeft:            "left",
	KindSlightLeft:      "slight_left",
	KindRampStraight:    "ramp_straight",
	KindRampRight:       "ramp_right",
	KindRampLeft:        "ramp_left",
	KindExitRight:       "exit_right",
	KindExitLeft:        "exit_left",
	KindMerge:           "merge",
	KindRoundaboutEnter: "roundabout_enter",
	KindRoundaboutExit:  "roundabout_exit",
	KindDestination:     "destination",
}

// String returns the snake_case kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}

// IsLeft reports whether the kind carries a left relative direction.
func (k Kind) IsLeft() bool {
	switch k {
	case KindSlightLeft, KindLeft, KindSharpLeft, KindUturnLeft, KindRampLeft, KindExitLeft:
		return true
	}

	return false
}

// IsRight reports whether the kind carries a right relative direction.
func (k Kind) IsRight() bool {
	switch k {
	case KindSlightRight, KindRight, KindSharpRight, KindUturnRight, KindRampRight, KindExitRight:
		return true
	}

	return false
}

// Maneuver is one discrete driving instruction over the contiguous edge range
// [Begin, End) of a leg. Built once by Build and never mutated afterwards.
type Maneuver struct {
	Begin, End int // edge range; the destination maneuver is the empty range [n, n)

	Kind Kind

	// StreetNames is the de-duplicated union of the names of the range, in edge order.
	StreetNames core.NamedTexts

	// Signs is aggregated over the range; "to" entries may have been surfaced
	// as exit_toward.
	Signs core.Signs

	// Turn and TurnDegree describe the transition onto the first edge. Unused
	// for the start and destination maneuvers.
	Turn       core.TurnCategory
	TurnDegree int

	// BeginHeading is the heading of the first edge.
	BeginHeading int

	Length float64 // meters
	Time   int     // seconds

	// RoundaboutExitCount is the exit to take for KindRoundaboutEnter, counted
	// per roundabout edge: each edge of the range ends at one node, and every
	// node is taken to be an exit. Edges carry no branch data, so a node
	// without an exit still raises the count.
	RoundaboutExitCount int
}

// EdgeCount returns End - Begin.
func (m Maneuver) EdgeCount() int {
	return m.End - m.Begin
}

// Options configures Build.
type Options struct {
	// DriveOnRight selects the u-turn side: a reverse transition becomes a left
	// u-turn when driving on the right.
	DriveOnRight bool
}

// Option is a functional option for Build.
type Option func(*Options)

// WithDriveOnRight sets the driving side.
func WithDriveOnRight(right bool) Option {
	return func(o *Options) {
		o.DriveOnRight = right
	}
}

// DefaultOptions drives on the right.
func DefaultOptions() Options {
	return Options{DriveOnRight: true}
}
