package directions

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvguide/maneuver"
	"github.com/katalvlaran/lvguide/markup"
	"github.com/katalvlaran/lvguide/narrative"
	"github.com/katalvlaran/lvguide/phrase"
)

var (
	ErrNoLegs   = errors.New("directions: route has no legs")
	ErrNoRoutes = errors.New("directions: no routes")
)

// Leg is the guidance of one leg: maneuvers and their index-aligned
// instructions.
type Leg struct {
	Maneuvers    []maneuver.Maneuver
	Instructions []narrative.Instruction
	Length       float64 // meters
	Time         int     // seconds
}

// Route is an ordered list of legs.
type Route struct {
	Legs   []Leg
	Length float64
	Time   int
}

// Directions holds alternative routes, best first.
type Directions struct {
	Routes []Route
}

// Options configures an Assembler.
type Options struct {
	Logger       *zap.Logger
	Dictionary   *phrase.Dictionary
	Formatter    *markup.Formatter
	DriveOnRight bool
	Narrative    []narrative.Option
}

// Option is a functional option for New.
type Option func(*Options)

// WithLogger sets the logger; it is handed on to the narrative builder.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("directions: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithDictionary selects the phrase dictionary. Panics on nil.
func WithDictionary(d *phrase.Dictionary) Option {
	if d == nil {
		panic("directions: WithDictionary(nil)")
	}
	return func(o *Options) {
		o.Dictionary = d
	}
}

// WithFormatter enables pronunciation markup through f.
func WithFormatter(f *markup.Formatter) Option {
	return func(o *Options) {
		o.Formatter = f
	}
}

// WithDriveOnRight sets the driving side for both maneuver kinds and phrasing.
func WithDriveOnRight(right bool) Option {
	return func(o *Options) {
		o.DriveOnRight = right
	}
}

// WithNarrativeOptions appends options for the narrative builder.
func WithNarrativeOptions(opts ...narrative.Option) Option {
	return func(o *Options) {
		o.Narrative = append(o.Narrative, opts...)
	}
}

// DefaultOptions: no logging, the en-US dictionary, no markup, right-hand
// traffic.
func DefaultOptions() Options {
	return Options{
		Logger:       zap.NewNop(),
		DriveOnRight: true,
	}
}
