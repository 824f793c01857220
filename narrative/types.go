package narrative

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvguide/phrase"
)

// Instruction is the narrative of one maneuver.
type Instruction struct {
	Instruction    string `json:"instruction"`
	VerbalSuccinct string `json:"verbal_succinct,omitempty"`
	VerbalAlert    string `json:"verbal_alert,omitempty"`
	VerbalPre      string `json:"verbal_pre_transition,omitempty"`
	VerbalPost     string `json:"verbal_post_transition,omitempty"`
}

const (
	DefaultInstructionMaxElements = 4
	DefaultAlertMaxElements       = 1
	DefaultPreMaxElements         = 2
	DefaultPostMaxElements        = 2
)

// Options configures a Builder.
type Options struct {
	Logger       *zap.Logger
	Units        phrase.Units
	DriveOnRight bool

	// Per-list element limits of each field.
	InstructionMaxElements int
	AlertMaxElements       int
	PreMaxElements         int
	PostMaxElements        int
}

// Option is a functional option for New.
type Option func(*Options)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("narrative: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithUnits selects metric or imperial lengths.
func WithUnits(u phrase.Units) Option {
	return func(o *Options) {
		o.Units = u
	}
}

// WithDriveOnRight sets the driving side, which decides whether an exit is
// phrased with its side.
func WithDriveOnRight(right bool) Option {
	return func(o *Options) {
		o.DriveOnRight = right
	}
}

// WithMaxElements sets the per-list element limits of the instruction,
// alert, pre-transition and post-transition fields. Panics when a limit is
// below one.
func WithMaxElements(instruction, alert, pre, post int) Option {
	for _, n := range []int{instruction, alert, pre, post} {
		if n < 1 {
			panic(fmt.Sprintf("narrative: element limit %d must be positive", n))
		}
	}
	return func(o *Options) {
		o.InstructionMaxElements = instruction
		o.AlertMaxElements = alert
		o.PreMaxElements = pre
		o.PostMaxElements = post
	}
}

// DefaultOptions: no logging, metric units, right-hand traffic and limits of
// 4, 1, 2 and 2 elements.
func DefaultOptions() Options {
	return Options{
		Logger:                 zap.NewNop(),
		Units:                  phrase.UnitsMetric,
		DriveOnRight:           true,
		InstructionMaxElements: DefaultInstructionMaxElements,
		AlertMaxElements:       DefaultAlertMaxElements,
		PreMaxElements:         DefaultPreMaxElements,
		PostMaxElements:        DefaultPostMaxElements,
	}
}
