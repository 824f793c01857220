package directions

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvguide/config"
	"github.com/katalvlaran/lvguide/core"
	"github.com/katalvlaran/lvguide/maneuver"
	"github.com/katalvlaran/lvguide/markup"
	"github.com/katalvlaran/lvguide/narrative"
	"github.com/katalvlaran/lvguide/phrase"
)

// Assembler runs the guidance pipeline. Immutable after New.
type Assembler struct {
	logger    *zap.Logger
	maneuvers []maneuver.Option
	narrative *narrative.Builder
}

// New returns an Assembler.
func New(opts ...Option) *Assembler {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Dictionary == nil {
		cfg.Dictionary = phrase.Default()
	}

	nopts := append([]narrative.Option{
		narrative.WithLogger(cfg.Logger),
		narrative.WithDriveOnRight(cfg.DriveOnRight),
	}, cfg.Narrative...)

	return &Assembler{
		logger:    cfg.Logger,
		maneuvers: []maneuver.Option{maneuver.WithDriveOnRight(cfg.DriveOnRight)},
		narrative: narrative.New(cfg.Dictionary, cfg.Formatter, nopts...),
	}
}

// FromConfig validates cfg and builds an Assembler from it. opts are applied
// after the configured values.
func FromConfig(cfg config.Config, opts ...Option) (*Assembler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f, err := markup.New(cfg.Markup)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}
	dict := phrase.Default()
	if cfg.DictionaryPath != "" {
		if dict, err = phrase.LoadFile(cfg.DictionaryPath); err != nil {
			return nil, err
		}
	}

	n := cfg.Narrative
	base := []Option{
		WithDictionary(dict),
		WithFormatter(f),
		WithDriveOnRight(cfg.DriveOnRight),
		WithNarrativeOptions(
			narrative.WithUnits(cfg.UnitsValue()),
			narrative.WithMaxElements(n.InstructionMaxElements, n.AlertMaxElements, n.PreMaxElements, n.PostMaxElements),
		),
	}

	return New(append(base, opts...)...), nil
}

// BuildLeg assembles the guidance of one leg.
//
// Complexity: O(N·M) for N edges; see maneuver.Build.
func (a *Assembler) BuildLeg(edges []core.Edge) (Leg, error) {
	ms, err := maneuver.Build(edges, a.maneuvers...)
	if err != nil {
		return Leg{}, err
	}

	leg := Leg{Maneuvers: ms, Instructions: a.narrative.Build(ms)}
	for i := range ms {
		leg.Length += ms[i].Length
		leg.Time += ms[i].Time
	}
	a.logger.Debug("leg assembled",
		zap.Int("edges", len(edges)),
		zap.Int("maneuvers", len(ms)),
		zap.Float64("length_m", leg.Length),
		zap.Int("time_s", leg.Time))

	return leg, nil
}

// BuildRoute assembles every leg of a route in order.
func (a *Assembler) BuildRoute(legs ...[]core.Edge) (Route, error) {
	if len(legs) == 0 {
		return Route{}, ErrNoLegs
	}

	r := Route{Legs: make([]Leg, 0, len(legs))}
	for i, edges := range legs {
		leg, err := a.BuildLeg(edges)
		if err != nil {
			return Route{}, fmt.Errorf("leg %d: %w", i, err)
		}
		r.Legs = append(r.Legs, leg)
		r.Length += leg.Length
		r.Time += leg.Time
	}

	return r, nil
}

// Build assembles alternative routes, each given as its legs.
func (a *Assembler) Build(routes ...[][]core.Edge) (Directions, error) {
	if len(routes) == 0 {
		return Directions{}, ErrNoRoutes
	}

	d := Directions{Routes: make([]Route, 0, len(routes))}
	for i, legs := range routes {
		r, err := a.BuildRoute(legs...)
		if err != nil {
			return Directions{}, fmt.Errorf("route %d: %w", i, err)
		}
		d.Routes = append(d.Routes, r)
	}

	return d, nil
}
