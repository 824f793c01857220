// Package directions assembles turn-by-turn directions from edge sequences.
//
// An Assembler runs the whole pipeline for one leg:
//
//	edges → maneuver.Build → narrative.Builder.Build → Leg
//
// and groups legs into routes and routes into Directions. Leg, route and
// directions totals are the sums of their parts.
//
// The Assembler holds only read-only collaborators (phrase dictionary, markup
// formatter, narrative builder), so one instance serves concurrent callers
// without locking; every call owns its results.
//
// Typical use:
//
//	cfg, err := config.Load("lvguide.yaml", ".env")
//	if err != nil {
//		log.Fatal(err)
//	}
//	a, err := directions.FromConfig(cfg, directions.WithLogger(logger))
//	if err != nil {
//		log.Fatal(err)
//	}
//	leg, err := a.BuildLeg(edges)
//
// Errors:
//
//   - core.ErrMalformedInput for an empty leg, wrapped with its position.
//   - ErrNoLegs / ErrNoRoutes for empty BuildRoute / Build input.
//   - FromConfig returns config.ErrInvalid and phrase.ErrBadDictionary
//     unchanged.
package directions
