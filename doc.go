// Package lvguide turns the ordered edges of a computed route into maneuvers
// and localized turn-by-turn narrative, with optional pronunciation markup
// for speech synthesis.
//
// What is lvguide?
//
//	A small pipeline of independent packages:
//
//	tags/        raw way attributes to names, signs and pronunciations
//	sign/        sign aggregation over an edge range
//	turn/        heading deltas, turn categories and cardinal directions
//	maneuver/    segmentation of a leg into maneuvers
//	phrase/      locale dictionaries and template substitution
//	markup/      phoneme markup of pronounced names
//	narrative/   instruction and verbal strings per maneuver
//	directions/  legs and routes assembled end to end
//	routemap/    ASCII road maps for fixtures and tests
//	config/      YAML + environment configuration
//
// Quick example:
//
//	edges, _ := m.Edges("ABCD")
//	a := directions.New()
//	leg, _ := a.BuildLeg(edges)
//	for _, in := range leg.Instructions {
//		fmt.Println(in.Instruction)
//	}
//
// The cmd/lvguide binary narrates YAML road-map fixtures:
//
//	lvguide narrate testdata/exit_signs.yaml --format text
package lvguide
