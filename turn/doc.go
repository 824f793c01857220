// Package turn provides the small geometric helpers the maneuver pipeline
// consumes as precomputed inputs: turn degrees between headings, the default
// turn-degree classification table, 8-way cardinal directions and travel time.
//
// None of these carry architectural weight; they exist so that fixtures and
// callers without their own geometry layer can produce core.Edge values.
//
// Conventions:
//
//   - Headings are integer degrees clockwise from north in [0,360).
//   - A turn degree is the clockwise angle from the inbound to the outbound
//     heading: 0 is straight ahead, 90 a right turn, 270 a left turn.
package turn
