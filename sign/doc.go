// Package sign consolidates the per-edge guide-sign entries of a contiguous
// edge range into the sign set of a single maneuver.
//
// Aggregation rules:
//
//   - Edges are visited in traversal order; within an edge, entries keep the
//     edge's own list order.
//   - An entry is suppressed when its text already exists in the same category
//     of the maneuver. The first occurrence wins, pronunciation included.
//   - exit_branch is stably reordered so route numbers precede street names.
//   - exit_toward keeps destination order as given.
//   - "to"-qualified categories are aggregated like the others but kept apart
//     from their primary siblings; surfacing them is the maneuver builder's job.
package sign
