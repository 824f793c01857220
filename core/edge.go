// SPDX-License-Identifier: MIT
//
// File: edge.go
// Role: Edge, the read-only attribute record of one traversed road segment.

package core

// Edge is the immutable attribute record of one traversed road segment
// (EdgeAttributes). Names and Signs come from the tag parser; the geometric
// fields are supplied by the upstream path collaborator.
type Edge struct {
	// Names are the street names in source precedence (name, alt names, refs).
	Names NamedTexts

	// Signs are the guide-sign entries presented on this edge.
	Signs Signs

	// Class is the functional road class.
	Class RoadClass

	// Use distinguishes ramps from ordinary roads.
	Use Use

	// Roundabout is true for edges that are part of a roundabout.
	Roundabout bool

	// Turn is the classification of the transition from the previous edge onto
	// this one. Ignored for the first edge of a leg.
	Turn TurnCategory

	// TurnDegree is the clockwise turn angle [0,360) of that transition.
	TurnDegree int

	// BeginHeading is the heading at the start of the edge, degrees clockwise
	// from north.
	BeginHeading int

	// Length in meters.
	Length float64

	// Speed in km/h; zero when unknown.
	Speed float64
}

// IsRamp reports whether the edge is a link road.
func (e Edge) IsRamp() bool {
	return e.Use == UseRamp
}

// IsHighway reports whether the edge is a non-link motorway or trunk segment.
func (e Edge) IsHighway() bool {
	return e.Class.IsHighway() && e.Use != UseRamp
}
