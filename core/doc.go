// SPDX-License-Identifier: MIT

// Package core defines the shared data model of lvguide: the named text units
// that carry street names and guide-sign entries, their optional pronunciations,
// the sign categories of a highway guide sign, and the per-edge attributes of a
// computed route.
//
// Every other package consumes these types:
//
//	tags/        decodes raw attribute bags into core.Edge values
//	sign/        aggregates core.Signs over a contiguous edge range
//	maneuver/    segments []core.Edge into maneuvers
//	markup/      renders core.NamedText with phonetic markup
//	narrative/   turns maneuvers into instruction text
//	directions/  composes legs and routes
//
// What:
//
//   - NamedText is the unit of street names, sign entries and destinations. It
//     always carries literal Text; Pronunciation is optional and never replaces it.
//   - NamedTexts is an ordered list with first-occurrence-wins de-duplication
//     (AppendUnique). Insertion order is preserved.
//   - Signs is a fixed-size array indexed by SignCategory. The zero value is an
//     empty, ready to use set of sign lists.
//   - Edge is the read-only input record for one traversed road segment.
//
// Invariants:
//
//   - Within one SignCategory of a Signs value no two entries share a Text.
//   - NamedText.Pronunciation, when present, belongs to the Text at the same
//     position of the source tag list; it is never borrowed from a neighbour.
//
// Errors:
//
//   - ErrMalformedInput: the input cannot be processed at all (empty edge sequence,
//     a pronunciation with no base attribute to align against). Producers wrap it
//     with %w and a short context.
//
// All types are plain values without locks: a route is built once per request and
// never shared mutably between goroutines.
package core
