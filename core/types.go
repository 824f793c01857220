// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, pronunciation alphabets, road classes and turn categories
// shared by every stage of the pipeline.

package core

import (
	"errors"
)

// ErrMalformedInput indicates input that cannot be processed even partially:
// an empty edge sequence, or a pronunciation attribute whose base attribute is
// missing so that no alignment can be established.
// Usage: if errors.Is(err, core.ErrMalformedInput) { /* reject request */ }.
var ErrMalformedInput = errors.New("core: malformed input")

// Alphabet identifies the phonetic notation of a Pronunciation value.
// It is carried opaquely to downstream consumers (speech engines) and never
// influences formatting.
type Alphabet uint8

const (
	// AlphabetIPA is the International Phonetic Alphabet.
	AlphabetIPA Alphabet = iota
	// AlphabetKatakana is Japanese katakana reading.
	AlphabetKatakana
	// AlphabetJeita is the JEITA phonetic notation.
	AlphabetJeita
	// AlphabetNtSampa is the NT-SAMPA machine-readable phonetic alphabet.
	AlphabetNtSampa
)

// String returns the lower-case tag suffix used for the alphabet.
func (a Alphabet) String() string {
	switch a {
	case AlphabetIPA:
		return "ipa"
	case AlphabetKatakana:
		return "katakana"
	case AlphabetJeita:
		return "jeita"
	case AlphabetNtSampa:
		return "nt-sampa"
	default:
		return "unknown"
	}
}

// Pronunciation is a phonetic transcription of a text element.
type Pronunciation struct {
	Alphabet Alphabet // notation system of Value
	Value    string   // phonetic payload, never empty when the struct exists
}

// RoadClass is the functional class of a road segment, most important first.
type RoadClass uint8

const (
	ClassMotorway RoadClass = iota
	ClassTrunk
	ClassPrimary
	ClassSecondary
	ClassTertiary
	ClassUnclassified
	ClassResidential
	ClassService
	ClassOther
)

// IsHighway reports whether the class is a controlled-access highway class.
func (c RoadClass) IsHighway() bool {
	return c == ClassMotorway || c == ClassTrunk
}

// String returns the OSM highway value of the class.
func (c RoadClass) String() string {
	switch c {
	case ClassMotorway:
		return "motorway"
	case ClassTrunk:
		return "trunk"
	case ClassPrimary:
		return "primary"
	case ClassSecondary:
		return "secondary"
	case ClassTertiary:
		return "tertiary"
	case ClassUnclassified:
		return "unclassified"
	case ClassResidential:
		return "residential"
	case ClassService:
		return "service"
	default:
		return "other"
	}
}

// Use distinguishes ordinary road segments from link roads.
type Use uint8

const (
	// UseRoad is an ordinary through road.
	UseRoad Use = iota
	// UseRamp is a link road (motorway_link, primary_link, ...).
	UseRamp
)

// TurnCategory is the precomputed discrete classification of the transition
// onto an edge from its predecessor.
type TurnCategory uint8

const (
	TurnStraight TurnCategory = iota
	TurnSlightRight
	TurnRight
	TurnSharpRight
	TurnReverse
	TurnSharpLeft
	TurnLeft
	TurnSlightLeft
)

// IsLeft reports whether the category bends to the left.
func (t TurnCategory) IsLeft() bool {
	return t == TurnSharpLeft || t == TurnLeft || t == TurnSlightLeft
}

// IsRight reports whether the category bends to the right.
func (t TurnCategory) IsRight() bool {
	return t == TurnSlightRight || t == TurnRight || t == TurnSharpRight
}

// String returns a snake_case name of the category.
func (t TurnCategory) String() string {
	switch t {
	case TurnStraight:
		return "straight"
	case TurnSlightRight:
		return "slight_right"
	case TurnRight:
		return "right"
	case TurnSharpRight:
		return "sharp_right"
	case TurnReverse:
		return "reverse"
	case TurnSharpLeft:
		return "sharp_left"
	case TurnLeft:
		return "left"
	case TurnSlightLeft:
		return "slight_left"
	default:
		return "unknown"
	}
}
