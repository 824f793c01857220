package tags

import (
	"github.com/katalvlaran/lvguide/core"
)

// Tags is the raw attribute bag of one edge: OSM-style key/value pairs.
type Tags map[string]string

// Options configures Parse.
type Options struct {
	// Alphabets lists the pronunciation alphabets to look for, in preference
	// order. The first alphabet with a non-empty sibling attribute wins.
	Alphabets []core.Alphabet
}

// Option is a functional option for Parse.
type Option func(*Options)

// WithAlphabets sets the pronunciation alphabet preference order.
// Panics when called without alphabets.
func WithAlphabets(order ...core.Alphabet) Option {
	if len(order) == 0 {
		panic("tags: WithAlphabets requires at least one alphabet")
	}
	return func(o *Options) {
		o.Alphabets = append([]core.Alphabet(nil), order...)
	}
}

// DefaultOptions prefers IPA, then NT-SAMPA, katakana and JEITA.
func DefaultOptions() Options {
	return Options{
		Alphabets: []core.Alphabet{core.AlphabetIPA, core.AlphabetNtSampa, core.AlphabetKatakana, core.AlphabetJeita},
	}
}

// source binds a raw key to its destination in the model.
type source struct {
	key         string
	category    core.SignCategory
	routeNumber bool
}

// nameSources are the street-name keys in precedence order.
var nameSources = []source{
	{key: "name"},
	{key: "alt_name"},
	{key: "official_name"},
	{key: "ref", routeNumber: true},
	{key: "int_ref", routeNumber: true},
}

// signSources are the guide-sign keys; within a category, order is precedence.
var signSources = []source{
	{key: "junction:ref", category: core.SignExitNumber, routeNumber: true},
	{key: "destination:ref", category: core.SignExitBranch, routeNumber: true},
	{key: "destination:int_ref", category: core.SignExitBranch, routeNumber: true},
	{key: "destination:street", category: core.SignExitBranch},
	{key: "destination", category: core.SignExitToward},
	{key: "junction:name", category: core.SignExitName},
	{key: "destination:ref:to", category: core.SignExitBranchTo, routeNumber: true},
	{key: "destination:street:to", category: core.SignExitBranchTo},
	{key: "destination:to", category: core.SignExitTowardTo},
}

const (
	pronunciationSuffix = ":pronunciation"
	listSeparator       = ";"
)

// alphabetSuffix is appended to "<key>:pronunciation" to address an alphabet.
var alphabetSuffix = map[core.Alphabet]string{
	core.AlphabetIPA:      "",
	core.AlphabetKatakana: ":katakana",
	core.AlphabetJeita:    ":jeita",
	core.AlphabetNtSampa:  ":nt-sampa",
}

var highwayClass = map[string]core.RoadClass{
	"motorway":     core.ClassMotorway,
	"trunk":        core.ClassTrunk,
	"primary":      core.ClassPrimary,
	"secondary":    core.ClassSecondary,
	"tertiary":     core.ClassTertiary,
	"unclassified": core.ClassUnclassified,
	"residential":  core.ClassResidential,
	"service":      core.ClassService,
}
