package tags

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/lvguide/core"
)

// Parse decodes raw into a core.Edge with Names, Signs, Class, Use and
// Roundabout populated. Geometric fields (Turn, TurnDegree, BeginHeading,
// Length, Speed) are left zero for the caller to fill.
//
// Steps:
//  1. Reject orphan pronunciations (core.ErrMalformedInput).
//  2. Collect street names in precedence order, de-duplicated by text.
//  3. Collect sign entries per category, de-duplicated by text.
//  4. Derive road class, ramp use and roundabout membership.
//
// Complexity: O(K) over the number of known keys; lists are short.
func Parse(raw Tags, opts ...Option) (core.Edge, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var e core.Edge
	if err := checkOrphans(raw); err != nil {
		return e, err
	}

	for _, src := range nameSources {
		e.Names = e.Names.AppendUnique(aligned(raw, src, cfg.Alphabets)...)
	}
	for _, src := range signSources {
		e.Signs.Add(src.category, aligned(raw, src, cfg.Alphabets)...)
	}

	e.Class, e.Use = parseHighway(raw["highway"])
	switch raw["junction"] {
	case "roundabout", "circular":
		e.Roundabout = true
	}

	return e, nil
}

// aligned splits the attribute of src and zips it with the first pronunciation
// sibling found in alphabet preference order. Positions without a matching
// pronunciation keep plain text.
func aligned(raw Tags, src source, alphabets []core.Alphabet) core.NamedTexts {
	texts := split(raw[src.key])
	if len(texts) == 0 {
		return nil
	}

	var (
		prons    []string
		alphabet core.Alphabet
	)
	for _, a := range alphabets {
		if p := split(raw[src.key+pronunciationSuffix+alphabetSuffix[a]]); len(p) > 0 {
			prons, alphabet = p, a
			break
		}
	}

	out := make(core.NamedTexts, 0, len(texts))
	for i, text := range texts {
		if text == "" {
			continue
		}
		nt := core.NamedText{Text: text, RouteNumber: src.routeNumber}
		if i < len(prons) && prons[i] != "" {
			nt.Pronunciation = &core.Pronunciation{Alphabet: alphabet, Value: prons[i]}
		}
		out = append(out, nt)
	}

	return out
}

// split returns the trimmed, NFC-normalised items of a ';'-separated value.
// Empty items are kept as "" so positions stay aligned; an empty value yields nil.
func split(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, listSeparator)
	for i, p := range parts {
		parts[i] = norm.NFC.String(strings.TrimSpace(p))
	}

	return parts
}

// checkOrphans reports a pronunciation attribute of a known key whose base
// attribute is absent or empty. Keys are visited in sorted order so the error
// is deterministic.
func checkOrphans(raw Tags) error {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		idx := strings.Index(k, pronunciationSuffix)
		if idx <= 0 || strings.TrimSpace(raw[k]) == "" {
			continue
		}
		base := k[:idx]
		if !known(base) {
			continue
		}
		if strings.TrimSpace(raw[base]) == "" {
			return fmt.Errorf("%w: %q has no %q attribute to align with", core.ErrMalformedInput, k, base)
		}
	}

	return nil
}

// known reports whether key is one of the name or sign keys.
func known(key string) bool {
	for _, src := range nameSources {
		if src.key == key {
			return true
		}
	}
	for _, src := range signSources {
		if src.key == key {
			return true
		}
	}

	return false
}

// parseHighway maps a highway value to class and use.
func parseHighway(v string) (core.RoadClass, core.Use) {
	base, link := strings.CutSuffix(v, "_link")
	class, ok := highwayClass[base]
	if !ok {
		class = core.ClassOther
	}
	if link {
		return class, core.UseRamp
	}

	return class, core.UseRoad
}
