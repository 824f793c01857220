package narrative

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/message"

	"github.com/katalvlaran/lvguide/core"
	"github.com/katalvlaran/lvguide/maneuver"
	"github.com/katalvlaran/lvguide/markup"
	"github.com/katalvlaran/lvguide/phrase"
	"github.com/katalvlaran/lvguide/turn"
)

// Builder produces Instructions from maneuvers.
type Builder struct {
	dict      *phrase.Dictionary
	formatter *markup.Formatter
	options   Options
}

// New returns a Builder over dict and formatter. A nil dict selects
// phrase.Default(); a nil formatter disables markup.
func New(dict *phrase.Dictionary, formatter *markup.Formatter, opts ...Option) *Builder {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if dict == nil {
		dict = phrase.Default()
	}

	return &Builder{dict: dict, formatter: formatter, options: cfg}
}

// element is one bindable list of a template.
type element struct {
	shape phrase.Shape
	token string
	items core.NamedTexts
}

// signElements in presentation order.
var signElements = [...]struct {
	shape    phrase.Shape
	token    string
	category core.SignCategory
}{
	{phrase.ShapeNumber, phrase.TokenNumber, core.SignExitNumber},
	{phrase.ShapeBranch, phrase.TokenBranchSign, core.SignExitBranch},
	{phrase.ShapeToward, phrase.TokenTowardSign, core.SignExitToward},
	{phrase.ShapeName, phrase.TokenNameSign, core.SignExitName},
}

// request is the per-maneuver state shared by the five fields.
type request struct {
	index   int
	group   phrase.Group
	fixed   phrase.Values // values that do not depend on the field
	shape   phrase.Shape  // ShapeOrdinal when an ordinal is bound
	signs   []element     // sign elements in presentation order
	streets []element     // the street-name element, if any
	signed  bool
}

// Build returns one Instruction per maneuver, index-aligned.
func (b *Builder) Build(ms []maneuver.Maneuver) []Instruction {
	printer := message.NewPrinter(b.dict.Language())
	out := make([]Instruction, len(ms))
	for i := range ms {
		r := b.prepare(ms, i)
		out[i] = Instruction{
			Instruction:    b.choose(r, phrase.VariantInstruction, r.full(), b.options.InstructionMaxElements, false, nil),
			VerbalSuccinct: b.choose(r, phrase.VariantVerbalSuccinct, r.succinct(), 1, true, nil),
			VerbalAlert:    b.choose(r, phrase.VariantVerbalAlert, r.alert(), b.options.AlertMaxElements, true, nil),
			VerbalPre:      b.choose(r, phrase.VariantVerbalPre, r.full(), b.options.PreMaxElements, true, nil),
		}
		if i+1 < len(ms) && ms[i].Length >= 1 {
			out[i].VerbalPost = b.post(r, formatLength(printer, b.dict.UnitPhrases(b.options.Units), b.options.Units, ms[i].Length))
		}
	}

	return out
}

// prepare computes the group, the bound elements and the fixed values of
// maneuver i.
func (b *Builder) prepare(ms []maneuver.Maneuver, i int) request {
	m := &ms[i]
	r := request{
		index: i,
		group: b.groupOf(m.Kind),
		fixed: phrase.Values{
			phrase.TokenRelativeDirection: b.dict.Relative(m.Kind.IsLeft()),
			phrase.TokenCardinalDirection: b.dict.Cardinal(turn.CardinalOf(m.BeginHeading)),
		},
	}
	if names := b.streetNames(ms, i); len(names) > 0 {
		r.streets = []element{{shape: phrase.ShapeStreet, token: phrase.TokenStreetNames, items: names}}
	}

	// 1. Signs win over street names where the group can phrase them.
	if signCapable(r.group) && m.Signs.HasPrimary() {
		r.signed = true
		for _, se := range signElements {
			if l := m.Signs.Get(se.category); len(l) > 0 {
				r.signs = append(r.signs, element{shape: se.shape, token: se.token, items: l})
			}
		}
		if len(r.streets) > 0 {
			b.options.Logger.Debug("signs preferred over street names",
				zap.Int("maneuver", i),
				zap.Strings("street_names", m.StreetNames.Texts()))
		}
	}

	// 2. Roundabout entry binds the exit ordinal.
	if m.Kind == maneuver.KindRoundaboutEnter {
		if ord, ok := b.dict.Ordinal(m.RoundaboutExitCount); ok {
			r.shape = phrase.ShapeOrdinal
			r.fixed[phrase.TokenOrdinalValue] = ord
		}
	}

	return r
}

// streetNames returns the names to phrase for maneuver i. Roundabout entry
// names the street of the exit that follows it.
func (b *Builder) streetNames(ms []maneuver.Maneuver, i int) core.NamedTexts {
	if ms[i].Kind != maneuver.KindRoundaboutEnter {
		return ms[i].StreetNames
	}
	if i+1 < len(ms) && ms[i+1].Kind == maneuver.KindRoundaboutExit {
		return ms[i+1].StreetNames
	}

	return nil
}

// The candidate methods list the element sets to try for a field, most
// specific first; the last candidate is always the bare phrase (nil).

// full tries every subset of the signs, then the street names.
func (r request) full() [][]element {
	var out [][]element
	if r.signed {
		for size := len(r.signs); size > 0; size-- {
			out = combine(out, r.signs, size, 0, nil)
		}
	}
	if len(r.streets) > 0 {
		out = append(out, r.streets)
	}

	return append(out, nil)
}

// alert binds a single element: each sign in turn, then the street names.
func (r request) alert() [][]element {
	var out [][]element
	if r.signed {
		for i := range r.signs {
			out = append(out, r.signs[i:i+1])
		}
	}
	if len(r.streets) > 0 {
		out = append(out, r.streets)
	}

	return append(out, nil)
}

// succinct keeps only the exit number of a signed maneuver.
func (r request) succinct() [][]element {
	if r.signed && len(r.signs) > 0 && r.signs[0].shape == phrase.ShapeNumber {
		return [][]element{r.signs[:1], nil}
	}

	return [][]element{nil}
}

// combine appends the size-element subsets of elems to out, keeping
// presentation order; subsets holding earlier elements come first.
func combine(out [][]element, elems []element, size, start int, cur []element) [][]element {
	if len(cur) == size {
		return append(out, append([]element(nil), cur...))
	}
	for i := start; i <= len(elems)-(size-len(cur)); i++ {
		out = combine(out, elems, size, i+1, append(cur, elems[i]))
	}

	return out
}

// post renders the post-transition phrase, preferring a street-shaped
// template and falling back to the bare one. Ordinals are never bound.
func (b *Builder) post(r request, length string) string {
	r.shape = phrase.ShapeBare
	cands := [][]element{nil}
	if !r.signed && len(r.streets) > 0 {
		cands = [][]element{r.streets, nil}
	}

	return b.choose(r, phrase.VariantVerbalPost, cands, b.options.PostMaxElements, true, phrase.Values{phrase.TokenLength: length})
}

// choose renders the first candidate whose template exists. Falling back from
// a sign-shaped key is logged; a field with no template at all yields "".
func (b *Builder) choose(r request, variant phrase.Variant, cands [][]element, limit int, verbal bool, extra phrase.Values) string {
	var primary phrase.Key
	for n, elems := range cands {
		k, values := b.bind(r, variant, elems, limit, verbal)
		if n == 0 {
			primary = k
		}
		t, err := b.dict.Lookup(k)
		if err != nil {
			continue
		}
		if n > 0 && signShaped(cands[0]) {
			b.options.Logger.Debug("sign phrase fallback",
				zap.Stringer("key", primary),
				zap.Stringer("selected", k),
				zap.Int("maneuver", r.index))
		}
		for tok, v := range extra {
			values[tok] = v
		}
		return phrase.Substitute(t, values)
	}

	b.options.Logger.Debug("missing phrase template",
		zap.Stringer("key", primary),
		zap.Int("maneuver", r.index))

	return ""
}

// signShaped reports whether elems binds any sign element.
func signShaped(elems []element) bool {
	for _, e := range elems {
		if e.shape != phrase.ShapeStreet {
			return true
		}
	}

	return false
}

// bind computes the key of variant and the substitution values of elems.
func (b *Builder) bind(r request, variant phrase.Variant, elems []element, limit int, verbal bool) (phrase.Key, phrase.Values) {
	values := make(phrase.Values, len(r.fixed)+len(elems))
	for tok, v := range r.fixed {
		values[tok] = v
	}
	k := phrase.Key{Group: r.group, Variant: variant, Shape: r.shape}
	longest := 0
	for _, e := range elems {
		items := e.items.Truncate(limit)
		k.Shape |= e.shape
		longest = max(longest, len(items))
		values[e.token] = b.join(items, verbal)
	}
	if k.Shape != phrase.ShapeBare {
		k.Count = phrase.CountOf(longest)
	}

	return k, values
}

// join renders a list: "/" without markup for written text, ", " with
// per-element markup for verbal text.
func (b *Builder) join(items core.NamedTexts, verbal bool) string {
	if !verbal {
		return strings.Join(items.Texts(), "/")
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = b.formatter.Format(it)
	}

	return strings.Join(parts, ", ")
}

// groupOf maps a maneuver kind onto its phrase group.
func (b *Builder) groupOf(k maneuver.Kind) phrase.Group {
	switch k {
	case maneuver.KindStart:
		return phrase.GroupStart
	case maneuver.KindSlightRight, maneuver.KindSlightLeft:
		return phrase.GroupBear
	case maneuver.KindRight, maneuver.KindLeft:
		return phrase.GroupTurn
	case maneuver.KindSharpRight, maneuver.KindSharpLeft:
		return phrase.GroupSharp
	case maneuver.KindUturnRight, maneuver.KindUturnLeft:
		return phrase.GroupUturn
	case maneuver.KindRampStraight:
		return phrase.GroupRampStraight
	case maneuver.KindRampRight, maneuver.KindRampLeft:
		return phrase.GroupRamp
	case maneuver.KindExitRight, maneuver.KindExitLeft:
		if (k == maneuver.KindExitRight) == b.options.DriveOnRight {
			return phrase.GroupExit
		}
		return phrase.GroupExitOpposite
	case maneuver.KindMerge:
		return phrase.GroupMerge
	case maneuver.KindRoundaboutEnter:
		return phrase.GroupEnterRoundabout
	case maneuver.KindRoundaboutExit:
		return phrase.GroupExitRoundabout
	case maneuver.KindDestination:
		return phrase.GroupDestination
	}

	return phrase.GroupContinue
}

// signCapable reports whether a group has sign-shaped phrases.
func signCapable(g phrase.Group) bool {
	switch g {
	case phrase.GroupStart, phrase.GroupDestination, phrase.GroupEnterRoundabout, phrase.GroupExitRoundabout:
		return false
	}

	return true
}
