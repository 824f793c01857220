package phrase

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvguide/turn"
)

//go:embed locales/en-US.yaml
var enUS []byte

// tokenPattern matches any placeholder-looking token of a template.
var tokenPattern = regexp.MustCompile(`<[A-Z_]+>`)

// Dictionary is a parsed phrase dictionary.
type Dictionary struct {
	language language.Tag
	phrases  map[Key]string
	relative map[string]string
	cardinal map[string]string
	ordinals []string
	units    map[Units]UnitPhrases
}

// document is the YAML layout of a dictionary.
type document struct {
	Language           string                                  `yaml:"language"`
	Phrases            map[string]map[string]map[string]string `yaml:"phrases"`
	RelativeDirections map[string]string                       `yaml:"relative_directions"`
	CardinalDirections map[string]string                       `yaml:"cardinal_directions"`
	Ordinals           []string                                `yaml:"ordinals"`
	Units              map[string]UnitPhrases                  `yaml:"units"`
}

// Default returns the embedded en-US dictionary.
func Default() *Dictionary {
	d, err := Parse(enUS)
	if err != nil {
		// The embedded dictionary is covered by tests.
		panic(err)
	}

	return d
}

// LoadFile reads and parses the dictionary at path.
func LoadFile(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDictionary, err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML dictionary.
//
// Steps:
//  1. Decode strictly; unknown top-level fields are rejected.
//  2. Resolve every phrases.<group>.<variant>.<shape>[/count] path to a Key.
//  3. Check placeholders, direction words, ordinals and unit phrases.
func Parse(data []byte) (*Dictionary, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDictionary, err)
	}

	tag, err := language.Parse(doc.Language)
	if err != nil {
		return nil, fmt.Errorf("%w: language %q: %v", ErrBadDictionary, doc.Language, err)
	}
	d := &Dictionary{
		language: tag,
		phrases:  make(map[Key]string),
		relative: doc.RelativeDirections,
		cardinal: doc.CardinalDirections,
		ordinals: doc.Ordinals,
		units:    make(map[Units]UnitPhrases, 2),
	}

	for group, variants := range doc.Phrases {
		g, ok := lookupName(groupNames[:], group)
		if !ok {
			return nil, fmt.Errorf("%w: unknown group %q", ErrBadDictionary, group)
		}
		for variant, shapes := range variants {
			v, ok := lookupName(variantNames[:], variant)
			if !ok {
				return nil, fmt.Errorf("%w: unknown variant %q in %s", ErrBadDictionary, variant, group)
			}
			for path, template := range shapes {
				k, err := parseKey(Group(g), Variant(v), path)
				if err != nil {
					return nil, err
				}
				if err := checkTokens(template); err != nil {
					return nil, fmt.Errorf("%w (%s)", err, k)
				}
				d.phrases[k] = template
			}
		}
	}

	for _, side := range []string{"left", "right"} {
		if d.relative[side] == "" {
			return nil, fmt.Errorf("%w: relative direction %q missing", ErrBadDictionary, side)
		}
	}
	for c := turn.North; c <= turn.NorthWest; c++ {
		if d.cardinal[c.String()] == "" {
			return nil, fmt.Errorf("%w: cardinal direction %q missing", ErrBadDictionary, c)
		}
	}
	for _, u := range []Units{UnitsMetric, UnitsImperial} {
		p, ok := doc.Units[u.String()]
		if !ok || p.LessThanTen == "" || p.Short == "" || p.One == "" || p.Long == "" {
			return nil, fmt.Errorf("%w: %s unit phrases incomplete", ErrBadDictionary, u)
		}
		if !strings.Contains(p.Short, TokenDistance) || !strings.Contains(p.Long, TokenDistance) {
			return nil, fmt.Errorf("%w: %s unit phrases need %s", ErrBadDictionary, u, TokenDistance)
		}
		d.units[u] = p
	}

	return d, nil
}

func lookupName(names []string, name string) (int, bool) {
	for i, n := range names {
		if n == name {
			return i, true
		}
	}

	return 0, false
}

// parseKey resolves "<shape>[/one|/many]" under a group and variant.
func parseKey(g Group, v Variant, path string) (Key, error) {
	k := Key{Group: g, Variant: v}
	shape, count, hasCount := strings.Cut(path, "/")
	s, err := parseShape(shape)
	if err != nil {
		return k, fmt.Errorf("%w in %s.%s", err, g, v)
	}
	k.Shape = s
	if hasCount {
		switch count {
		case "one":
			k.Count = CountOne
		case "many":
			k.Count = CountMany
		default:
			return k, fmt.Errorf("%w: unknown count %q in %s.%s.%s", ErrBadDictionary, count, g, v, shape)
		}
	}

	return k, nil
}

func checkTokens(template string) error {
	for _, tok := range tokenPattern.FindAllString(template, -1) {
		if !knownTokens[tok] {
			return fmt.Errorf("%w: unknown placeholder %s", ErrBadDictionary, tok)
		}
	}

	return nil
}

// Language returns the dictionary language, used for number formatting.
func (d *Dictionary) Language() language.Tag {
	return d.language
}

// Lookup returns the template for k, falling back from an exact Count to the
// count-agnostic entry.
func (d *Dictionary) Lookup(k Key) (string, error) {
	if t, ok := d.phrases[k]; ok {
		return t, nil
	}
	if k.Count != CountAny {
		agnostic := k
		agnostic.Count = CountAny
		if t, ok := d.phrases[agnostic]; ok {
			return t, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrMissingTemplate, k)
}

// Keys returns every registered key in String order.
func (d *Dictionary) Keys() []Key {
	out := make([]Key, 0, len(d.phrases))
	for k := range d.phrases {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out
}

// Relative returns the word for the left or right side.
func (d *Dictionary) Relative(left bool) string {
	if left {
		return d.relative["left"]
	}

	return d.relative["right"]
}

// Cardinal returns the word for a compass direction.
func (d *Dictionary) Cardinal(c turn.Cardinal) string {
	return d.cardinal[c.String()]
}

// Ordinal returns the word for the n-th position, 1-based.
func (d *Dictionary) Ordinal(n int) (string, bool) {
	if n < 1 || n > len(d.ordinals) {
		return "", false
	}

	return d.ordinals[n-1], true
}

// UnitPhrases returns the length phrases of u.
func (d *Dictionary) UnitPhrases(u Units) UnitPhrases {
	return d.units[u]
}
