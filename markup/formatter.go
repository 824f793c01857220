package markup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/lvguide/core"
)

// positional matches any %N% token of a phoneme format.
var positional = regexp.MustCompile(`%[0-9]+%`)

// Formatter is a compiled phoneme format.
type Formatter struct {
	enabled bool
	quote   rune
	// format pieces around the two placeholders; textFirst records their order.
	head, mid, tail string
	textFirst       bool
}

// New validates cfg and compiles its format. Quote substitution happens here,
// once, never per call.
func New(cfg Config) (*Formatter, error) {
	format := cfg.PhonemeFormat
	if format == "" {
		format = DefaultPhonemeFormat
	}
	quote := cfg.Quote
	if quote == "" {
		quote = DefaultQuote
	}
	if utf8.RuneCountInString(quote) != 1 {
		return nil, fmt.Errorf("%w: quote %q must be a single character", ErrConfiguration, quote)
	}
	q, _ := utf8.DecodeRuneInString(quote)

	// 1. Check the positional tokens: exactly one %1% and one %2%.
	var texts, prons int
	for _, tok := range positional.FindAllString(format, -1) {
		switch tok {
		case textPlaceholder:
			texts++
		case pronunciationPlaceholder:
			prons++
		default:
			return nil, fmt.Errorf("%w: unexpected placeholder %s in %q", ErrConfiguration, tok, format)
		}
	}
	if texts != 1 || prons != 1 {
		return nil, fmt.Errorf("%w: %q needs exactly one %s and one %s", ErrConfiguration, format, textPlaceholder, pronunciationPlaceholder)
	}

	// 2. Substitute the quote character.
	format = strings.ReplaceAll(format, QuotePlaceholder, quote)

	// 3. Split around the placeholders.
	f := &Formatter{enabled: cfg.Enabled, quote: q}
	ti, pi := strings.Index(format, textPlaceholder), strings.Index(format, pronunciationPlaceholder)
	first, second := textPlaceholder, pronunciationPlaceholder
	f.textFirst = ti < pi
	if !f.textFirst {
		first, second = second, first
	}
	f.head, f.tail, _ = strings.Cut(format, first)
	f.mid, f.tail, _ = strings.Cut(f.tail, second)

	return f, nil
}

// Enabled reports whether f renders markup. A nil Formatter is disabled.
func (f *Formatter) Enabled() bool {
	return f != nil && f.enabled
}

// Render binds text and p.Value to the format. Text is returned unchanged when
// f is disabled or p carries no value.
func (f *Formatter) Render(text string, p *core.Pronunciation) string {
	if !f.Enabled() || p == nil || p.Value == "" {
		return text
	}
	a, b := text, p.Value
	if !f.textFirst {
		a, b = b, a
	}

	var sb strings.Builder
	sb.Grow(len(f.head) + len(f.mid) + len(f.tail) + len(a) + len(b) + 16)
	for _, s := range [...]string{f.head, a, f.mid, b, f.tail} {
		f.escapeTo(&sb, s)
	}

	return sb.String()
}

// Format renders a NamedText.
func (f *Formatter) Format(n core.NamedText) string {
	return f.Render(n.Text, n.Pronunciation)
}

// escapeTo writes s with the quote character entity-escaped.
func (f *Formatter) escapeTo(sb *strings.Builder, s string) {
	for _, r := range s {
		if r != f.quote {
			sb.WriteRune(r)
			continue
		}
		switch r {
		case '"':
			sb.WriteString("&quot;")
		case '\'':
			sb.WriteString("&apos;")
		default:
			sb.WriteString("&#" + strconv.Itoa(int(r)) + ";")
		}
	}
}
