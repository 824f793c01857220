// SPDX-License-Identifier: MIT
//
// File: names.go
// Role: NamedText, Pronunciation and the ordered, de-duplicated NamedTexts list.

package core

// NamedText is the unit of street names, sign entries and destinations.
type NamedText struct {
	// Text is the literal, displayable value.
	Text string

	// Pronunciation is the phonetic sibling of Text; nil when the source tag had none.
	Pronunciation *Pronunciation

	// RouteNumber marks reference identifiers (ref, int_ref, junction:ref) as opposed
	// to descriptive names. Sign aggregation orders route numbers first.
	RouteNumber bool
}

// Plain returns a NamedText without pronunciation.
func Plain(text string) NamedText {
	return NamedText{Text: text}
}

// Pronounced returns a NamedText carrying an IPA pronunciation.
func Pronounced(text, ipa string) NamedText {
	return NamedText{Text: text, Pronunciation: &Pronunciation{Alphabet: AlphabetIPA, Value: ipa}}
}

// HasPronunciation reports whether a non-empty pronunciation is attached.
func (n NamedText) HasPronunciation() bool {
	return n.Pronunciation != nil && n.Pronunciation.Value != ""
}

// NamedTexts is an ordered list of NamedText.
type NamedTexts []NamedText

// Texts returns the literal texts in order.
func (l NamedTexts) Texts() []string {
	out := make([]string, len(l))
	for i, n := range l {
		out[i] = n.Text
	}

	return out
}

// Contains reports whether an entry with exactly this text exists.
// Complexity: O(len(l)).
func (l NamedTexts) Contains(text string) bool {
	for _, n := range l {
		if n.Text == text {
			return true
		}
	}

	return false
}

// Shares reports whether l and other have at least one text in common.
// Complexity: O(len(l)·len(other)); name lists are short.
func (l NamedTexts) Shares(other NamedTexts) bool {
	for _, n := range l {
		if other.Contains(n.Text) {
			return true
		}
	}

	return false
}

// AppendUnique appends items whose text is not yet present and returns the
// extended list. The first occurrence wins, pronunciation included.
func (l NamedTexts) AppendUnique(items ...NamedText) NamedTexts {
	for _, it := range items {
		if it.Text == "" || l.Contains(it.Text) {
			continue
		}
		l = append(l, it)
	}

	return l
}

// Truncate returns at most max leading entries; max <= 0 means no limit.
func (l NamedTexts) Truncate(max int) NamedTexts {
	if max <= 0 || len(l) <= max {
		return l
	}

	return l[:max]
}

// Clone returns an independent copy of the list. Pronunciation pointers are
// shared; they are never mutated after parsing.
func (l NamedTexts) Clone() NamedTexts {
	if l == nil {
		return nil
	}
	out := make(NamedTexts, len(l))
	copy(out, l)

	return out
}
