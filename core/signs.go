// SPDX-License-Identifier: MIT
//
// File: signs.go
// Role: Guide-sign categories and the per-category Signs collection.

package core

// SignCategory is a bucket of a highway guide sign.
type SignCategory uint8

const (
	// SignExitNumber holds exit numbers (junction:ref).
	SignExitNumber SignCategory = iota
	// SignExitBranch holds the roads you turn onto.
	SignExitBranch
	// SignExitToward holds destination places.
	SignExitToward
	// SignExitName holds the name of a named junction.
	SignExitName
	// SignExitBranchTo holds branch roads that belong to the junction reached
	// after the next one.
	SignExitBranchTo
	// SignExitTowardTo holds destinations that belong to the junction reached
	// after the next one.
	SignExitTowardTo

	// SignCategoryCount is the number of sign categories.
	SignCategoryCount = int(SignExitTowardTo) + 1
)

// PrimaryCategories lists the categories surfaced to instructions, in
// presentation order.
var PrimaryCategories = [...]SignCategory{SignExitNumber, SignExitBranch, SignExitToward, SignExitName}

// IsTo reports whether c is a "to"-qualified category.
func (c SignCategory) IsTo() bool {
	return c == SignExitBranchTo || c == SignExitTowardTo
}

// Primary maps a "to"-qualified category to its primary sibling. Primary
// categories map to themselves.
func (c SignCategory) Primary() SignCategory {
	switch c {
	case SignExitBranchTo:
		return SignExitBranch
	case SignExitTowardTo:
		return SignExitToward
	default:
		return c
	}
}

// String returns the snake_case category name.
func (c SignCategory) String() string {
	switch c {
	case SignExitNumber:
		return "exit_number"
	case SignExitBranch:
		return "exit_branch"
	case SignExitToward:
		return "exit_toward"
	case SignExitName:
		return "exit_name"
	case SignExitBranchTo:
		return "exit_branch_to"
	case SignExitTowardTo:
		return "exit_toward_to"
	default:
		return "unknown"
	}
}

// Signs holds the ordered entries of every sign category.
// The zero value is empty and ready to use.
type Signs [SignCategoryCount]NamedTexts

// Add appends entries to category c, suppressing texts already present in c.
func (s *Signs) Add(c SignCategory, items ...NamedText) {
	s[c] = s[c].AppendUnique(items...)
}

// Get returns the entries of category c.
func (s Signs) Get(c SignCategory) NamedTexts {
	return s[c]
}

// IsEmpty reports whether no category holds an entry.
func (s Signs) IsEmpty() bool {
	for _, l := range s {
		if len(l) > 0 {
			return false
		}
	}

	return true
}

// HasPrimary reports whether any primary category holds an entry.
func (s Signs) HasPrimary() bool {
	for _, c := range PrimaryCategories {
		if len(s[c]) > 0 {
			return true
		}
	}

	return false
}

// HasTo reports whether any "to"-qualified category holds an entry.
func (s Signs) HasTo() bool {
	return len(s[SignExitBranchTo]) > 0 || len(s[SignExitTowardTo]) > 0
}

// Count returns the total number of entries across categories.
func (s Signs) Count() int {
	n := 0
	for _, l := range s {
		n += len(l)
	}

	return n
}

// Clone returns a copy whose lists can be extended without aliasing s.
func (s Signs) Clone() Signs {
	var out Signs
	for i, l := range s {
		out[i] = l.Clone()
	}

	return out
}
