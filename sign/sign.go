package sign

import (
	"sort"

	"github.com/katalvlaran/lvguide/core"
)

// Aggregate returns the consolidated sign set of edges.
// Complexity: O(N·M) where M is the longest category list (dedup scan).
func Aggregate(edges []core.Edge) core.Signs {
	var out core.Signs
	for i := range edges {
		for c := 0; c < core.SignCategoryCount; c++ {
			out.Add(core.SignCategory(c), edges[i].Signs[c]...)
		}
	}
	routeNumbersFirst(out[core.SignExitBranch])
	routeNumbersFirst(out[core.SignExitBranchTo])

	return out
}

// routeNumbersFirst stably moves route-number entries ahead of names in place.
func routeNumbersFirst(l core.NamedTexts) {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].RouteNumber && !l[j].RouteNumber
	})
}

// Appears reports whether next carries a sign entry that prev does not have in
// the same category. A sign that appears forces a maneuver boundary.
func Appears(prev, next core.Signs) bool {
	for c := 0; c < core.SignCategoryCount; c++ {
		for _, nt := range next[c] {
			if !prev[c].Contains(nt.Text) {
				return true
			}
		}
	}

	return false
}
