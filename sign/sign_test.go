package sign_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvguide/core"
	"github.com/katalvlaran/lvguide/sign"
)

func edgeWith(add func(s *core.Signs)) core.Edge {
	var e core.Edge
	add(&e.Signs)

	return e
}

func TestAggregate_FirstOccurrenceWins(t *testing.T) {
	first := edgeWith(func(s *core.Signs) {
		s.Add(core.SignExitToward, core.Pronounced("Granville", "ˈgɹænvɪl"), core.Plain("Lancaster"))
	})
	second := edgeWith(func(s *core.Signs) {
		s.Add(core.SignExitToward,
			core.Pronounced("Granville", "wrong"),
			core.Pronounced("Lancaster", "ˈlæŋkəstər"),
			core.Plain("Columbus"),
		)
		s.Add(core.SignExitNumber, core.Plain("126B"))
	})

	got := sign.Aggregate([]core.Edge{first, second})

	toward := got.Get(core.SignExitToward)
	require.Equal(t, []string{"Granville", "Lancaster", "Columbus"}, toward.Texts())
	assert.Equal(t, "ˈgɹænvɪl", toward[0].Pronunciation.Value)
	assert.Nil(t, toward[1].Pronunciation, "prior entry is authoritative even without pronunciation")
	assert.Equal(t, []string{"126B"}, got.Get(core.SignExitNumber).Texts())
}

func TestAggregate_RouteNumbersFirst(t *testing.T) {
	street := edgeWith(func(s *core.Signs) {
		s.Add(core.SignExitBranch, core.Plain("Lancaster Road"))
	})
	ref := edgeWith(func(s *core.Signs) {
		s.Add(core.SignExitBranch, core.NamedText{Text: "SR 37", RouteNumber: true})
		s.Add(core.SignExitBranch, core.Plain("Main Street"))
	})

	got := sign.Aggregate([]core.Edge{street, ref})
	assert.Equal(t, []string{"SR 37", "Lancaster Road", "Main Street"}, got.Get(core.SignExitBranch).Texts())
}

func TestAggregate_ToCategoriesStayApart(t *testing.T) {
	e := edgeWith(func(s *core.Signs) {
		s.Add(core.SignExitBranchTo, core.Plain("Main Street"), core.NamedText{Text: "I 80", RouteNumber: true})
		s.Add(core.SignExitBranch, core.Plain("Main Street"))
	})

	got := sign.Aggregate([]core.Edge{e})
	assert.Equal(t, []string{"I 80", "Main Street"}, got.Get(core.SignExitBranchTo).Texts())
	assert.Equal(t, []string{"Main Street"}, got.Get(core.SignExitBranch).Texts())
}

// TestAggregate_NoDuplicateTexts checks the dedup invariant over many edges.
func TestAggregate_NoDuplicateTexts(t *testing.T) {
	texts := []string{"A", "B", "A", "C", "B", "A"}
	edges := make([]core.Edge, len(texts))
	for i, txt := range texts {
		edges[i] = edgeWith(func(s *core.Signs) {
			for c := 0; c < core.SignCategoryCount; c++ {
				s.Add(core.SignCategory(c), core.Plain(txt), core.Plain("Z"))
			}
		})
	}

	got := sign.Aggregate(edges)
	for c := 0; c < core.SignCategoryCount; c++ {
		seen := map[string]bool{}
		for _, nt := range got[c] {
			require.False(t, seen[nt.Text], "duplicate %q in %s", nt.Text, core.SignCategory(c))
			seen[nt.Text] = true
		}
	}
	assert.Zero(t, sign.Aggregate(nil).Count())
}

func TestAppears(t *testing.T) {
	none := core.Signs{}
	exit := edgeWith(func(s *core.Signs) { s.Add(core.SignExitNumber, core.Plain("12")) }).Signs
	exitAndToward := edgeWith(func(s *core.Signs) {
		s.Add(core.SignExitNumber, core.Plain("12"))
		s.Add(core.SignExitToward, core.Plain("Dayton"))
	}).Signs

	assert.True(t, sign.Appears(none, exit))
	assert.False(t, sign.Appears(exit, exit))
	assert.False(t, sign.Appears(exit, none), "a sign that disappears is no new choice")
	assert.True(t, sign.Appears(exit, exitAndToward))
	assert.False(t, sign.Appears(exitAndToward, exit))
}
