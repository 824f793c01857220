package maneuver

import (
	"fmt"

	"github.com/katalvlaran/lvguide/core"
	"github.com/katalvlaran/lvguide/sign"
	"github.com/katalvlaran/lvguide/turn"
)

// Build segments the ordered edges of one leg into maneuvers.
//
// The result always starts with a KindStart maneuver at edge 0 and ends with a
// KindDestination maneuver over the empty range [n, n); the ranges partition
// [0, n) contiguously in increasing order.
//
// A maneuver is closed before edge i+1 when any of these hold for the pair
// (edges[i], edges[i+1]):
//  1. the pair enters or leaves a roundabout (edges inside one never split);
//  2. the turn category of the transition is not straight;
//  3. the pair enters or leaves a ramp;
//  4. a sign entry appears on edge i+1 that edge i does not carry;
//  5. both edges are named and share no name.
//
// Returns core.ErrMalformedInput for an empty edge sequence.
//
// Complexity: O(N·M) for N edges and name/sign lists of length M.
func Build(edges []core.Edge, opts ...Option) ([]Maneuver, error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: empty edge sequence", core.ErrMalformedInput)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &builder{edges: edges, options: cfg}
	b.open(0, KindStart)
	for i := 0; i+1 < len(edges); i++ {
		prev, next := &edges[i], &edges[i+1]
		if !boundary(prev, next) {
			continue
		}
		b.close(i + 1)
		b.open(i+1, b.kindOf(prev, next))
	}
	b.close(len(edges))

	n := len(edges)
	b.out = append(b.out, Maneuver{
		Begin:        n,
		End:          n,
		Kind:         KindDestination,
		BeginHeading: edges[n-1].BeginHeading,
	})

	return b.out, nil
}

// builder is the accumulator state of one Build call.
type builder struct {
	edges   []core.Edge
	options Options
	out     []Maneuver
	cur     Maneuver
}

// open starts the accumulator at edge begin.
func (b *builder) open(begin int, kind Kind) {
	first := &b.edges[begin]
	b.cur = Maneuver{
		Begin:        begin,
		Kind:         kind,
		BeginHeading: first.BeginHeading,
	}
	if kind != KindStart {
		b.cur.Turn = first.Turn
		b.cur.TurnDegree = first.TurnDegree
	}
}

// close finalises the accumulator over [cur.Begin, end) and appends it.
func (b *builder) close(end int) {
	m := b.cur
	m.End = end
	span := b.edges[m.Begin:end]

	for i := range span {
		m.StreetNames = m.StreetNames.AppendUnique(span[i].Names...)
		m.Length += span[i].Length
		m.Time += turn.Time(span[i].Length/1000, span[i].Speed)
	}
	m.Signs = surfaceTo(sign.Aggregate(span))
	if m.Kind == KindRoundaboutEnter {
		// One exit per roundabout edge walked.
		m.RoundaboutExitCount = len(span)
	}

	b.out = append(b.out, m)
}

// boundary reports whether the transition prev → next starts a new maneuver.
func boundary(prev, next *core.Edge) bool {
	switch {
	case prev.Roundabout && next.Roundabout:
		return false
	case prev.Roundabout != next.Roundabout:
		return true
	case next.Turn != core.TurnStraight:
		return true
	case prev.IsRamp() != next.IsRamp():
		return true
	case sign.Appears(prev.Signs, next.Signs):
		return true
	case len(prev.Names) > 0 && len(next.Names) > 0 && !prev.Names.Shares(next.Names):
		return true
	}

	return false
}

// kindOf classifies the maneuver that begins with the transition prev → next.
func (b *builder) kindOf(prev, next *core.Edge) Kind {
	switch {
	case next.Roundabout && !prev.Roundabout:
		return KindRoundaboutEnter
	case prev.Roundabout && !next.Roundabout:
		return KindRoundaboutExit
	case next.IsRamp() && prev.IsHighway():
		if next.Turn.IsLeft() {
			return KindExitLeft
		}
		return KindExitRight
	case next.IsRamp():
		switch {
		case next.Turn.IsRight():
			return KindRampRight
		case next.Turn.IsLeft():
			return KindRampLeft
		}
		return KindRampStraight
	case prev.IsRamp() && next.IsHighway():
		return KindMerge
	}

	return b.turnKind(next.Turn)
}

// turnKind maps a turn category onto a plain turn kind.
func (b *builder) turnKind(t core.TurnCategory) Kind {
	switch t {
	case core.TurnSlightRight:
		return KindSlightRight
	case core.TurnRight:
		return KindRight
	case core.TurnSharpRight:
		return KindSharpRight
	case core.TurnReverse:
		if b.options.DriveOnRight {
			return KindUturnLeft
		}
		return KindUturnRight
	case core.TurnSharpLeft:
		return KindSharpLeft
	case core.TurnLeft:
		return KindLeft
	case core.TurnSlightLeft:
		return KindSlightLeft
	}

	return KindContinue
}

// surfaceTo exposes "to" entries as exit_toward when the maneuver's sign does
// not describe its own junction: no primary branch and no primary toward
// entries exist. Branch-to entries precede toward-to entries. Otherwise the
// "to" entries stay in their own categories.
func surfaceTo(s core.Signs) core.Signs {
	if !s.HasTo() || len(s[core.SignExitBranch]) > 0 || len(s[core.SignExitToward]) > 0 {
		return s
	}
	s.Add(core.SignExitToward, s[core.SignExitBranchTo]...)
	s.Add(core.SignExitToward, s[core.SignExitTowardTo]...)
	s[core.SignExitBranchTo] = nil
	s[core.SignExitTowardTo] = nil

	return s
}
