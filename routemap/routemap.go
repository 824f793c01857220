package routemap

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/katalvlaran/lvguide/core"
	"github.com/katalvlaran/lvguide/tags"
	"github.com/katalvlaran/lvguide/turn"
)

// Map is a parsed ASCII road map. Immutable after New.
type Map struct {
	nodes map[rune]point
	grid  float64
	ways  []Way
	parse []tags.Option
}

// New parses ascii and binds ways to its nodes. gridMeters is the distance
// between two adjacent characters. opts are passed to tags.Parse.
//
// Complexity: O(len(ascii) + Σ len(way.Nodes)).
func New(ascii string, gridMeters float64, ways []Way, opts ...tags.Option) (*Map, error) {
	if gridMeters <= 0 {
		return nil, fmt.Errorf("%w: grid size %v must be positive", ErrBadMap, gridMeters)
	}

	m := &Map{nodes: make(map[rune]point), grid: gridMeters, ways: ways, parse: opts}
	for y, line := range strings.Split(ascii, "\n") {
		for x, r := range []rune(line) {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				continue
			}
			if _, dup := m.nodes[r]; dup {
				return nil, fmt.Errorf("%w: node %q drawn twice", ErrBadMap, r)
			}
			m.nodes[r] = point{x: x, y: y}
		}
	}

	for _, w := range ways {
		if len([]rune(w.Nodes)) < 2 {
			return nil, fmt.Errorf("%w: way %q needs at least two nodes", ErrBadMap, w.Nodes)
		}
		for _, r := range w.Nodes {
			if _, ok := m.nodes[r]; !ok {
				return nil, fmt.Errorf("%w: way %q uses node %q not on the map", ErrBadMap, w.Nodes, r)
			}
		}
	}

	return m, nil
}

// Edges returns the edge sequence along path, one edge per consecutive node
// pair.
//
// Steps:
//  1. Resolve each pair to a way that joins the nodes directly.
//  2. Parse the way tags; derive heading, length and speed.
//  3. Classify the transition from the previous edge.
func (m *Map) Edges(path string) ([]core.Edge, error) {
	nodes := []rune(path)
	if len(nodes) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrShortPath, path)
	}
	for _, r := range nodes {
		if _, ok := m.nodes[r]; !ok {
			return nil, fmt.Errorf("%w: %q in path %q", ErrUnknownNode, r, path)
		}
	}

	edges := make([]core.Edge, 0, len(nodes)-1)
	for i := 0; i+1 < len(nodes); i++ {
		from, to := nodes[i], nodes[i+1]
		w, err := m.wayBetween(from, to)
		if err != nil {
			return nil, err
		}
		e, err := tags.Parse(w.Tags, m.parse...)
		if err != nil {
			return nil, fmt.Errorf("routemap: way %q: %w", w.Nodes, err)
		}

		a, b := m.nodes[from], m.nodes[to]
		dx, dy := float64(b.x-a.x), float64(b.y-a.y)
		e.BeginHeading = heading(dx, dy)
		e.Length = math.Hypot(dx, dy) * m.grid
		e.Speed = speeds[e.Class]
		if e.IsRamp() {
			e.Speed = rampSpeed
		}
		if i > 0 {
			e.TurnDegree = turn.Degree(edges[i-1].BeginHeading, e.BeginHeading)
			e.Turn = turn.Classify(e.TurnDegree)
		}
		edges = append(edges, e)
	}

	return edges, nil
}

// wayBetween finds the first way where from and to are adjacent. A way
// joining them only against its one-way direction yields ErrOneway.
func (m *Map) wayBetween(from, to rune) (*Way, error) {
	blocked := false
	for i := range m.ways {
		w := &m.ways[i]
		nodes := []rune(w.Nodes)
		for j := 0; j+1 < len(nodes); j++ {
			switch {
			case nodes[j] == from && nodes[j+1] == to:
				return w, nil
			case nodes[j] == to && nodes[j+1] == from:
				if w.Tags["oneway"] != "yes" {
					return w, nil
				}
				blocked = true
			}
		}
	}
	if blocked {
		return nil, fmt.Errorf("%w: %c→%c", ErrOneway, from, to)
	}

	return nil, fmt.Errorf("%w: %c→%c", ErrNoWay, from, to)
}

// heading converts a grid delta to whole degrees clockwise from north.
func heading(dx, dy float64) int {
	deg := math.Atan2(dx, -dy) * 180 / math.Pi

	return turn.Degree(0, int(math.Round(deg)))
}
