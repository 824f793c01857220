package routemap

import (
	"container/heap"
	"fmt"
	"math"
	"sort"
	"strings"
)

// waypointSeparator splits a routed leg such as "A>D" or "A>C>F".
const waypointSeparator = ">"

// Route expands a waypoint list into the node path of the shortest drivable
// route through the waypoints, in order. Segments are joined without
// repeating the shared waypoint, so Route("A>D") can yield "ABCD".
//
// Cost is the geometric length of each hop; one-way ways are honoured.
// Ties are broken by node order so the result is deterministic.
//
// Returns ErrShortPath for fewer than two waypoints, ErrUnknownNode for a
// waypoint not on the map and ErrNoWay when a segment is unreachable.
func (m *Map) Route(waypoints string) (string, error) {
	stops := strings.Split(waypoints, waypointSeparator)
	if len(stops) < 2 {
		return "", fmt.Errorf("%w: %q", ErrShortPath, waypoints)
	}
	var nodes []rune
	for _, s := range stops {
		r := []rune(strings.TrimSpace(s))
		if len(r) != 1 {
			return "", fmt.Errorf("%w: waypoint %q in %q", ErrUnknownNode, s, waypoints)
		}
		if _, ok := m.nodes[r[0]]; !ok {
			return "", fmt.Errorf("%w: %q in %q", ErrUnknownNode, r[0], waypoints)
		}
		nodes = append(nodes, r[0])
	}

	adj := m.adjacency()
	path := []rune{nodes[0]}
	for i := 0; i+1 < len(nodes); i++ {
		seg, err := shortest(adj, nodes[i], nodes[i+1])
		if err != nil {
			return "", err
		}
		path = append(path, seg[1:]...)
	}

	return string(path), nil
}

// hop is a drivable node-to-node step with its cost in meters.
type hop struct {
	to   rune
	cost float64
}

// adjacency lists the drivable hops out of every node, sorted by target.
func (m *Map) adjacency() map[rune][]hop {
	adj := make(map[rune][]hop, len(m.nodes))
	add := func(from, to rune) {
		a, b := m.nodes[from], m.nodes[to]
		cost := math.Hypot(float64(b.x-a.x), float64(b.y-a.y)) * m.grid
		adj[from] = append(adj[from], hop{to: to, cost: cost})
	}
	for _, w := range m.ways {
		nodes := []rune(w.Nodes)
		for j := 0; j+1 < len(nodes); j++ {
			add(nodes[j], nodes[j+1])
			if w.Tags["oneway"] != "yes" {
				add(nodes[j+1], nodes[j])
			}
		}
	}
	for r := range adj {
		hops := adj[r]
		sort.Slice(hops, func(i, j int) bool { return hops[i].to < hops[j].to })
	}

	return adj
}

// shortest runs Dijkstra from src and returns the node path to dst.
//
// Uses the lazy decrease-key strategy: improved distances are pushed again
// and stale heap entries are skipped when popped.
//
// Complexity: O((V + E) log V).
func shortest(adj map[rune][]hop, src, dst rune) ([]rune, error) {
	dist := map[rune]float64{src: 0}
	prev := make(map[rune]rune)
	visited := make(map[rune]bool)

	pq := nodePQ{{id: src}}
	heap.Init(&pq)
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == dst {
			break
		}
		for _, h := range adj[u] {
			d := dist[u] + h.cost
			if best, seen := dist[h.to]; seen && d >= best {
				continue
			}
			dist[h.to] = d
			prev[h.to] = u
			heap.Push(&pq, &nodeItem{id: h.to, dist: d})
		}
	}
	if !visited[dst] {
		return nil, fmt.Errorf("%w: no route %c→%c", ErrNoWay, src, dst)
	}

	path := []rune{dst}
	for n := dst; n != src; {
		n = prev[n]
		path = append(path, n)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// nodeItem is a node and its tentative distance from the source.
type nodeItem struct {
	id   rune
	dist float64
}

// nodePQ is a min-heap of *nodeItem by distance, then node.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
