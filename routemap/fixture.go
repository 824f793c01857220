package routemap

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvguide/core"
	"github.com/katalvlaran/lvguide/tags"
)

// Fixture is a YAML road-map document:
//
//	name: exit signs
//	grid_meters: 100
//	map: |
//	  A----B
//	        \
//	         C
//	ways:
//	  - nodes: AB
//	    tags: {highway: motorway, ref: I 70}
//	legs: [ABC, A>C]
type Fixture struct {
	Name       string   `yaml:"name"`
	GridMeters float64  `yaml:"grid_meters"`
	Map        string   `yaml:"map"`
	Ways       []Way    `yaml:"ways"`
	Legs       []string `yaml:"legs"`
}

// ParseFixture decodes a fixture document.
func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFixture, err)
	}
	if f.Map == "" {
		return nil, fmt.Errorf("%w: no map", ErrBadFixture)
	}

	return &f, nil
}

// LoadFixture reads and decodes the fixture at path.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("routemap: %w", err)
	}

	return ParseFixture(data)
}

// Build parses the fixture map.
func (f *Fixture) Build(opts ...tags.Option) (*Map, error) {
	return New(f.Map, f.GridMeters, f.Ways, opts...)
}

// LegEdges builds the map and returns the edges of every leg, in order. A leg
// holding waypoints ("A>D") is expanded with Route first; any other leg is a
// literal node path.
func (f *Fixture) LegEdges(opts ...tags.Option) ([][]core.Edge, error) {
	m, err := f.Build(opts...)
	if err != nil {
		return nil, err
	}
	out := make([][]core.Edge, 0, len(f.Legs))
	for _, leg := range f.Legs {
		if strings.Contains(leg, waypointSeparator) {
			if leg, err = m.Route(leg); err != nil {
				return nil, err
			}
		}
		edges, err := m.Edges(leg)
		if err != nil {
			return nil, err
		}
		out = append(out, edges)
	}

	return out, nil
}
