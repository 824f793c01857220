// Package routemap builds edge sequences from ASCII road maps, for tests and
// for the lvguide command.
//
// A map is drawn on a character grid. Every letter or digit is a node; all
// other characters are decoration. Ways list their nodes in order and carry
// raw OSM-style tags:
//
//	m, err := routemap.New(`
//	    A----B
//	          \
//	           C`, 100, []routemap.Way{
//		{Nodes: "AB", Tags: tags.Tags{"highway": "motorway", "ref": "I 70"}},
//		{Nodes: "BC", Tags: tags.Tags{"highway": "motorway_link"}},
//	})
//	edges, err := m.Edges("ABC")
//
// Columns grow east and rows grow south, one grid step per character.
// Edges derives each edge's heading, length, default speed and the turn
// degree and category of the transition onto it; names and signs come from
// tags.Parse on the way's tags.
//
// Route finds the shortest drivable node path through waypoints, so a leg
// can be named by its endpoints alone: m.Route("A>C") returns "ABC".
//
// Fixtures bundle a map, its ways and the legs to route in one YAML document
// (see Fixture).
//
// Errors:
//
//   - ErrBadMap for duplicate nodes, a non-positive grid size or way nodes
//     missing from the map.
//   - ErrShortPath for a path with fewer than two nodes.
//   - ErrUnknownNode for a path node that is not on the map.
//   - ErrNoWay when no way joins two consecutive path nodes, or Route finds
//     no route between two waypoints.
//   - ErrOneway when the only joining way is one-way against the path.
//   - ErrBadFixture for an undecodable fixture document.
package routemap
