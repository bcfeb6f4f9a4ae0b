// Package pathengine answers shortest-path queries over an immutable
// weighted graph of campus locations.
//
// A Graph is built once with Load from a list of locations and undirected
// weighted edges, and is read-only afterwards. Queries never mutate the
// graph, so a single Graph can serve any number of concurrent requests
// without locking.
package pathengine

import "sort"

// Coordinate is a latitude/longitude pair, kept on locations so callers can
// render a returned path on a map. The engine itself never interprets it.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Location is a navigable point on the campus (a building entrance or a
// path intersection).
type Location struct {
	ID    string
	Name  string
	Coord *Coordinate // optional; nil when the map has no position for it
}

// Edge is an undirected weighted connection between two locations. Weight
// is a non-negative distance (the campus data uses meters).
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Graph is the immutable adjacency representation built by Load.
type Graph struct {
	locations map[string]Location
	adjacency map[string][]Edge // both directions; sorted by To for deterministic traversal
}

// Load constructs a Graph from locations and undirected edges.
//
// It returns a *ValidationError when the input violates an invariant:
// empty or duplicate location IDs, an edge referencing an unknown location,
// a self-loop, a negative weight, or more than one edge between the same
// pair of locations.
func Load(locations []Location, edges []Edge) (*Graph, error) {
	g := &Graph{
		locations: make(map[string]Location, len(locations)),
		adjacency: make(map[string][]Edge, len(locations)),
	}

	for _, loc := range locations {
		if loc.ID == "" {
			return nil, validationErrorf("location with empty ID")
		}
		if _, ok := g.locations[loc.ID]; ok {
			return nil, validationErrorf("duplicate location %q", loc.ID)
		}
		g.locations[loc.ID] = loc
	}

	seen := make(map[[2]string]bool, len(edges))
	for _, e := range edges {
		if _, ok := g.locations[e.From]; !ok {
			return nil, validationErrorf("edge %s-%s references unknown location %q", e.From, e.To, e.From)
		}
		if _, ok := g.locations[e.To]; !ok {
			return nil, validationErrorf("edge %s-%s references unknown location %q", e.From, e.To, e.To)
		}
		if e.From == e.To {
			return nil, validationErrorf("self-loop on location %q", e.From)
		}
		if e.Weight < 0 {
			return nil, validationErrorf("edge %s-%s has negative weight %v", e.From, e.To, e.Weight)
		}

		key := pairKey(e.From, e.To)
		if seen[key] {
			return nil, validationErrorf("duplicate edge between %q and %q", e.From, e.To)
		}
		seen[key] = true

		g.adjacency[e.From] = append(g.adjacency[e.From], Edge{From: e.From, To: e.To, Weight: e.Weight})
		g.adjacency[e.To] = append(g.adjacency[e.To], Edge{From: e.To, To: e.From, Weight: e.Weight})
	}

	// Fix the neighbor order once so every query relaxes edges in the same
	// sequence regardless of input order.
	for id := range g.adjacency {
		adj := g.adjacency[id]
		sort.Slice(adj, func(i, j int) bool { return adj[i].To < adj[j].To })
	}

	return g, nil
}

// pairKey normalizes an unordered endpoint pair for duplicate detection.
func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

// HasLocation reports whether id is present in the graph.
func (g *Graph) HasLocation(id string) bool {
	_, ok := g.locations[id]
	return ok
}

// Location returns the location with the given id.
func (g *Graph) Location(id string) (Location, bool) {
	loc, ok := g.locations[id]
	return loc, ok
}

// Locations returns all locations sorted by ID.
func (g *Graph) Locations() []Location {
	out := make([]Location, 0, len(g.locations))
	for _, loc := range g.locations {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Neighbors returns the edges leaving id, sorted by neighbor ID. The
// returned slice is shared with the graph and must not be modified.
func (g *Graph) Neighbors(id string) []Edge {
	return g.adjacency[id]
}
