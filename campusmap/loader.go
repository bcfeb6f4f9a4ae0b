// Package campusmap loads the static campus description consumed by the
// route engine. The source of truth is a points.json file mapping every
// point on the campus (building entrances and sidewalk intersections) to
// its coordinates and the points it directly connects to. Edge weights are
// derived from the coordinates as great-circle distance in meters, so the
// file only has to describe topology.
package campusmap

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/Kacper0199/AGH-Navigator-App/pathengine"
)

const earthRadiusMeters = 6371000.0

// Point is one entry of points.json.
//
// Waypoint marks routing-only sidewalk intersections that are traversed by
// paths but never offered as an origin or destination.
type Point struct {
	Name        string    `json:"name,omitempty"`
	Coordinates []float64 `json:"coordinates" validate:"required,len=2,dive,gte=-180,lte=180"` // [lat, lon]
	Adjacents   []string  `json:"adjacents"`
	Waypoint    bool      `json:"waypoint,omitempty"`
}

// Map is the loaded campus: the routable graph plus the subset of
// locations that can be picked as trip endpoints.
type Map struct {
	graph     *pathengine.Graph
	buildings []pathengine.Location
}

// LoadFile reads a points.json file and builds the campus map.
func LoadFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("campusmap: could not read %s: %w", path, err)
	}

	var points map[string]Point
	if err := json.Unmarshal(data, &points); err != nil {
		return nil, fmt.Errorf("campusmap: could not parse %s: %w", path, err)
	}

	m, err := Load(points)
	if err != nil {
		return nil, fmt.Errorf("campusmap: %s: %w", path, err)
	}

	return m, nil
}

// Load validates the point set, derives undirected edges with haversine
// weights from the adjacency lists, and hands the result to pathengine.Load.
// Adjacency may be declared on either endpoint or both; duplicates collapse
// to a single edge.
func Load(points map[string]Point) (*Map, error) {
	validate := validator.New()

	ids := make([]string, 0, len(points))
	for id := range points {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	locations := make([]pathengine.Location, 0, len(points))
	for _, id := range ids {
		p := points[id]
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("point %q: %w", id, err)
		}
		if math.Abs(p.Coordinates[0]) > 90 {
			return nil, fmt.Errorf("point %q: latitude %v out of range", id, p.Coordinates[0])
		}

		name := p.Name
		if name == "" {
			name = id
		}
		locations = append(locations, pathengine.Location{
			ID:    id,
			Name:  name,
			Coord: &pathengine.Coordinate{Lat: p.Coordinates[0], Lon: p.Coordinates[1]},
		})
	}

	var edges []pathengine.Edge
	seen := make(map[[2]string]bool)
	for _, id := range ids {
		p := points[id]
		for _, adj := range p.Adjacents {
			other, ok := points[adj]
			if !ok {
				return nil, fmt.Errorf("point %q lists unknown adjacent %q", id, adj)
			}

			key := [2]string{id, adj}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if seen[key] {
				continue
			}
			seen[key] = true

			edges = append(edges, pathengine.Edge{
				From:   id,
				To:     adj,
				Weight: haversineMeters(p.Coordinates, other.Coordinates),
			})
		}
	}

	graph, err := pathengine.Load(locations, edges)
	if err != nil {
		return nil, err
	}

	m := &Map{graph: graph}
	for _, loc := range graph.Locations() {
		if !points[loc.ID].Waypoint {
			m.buildings = append(m.buildings, loc)
		}
	}

	return m, nil
}

// Graph returns the routable campus graph.
func (m *Map) Graph() *pathengine.Graph {
	return m.graph
}

// Buildings returns the selectable trip endpoints sorted by ID, excluding
// routing-only waypoints.
func (m *Map) Buildings() []pathengine.Location {
	return m.buildings
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// haversineMeters returns the great-circle distance between two [lat, lon]
// coordinate pairs.
func haversineMeters(from, to []float64) float64 {
	phi1 := toRadians(from[0])
	phi2 := toRadians(to[0])
	deltaPhi := toRadians(to[0] - from[0])
	deltaLambda := toRadians(to[1] - from[1])

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}
