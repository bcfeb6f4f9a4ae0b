package pathengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLocations() []Location {
	return []Location{
		{ID: "A", Name: "Main Building", Coord: &Coordinate{Lat: 50.0664, Lon: 19.9135}},
		{ID: "B", Name: "Library"},
		{ID: "C", Name: "Canteen"},
	}
}

func TestLoad_BuildsAdjacencyBothWays(t *testing.T) {
	g, err := Load(validLocations(), []Edge{
		{From: "A", To: "B", Weight: 120},
		{From: "B", To: "C", Weight: 45},
	})
	require.NoError(t, err)

	require.Len(t, g.Neighbors("B"), 2)
	assert.Equal(t, "A", g.Neighbors("B")[0].To)
	assert.Equal(t, "C", g.Neighbors("B")[1].To)
	assert.Equal(t, 120.0, g.Neighbors("A")[0].Weight)
}

func TestLoad_NeighborsSortedRegardlessOfInputOrder(t *testing.T) {
	g, err := Load(validLocations(), []Edge{
		{From: "C", To: "A", Weight: 1},
		{From: "A", To: "B", Weight: 1},
	})
	require.NoError(t, err)

	adj := g.Neighbors("A")
	require.Len(t, adj, 2)
	assert.Equal(t, "B", adj[0].To)
	assert.Equal(t, "C", adj[1].To)
}

func TestLoad_EmptyLocationID(t *testing.T) {
	_, err := Load([]Location{{ID: ""}}, nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestLoad_DuplicateLocation(t *testing.T) {
	_, err := Load([]Location{{ID: "A"}, {ID: "A"}}, nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Detail, `"A"`)
}

func TestLoad_UnknownEndpoint(t *testing.T) {
	_, err := Load(validLocations(), []Edge{{From: "A", To: "X", Weight: 1}})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Detail, `"X"`)
}

func TestLoad_NegativeWeight(t *testing.T) {
	_, err := Load(validLocations(), []Edge{{From: "A", To: "B", Weight: -3}})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Detail, "negative")
}

func TestLoad_SelfLoop(t *testing.T) {
	_, err := Load(validLocations(), []Edge{{From: "A", To: "A", Weight: 1}})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestLoad_DuplicateEdgeEitherDirection(t *testing.T) {
	// The pair is unordered: B-A duplicates A-B.
	_, err := Load(validLocations(), []Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "A", Weight: 2},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Detail, "duplicate edge")
}

func TestLoad_ZeroWeightAllowed(t *testing.T) {
	_, err := Load(validLocations(), []Edge{{From: "A", To: "B", Weight: 0}})
	require.NoError(t, err)
}

func TestGraph_Locations_SortedByID(t *testing.T) {
	g, err := Load([]Location{{ID: "C"}, {ID: "A"}, {ID: "B"}}, nil)
	require.NoError(t, err)

	locs := g.Locations()
	require.Len(t, locs, 3)
	assert.Equal(t, "A", locs[0].ID)
	assert.Equal(t, "B", locs[1].ID)
	assert.Equal(t, "C", locs[2].ID)
}

func TestGraph_LocationLookup(t *testing.T) {
	g, err := Load(validLocations(), nil)
	require.NoError(t, err)

	loc, ok := g.Location("A")
	require.True(t, ok)
	assert.Equal(t, "Main Building", loc.Name)
	require.NotNil(t, loc.Coord)
	assert.InDelta(t, 50.0664, loc.Coord.Lat, 1e-9)

	_, ok = g.Location("missing")
	assert.False(t, ok)
	assert.False(t, g.HasLocation("missing"))
}
