package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyplan/network"
)

// Common location names used across network tests.
const (
	LocA = "A"
	LocB = "B"
	LocC = "C"
	LocD = "D"
)

func TestUpsertLocation_Idempotent(t *testing.T) {
	n := network.New()
	first := n.UpsertLocation(LocA)
	second := n.UpsertLocation(LocA)

	require.NotNil(t, first)
	assert.Same(t, first, second, "same name must map to one instance")
	assert.Equal(t, LocA, first.Name)
	assert.Equal(t, 1, n.LocationCount())
	assert.Empty(t, n.Neighbors(LocA))
}

func TestAddEdge_CreatesBothEndpoints(t *testing.T) {
	n := network.New()
	n.AddEdge(LocA, LocB, 100, 60)

	assert.True(t, n.HasLocation(LocA))
	assert.True(t, n.HasLocation(LocB))
	assert.Equal(t, []network.Edge{{To: LocB, Cost: 100, Duration: 60}}, n.Neighbors(LocA))
	// destination gets no reverse edge at this layer
	assert.Empty(t, n.Neighbors(LocB))
	assert.Equal(t, network.Stats{Locations: 2, Edges: 1}, n.Stats())
}

func TestAddEdge_ReusesExistingLocation(t *testing.T) {
	n := network.New()
	loc := n.UpsertLocation(LocA)
	n.AddEdge(LocA, LocB, 1, 1)

	got, ok := n.Lookup(LocA)
	require.True(t, ok)
	assert.Same(t, loc, got)
	assert.Equal(t, 2, n.LocationCount())
}

func TestAddEdge_ParallelEdgesKeptInOrder(t *testing.T) {
	n := network.New()
	n.AddEdge(LocA, LocB, 100, 60)
	n.AddEdge(LocA, LocC, 20, 10)
	n.AddEdge(LocA, LocB, 80, 90)

	want := []network.Edge{
		{To: LocB, Cost: 100, Duration: 60},
		{To: LocC, Cost: 20, Duration: 10},
		{To: LocB, Cost: 80, Duration: 90},
	}
	assert.Equal(t, want, n.Neighbors(LocA))
	assert.Equal(t, want, n.Edges(LocA))
	assert.Equal(t, 3, n.EdgeCount())
}

func TestAddEdge_NoValidation(t *testing.T) {
	n := network.New()
	n.AddEdge(LocA, LocA, -5, -1)

	assert.Equal(t, []network.Edge{{To: LocA, Cost: -5, Duration: -1}}, n.Neighbors(LocA))
	assert.Equal(t, 1, n.LocationCount())
}

func TestLookup_DoesNotCreate(t *testing.T) {
	n := network.New()
	loc, ok := n.Lookup(LocD)

	assert.Nil(t, loc)
	assert.False(t, ok)
	assert.False(t, n.HasLocation(LocD))
	assert.Zero(t, n.LocationCount())
	assert.Nil(t, n.Neighbors(LocD))
	assert.Nil(t, n.Edges(LocD))
}

func TestEdges_ReturnsIndependentCopy(t *testing.T) {
	n := network.New()
	n.AddEdge(LocA, LocB, 10, 1)

	cp := n.Edges(LocA)
	cp[0].Cost = 999

	assert.Equal(t, 10.0, n.Neighbors(LocA)[0].Cost)
}

func TestNeighbors_ViewUnaffectedByLaterAppends(t *testing.T) {
	n := network.New()
	n.AddEdge(LocA, LocB, 10, 1)
	view := n.Neighbors(LocA)

	n.AddEdge(LocA, LocC, 20, 2)

	assert.Len(t, view, 1)
	assert.Len(t, n.Neighbors(LocA), 2)
}

func TestLocations_Sorted(t *testing.T) {
	n := network.New(network.WithCapacity(4))
	n.AddEdge(LocC, LocA, 1, 1)
	n.AddEdge(LocD, LocB, 1, 1)

	assert.Equal(t, []string{LocA, LocB, LocC, LocD}, n.Locations())
}
