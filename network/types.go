// File: types.go
// Role: Location, Edge, Network, Stats and construction options.
// Concurrency:
//   - mu guards locations and the edge lists owned by each Location.

package network

import "sync"

// defaultCapacity is the location-catalog size hint used by New.
// The networks this package targets hold dozens of locations.
const defaultCapacity = 32

// Edge is a directed flight leaving its owning Location.
type Edge struct {
	// To is the destination location name.
	To string

	// Cost is the monetary price of the flight.
	Cost float64

	// Duration is the flight time.
	Duration int
}

// Location is a named node of the network.
//
// A Location is created by the Network that owns it and is never removed.
// Its edge list only grows; callers read it through Network.Neighbors or
// Network.Edges.
type Location struct {
	// Name uniquely identifies the location inside its Network.
	Name string

	edges []Edge
}

// Stats is a snapshot of catalog sizes.
type Stats struct {
	Locations int
	Edges     int
}

// Option configures a Network before first use.
type Option func(n *Network)

// WithCapacity pre-sizes the location catalog for about size locations.
// Non-positive sizes keep the default.
func WithCapacity(size int) Option {
	return func(n *Network) {
		if size > 0 {
			n.capacity = size
		}
	}
}

// Network maps location names to Locations.
//
// Invariant: a name maps to at most one *Location; UpsertLocation and AddEdge
// never create a second instance for a known name.
type Network struct {
	mu sync.RWMutex // guards locations, edges and edgeCount

	capacity  int
	locations map[string]*Location
	edgeCount int
}

// New creates an empty Network.
// Complexity: O(capacity) for the map allocation.
func New(opts ...Option) *Network {
	n := &Network{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(n)
	}
	n.locations = make(map[string]*Location, n.capacity)

	return n
}
