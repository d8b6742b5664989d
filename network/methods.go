// File: methods.go
// Role: Location and edge lifecycle plus read-only queries.
// Determinism:
//   - Neighbors() and Edges() return edges in insertion order.
//   - Locations() returns names sorted lexicographically ascending.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package network

import "sort"

// UpsertLocation returns the Location registered under name, creating and
// registering an empty one if absent.
//
// Behavior highlights:
//   - Idempotent: repeated calls with the same name return the same pointer.
//   - No validation: the empty name is a valid key at this layer.
//
// Complexity: O(1) amortized.
func (n *Network) UpsertLocation(name string) *Location {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.upsertLocked(name)
}

// upsertLocked is UpsertLocation for callers already holding mu.
func (n *Network) upsertLocked(name string) *Location {
	if loc, ok := n.locations[name]; ok {
		return loc
	}
	loc := &Location{Name: name}
	n.locations[name] = loc

	return loc
}

// AddEdge registers a directed edge origin→dest.
//
// Steps:
//  1. Resolve or create the origin Location.
//  2. Resolve or create the destination Location.
//  3. Append Edge{To: dest, Cost: cost, Duration: duration} to the origin's list.
//
// Parallel edges are allowed; cost and duration are stored as given.
// Complexity: O(1) amortized.
func (n *Network) AddEdge(origin, dest string, cost float64, duration int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	from := n.upsertLocked(origin)
	n.upsertLocked(dest)
	from.edges = append(from.edges, Edge{To: dest, Cost: cost, Duration: duration})
	n.edgeCount++
}

// Lookup returns the Location registered under name. It never creates one.
func (n *Network) Lookup(name string) (*Location, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	loc, ok := n.locations[name]

	return loc, ok
}

// HasLocation reports whether name is registered.
func (n *Network) HasLocation(name string) bool {
	_, ok := n.Lookup(name)

	return ok
}

// Neighbors returns the outgoing edges of name in insertion order, or nil when
// name is unknown.
//
// The returned slice shares storage with the network and must be treated as
// read-only. It is captured under the read lock; later AddEdge calls only
// append past its length, so the view stays consistent even if the network
// keeps growing.
//
// Complexity: O(1), no allocation.
func (n *Network) Neighbors(name string) []Edge {
	n.mu.RLock()
	defer n.mu.RUnlock()
	loc, ok := n.locations[name]
	if !ok {
		return nil
	}

	return loc.edges[:len(loc.edges):len(loc.edges)]
}

// Edges returns an independent copy of the outgoing edges of name, or nil
// when name is unknown.
// Complexity: O(d) where d is the out-degree.
func (n *Network) Edges(name string) []Edge {
	n.mu.RLock()
	defer n.mu.RUnlock()
	loc, ok := n.locations[name]
	if !ok {
		return nil
	}
	out := make([]Edge, len(loc.edges))
	copy(out, loc.edges)

	return out
}

// Locations returns all location names sorted ascending.
// Complexity: O(L·log L).
func (n *Network) Locations() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	names := make([]string, 0, len(n.locations))
	for name := range n.locations {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// LocationCount returns the number of registered locations.
func (n *Network) LocationCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.locations)
}

// EdgeCount returns the number of directed edges.
func (n *Network) EdgeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.edgeCount
}

// Stats returns a consistent snapshot of the catalog sizes.
func (n *Network) Stats() Stats {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return Stats{Locations: len(n.locations), Edges: n.edgeCount}
}
