// Package network provides the in-memory flight network: named locations and
// the directed, priced, timed edges leaving each of them.
//
// The Network N = (L, E) has these properties:
//
//   - Locations are identified by a unique name and created on first reference,
//     either as the origin or the destination of an edge.
//   - Edges are directed and owned by their origin location. Each edge carries a
//     monetary cost (float64) and a duration (int, minutes in the bundled data).
//   - Parallel edges between the same pair of locations are kept as distinct
//     flights; no de-duplication is performed.
//   - Per-location edge order is insertion order. Path enumeration depends on it
//     for reproducible output.
//
// Core Methods:
//
//	// Construction
//	New(opts ...Option) *Network                          // O(1)
//	UpsertLocation(name string) *Location                 // O(1), idempotent
//	AddEdge(origin, dest string, cost float64, dur int)   // O(1) amortized
//
//	// Query
//	Lookup(name string) (*Location, bool)                 // O(1), never creates
//	HasLocation(name string) bool                         // O(1)
//	Neighbors(name string) []Edge                         // O(1), live read-only view
//	Edges(name string) []Edge                             // O(d), independent copy
//	Locations() []string                                  // O(L·log L), sorted
//	LocationCount() int / EdgeCount() int                 // O(1)
//	Stats() Stats                                         // O(1)
//
// Validation:
//
// The network performs no validation of names, costs or durations: whatever is
// inserted is stored. Input checks live in the ingestion layer (package
// flightdata). The network is undirected in the source data; inserting both
// directions of a flight is also the ingestion layer's job.
//
// Concurrency:
//
// All methods are safe for concurrent use. A single sync.RWMutex guards the
// location catalog and every edge list. The intended lifecycle is build once,
// then read concurrently from any number of planners.
package network
