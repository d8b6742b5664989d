// Package itinerary plans travel requests end to end: enumerate simple paths
// with package pathfind, order them with package rank, and package the best
// few as a Result.
//
// "No path" is a normal outcome, never an error: a Result with no paths
// carries the NoPathMessage sentinel for the report writer. Errors are
// reserved for cancellation and invalid planner configuration.
//
// Planner is safe for concurrent use once its network is fully built.
// PlanAll exploits that by planning independent requests on a bounded
// goroutine pool (github.com/panjf2000/ants/v2) while returning results in
// request order.
//
// Best answers a request with a single optimal path via Dijkstra instead of
// exhaustive enumeration.
package itinerary
