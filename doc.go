// Package skyplan plans multi-leg flight itineraries.
//
// Given a set of flights between named locations and a batch of requests
// (origin, destination, ranking criterion), skyplan enumerates every simple
// route through the flight network, ranks the routes by total cost or total
// duration and reports the best three per request.
//
// The module is organized as small packages:
//
//	network/     thread-safe directed multigraph of locations and flights
//	pathfind/    exhaustive simple-path enumeration, reachability, shortest path
//	rank/        criterion parsing and stable top-N ranking
//	itinerary/   request planning, sequential or on an ants worker pool
//	flightdata/  flight and request file parsing, network loading
//	flightstore/ MySQL flight source
//	report/      plain-text flight plan report
//	httpapi/     gin HTTP surface over a planner
//	config/      TOML, .env and environment settings
//	logging/     logrus setup with lumberjack rotation
//	netgen/      synthetic networks for tests and benchmarks
//
// Binaries live under cmd/: skyplan (batch report) and skyplan-server (HTTP).
package skyplan
