// Package netgen builds deterministic flight networks for tests, examples and
// benchmarks.
//
// The package offers:
//
//   - Build(opts, cons...): one orchestrator that creates a network.Network,
//     resolves the configuration and applies constructors in order.
//   - Constructors: Chain, Cycle, Star, Complete, RandomSparse.
//   - Location-name schemes (IDFn): DecimalIDFn ("N0","N1",…) and
//     SymbolIDFn ("A".."Z","AA",…).
//   - Price and time distributions: ConstantCost/UniformCost and
//     ConstantDuration/UniformDuration.
//
// Flights are inserted in both directions by default, matching how the
// ingestion layer loads flight files. WithOneWay() switches to single
// directed edges.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical
//     networks, including per-location edge order.
//   - Constructors validate their parameters and return sentinel errors
//     wrapped with the constructor name; they never panic at runtime.
//   - Option constructors panic on nil functions (programmer error).
package netgen
