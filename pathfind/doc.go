// Package pathfind enumerates every simple path between two locations of a
// network.Network and answers plain reachability questions.
//
// What:
//
//   - FindAll: exhaustive depth-first enumeration of simple paths (no location
//     repeated) from an origin to a destination. Each Path carries its stop
//     sequence plus the accumulated cost and duration of the traversed edges.
//   - Reachable: breadth-first reachability test, used to skip enumeration
//     entirely when no path can exist.
//
// Enumeration rules:
//
//   - Exploration uses an explicit work stack of frames (location, stops so
//     far, running cost, running duration). Edges of a location are pushed in
//     insertion order, so the most recently inserted edge is explored first.
//     Output order is therefore deterministic for a given network.
//   - Arriving at the destination emits the path and ends that branch, even if
//     the destination has outgoing edges.
//   - A branch extends only to locations not yet on its own stop list. Every
//     emitted Path is simple and enumeration terminates on any finite network.
//   - An unknown origin, or origin == destination, yields no paths and no error.
//
// Complexity:
//
//   - FindAll:   exponential in the worst case (dense graphs); intended for
//     networks of a few dozen locations. WithMaxLegs and WithMaxPaths bound
//     the work on pathological inputs.
//   - Reachable: Time O(L+E), Memory O(L).
//   - Shortest:  Time O((L+E) log E); returns one path whose weight equals the
//     FindAll minimum for the same Weight.
//
// Options:
//
//   - WithContext(ctx)     cancellation, checked once per popped frame.
//   - WithMaxLegs(n)       do not extend branches beyond n edges (0 = no limit).
//   - WithMaxPaths(n)      stop after n emitted paths (0 = no limit).
//   - WithOnPath(fn)       hook invoked for every emitted path; an error aborts.
//
// Errors:
//
//   - ErrNilNetwork        network pointer is nil.
//   - ErrOptionViolation   negative limit supplied.
//   - context errors       enumeration canceled via context.
//   - hook errors          propagated from OnPath.
package pathfind
