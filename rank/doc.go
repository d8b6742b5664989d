// Package rank orders enumerated paths by a per-request Criterion and keeps
// the best few.
//
//   - ByCost:     ascending accumulated cost.
//   - ByDuration: ascending accumulated duration.
//
// Sorting is stable: paths with equal metric keep their enumeration order,
// so output is deterministic for a deterministic path finder. Results are
// truncated to DefaultLimit (3) unless WithLimit says otherwise.
//
// ParseCriterion implements the request-file rule: the literal token "Cost"
// selects ByCost and every other token, "Time" included, selects ByDuration.
package rank
