package rank

import (
	"sort"

	"github.com/katalvlaran/skyplan/pathfind"
)

// DefaultLimit is the number of paths kept per request.
const DefaultLimit = 3

// Option configures Rank.
type Option func(*options)

type options struct {
	limit int
}

// WithLimit keeps at most n paths. Non-positive n keeps DefaultLimit.
func WithLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.limit = n
		}
	}
}

// Rank returns paths sorted ascending by the metric c selects, stable on ties,
// truncated to the configured limit. The input slice is not modified.
//
// Complexity: O(P·log P) for P input paths.
func Rank(paths []pathfind.Path, c Criterion, opts ...Option) []pathfind.Path {
	o := options{limit: DefaultLimit}
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]pathfind.Path, len(paths))
	copy(out, paths)
	sort.SliceStable(out, less(out, c))

	if len(out) > o.limit {
		out = out[:o.limit]
	}

	return out
}

func less(ps []pathfind.Path, c Criterion) func(i, j int) bool {
	if c == ByCost {
		return func(i, j int) bool { return ps[i].Cost < ps[j].Cost }
	}

	return func(i, j int) bool { return ps[i].Duration < ps[j].Duration }
}
