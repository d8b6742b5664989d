package itinerary

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/skyplan/network"
	"github.com/katalvlaran/skyplan/pathfind"
	"github.com/katalvlaran/skyplan/rank"
)

// Option configures a Planner.
type Option func(*Planner)

// WithLimit sets how many ranked paths a Result keeps (default rank.DefaultLimit).
func WithLimit(n int) Option {
	return func(p *Planner) { p.limit = n }
}

// WithMaxLegs bounds path length during enumeration (0 = unbounded).
func WithMaxLegs(n int) Option {
	return func(p *Planner) { p.maxLegs = n }
}

// WithMaxPaths bounds the number of enumerated paths per request (0 = unbounded).
func WithMaxPaths(n int) Option {
	return func(p *Planner) { p.maxPaths = n }
}

// WithWorkers sets the PlanAll pool size (default 1).
func WithWorkers(n int) Option {
	return func(p *Planner) { p.workers = n }
}

// WithLogger sets the log entry used for per-request diagnostics.
func WithLogger(entry *log.Entry) Option {
	return func(p *Planner) {
		if entry != nil {
			p.log = entry
		}
	}
}

// Planner runs requests against one read-only network.
type Planner struct {
	net *network.Network
	log *log.Entry

	limit    int
	maxLegs  int
	maxPaths int
	workers  int
}

// NewPlanner validates opts and returns a Planner over n.
func NewPlanner(n *network.Network, opts ...Option) (*Planner, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	p := &Planner{
		net:     n,
		log:     log.NewEntry(log.StandardLogger()),
		limit:   rank.DefaultLimit,
		workers: 1,
	}
	for _, opt := range opts {
		opt(p)
	}

	switch {
	case p.limit <= 0:
		return nil, fmt.Errorf("%w: limit must be positive (%d)", ErrBadOption, p.limit)
	case p.maxLegs < 0:
		return nil, fmt.Errorf("%w: max legs cannot be negative (%d)", ErrBadOption, p.maxLegs)
	case p.maxPaths < 0:
		return nil, fmt.Errorf("%w: max paths cannot be negative (%d)", ErrBadOption, p.maxPaths)
	case p.workers <= 0:
		return nil, fmt.Errorf("%w: workers must be positive (%d)", ErrBadOption, p.workers)
	}

	return p, nil
}

// Plan enumerates, ranks and packages one request.
//
// Unreachable destinations are detected with a BFS pre-check and return the
// empty Result without enumerating. The error is non-nil only when ctx is
// done.
func (p *Planner) Plan(ctx context.Context, req Request) (Result, error) {
	res := Result{Request: req, Paths: []pathfind.Path{}}
	entry := p.log.WithFields(log.Fields{
		"origin":      req.Origin,
		"destination": req.Destination,
		"criterion":   req.Criterion.String(),
	})

	if !pathfind.Reachable(p.net, req.Origin, req.Destination) {
		entry.Debug("destination unreachable")
		return res, nil
	}

	paths, err := pathfind.FindAll(p.net, req.Origin, req.Destination,
		pathfind.WithContext(ctx),
		pathfind.WithMaxLegs(p.maxLegs),
		pathfind.WithMaxPaths(p.maxPaths),
	)
	if err != nil {
		return res, fmt.Errorf("itinerary: plan %s→%s: %w", req.Origin, req.Destination, err)
	}

	res.Paths = rank.Rank(paths, req.Criterion, rank.WithLimit(p.limit))
	entry.WithField("enumerated", len(paths)).Debugf("kept %d path(s)", len(res.Paths))

	return res, nil
}

// Best returns the single optimal path for req, or the empty Result when no
// path exists. Ties between equally good paths may resolve differently than
// in Plan.
func (p *Planner) Best(ctx context.Context, req Request) (Result, error) {
	res := Result{Request: req, Paths: []pathfind.Path{}}
	if err := ctx.Err(); err != nil {
		return res, fmt.Errorf("itinerary: best %s→%s: %w", req.Origin, req.Destination, err)
	}

	weight := pathfind.EdgeDuration
	if req.Criterion == rank.ByCost {
		weight = pathfind.EdgeCost
	}
	if path, ok := pathfind.Shortest(p.net, req.Origin, req.Destination, weight); ok {
		res.Paths = append(res.Paths, path)
	}

	return res, nil
}

// PlanAll plans every request and returns results in request order.
//
// Requests are independent and share only the read-only network, so they run
// on an ants pool of the configured size. The first error in request order is
// returned alongside whatever results completed.
func (p *Planner) PlanAll(ctx context.Context, reqs []Request) ([]Result, error) {
	results := make([]Result, len(reqs))
	errs := make([]error, len(reqs))

	pool, err := ants.NewPool(p.workers, ants.WithLogger(p.log))
	if err != nil {
		return nil, fmt.Errorf("itinerary: create pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, req := range reqs {
		wg.Add(1)
		i, req := i, req
		if err := pool.Submit(func() {
			defer wg.Done()
			results[i], errs[i] = p.Plan(ctx, req)
		}); err != nil {
			wg.Done()
			errs[i] = fmt.Errorf("itinerary: submit request %d: %w", i, err)
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	p.log.WithField("requests", len(reqs)).Info("planning finished")

	return results, nil
}
