package pathfind

import (
	"fmt"

	"github.com/katalvlaran/skyplan/network"
)

// frame is one pending branch on the work stack.
type frame struct {
	at       string
	stops    []string
	cost     float64
	duration int
}

// walker encapsulates mutable enumeration state.
type walker struct {
	net   *network.Network
	opts  Options
	dest  string
	stack []frame
	paths []Path
}

// FindAll returns every simple path from origin to destination in emission
// order. See the package documentation for the enumeration rules.
//
// The result is never nil on success; "no path" is an empty slice.
func FindAll(n *network.Network, origin, destination string, opts ...Option) ([]Path, error) {
	// 1. Validate input network
	if n == nil {
		return nil, ErrNilNetwork
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. Unknown origin or trivial request: nothing to enumerate
	paths := make([]Path, 0)
	if !n.HasLocation(origin) || origin == destination {
		return paths, nil
	}

	// 4. Seed with the origin frame and drain the stack
	w := &walker{net: n, opts: o, dest: destination, paths: paths}
	w.stack = append(w.stack, frame{at: origin, stops: []string{origin}})
	if err := w.loop(); err != nil {
		return w.paths, err
	}

	return w.paths, nil
}

// loop pops frames until the stack is empty, the path budget is spent, or the
// context is done.
func (w *walker) loop() error {
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := len(w.stack) - 1
		f := w.stack[top]
		w.stack = w.stack[:top]

		if len(f.stops) > 1 && f.at == w.dest {
			if err := w.emit(f); err != nil {
				return err
			}
			if w.opts.MaxPaths > 0 && len(w.paths) >= w.opts.MaxPaths {
				return nil
			}
			continue
		}

		if w.opts.MaxLegs > 0 && len(f.stops)-1 >= w.opts.MaxLegs {
			continue
		}
		w.expand(f)
	}

	return nil
}

// expand pushes one frame per outgoing edge whose target is not yet on the
// branch.
func (w *walker) expand(f frame) {
	for _, e := range w.net.Neighbors(f.at) {
		if contains(f.stops, e.To) {
			continue
		}
		stops := make([]string, len(f.stops), len(f.stops)+1)
		copy(stops, f.stops)
		w.stack = append(w.stack, frame{
			at:       e.To,
			stops:    append(stops, e.To),
			cost:     f.cost + e.Cost,
			duration: f.duration + e.Duration,
		})
	}
}

// emit records a completed path and runs the OnPath hook.
func (w *walker) emit(f frame) error {
	p := Path{Stops: f.stops, Cost: f.cost, Duration: f.duration}
	w.paths = append(w.paths, p)
	if w.opts.OnPath != nil {
		if err := w.opts.OnPath(p); err != nil {
			return fmt.Errorf("pathfind: OnPath hook for %q: %w", p.String(), err)
		}
	}

	return nil
}

// contains reports whether name is already on the branch.
func contains(stops []string, name string) bool {
	for _, s := range stops {
		if s == name {
			return true
		}
	}

	return false
}
