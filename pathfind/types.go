// Package pathfind defines Path, enumeration options and sentinel errors.
package pathfind

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// StopSeparator joins stops when a Path is rendered as text.
const StopSeparator = " -> "

var (
	// ErrNilNetwork is returned when a nil *network.Network is passed.
	ErrNilNetwork = errors.New("pathfind: network is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")
)

// Path is one simple route through the network.
type Path struct {
	// Stops lists location names from origin to destination; no name repeats.
	Stops []string

	// Cost is the sum of the traversed edges' costs.
	Cost float64

	// Duration is the sum of the traversed edges' durations.
	Duration int
}

// Legs returns the number of edges in the path.
func (p Path) Legs() int {
	if len(p.Stops) == 0 {
		return 0
	}

	return len(p.Stops) - 1
}

// String renders the stops joined by StopSeparator.
func (p Path) String() string {
	return strings.Join(p.Stops, StopSeparator)
}

// Option configures enumeration.
// Invalid values are recorded and surfaced as ErrOptionViolation by FindAll.
type Option func(*Options)

// Options holds enumeration parameters.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxLegs, if positive, stops extending a branch once it has MaxLegs edges.
	MaxLegs int

	// MaxPaths, if positive, stops enumeration after MaxPaths emitted paths.
	MaxPaths int

	// OnPath, if non-nil, is called for each emitted path in emission order.
	OnPath func(Path) error

	err error
}

// DefaultOptions returns Options with a background context and no limits.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxLegs bounds the number of edges per path.
//
//	n > 0: limit
//	n = 0: no limit
//	n < 0: ErrOptionViolation
func WithMaxLegs(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLegs cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLegs = n
	}
}

// WithMaxPaths bounds the number of emitted paths, with the same value rules
// as WithMaxLegs.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}

// WithOnPath installs fn as the per-path hook.
func WithOnPath(fn func(Path) error) Option {
	return func(o *Options) {
		o.OnPath = fn
	}
}
