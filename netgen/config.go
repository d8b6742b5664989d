package netgen

import (
	"math/rand"
	"strconv"
)

// IDFn maps a zero-based index to a location name.
type IDFn func(idx int) string

// CostFn draws a flight price.
type CostFn func(r *rand.Rand) float64

// DurationFn draws a flight time.
type DurationFn func(r *rand.Rand) int

// Option mutates the generator configuration.
type Option func(*config)

const (
	defaultCost     = 100.0
	defaultDuration = 60
)

type config struct {
	idFn       IDFn
	rng        *rand.Rand
	costFn     CostFn
	durationFn DurationFn
	oneWay     bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:       DecimalIDFn,
		costFn:     ConstantCost(defaultCost),
		durationFn: ConstantDuration(defaultDuration),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// DecimalIDFn yields "N0", "N1", ….
func DecimalIDFn(idx int) string {
	return "N" + strconv.Itoa(idx)
}

// SymbolIDFn yields spreadsheet-style letters: "A".."Z", "AA", "AB", ….
func SymbolIDFn(idx int) string {
	var buf []byte
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('A' + (n-1)%26)}, buf...)
	}

	return string(buf)
}

// ConstantCost always returns v.
func ConstantCost(v float64) CostFn {
	return func(*rand.Rand) float64 { return v }
}

// UniformCost draws from U[min,max) rounded to cents. A nil rng yields min.
func UniformCost(min, max float64) CostFn {
	return func(r *rand.Rand) float64 {
		if r == nil {
			return min
		}
		v := min + r.Float64()*(max-min)

		return float64(int64(v*100)) / 100
	}
}

// ConstantDuration always returns v.
func ConstantDuration(v int) DurationFn {
	return func(*rand.Rand) int { return v }
}

// UniformDuration draws from [min,max]. A nil rng yields min.
func UniformDuration(min, max int) DurationFn {
	return func(r *rand.Rand) int {
		if r == nil || max <= min {
			return min
		}

		return min + r.Intn(max-min+1)
	}
}

// WithIDScheme sets the location-name scheme.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("netgen: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithSeed installs a rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs r as the random source.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("netgen: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithCostFn sets the price distribution.
func WithCostFn(fn CostFn) Option {
	if fn == nil {
		panic("netgen: WithCostFn(nil)")
	}
	return func(c *config) { c.costFn = fn }
}

// WithDurationFn sets the time distribution.
func WithDurationFn(fn DurationFn) Option {
	if fn == nil {
		panic("netgen: WithDurationFn(nil)")
	}
	return func(c *config) { c.durationFn = fn }
}

// WithOneWay inserts each generated flight as a single directed edge.
func WithOneWay() Option {
	return func(c *config) { c.oneWay = true }
}
