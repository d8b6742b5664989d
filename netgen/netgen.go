package netgen

import (
	"fmt"

	"github.com/katalvlaran/skyplan/network"
)

const (
	methodChain        = "Chain"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minChainLocations    = 2
	minCycleLocations    = 3
	minStarLocations     = 2
	minCompleteLocations = 1
	minSparseLocations   = 1
)

// Constructor applies a deterministic mutation to n using the resolved config.
type Constructor func(n *network.Network, cfg config) error

// Build creates a network, resolves opts and applies cons in order.
// Constructor errors are wrapped with "Build: %w"; no partial cleanup is done.
func Build(opts []Option, cons ...Constructor) (*network.Network, error) {
	n := network.New()
	cfg := newConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(n, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return n, nil
}

// flight inserts one generated flight, in both directions unless oneWay.
func flight(n *network.Network, cfg config, from, to string) {
	cost := cfg.costFn(cfg.rng)
	dur := cfg.durationFn(cfg.rng)
	n.AddEdge(from, to, cost, dur)
	if !cfg.oneWay {
		n.AddEdge(to, from, cost, dur)
	}
}

// Chain builds N0 - N1 - … - N(k-1).
func Chain(k int) Constructor {
	return func(n *network.Network, cfg config) error {
		if k < minChainLocations {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodChain, k, minChainLocations, ErrTooFewLocations)
		}
		for i := 0; i < k-1; i++ {
			flight(n, cfg, cfg.idFn(i), cfg.idFn(i+1))
		}

		return nil
	}
}

// Cycle builds a ring of k locations, closing k-1 → 0.
func Cycle(k int) Constructor {
	return func(n *network.Network, cfg config) error {
		if k < minCycleLocations {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodCycle, k, minCycleLocations, ErrTooFewLocations)
		}
		for i := 0; i < k; i++ {
			flight(n, cfg, cfg.idFn(i), cfg.idFn((i+1)%k))
		}

		return nil
	}
}

// Star builds a hub (index 0) connected to k-1 spokes.
func Star(k int) Constructor {
	return func(n *network.Network, cfg config) error {
		if k < minStarLocations {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodStar, k, minStarLocations, ErrTooFewLocations)
		}
		hub := cfg.idFn(0)
		for i := 1; i < k; i++ {
			flight(n, cfg, hub, cfg.idFn(i))
		}

		return nil
	}
}

// Complete connects every unordered pair {i,j}, i<j, once (pair order by (i,j)).
// A single location yields a network with one isolated location.
func Complete(k int) Constructor {
	return func(n *network.Network, cfg config) error {
		if k < minCompleteLocations {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodComplete, k, minCompleteLocations, ErrTooFewLocations)
		}
		ids := make([]string, k)
		for i := range ids {
			ids[i] = cfg.idFn(i)
			n.UpsertLocation(ids[i])
		}
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				flight(n, cfg, ids[i], ids[j])
			}
		}

		return nil
	}
}

// RandomSparse includes each pair {i,j}, i<j, with probability p.
// p in (0,1) requires a random source.
func RandomSparse(k int, p float64) Constructor {
	return func(n *network.Network, cfg config) error {
		if k < minSparseLocations {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodRandomSparse, k, minSparseLocations, ErrTooFewLocations)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		for i := 0; i < k; i++ {
			n.UpsertLocation(cfg.idFn(i))
		}
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if p == 1 || (p > 0 && cfg.rng.Float64() < p) {
					flight(n, cfg, cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}
