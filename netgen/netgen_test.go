package netgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyplan/netgen"
)

func TestSymbolIDFn(t *testing.T) {
	assert.Equal(t, "A", netgen.SymbolIDFn(0))
	assert.Equal(t, "Z", netgen.SymbolIDFn(25))
	assert.Equal(t, "AA", netgen.SymbolIDFn(26))
	assert.Equal(t, "AB", netgen.SymbolIDFn(27))
}

func TestChain_Bidirectional(t *testing.T) {
	n, err := netgen.Build(nil, netgen.Chain(3))
	require.NoError(t, err)

	assert.Equal(t, 3, n.LocationCount())
	assert.Equal(t, 4, n.EdgeCount())
	assert.Len(t, n.Neighbors("N1"), 2)
}

func TestCycle_OneWay(t *testing.T) {
	n, err := netgen.Build([]netgen.Option{netgen.WithOneWay(), netgen.WithIDScheme(netgen.SymbolIDFn)}, netgen.Cycle(4))
	require.NoError(t, err)

	assert.Equal(t, 4, n.EdgeCount())
	require.Len(t, n.Neighbors("D"), 1)
	assert.Equal(t, "A", n.Neighbors("D")[0].To)
}

func TestComplete_EdgeCount(t *testing.T) {
	n, err := netgen.Build(nil, netgen.Complete(5))
	require.NoError(t, err)

	// 10 pairs, both directions
	assert.Equal(t, 20, n.EdgeCount())
}

func TestStar_CostsAndDurations(t *testing.T) {
	opts := []netgen.Option{
		netgen.WithCostFn(netgen.ConstantCost(42.5)),
		netgen.WithDurationFn(netgen.ConstantDuration(7)),
	}
	n, err := netgen.Build(opts, netgen.Star(4))
	require.NoError(t, err)

	for _, e := range n.Neighbors("N0") {
		assert.Equal(t, 42.5, e.Cost)
		assert.Equal(t, 7, e.Duration)
	}
	assert.Len(t, n.Neighbors("N0"), 3)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() []string {
		opts := []netgen.Option{
			netgen.WithSeed(7),
			netgen.WithCostFn(netgen.UniformCost(50, 500)),
			netgen.WithDurationFn(netgen.UniformDuration(30, 300)),
		}
		n, err := netgen.Build(opts, netgen.RandomSparse(8, 0.4))
		require.NoError(t, err)
		var out []string
		for _, loc := range n.Locations() {
			for _, e := range n.Neighbors(loc) {
				out = append(out, loc+">"+e.To)
			}
		}
		return out
	}

	assert.Equal(t, build(), build())
}

func TestConstructorErrors(t *testing.T) {
	_, err := netgen.Build(nil, netgen.Chain(1))
	assert.ErrorIs(t, err, netgen.ErrTooFewLocations)

	_, err = netgen.Build(nil, netgen.Cycle(2))
	assert.ErrorIs(t, err, netgen.ErrTooFewLocations)

	_, err = netgen.Build(nil, netgen.RandomSparse(4, 1.5))
	assert.ErrorIs(t, err, netgen.ErrInvalidProbability)

	_, err = netgen.Build(nil, netgen.RandomSparse(4, 0.5))
	assert.ErrorIs(t, err, netgen.ErrNeedRandSource)

	_, err = netgen.Build(nil, nil)
	assert.ErrorIs(t, err, netgen.ErrConstructFailed)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { netgen.WithIDScheme(nil) })
	assert.Panics(t, func() { netgen.WithRand(nil) })
	assert.Panics(t, func() { netgen.WithCostFn(nil) })
	assert.Panics(t, func() { netgen.WithDurationFn(nil) })
}
