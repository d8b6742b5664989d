package rank_test

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyplan/netgen"
	"github.com/katalvlaran/skyplan/pathfind"
	"github.com/katalvlaran/skyplan/rank"
)

func path(cost float64, dur int, stops ...string) pathfind.Path {
	return pathfind.Path{Stops: stops, Cost: cost, Duration: dur}
}

func TestParseCriterion(t *testing.T) {
	cases := map[string]rank.Criterion{
		"Cost": rank.ByCost,
		"Time": rank.ByDuration,
		"cost": rank.ByDuration,
		"T":    rank.ByDuration,
		"":     rank.ByDuration,
		"Cots": rank.ByDuration,
	}
	for token, want := range cases {
		assert.Equal(t, want, rank.ParseCriterion(token), "token %q", token)
	}
}

func TestCriterion_String(t *testing.T) {
	assert.Equal(t, "Cost", rank.ByCost.String())
	assert.Equal(t, "Time", rank.ByDuration.String())
}

func TestCriterion_JSON(t *testing.T) {
	var body struct {
		C rank.Criterion `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"c":"Cost"}`), &body))
	assert.Equal(t, rank.ByCost, body.C)

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"c":"Cost"}`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`{"c":"Whatever"}`), &body))
	assert.Equal(t, rank.ByDuration, body.C)
}

func TestRank_ByCost(t *testing.T) {
	in := []pathfind.Path{
		path(200, 120, "A", "C"),
		path(150, 90, "A", "B", "C"),
	}
	got := rank.Rank(in, rank.ByCost)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"A", "B", "C"}, got[0].Stops)
	assert.Equal(t, []string{"A", "C"}, got[1].Stops)
	// input untouched
	assert.Equal(t, []string{"A", "C"}, in[0].Stops)
}

func TestRank_ByDuration(t *testing.T) {
	in := []pathfind.Path{
		path(10, 300, "A", "X", "C"),
		path(500, 30, "A", "C"),
		path(20, 90, "A", "B", "C"),
	}
	got := rank.Rank(in, rank.ByDuration)

	require.Len(t, got, 3)
	assert.Equal(t, []int{30, 90, 300}, []int{got[0].Duration, got[1].Duration, got[2].Duration})
}

func TestRank_StableOnTies(t *testing.T) {
	in := []pathfind.Path{
		path(100, 60, "first"),
		path(50, 60, "second"),
		path(100, 10, "third"),
		path(100, 60, "fourth"),
	}

	byCost := rank.Rank(in, rank.ByCost, rank.WithLimit(4))
	assert.Equal(t, "second", byCost[0].Stops[0])
	assert.Equal(t, "first", byCost[1].Stops[0])
	assert.Equal(t, "third", byCost[2].Stops[0])
	assert.Equal(t, "fourth", byCost[3].Stops[0])

	byTime := rank.Rank(in, rank.ByDuration, rank.WithLimit(4))
	assert.Equal(t, "third", byTime[0].Stops[0])
	assert.Equal(t, "first", byTime[1].Stops[0])
	assert.Equal(t, "second", byTime[2].Stops[0])
	assert.Equal(t, "fourth", byTime[3].Stops[0])
}

func TestRank_Truncates(t *testing.T) {
	in := []pathfind.Path{path(5, 5), path(4, 4), path(3, 3), path(2, 2), path(1, 1)}

	assert.Len(t, rank.Rank(in, rank.ByCost), rank.DefaultLimit)
	assert.Len(t, rank.Rank(in, rank.ByCost, rank.WithLimit(1)), 1)
	assert.Len(t, rank.Rank(in, rank.ByCost, rank.WithLimit(0)), rank.DefaultLimit)
	assert.Len(t, rank.Rank(in[:2], rank.ByCost), 2)
}

func TestRank_Empty(t *testing.T) {
	got := rank.Rank(nil, rank.ByCost)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// TestRank_SortedPrefixOfEnumeration checks the ranking properties on a real
// enumeration: ascending, bounded, and equal to the best entries of the input.
func TestRank_SortedPrefixOfEnumeration(t *testing.T) {
	n, err := netgen.Build([]netgen.Option{
		netgen.WithSeed(5),
		netgen.WithCostFn(netgen.UniformCost(10, 100)),
		netgen.WithDurationFn(netgen.UniformDuration(10, 100)),
	}, netgen.Complete(6))
	require.NoError(t, err)
	paths, err := pathfind.FindAll(n, "N0", "N5")
	require.NoError(t, err)

	got := rank.Rank(paths, rank.ByCost)
	require.Len(t, got, rank.DefaultLimit)
	assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Cost < got[j].Cost }))

	costs := make([]float64, len(paths))
	for i, p := range paths {
		costs[i] = p.Cost
	}
	sort.Float64s(costs)
	for i := range got {
		assert.Equal(t, costs[i], got[i].Cost)
	}
}
