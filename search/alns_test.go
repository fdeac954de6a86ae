package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routespan/search"
)

// alnsOpts is a short deterministic budget for the destroy/repair driver.
func alnsOpts(seed int64) search.Options {
	opts := search.DefaultOptions()
	opts.MaxIterations = 150
	opts.HistoryLength = 10
	opts.Seed = seed

	return opts
}

func TestALNS_ImprovesWithinBudget(t *testing.T) {
	nodes, _, ev := euclideanInstance(t, 14, 51)
	seed := search.NaiveRoute(nodes)
	seedObj := objective(t, ev, seed)

	al, err := search.NewALNS(ev, looseBounds(), alnsOpts(51))
	require.NoError(t, err)

	res, err := al.Improve(seed, nil)
	require.NoError(t, err)

	assert.Equal(t, search.StopIterationLimit, res.Stopped)
	assert.Equal(t, 150, res.Iterations)
	assert.LessOrEqual(t, res.Metrics.Objective, seedObj)
	assert.NoError(t, ev.Feasible(res.Route))
}

func TestALNS_TrajectoryStaysFeasible(t *testing.T) {
	nodes, _, ev := euclideanInstance(t, 12, 52)

	al, err := search.NewALNS(ev, looseBounds(), alnsOpts(52))
	require.NoError(t, err)

	var checked int
	_, err = al.Improve(search.NaiveRoute(nodes), search.ProgressFunc(func(it search.Iteration) {
		// Every accepted (or kept) working route must be a feasible
		// permutation; repair failures keep the previous one.
		require.NoError(t, ev.Feasible(it.Route), "iteration %d", it.Index)
		checked++
	}))
	require.NoError(t, err)
	assert.Equal(t, 150, checked)
}

func TestALNS_BestNeverWorsens(t *testing.T) {
	nodes, _, ev := euclideanInstance(t, 12, 53)

	al, err := search.NewALNS(ev, looseBounds(), alnsOpts(53))
	require.NoError(t, err)

	var bests []float64
	_, err = al.Improve(search.NaiveRoute(nodes), search.ProgressFunc(func(it search.Iteration) {
		bests = append(bests, it.Best)
	}))
	require.NoError(t, err)

	var i int
	for i = 1; i < len(bests); i++ {
		assert.LessOrEqual(t, bests[i], bests[i-1])
	}
}

func TestALNS_WeightsStayNormalized(t *testing.T) {
	nodes, _, ev := euclideanInstance(t, 12, 54)

	al, err := search.NewALNS(ev, looseBounds(), alnsOpts(54))
	require.NoError(t, err)

	start := al.Weights()
	require.Len(t, start, 3)
	assert.InDelta(t, 1.0/3, start[search.RandomRemoval], 1e-12)

	_, err = al.Improve(search.NaiveRoute(nodes), nil)
	require.NoError(t, err)

	w := al.Weights()
	require.Len(t, w, 3)
	var sum float64
	for _, v := range w {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestALNS_DeterministicForSeed(t *testing.T) {
	run := func() []int {
		nodes, _, ev := euclideanInstance(t, 10, 55)
		al, err := search.NewALNS(ev, looseBounds(), alnsOpts(55))
		require.NoError(t, err)

		res, err := al.Improve(search.NaiveRoute(nodes), nil)
		require.NoError(t, err)

		return res.Route.IDs()
	}

	assert.Equal(t, run(), run())
}

func TestNewALNS_RejectsBadOptions(t *testing.T) {
	_, _, ev := euclideanInstance(t, 6, 6)

	bad := []func(*search.Options){
		func(o *search.Options) { o.MaxIterations = 0; o.MaxDuration = 0 },
		func(o *search.Options) { o.HistoryLength = 0 },
		func(o *search.Options) { o.WeightDecay = 0 },
		func(o *search.Options) { o.WeightDecay = 1.5 },
		func(o *search.Options) { o.RemovalCount = 0; o.RemovalFraction = 0 },
		func(o *search.Options) { o.RemovalCount = -1 },
	}
	for _, mutate := range bad {
		opts := search.DefaultOptions()
		mutate(&opts)

		_, err := search.NewALNS(ev, looseBounds(), opts)
		assert.ErrorIs(t, err, search.ErrBadOptions)
	}
}

// --- adaptive weight plumbing ---

func TestRouletteSelect_MatchesWeights(t *testing.T) {
	w := []float64{0.5, 0.3, 0.2}
	rng := search.RngForStream(99, search.StreamALNS)

	const draws = 30_000
	counts := make([]int, len(w))
	var i int
	for i = 0; i < draws; i++ {
		counts[search.RouletteSelect(w, rng)]++
	}

	for i = 0; i < len(w); i++ {
		assert.InDelta(t, w[i], float64(counts[i])/draws, 0.02, "index %d", i)
	}
}

func TestUpdateWeights_RewardShiftsMass(t *testing.T) {
	w := search.UniformWeights(3)
	search.UpdateWeights(w, 0, 0.1, 1.0)

	var sum float64
	for _, v := range w {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.Greater(t, w[0], w[1])
	assert.Equal(t, w[1], w[2])
}

func TestUpdateWeights_FullDecayResetsToUniform(t *testing.T) {
	w := []float64{0, 0, 0}
	search.UpdateWeights(w, 1, 0.5, 0)

	assert.Equal(t, search.UniformWeights(3), w)
}

func TestDestroyKind_Names(t *testing.T) {
	assert.Equal(t, "random-removal", search.RandomRemoval.String())
	assert.Equal(t, "path-removal", search.PathRemoval.String())
	assert.Equal(t, "worst-removal", search.WorstRemoval.String())
}
