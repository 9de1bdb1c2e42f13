package palette

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeRejectsWrongStartSize(t *testing.T) {
	o := New()

	colors, e := o.Optimize(3, []Color{{0, 0, 0}, {1, 1, 1}})
	require.Error(t, e)
	assert.Nil(t, colors)

	var ce *ConfigError
	require.True(t, errors.As(e, &ce))
	assert.Equal(t, 3, ce.Want)
	assert.Equal(t, 2, ce.Got)
}

func TestIterationsSchedule(t *testing.T) {
	o := &Optimizer{Temperature: 8, CoolingRate: 0.5, Cutoff: 1}
	// 8 -> 4 -> 2 -> 1, stopping once the temperature reaches the cutoff
	assert.Equal(t, 3, o.Iterations())
}

func TestOptimizeRunsFullSchedule(t *testing.T) {
	o := New()
	o.Rand = rand.New(rand.NewSource(1))

	start := []Color{{10, 10, 10}, {200, 50, 50}, {50, 200, 50}}
	ev := &Evaluator{Weights: o.Weights, Targets: o.Targets}
	startCost := ev.Cost(start)

	iterations := 0
	lastCost := startCost
	o.Progress = func(iteration int, cost float64) {
		assert.Equal(t, iterations, iteration)
		// acceptance only on strict improvement, so cost never climbs
		assert.LessOrEqual(t, cost, lastCost)
		iterations++
		lastCost = cost
	}

	final, e := o.Optimize(3, start)
	require.NoError(t, e)

	// the schedule alone bounds the run, independent of cost
	assert.Equal(t, o.Iterations(), iterations)

	require.Len(t, final, 3)
	for _, c := range final {
		assertInGamut(t, c)
	}

	assert.LessOrEqual(t, ev.Cost(final), startCost)
}

func TestOptimizeGeneratesRandomStart(t *testing.T) {
	o := New()
	o.Rand = rand.New(rand.NewSource(2))
	// a short schedule is enough to exercise initialization
	o.Temperature = 10
	o.CoolingRate = 0.5
	o.Cutoff = 1

	final, e := o.Optimize(4, nil)
	require.NoError(t, e)
	require.Len(t, final, 4)
	for _, c := range final {
		assertInGamut(t, c)
	}
}

func TestOptimizeIsDeterministicGivenSeed(t *testing.T) {
	run := func() []Color {
		o := New()
		o.Rand = rand.New(rand.NewSource(99))
		o.Temperature = 50
		o.CoolingRate = 0.5
		o.Cutoff = 1

		final, e := o.Optimize(3, nil)
		require.NoError(t, e)
		return final
	}

	assert.Equal(t, run(), run())
}

func TestOptimizeDoesNotMutateStart(t *testing.T) {
	o := New()
	o.Rand = rand.New(rand.NewSource(5))
	o.Temperature = 10
	o.CoolingRate = 0.5
	o.Cutoff = 1

	start := []Color{{10, 10, 10}, {200, 50, 50}, {50, 200, 50}}
	snapshot := append([]Color(nil), start...)

	_, e := o.Optimize(3, start)
	require.NoError(t, e)
	assert.Equal(t, snapshot, start)
}
