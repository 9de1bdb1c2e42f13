package palette

import (
	"fmt"
	"math/rand"
	"time"
)

// ConfigError indicates a starting palette whose length does not match the
// requested palette size.
type ConfigError struct {
	Want, Got int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("palette: expected %d starting colors, got %d", e.Want, e.Got)
}

// Optimizer searches for a palette of mutually distinguishable colors by
// greedy local search: one color is perturbed at a time and the change is
// kept only when it strictly lowers the cost. The temperature never drives
// acceptance; it only bounds the number of outer iterations, so a run
// always terminates after the same, cost-independent number of passes.
type Optimizer struct {
	Weights Weights
	Targets []Color

	// Temperature decays by CoolingRate after every outer iteration;
	// the run stops once it falls to Cutoff or below.
	Temperature float64
	CoolingRate float64
	Cutoff      float64

	// Rand is the randomness source for initial colors and perturbations.
	// A nil Rand is seeded from the clock.
	Rand *rand.Rand

	// Progress, when set, is called after each outer iteration with the
	// iteration index and the current palette cost.
	Progress func(iteration int, cost float64)
}

// New returns an Optimizer with the stock weights, targets, and schedule.
func New() *Optimizer {
	return &Optimizer{
		Weights:     DefaultWeights,
		Targets:     DefaultTargets,
		Temperature: 1000,
		CoolingRate: 0.99,
		Cutoff:      0.0001,
	}
}

// Iterations returns the number of outer iterations the schedule allows.
func (o *Optimizer) Iterations() int {
	n := 0
	for t := o.Temperature; t > o.Cutoff; t *= o.CoolingRate {
		n++
	}
	return n
}

// Optimize searches for n colors, starting from the given palette or, when
// start is empty, from n colors drawn uniformly at random. A non-empty
// start of the wrong length fails with *ConfigError before any work is
// done. The returned palette's cost never exceeds the starting palette's.
func (o *Optimizer) Optimize(n int, start []Color) ([]Color, error) {
	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var colors []Color
	switch {
	case len(start) == 0:
		colors = make([]Color, n)
		for i := range colors {
			colors[i] = Random(rng)
		}
	case len(start) != n:
		return nil, &ConfigError{Want: n, Got: len(start)}
	default:
		colors = append([]Color(nil), start...)
	}

	ev := &Evaluator{Weights: o.Weights, Targets: o.Targets}

	for idx, temperature := 0, o.Temperature; temperature > o.Cutoff; idx++ {
		for i := range colors {
			candidate := append([]Color(nil), colors...)
			candidate[i] = nearby(rng, candidate[i])

			if ev.Cost(candidate) < ev.Cost(colors) {
				colors[i] = candidate[i]
			}
		}

		if o.Progress != nil {
			o.Progress(idx, ev.Cost(colors))
		}

		temperature *= o.CoolingRate
	}

	return colors, nil
}
