package palette

// Weights scales the terms of the palette cost. All weights are
// non-negative; a zero weight disables its term.
type Weights struct {
	// Energy rewards spreading colors apart under normal vision.
	Energy float64
	// Target penalizes distance from the nearest reference color.
	Target float64
	// Range penalizes unevenness among the pairwise distances.
	Range float64
	// Protanopia, Deuteranopia and Tritanopia each reward spreading
	// colors apart under the corresponding full-severity simulation.
	Protanopia   float64
	Deuteranopia float64
	Tritanopia   float64
}

// DefaultWeights balances mutual separation against proximity to the
// reference colors, with the three dichromacies weighted at a third each.
var DefaultWeights = Weights{
	Energy:       1,
	Target:       1,
	Range:        1,
	Protanopia:   0.33,
	Deuteranopia: 0.33,
	Tritanopia:   0.33,
}

// DefaultTargets is the stock set of reference colors new palettes are
// pulled toward.
var DefaultTargets = []Color{
	MustHex("#9966FF"),
	MustHex("#0055BC"),
	MustHex("#00A1C2"),
	MustHex("#ED6804"),
	MustHex("#B3063D"),
}

// Evaluator scores candidate palettes. Cost is a pure function of the
// palette, the weights, and the target colors; Evaluator holds no other
// state.
type Evaluator struct {
	Weights Weights
	Targets []Color
}

// Distances returns the CIEDE2000 difference between every unordered pair
// of palette colors as seen under d, outer index ascending then inner.
func Distances(colors []Color, d Deficiency) []float64 {
	seen := make([]Color, len(colors))
	for i, c := range colors {
		seen[i] = d.Simulate(c)
	}

	dists := make([]float64, 0, len(seen)*(len(seen)-1)/2)
	for i := 0; i < len(seen); i++ {
		for j := i + 1; j < len(seen); j++ {
			dists = append(dists, ColorDistance(seen[i], seen[j]))
		}
	}

	return dists
}

// DistanceRange returns the spread between the largest and smallest of the
// given distances, or 0 when there are fewer than two.
func DistanceRange(dists []float64) float64 {
	if len(dists) < 2 {
		return 0
	}
	min, max := dists[0], dists[0]
	for _, d := range dists[1:] {
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return max - min
}

// ClosestTarget returns the evaluator's target color nearest to c, ties
// broken by the first minimum encountered.
func (ev *Evaluator) ClosestTarget(c Color) (Color, float64) {
	var closest Color
	best := -1.0
	for _, t := range ev.Targets {
		d := ColorDistance(c, t)
		if best < 0 || d < best {
			best = d
			closest = t
		}
	}
	return closest, best
}

// targetScore averages each palette color's distance to its nearest target.
func (ev *Evaluator) targetScore(colors []Color) float64 {
	if len(ev.Targets) == 0 {
		return 0
	}
	dists := make([]float64, len(colors))
	for i, c := range colors {
		_, dists[i] = ev.ClosestTarget(c)
	}
	return average(dists)
}

// Cost returns the weighted score of a candidate palette. Lower is better:
// the vision scores are 100 minus the mean pairwise distance, so minimizing
// cost maximizes mutual separation under normal vision and all three
// dichromacies, evens out the distance spread, and pulls the palette toward
// the targets.
func (ev *Evaluator) Cost(colors []Color) float64 {
	normal := Distances(colors, Normal)

	energyScore := 100 - average(normal)
	protanScore := 100 - average(Distances(colors, Protanopia))
	deutanScore := 100 - average(Distances(colors, Deuteranopia))
	tritanScore := 100 - average(Distances(colors, Tritanopia))
	rangeScore := DistanceRange(normal)
	targetScore := ev.targetScore(colors)

	return ev.Weights.Energy*energyScore +
		ev.Weights.Target*targetScore +
		ev.Weights.Range*rangeScore +
		ev.Weights.Protanopia*protanScore +
		ev.Weights.Deuteranopia*deutanScore +
		ev.Weights.Tritanopia*tritanScore
}

func average(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
