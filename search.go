package spline

import "math"

// SearchOptions configures [Base.Search]. Zero fields use their defaults.
type SearchOptions struct {
	// Subdivision is the number of samples per round. Defaults to 32.
	Subdivision int
	// MaxRecursion limits the number of refinement rounds. Defaults to 7.
	MaxRecursion int
	// Epsilon is the sample spacing below which the search stops refining.
	// Defaults to DefaultEpsilon.
	Epsilon float64
}

func (opts SearchOptions) withDefaults() SearchOptions {
	if opts.Subdivision <= 0 {
		opts.Subdivision = 32
	}
	if opts.MaxRecursion <= 0 {
		opts.MaxRecursion = 7
	}
	if !(opts.Epsilon > 0) {
		opts.Epsilon = DefaultEpsilon
	}
	return opts
}

// Search looks for the position in [low, high] that minimizes heuristic, which
// is called with a position and the curve's value at that position. A score of
// 0 is a perfect match. NaN scores are ignored.
//
// The search samples evenly spaced positions and then repeatedly narrows the
// window around the best sample. It is a local search and can get stuck in
// a local minimum of a heuristic with several.
//
// Search returns false if [low, high] is empty, the curve has no points, or no
// sample produced a finite score.
func (b *Base[T, D]) Search(heuristic func(pos float64, v T) float64, low, high float64, opts SearchOptions) (float64, bool) {
	checkPosition(low)
	checkPosition(high)
	if !(high > low) || len(b.points) == 0 {
		return 0, false
	}
	opts = opts.withDefaults()
	ev := b.evaluator()
	last := len(b.points) - 1

	var best option[float64]
	bestScore := math.Inf(1)
	lo, hi := low, high
	for depth := 0; depth <= opts.MaxRecursion; depth++ {
		n := opts.Subdivision
		if depth == 0 {
			// At least two samples per control point interval.
			n = max(n, min(1024, len(b.points)*2))
		}
		step := (hi - lo) / float64(n)
		improved := false
		for k := range n {
			x := lo + (float64(k)+0.5)*step
			score := heuristic(x, ev.evaluate(x, 0, last))
			if math.IsNaN(score) {
				continue
			}
			if score < bestScore {
				bestScore = score
				best.set(x)
				improved = true
			}
		}
		if !improved || step < opts.Epsilon {
			break
		}
		x := best.unwrap()
		lo = max(low, x-step)
		hi = min(high, x+step)
	}
	return best.get()
}
