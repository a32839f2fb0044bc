package spline

import (
	"math"
	"slices"
	"sort"
	"testing"
)

func checkRoots(t *testing.T, roots, expected []float64) {
	t.Helper()
	roots = slices.DeleteFunc(slices.Clone(roots), func(x float64) bool { return math.IsInf(x, 0) })
	sort.Float64s(roots)
	roots = slices.Compact(roots)
	if len(roots) != len(expected) {
		t.Fatalf("got %d roots, expected %d", len(roots), len(expected))
	}
	const epsilon = 1e-12
	sort.Float64s(expected)
	for i := range roots {
		if math.Abs(roots[i]-expected[i]) > epsilon {
			t.Errorf("root %d is %v but we expected %v", i, roots[i], expected[i])
		}
	}
}

func TestQuadraticRoots(t *testing.T) {
	checkRoots(t, quadraticRoots(-5.0, 0.0, 1.0), []float64{-math.Sqrt(5), math.Sqrt(5)})
	checkRoots(t, quadraticRoots(5.0, 0.0, 1.0), []float64{})
	checkRoots(t, quadraticRoots(5.0, 1.0, 0.0), []float64{-5.0})
	checkRoots(t, quadraticRoots(1.0, 2.0, 1.0), []float64{-1.0})
	checkRoots(t, quadraticRoots(0.0, 0.0, 1.0), []float64{0})
	checkRoots(t, quadraticRoots(0.0, 0.0, 0.0), []float64{})
}
