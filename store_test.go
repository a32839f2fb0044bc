package spline

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSortedness(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	c := NewCurve[float64]()
	for i := range 200 {
		c.Add(math.Round(r.Float64()*1000)/10, float64(i))
		pos := positions(&c.Base)
		for j := 1; j < len(pos); j++ {
			if !(pos[j]-pos[j-1] > DefaultEpsilon) {
				t.Fatalf("positions not strictly ascending after %d insertions: %v", i+1, pos)
			}
		}
	}
}

func TestReplaceWithinEpsilon(t *testing.T) {
	c := NewCurve[float64]()
	c.Add(1, 5)
	c.Add(1+DefaultEpsilon/2, 6)
	diff(t, 1, c.Count())
	diff(t, 6.0, c.ValueAtIndex(0))
	diff(t, 1.0, c.PositionAtIndex(0))
}

func TestSentinelAndClear(t *testing.T) {
	c := linearCurve(3, 7)
	c.RemoveAtIndex(0)
	diff(t, 1, c.Count())
	diff(t, 0.0, c.PositionAtIndex(0))
	diff(t, 0.0, c.ValueAtIndex(0))
	diff(t, 0.0, c.At(12))

	c.Add(5, 1)
	c.Clear()
	diff(t, 0, c.Count())
	if r := panics(func() { c.At(0) }); r == nil {
		t.Error("evaluating an empty curve didn't panic")
	}
}

func TestLowerIndex(t *testing.T) {
	c := linearCurve(-1, 0, -0.5, 1, 0, 2, 1, 3, 2, 4, 4, 5, 32, 6)
	tests := []struct {
		pos  float64
		want int
	}{
		{-2, 0},
		{-1, 0},
		{-0.75, 0},
		{-0.5, 1},
		{0, 2},
		{0.5, 2},
		{1, 3},
		{3.99, 4},
		{4, 5},
		{31, 5},
		{32, 6},
		{64, 6},
	}
	for _, tt := range tests {
		if got := c.LowerIndex(tt.pos); got != tt.want {
			t.Errorf("LowerIndex(%v) = %d, want %d", tt.pos, got, tt.want)
		}
	}

	diff(t, 2, c.LowerIndexInRange(-5, 2, 4))
	diff(t, 4, c.LowerIndexInRange(20, 2, 4))
	diff(t, 3, c.LowerIndexInRange(1.5, 2, 4))
}

func TestFindNearestPoint(t *testing.T) {
	c := linearCurve(0, 0, 1, 1, 3, 3)
	for _, tt := range []struct {
		pos     float64
		index   int
		nearest float64
	}{
		{-5, 0, 0},
		{0.4, 0, 0},
		{0.6, 1, 1},
		{1.9, 1, 1},
		{2.1, 2, 3},
		{10, 2, 3},
	} {
		i, p, ok := c.FindNearestPoint(tt.pos)
		if !ok || i != tt.index || p != tt.nearest {
			t.Errorf("FindNearestPoint(%v) = (%d, %v, %t), want (%d, %v, true)", tt.pos, i, p, ok, tt.index, tt.nearest)
		}
	}

	if _, _, ok := NewCurve[float64]().FindNearestPoint(0); ok {
		t.Error("FindNearestPoint succeeded on an empty curve")
	}
}

func TestRemoveAtPosition(t *testing.T) {
	c := linearCurve(0, 0, 1, 10, 2, 20)
	if c.RemoveAtPosition(1.5, DefaultEpsilon) {
		t.Error("removed a point that doesn't exist")
	}
	if !c.RemoveAtPosition(1+DefaultEpsilon/2, DefaultEpsilon) {
		t.Error("didn't remove point within epsilon")
	}
	diff(t, []float64{0, 2}, positions(&c.Base))
	diff(t, 10.0, c.At(1))
}

func TestVersionAndOnChange(t *testing.T) {
	c := NewCurve[float64]()
	var calls int
	cancel := c.OnChange(func() { calls++ })

	v0 := c.Version()
	c.Add(0, 0)
	c.Add(10, 100)
	c.SetValueAtIndex(1, 50)
	diff(t, 3, calls)
	if c.Version() <= v0 {
		t.Errorf("version didn't advance: %d -> %d", v0, c.Version())
	}

	c.Clamp(2, 8)
	diff(t, 4, calls)

	cancel()
	c.Add(5, 5)
	diff(t, 4, calls)
}

func TestClamp(t *testing.T) {
	c := linearCurve(0, 0, 5, 50, 10, 100)
	want2, want8 := c.At(2), c.At(8)
	c.Clamp(2, 8)

	diff(t, []float64{2, 5, 8}, positions(&c.Base))
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, want2, c.At(2), approx)
	diff(t, want8, c.At(8), approx)
	diff(t, 2.0, c.Start())
	diff(t, 8.0, c.End())
}

func TestClampKeepsInterpolator(t *testing.T) {
	c := NewCurve[float64]()
	ip := InterpolatorsFor[float64]()
	c.AddWithInterpolator(0, 0, ip.Null)
	c.Add(10, 10)
	c.Clamp(2, 8)
	if c.DataAtIndex(0).Interpolator == nil {
		t.Error("clamped start point lost its interpolator")
	}
	diff(t, 0.0, c.At(5))
}

func TestEstimateExtents(t *testing.T) {
	c := linearCurve(0, 1, 1, 3, 2, 10)
	for _, detail := range []int{1, 7, 100} {
		lo, hi, ok := c.EstimateExtents(nil, detail)
		if !ok {
			t.Fatal("EstimateExtents failed")
		}
		diff(t, 1.0, lo)
		diff(t, 10.0, hi)
	}

	if r := panics(func() { c.EstimateExtents(nil, 0) }); r == nil {
		t.Error("detail 0 didn't panic")
	}
	if r := panics(func() { c.EstimateExtents(nil, 101) }); r == nil {
		t.Error("detail 101 didn't panic")
	}
	if _, _, ok := NewCurve[float64]().EstimateExtents(nil, 10); ok {
		t.Error("EstimateExtents succeeded on an empty curve")
	}
}

func TestEstimateExtentsFunc(t *testing.T) {
	c := NewCurve[Vec2]()
	c.Add(0, Vec(0, 5))
	c.Add(1, Vec(4, -1))
	c.Add(2, Vec(2, 3))
	lo, hi, ok := c.EstimateExtentsFunc(func(v, lo, hi Vec2) (Vec2, Vec2) {
		return lo.Min(v), hi.Max(v)
	}, 10)
	if !ok {
		t.Fatal("EstimateExtentsFunc failed")
	}
	diff(t, Vec(0, -1), lo)
	diff(t, Vec(4, 5), hi)
}

func TestWindow(t *testing.T) {
	c := linearCurve(0, 0, 1, 10, 2, 40, 3, 90)
	w := c.Window(0.5, 1.5)
	diff(t, 0, w.FirstIndex())
	diff(t, 2, w.LastIndex())
	diff(t, 3, w.Count())
	diff(t, 0.0, w.Start())
	diff(t, 2.0, w.End())
	diff(t, c.At(1.25), w.At(1.25))
	// Outside the window, the window's last point holds.
	diff(t, 40.0, w.At(2.5))
	diff(t, 1, w.LowerIndex(1.5))

	var got []float64
	for pos := range w.Points() {
		got = append(got, pos)
	}
	diff(t, []float64{0, 1, 2}, got)

	w = c.WindowByIndex(1, 1)
	diff(t, 10.0, w.At(100))

	c.Add(5, 0)
	if w.Valid() {
		t.Error("window still valid after modification")
	}
	if r := panics(func() { w.At(1) }); r != ErrStaleWindow {
		t.Errorf("got panic %v, want %v", r, ErrStaleWindow)
	}
}

func TestCopyTo(t *testing.T) {
	src := linearCurve(0, 0, 2, 20)
	dst := linearCurve(1, 100, 2, 200)

	src.CopyTo(dst, false)
	diff(t, []float64{0, 1, 2}, positions(&dst.Base))
	diff(t, 20.0, dst.At(2))
	diff(t, 100.0, dst.At(1))

	src.CopyTo(dst, true)
	diff(t, []float64{0, 2}, positions(&dst.Base))

	clone := src.Clone()
	clone.Add(1, 5)
	diff(t, 2, src.Count())
	diff(t, 3, clone.Count())
}

func TestInvalidPositions(t *testing.T) {
	c := linearCurve(0, 0, 1, 1)
	for _, pos := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if r := panics(func() { c.Add(pos, 0) }); r == nil {
			t.Errorf("adding a point at %v didn't panic", pos)
		}
		if r := panics(func() { c.At(pos) }); r == nil {
			t.Errorf("evaluating at %v didn't panic", pos)
		}
	}
}
