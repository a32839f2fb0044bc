package spline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// panics returns the value fn panicked with, or nil.
func panics(fn func()) (r any) {
	defer func() { r = recover() }()
	fn()
	return nil
}

func positions[T, D any](b *Base[T, D]) []float64 {
	var out []float64
	for p := range b.ControlPoints() {
		out = append(out, p.Position)
	}
	return out
}

func linearCurve(pts ...float64) *Curve[float64] {
	c := NewCurve[float64]()
	for i := 0; i+1 < len(pts); i += 2 {
		c.Add(pts[i], pts[i+1])
	}
	return c
}
