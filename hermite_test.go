package spline

import (
	"maps"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func velocities[T any](s *HermiteSpline[T]) []T {
	var out []T
	for p := range s.ControlPoints() {
		out = append(out, p.Data.Velocity)
	}
	return out
}

var squares = map[float64]float64{0: 0, 1: 1, 2: 4, 3: 9}

func TestHermiteEndpoints(t *testing.T) {
	s := NewHermiteSpline[float64]()
	s.Add(0, 0, 0)
	s.Add(1, 1, 0)
	diff(t, 0.0, s.At(0))
	diff(t, 1.0, s.At(1))
	diff(t, 0.5, s.At(0.5))
	diff(t, 0.0, s.At(-1))
	diff(t, 1.0, s.At(2))
}

func TestHermitePassesThroughPoints(t *testing.T) {
	s := CatmullRom(maps.All(squares), false)
	for pos, v := range squares {
		diff(t, v, s.At(pos))
	}
}

func TestCardinal(t *testing.T) {
	diff(t, []float64{0, 2, 4, 0}, velocities(CatmullRom(maps.All(squares), false)))
	diff(t, []float64{0, 2, 4, 0}, velocities(Cardinal(maps.All(squares), 0, false)))
	diff(t, []float64{0, 1, 2, 0}, velocities(Cardinal(maps.All(squares), 0.5, false)))
	diff(t, []float64{0, 0, 0, 0}, velocities(Cardinal(maps.All(squares), 1, false)))
	diff(t, []float64{-4, 2, 4, -2}, velocities(CatmullRom(maps.All(squares), true)))
}

func TestConvertToCardinalTooFewPoints(t *testing.T) {
	s := NewHermiteSpline[float64]()
	s.Add(0, 0, 3)
	s.Add(1, 1, 5)
	v := s.Version()
	s.ConvertToCardinal(0, true)
	diff(t, []float64{3, 5}, velocities(s))
	diff(t, v, s.Version())

	// Without looping there are no interior points to update.
	s.ConvertToCardinal(0, false)
	diff(t, []float64{3, 5}, velocities(s))
}

func TestCardinalFromCurve(t *testing.T) {
	c := linearCurve(0, 0, 1, 1, 2, 4, 3, 9)
	s := CatmullRom(c.Points(), false)
	diff(t, 4, s.Count())
	diff(t, []float64{0, 2, 4, 0}, velocities(s))
}

func TestHermiteSetters(t *testing.T) {
	s := NewHermiteSpline[float64]()
	s.Add(0, 0, 1)
	s.Add(1, 1, 1)
	s.SetValueAtPosition(1, 2)
	diff(t, 1.0, s.VelocityAtIndex(1))
	diff(t, 2.0, s.ValueAtIndex(1))

	s.SetValueAtPosition(2, 3)
	diff(t, 0.0, s.VelocityAtIndex(2))

	s.SetVelocityAtIndex(0, 7)
	diff(t, 7.0, s.VelocityAtIndex(0))
}

func TestHermiteClamp(t *testing.T) {
	s := CatmullRom(maps.All(squares), false)
	want := []float64{s.At(0.5), s.At(2.5)}
	s.Clamp(0.5, 2.5)
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, want, []float64{s.At(0.5), s.At(2.5)}, approx)
	diff(t, []float64{0.5, 1, 2, 2.5}, positions(&s.Base))
	// The new end points take the slope of the segments they cut, in units of
	// the now shorter segments.
	diff(t, 0.5, s.VelocityAtIndex(0), approx)
	diff(t, 3.25, s.VelocityAtIndex(3), approx)
}

func TestHermiteClampKeepsShape(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)

	s := NewHermiteSpline[float64]()
	s.Add(0, 0, 3)
	s.Add(1, 1, 3)
	want := []float64{s.At(0.5), s.At(0.75), s.At(0.9)}
	s.Clamp(0.5, 1)
	diff(t, []float64{0.5, 1}, positions(&s.Base))
	diff(t, want, []float64{s.At(0.5), s.At(0.75), s.At(0.9)}, approx)

	c := CatmullRom(maps.All(squares), false)
	want = []float64{c.At(1.2), c.At(1.5), c.At(1.8)}
	c.Clamp(1.2, 1.8)
	diff(t, []float64{1.2, 1.8}, positions(&c.Base), approx)
	diff(t, want, []float64{c.At(1.2), c.At(1.5), c.At(1.8)}, approx)
}

func TestHermiteIntegers(t *testing.T) {
	s := CatmullRom(maps.All(map[float64]int16{0: 300, 1: 200, 2: 100}), false)
	diff(t, []int16{0, -100, 0}, velocities(s))
	diff(t, int16(263), s.At(0.5))

	if r := panics(func() { NewHermiteSpline[uint8]() }); r == nil {
		t.Error("NewHermiteSpline didn't panic for an unsigned type")
	}
}

func TestHermiteVec2(t *testing.T) {
	s := NewHermiteSpline[Vec2]()
	s.Add(0, Vec(0, 0), Vec(4, 0))
	s.Add(1, Vec(4, 4), Vec(4, 0))
	diff(t, Vec(2, 2), s.At(0.5), cmpopts.EquateApprox(0, 1e-12))
}

func TestHermiteClone(t *testing.T) {
	s := CatmullRom(maps.All(squares), false)
	c := s.Clone()
	c.SetVelocityAtIndex(0, 100)
	diff(t, 0.0, s.VelocityAtIndex(0))
	diff(t, s.At(1.5), c.At(1.5))
}

func TestExtrema(t *testing.T) {
	s := NewHermiteSpline[float64]()
	s.Add(0, 0, 0)
	s.Add(1, 1, 0)
	diff(t, []float64(nil), Extrema(s))

	s = NewHermiteSpline[float64]()
	s.Add(0, 0, 2)
	s.Add(1, 0, -2)
	s.Add(2, 0, 2)
	diff(t, []float64{0.5, 1.5}, Extrema(s), cmpopts.EquateApprox(0, 1e-12))
}
