package spline

import (
	"math"
	"testing"
)

func TestSearchLinear(t *testing.T) {
	c := linearCurve(0, 0, 10, 10)
	pos, ok := c.Search(func(_, v float64) float64 {
		return math.Abs(v - 7)
	}, 0, 10, SearchOptions{})
	if !ok {
		t.Fatal("search failed")
	}
	if math.Abs(pos-7) > DefaultEpsilon {
		t.Errorf("got %v, want 7±%v", pos, DefaultEpsilon)
	}
}

func TestSearchSubrange(t *testing.T) {
	c := linearCurve(0, 0, 10, 10)
	// The target is outside of the searched range; the best we can do is its
	// upper end.
	pos, ok := c.Search(func(_, v float64) float64 {
		return math.Abs(v - 7)
	}, 1, 3, SearchOptions{Epsilon: 1e-6})
	if !ok {
		t.Fatal("search failed")
	}
	if pos > 3 || 3-pos > 1e-5 {
		t.Errorf("got %v, want just below 3", pos)
	}
}

func TestSearchMaximum(t *testing.T) {
	s := CatmullRom(linearCurve(0, 0, 1, 1, 2, 0).Points(), false)
	pos, ok := s.Search(func(_, v float64) float64 { return -v }, s.Start(), s.End(), SearchOptions{})
	if !ok {
		t.Fatal("search failed")
	}
	if math.Abs(pos-1) > 1e-3 {
		t.Errorf("got %v, want 1", pos)
	}
}

func TestSearchVec2(t *testing.T) {
	c := NewCurve[Vec2]()
	c.Add(0, Vec(0, 0))
	c.Add(1, Vec(10, 0))
	c.Add(2, Vec(10, 10))
	target := Vec(10, 4)
	pos, ok := c.Search(func(_ float64, v Vec2) float64 {
		return v.Sub(target).Hypot()
	}, c.Start(), c.End(), SearchOptions{Subdivision: 8, MaxRecursion: 20})
	if !ok {
		t.Fatal("search failed")
	}
	if math.Abs(pos-1.4) > DefaultEpsilon {
		t.Errorf("got %v, want 1.4", pos)
	}
}

func TestSearchDegenerate(t *testing.T) {
	c := linearCurve(0, 0, 10, 10)
	score := func(_, v float64) float64 { return v }
	if _, ok := c.Search(score, 5, 5, SearchOptions{}); ok {
		t.Error("search of an empty range succeeded")
	}
	if _, ok := c.Search(score, 6, 5, SearchOptions{}); ok {
		t.Error("search of an inverted range succeeded")
	}
	if _, ok := NewCurve[float64]().Search(score, 0, 1, SearchOptions{}); ok {
		t.Error("search of an empty curve succeeded")
	}
	nan := func(_, _ float64) float64 { return math.NaN() }
	if _, ok := c.Search(nan, 0, 10, SearchOptions{}); ok {
		t.Error("search with only NaN scores succeeded")
	}
	inf := func(_, _ float64) float64 { return math.Inf(1) }
	if _, ok := c.Search(inf, 0, 10, SearchOptions{}); ok {
		t.Error("search with only infinite scores succeeded")
	}
}
