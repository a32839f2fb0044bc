package spline

import "iter"

// Window is a read-only view of a contiguous range of a curve's control
// points. Evaluating a window only considers the points in its range.
//
// A window is tied to the state of the curve at the time of its creation. Using
// it after the curve has been modified panics with [ErrStaleWindow].
type Window[T, D any] struct {
	base        *Base[T, D]
	first, last int
	start, end  float64
	version     uint64
}

func (w Window[T, D]) check() {
	if w.base == nil {
		panic("spline: use of zero Window")
	}
	if w.base.version != w.version {
		panic(ErrStaleWindow)
	}
}

// Valid reports whether the window's curve is unchanged since the window was
// created.
func (w Window[T, D]) Valid() bool {
	return w.base != nil && w.base.version == w.version
}

// Start returns the position of the window's first control point.
func (w Window[T, D]) Start() float64 {
	w.check()
	return w.start
}

// End returns the position of the window's last control point.
func (w Window[T, D]) End() float64 {
	w.check()
	return w.end
}

// FirstIndex returns the index, in the curve, of the window's first control
// point.
func (w Window[T, D]) FirstIndex() int {
	w.check()
	return w.first
}

// LastIndex returns the index, in the curve, of the window's last control
// point.
func (w Window[T, D]) LastIndex() int {
	w.check()
	return w.last
}

func (w Window[T, D]) Count() int {
	w.check()
	return w.last - w.first + 1
}

// Point returns the i-th control point of the window.
func (w Window[T, D]) Point(i int) ControlPoint[T, D] {
	w.check()
	if i < 0 || i > w.last-w.first {
		panic("spline: window index out of range")
	}
	return w.base.points[w.first+i]
}

// LowerIndex is like [Base.LowerIndex], restricted to the window. The returned
// index is relative to the curve, not the window.
func (w Window[T, D]) LowerIndex(pos float64) int {
	w.check()
	return w.base.LowerIndexInRange(pos, w.first, w.last)
}

// At evaluates the curve at pos, using only the window's control points.
func (w Window[T, D]) At(pos float64) T {
	w.check()
	checkPosition(pos)
	return w.base.evaluator().evaluate(pos, w.first, w.last)
}

// Points returns an iterator over the positions and values of the window's
// control points.
func (w Window[T, D]) Points() iter.Seq2[float64, T] {
	w.check()
	return func(yield func(float64, T) bool) {
		for _, p := range w.base.points[w.first : w.last+1] {
			w.check()
			if !yield(p.Position, p.Value) {
				return
			}
		}
	}
}
