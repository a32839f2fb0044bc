package spline

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"honnef.co/go/spline/arith"
)

// DefaultEpsilon is the tolerance used when matching positions. Two control
// points closer than this are considered to be at the same position.
const DefaultEpsilon = 1.0 / 10000

// ErrStaleWindow is the value panicked with when a [Window] is used after its
// curve has been modified.
var ErrStaleWindow = errors.New("spline: window used after its curve was modified")

// ControlPoint is a single point of a curve. Data holds evaluator-specific
// information, such as the velocity of a Hermite spline's points.
type ControlPoint[T, D any] struct {
	Position float64
	Value    T
	Data     D
}

// evaluator is implemented by the concrete curve types embedding [Base].
type evaluator[T, D any] interface {
	// evaluate computes the value at pos, using only the points in
	// [first, last].
	evaluate(pos float64, first, last int) T
	// boundaryData returns the data for a point inserted at pos by Clamp.
	boundaryData(pos float64) D
}

type observer struct {
	id int
	fn func()
}

// Base is the ordered control point storage shared by [Curve] and
// [HermiteSpline]. Its methods are promoted to those types; Base cannot be used
// on its own.
type Base[T, D any] struct {
	points    []ControlPoint[T, D]
	version   uint64
	observers []observer
	nextID    int
	eval      evaluator[T, D]
}

func checkPosition(pos float64) {
	if math.IsNaN(pos) || math.IsInf(pos, 0) {
		panic(fmt.Sprintf("spline: invalid position %v", pos))
	}
}

func (b *Base[T, D]) checkIndex(i int) {
	if i < 0 || i >= len(b.points) {
		panic(fmt.Sprintf("spline: index %d out of range [0, %d)", i, len(b.points)))
	}
}

func (b *Base[T, D]) checkNotEmpty() {
	if len(b.points) == 0 {
		panic("spline: curve has no points")
	}
}

func (b *Base[T, D]) evaluator() evaluator[T, D] {
	if b.eval == nil {
		panic("spline: curve wasn't constructed with NewCurve or NewHermiteSpline")
	}
	return b.eval
}

// Count returns the number of control points.
func (b *Base[T, D]) Count() int { return len(b.points) }

// Version returns a counter that is incremented by every modification of the
// curve.
func (b *Base[T, D]) Version() uint64 { return b.version }

// Start returns the position of the first control point.
func (b *Base[T, D]) Start() float64 {
	b.checkNotEmpty()
	return b.points[0].Position
}

// End returns the position of the last control point.
func (b *Base[T, D]) End() float64 {
	b.checkNotEmpty()
	return b.points[len(b.points)-1].Position
}

// Point returns the i-th control point.
func (b *Base[T, D]) Point(i int) ControlPoint[T, D] {
	b.checkIndex(i)
	return b.points[i]
}

func (b *Base[T, D]) PositionAtIndex(i int) float64 {
	b.checkIndex(i)
	return b.points[i].Position
}

func (b *Base[T, D]) ValueAtIndex(i int) T {
	b.checkIndex(i)
	return b.points[i].Value
}

func (b *Base[T, D]) DataAtIndex(i int) D {
	b.checkIndex(i)
	return b.points[i].Data
}

// SetValueAtIndex replaces the value of the i-th control point, keeping its
// position.
func (b *Base[T, D]) SetValueAtIndex(i int, v T) {
	b.checkIndex(i)
	b.points[i].Value = v
	b.changed(true)
}

// SetDataAtIndex replaces the data of the i-th control point.
func (b *Base[T, D]) SetDataAtIndex(i int, d D) {
	b.checkIndex(i)
	b.points[i].Data = d
	b.changed(true)
}

// Points returns an iterator over the positions and values of all control
// points, in order.
func (b *Base[T, D]) Points() iter.Seq2[float64, T] {
	return func(yield func(float64, T) bool) {
		for _, p := range b.points {
			if !yield(p.Position, p.Value) {
				return
			}
		}
	}
}

// ControlPoints returns an iterator over all control points, in order.
func (b *Base[T, D]) ControlPoints() iter.Seq[ControlPoint[T, D]] {
	return func(yield func(ControlPoint[T, D]) bool) {
		for _, p := range b.points {
			if !yield(p) {
				return
			}
		}
	}
}

// OnChange registers fn to be called after every modification of the curve.
// Listeners may only rely on [Base.Version] having advanced, not on the
// identity of any control point. The returned function unregisters fn.
func (b *Base[T, D]) OnChange(fn func()) (cancel func()) {
	b.nextID++
	id := b.nextID
	b.observers = append(b.observers, observer{id, fn})
	return func() {
		b.observers = slices.DeleteFunc(b.observers, func(o observer) bool { return o.id == id })
	}
}

func (b *Base[T, D]) changed(notify bool) {
	b.version++
	if !notify {
		return
	}
	for _, o := range slices.Clone(b.observers) {
		o.fn()
	}
}

// LowerIndex returns the index i of the control point such that
// points[i].Position <= pos < points[i+1].Position. Positions before the first
// point map to the first index and positions after the last point map to the
// last index.
func (b *Base[T, D]) LowerIndex(pos float64) int {
	return b.LowerIndexInRange(pos, 0, len(b.points)-1)
}

// LowerIndexInRange is like [Base.LowerIndex], but only considers the points
// in [first, last].
func (b *Base[T, D]) LowerIndexInRange(pos float64, first, last int) int {
	first = max(first, 0)
	last = min(last, len(b.points)-1)
	if last <= first {
		return first
	}
	pts := b.points
	if pos <= pts[first].Position {
		return first
	}
	if pos >= pts[last].Position {
		return last
	}
	n := sort.Search(last-first+1, func(i int) bool {
		return pts[first+i].Position > pos
	})
	return first + n - 1
}

// FindNearestPoint returns the index and position of the control point closest
// to pos. It returns false if the curve has no points.
func (b *Base[T, D]) FindNearestPoint(pos float64) (index int, position float64, ok bool) {
	if len(b.points) == 0 {
		return -1, 0, false
	}
	i := b.LowerIndex(pos)
	if j := min(i+1, len(b.points)-1); math.Abs(b.points[j].Position-pos) < math.Abs(b.points[i].Position-pos) {
		i = j
	}
	return i, b.points[i].Position, true
}

// indexOf returns the index of the control point within eps of pos.
func (b *Base[T, D]) indexOf(pos, eps float64) (int, bool) {
	i, p, ok := b.FindNearestPoint(pos)
	if ok && scalar.EqualWithinAbs(p, pos, eps) {
		return i, true
	}
	return -1, false
}

// setValueAtPosition inserts a control point, or replaces the value and data of
// the point already at pos.
func (b *Base[T, D]) setValueAtPosition(pos float64, v T, d D, notify bool) {
	checkPosition(pos)
	if i, ok := b.indexOf(pos, DefaultEpsilon); ok {
		b.points[i].Value = v
		b.points[i].Data = d
	} else {
		b.points = append(b.points, ControlPoint[T, D]{Position: pos, Value: v, Data: d})
		slices.SortStableFunc(b.points, func(x, y ControlPoint[T, D]) int {
			return cmp.Compare(x.Position, y.Position)
		})
	}
	b.changed(notify)
}

// RemoveAtIndex removes the i-th control point. If that was the only point, it
// is replaced with a zero-valued point at position 0.
func (b *Base[T, D]) RemoveAtIndex(i int) {
	b.checkIndex(i)
	b.points = slices.Delete(b.points, i, i+1)
	if len(b.points) == 0 {
		b.points = append(b.points, ControlPoint[T, D]{})
	}
	b.changed(true)
}

// RemoveAtPosition removes the control point within eps of pos, reporting
// whether there was one. See [Base.RemoveAtIndex].
func (b *Base[T, D]) RemoveAtPosition(pos, eps float64) bool {
	i, ok := b.indexOf(pos, eps)
	if !ok {
		return false
	}
	b.RemoveAtIndex(i)
	return true
}

// Clear removes all control points. Unlike removing points one by one, this
// leaves the curve empty.
func (b *Base[T, D]) Clear() {
	b.clear()
	b.changed(true)
}

func (b *Base[T, D]) clear() {
	clear(b.points)
	b.points = b.points[:0]
}

// At returns the value of the curve at pos.
func (b *Base[T, D]) At(pos float64) T {
	checkPosition(pos)
	b.checkNotEmpty()
	return b.evaluator().evaluate(pos, 0, len(b.points)-1)
}

// ValueAtPosition is an alias for [Base.At].
func (b *Base[T, D]) ValueAtPosition(pos float64) T {
	return b.At(pos)
}

// Clamp restricts the curve to [start, end]. Control points outside of the
// range are removed and new control points are placed at start and end,
// holding the values the curve had at those positions.
func (b *Base[T, D]) Clamp(start, end float64) {
	b.checkClamp(start, end)
	ev := b.evaluator()
	b.clamp(start, end, ev.boundaryData(start), ev.boundaryData(end))
}

func (b *Base[T, D]) checkClamp(start, end float64) {
	checkPosition(start)
	checkPosition(end)
	if start > end {
		panic(fmt.Sprintf("spline: invalid clamp range [%v, %v]", start, end))
	}
	b.checkNotEmpty()
}

// clamp does the work of Clamp, with ds and de as the data of the new points
// at start and end.
func (b *Base[T, D]) clamp(start, end float64, ds, de D) {
	vs, ve := b.At(start), b.At(end)
	b.points = slices.DeleteFunc(b.points, func(p ControlPoint[T, D]) bool {
		return p.Position < start || p.Position > end
	})
	b.setValueAtPosition(start, vs, ds, false)
	b.setValueAtPosition(end, ve, de, false)
	b.changed(true)
}

// EstimateExtents estimates the minimum and maximum value of the curve by
// sampling detail+1 evenly spaced positions between each pair of consecutive
// control points. detail must be in [1, 100].
//
// If less is nil, the LessThan operator of T is used, as resolved by the arith
// package. EstimateExtents returns false if the curve has no points.
func (b *Base[T, D]) EstimateExtents(less func(a, b T) bool, detail int) (lo, hi T, ok bool) {
	if less == nil {
		less = arith.MustCompare[T](arith.LessThan)
	}
	return b.EstimateExtentsFunc(func(v, lo, hi T) (T, T) {
		if less(v, lo) {
			lo = v
		}
		if less(hi, v) {
			hi = v
		}
		return lo, hi
	}, detail)
}

// EstimateExtentsFunc is like [Base.EstimateExtents] but leaves the
// bookkeeping to fold, which is called for each sample with the current
// extents and returns the updated extents. This supports value types that have
// no natural order, such as colors or vectors.
func (b *Base[T, D]) EstimateExtentsFunc(fold func(v, lo, hi T) (T, T), detail int) (lo, hi T, ok bool) {
	if detail < 1 || detail > 100 {
		panic(fmt.Sprintf("spline: detail %d out of range [1, 100]", detail))
	}
	if len(b.points) == 0 {
		return lo, hi, false
	}

	lo, hi = b.points[0].Value, b.points[0].Value
	ev := b.evaluator()
	last := len(b.points) - 1
	samples := make([]float64, detail+1)
	for i := range last {
		for _, x := range floats.Span(samples, b.points[i].Position, b.points[i+1].Position) {
			lo, hi = fold(ev.evaluate(x, 0, last), lo, hi)
		}
	}
	return lo, hi, true
}

func (b *Base[T, D]) copyTo(dst *Base[T, D], erase bool) {
	if dst == b {
		return
	}
	if erase || len(dst.points) == 0 {
		dst.clear()
		dst.points = append(dst.points, b.points...)
	} else {
		for _, p := range b.points {
			dst.setValueAtPosition(p.Position, p.Value, p.Data, false)
		}
	}
	dst.changed(true)
}

// Window returns a read-only view of the control points spanning [low, high].
// The window extends to the control points bracketing low and high.
func (b *Base[T, D]) Window(low, high float64) Window[T, D] {
	checkPosition(low)
	checkPosition(high)
	if low > high {
		panic(fmt.Sprintf("spline: invalid window [%v, %v]", low, high))
	}
	b.checkNotEmpty()
	first := b.LowerIndex(low)
	last := b.LowerIndex(high)
	if last < len(b.points)-1 && b.points[last].Position < high {
		last++
	}
	return b.WindowByIndex(first, last)
}

// WindowByIndex returns a read-only view of the control points with indices in
// [first, last].
func (b *Base[T, D]) WindowByIndex(first, last int) Window[T, D] {
	b.checkIndex(first)
	b.checkIndex(last)
	if first > last {
		panic(fmt.Sprintf("spline: invalid window indices [%d, %d]", first, last))
	}
	return Window[T, D]{
		base:    b,
		first:   first,
		last:    last,
		start:   b.points[first].Position,
		end:     b.points[last].Position,
		version: b.version,
	}
}
