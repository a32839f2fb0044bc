package spline

import (
	"fmt"
	"iter"
	"reflect"
)

// HermitePointData is the per-point data of a [HermiteSpline].
type HermitePointData[T any] struct {
	// Velocity is the tangent of the curve at the point, in units of value per
	// segment.
	Velocity T
}

// HermiteSpline is a cubic Hermite spline. Each control point carries a value
// and a velocity, and the spline passes through every value. The zero value is
// not usable; use [NewHermiteSpline], [Cardinal] or [CatmullRom].
type HermiteSpline[T any] struct {
	Base[T, HermitePointData[T]]

	ip *Interpolators[T]
}

// NewHermiteSpline returns an empty spline. It panics if T lacks the Add,
// Subtract and Multiply-by-float64 operators, or if T is an unsigned integer
// type, which can't hold negative velocities.
func NewHermiteSpline[T any]() *HermiteSpline[T] {
	ip := InterpolatorsFor[T]()
	ip.mustCubic()
	if ip.unsigned {
		panic(fmt.Sprintf("spline: Hermite splines need signed values, %s is unsigned", reflect.TypeFor[T]()))
	}
	s := &HermiteSpline[T]{ip: ip}
	s.eval = s
	return s
}

// Cardinal returns a spline through points, with velocities computed by
// [HermiteSpline.ConvertToCardinal].
func Cardinal[T any](points iter.Seq2[float64, T], tension float64, looping bool) *HermiteSpline[T] {
	s := NewHermiteSpline[T]()
	var zero T
	for pos, v := range points {
		s.setValueAtPosition(pos, v, HermitePointData[T]{Velocity: zero}, false)
	}
	s.ConvertToCardinal(tension, looping)
	return s
}

// CatmullRom returns a Catmull-Rom spline through points. This is a cardinal
// spline with a tension of 0.
func CatmullRom[T any](points iter.Seq2[float64, T], looping bool) *HermiteSpline[T] {
	return Cardinal(points, 0, looping)
}

func (s *HermiteSpline[T]) evaluate(pos float64, first, last int) T {
	pts := s.points
	if first == last {
		return pts[first].Value
	}

	var t float64
	i := s.LowerIndexInRange(pos, first, last)
	if i == last {
		i--
		t = 1
	} else {
		p0, p1 := pts[i].Position, pts[i+1].Position
		w := p1 - p0
		if !(w > 0) {
			return pts[i].Value
		}
		t = min(max((pos-p0)/w, 0), 1)
	}

	// Every point contributes two samples, its value and its velocity.
	src := func(k int) T {
		p := &pts[min(max(k>>1, first), last)]
		if k&1 == 0 {
			return p.Value
		}
		return p.Data.Velocity
	}
	return s.ip.Hermite(src, 2*i, t)
}

func (s *HermiteSpline[T]) boundaryData(pos float64) HermitePointData[T] {
	pts := s.points
	i := s.LowerIndex(pos)
	if i == len(pts)-1 {
		return pts[i].Data
	}
	p0, p1 := pts[i].Position, pts[i+1].Position
	t := min(max((pos-p0)/(p1-p0), 0), 1)
	return HermitePointData[T]{Velocity: s.ip.lerp(pts[i].Data.Velocity, pts[i+1].Data.Velocity, t)}
}

// segment returns segment i, from point i to point i+1, in Bézier form.
func (s *HermiteSpline[T]) segment(i int) CubicBez[T] {
	p0, p1 := s.points[i], s.points[i+1]
	return HermiteToCubic(p0.Value, p0.Data.Velocity, p1.Value, p1.Data.Velocity)
}

// cut returns the segment that pos lies strictly inside of, and the position
// within that segment. It returns false if pos is at or near a control point,
// or outside the spline.
func (s *HermiteSpline[T]) cut(pos float64) (int, float64, bool) {
	pts := s.points
	i := s.LowerIndex(pos)
	if i == len(pts)-1 {
		return i, 0, false
	}
	p0, p1 := pts[i].Position, pts[i+1].Position
	if pos <= p0+DefaultEpsilon || pos >= p1-DefaultEpsilon {
		return i, 0, false
	}
	return i, (pos - p0) / (p1 - p0), true
}

// Clamp restricts the spline to [start, end], like [Base.Clamp]. A new end
// point that falls inside a segment takes its velocity from the subdivided
// segment, so the spline keeps its value and slope there. If no control point
// lies strictly between start and end, the remaining segment keeps its exact
// shape.
//
// Velocities are per segment, so a kept interior point whose neighbouring
// segment got shorter still bends that segment slightly differently.
func (s *HermiteSpline[T]) Clamp(start, end float64) {
	s.checkClamp(start, end)
	pts := s.points
	ds, de := s.boundaryData(start), s.boundaryData(end)
	i, ti, cutStart := s.cut(start)
	j, tj, cutEnd := s.cut(end)
	if cutStart && cutEnd && i == j {
		_, ds.Velocity, _, de.Velocity = CubicToHermite(s.segment(i).Subsegment(ti, tj))
	} else {
		if cutStart {
			var v T
			_, ds.Velocity, _, v = CubicToHermite(s.segment(i).Subsegment(ti, 1))
			if pts[i+1].Position >= end-DefaultEpsilon {
				de.Velocity = v
			}
		}
		if cutEnd {
			var u T
			_, u, _, de.Velocity = CubicToHermite(s.segment(j).Subsegment(0, tj))
			if pts[j].Position <= start+DefaultEpsilon {
				ds.Velocity = u
			}
		}
	}
	s.clamp(start, end, ds, de)
}

// Add adds a control point with the given value and velocity, replacing the
// point at pos if there is one.
func (s *HermiteSpline[T]) Add(pos float64, v, velocity T) {
	s.setValueAtPosition(pos, v, HermitePointData[T]{Velocity: velocity}, true)
}

// SetValueAtPosition sets the value of the point at pos, keeping its velocity.
// A new point gets a zero velocity.
func (s *HermiteSpline[T]) SetValueAtPosition(pos float64, v T) {
	var d HermitePointData[T]
	if i, ok := s.indexOf(pos, DefaultEpsilon); ok {
		d = s.points[i].Data
	}
	s.setValueAtPosition(pos, v, d, true)
}

func (s *HermiteSpline[T]) VelocityAtIndex(i int) T {
	return s.DataAtIndex(i).Velocity
}

func (s *HermiteSpline[T]) SetVelocityAtIndex(i int, velocity T) {
	s.SetDataAtIndex(i, HermitePointData[T]{Velocity: velocity})
}

// ConvertToCardinal replaces the velocities of the control points with those
// of a cardinal spline. The velocity of a point is 0.5*(1-tension) times the
// difference between the values of its neighbours; a tension of 0 produces a
// Catmull-Rom spline and a tension of 1 produces zero velocities.
//
// If looping is true, the first and last points are treated as neighbours and
// all velocities are replaced. Otherwise, the velocities of the first and last
// points are left unchanged. Splines with fewer than 2 points, or fewer than 3
// when looping, are not modified.
func (s *HermiteSpline[T]) ConvertToCardinal(tension float64, looping bool) {
	n := len(s.points)
	if n < 2 || (looping && n < 3) {
		return
	}

	factor := 0.5 * (1 - tension)
	pts := s.points
	tangent := func(prev, next int) T {
		return s.ip.scale(s.ip.sub(pts[next].Value, pts[prev].Value), factor)
	}
	if looping {
		vels := make([]T, n)
		for i := range n {
			vels[i] = tangent((i+n-1)%n, (i+1)%n)
		}
		for i, v := range vels {
			pts[i].Data.Velocity = v
		}
	} else {
		for i := 1; i < n-1; i++ {
			pts[i].Data.Velocity = tangent(i-1, i+1)
		}
	}
	s.changed(true)
}

// CopyTo copies all control points to dst. See [Curve.CopyTo].
func (s *HermiteSpline[T]) CopyTo(dst *HermiteSpline[T], erase bool) {
	s.copyTo(&dst.Base, erase)
}

// Clone returns a copy of s, without its observers.
func (s *HermiteSpline[T]) Clone() *HermiteSpline[T] {
	out := NewHermiteSpline[T]()
	s.CopyTo(out, true)
	return out
}

// subspline returns a new spline holding copies of the points with indices in
// [first, last].
func (s *HermiteSpline[T]) subspline(first, last int) *HermiteSpline[T] {
	out := NewHermiteSpline[T]()
	out.points = append(out.points, s.points[first:last+1]...)
	return out
}
