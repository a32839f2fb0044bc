package spline

// CurvePointData is the per-point data of a [Curve].
type CurvePointData[T any] struct {
	// Interpolator, if not nil, is used between this point and the next,
	// overriding the curve's default interpolator.
	Interpolator Interpolator[T]
}

// Curve is a curve whose control points carry plain values, interpolated by an
// [Interpolator]. The zero value is not usable; use [NewCurve].
type Curve[T any] struct {
	Base[T, CurvePointData[T]]

	// DefaultInterpolator is used between points that don't specify their own
	// interpolator. If nil, linear interpolation is used.
	DefaultInterpolator Interpolator[T]

	ip *Interpolators[T]
}

// NewCurve returns an empty curve. It panics if values of type T cannot be
// interpolated linearly; see [InterpolatorsFor].
func NewCurve[T any]() *Curve[T] {
	ip := InterpolatorsFor[T]()
	ip.mustLinear()
	c := &Curve[T]{ip: ip}
	c.eval = c
	return c
}

func (c *Curve[T]) evaluate(pos float64, first, last int) T {
	return c.valueInRange(pos, first, last, nil)
}

func (c *Curve[T]) valueInRange(pos float64, first, last int, override Interpolator[T]) T {
	pts := c.points
	if first == last {
		return pts[first].Value
	}

	var t float64
	i := c.LowerIndexInRange(pos, first, last)
	if i == last {
		// Evaluate the last segment at its end instead of interpolating
		// from the final point onwards.
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

	fn := override
	if fn == nil {
		fn = pts[i].Data.Interpolator
	}
	if fn == nil {
		fn = c.DefaultInterpolator
	}
	if fn == nil {
		fn = c.ip.Linear
	}
	src := func(k int) T {
		return pts[min(max(k, first), last)].Value
	}
	return fn(src, i, t)
}

// boundaryData returns the data of the point that a clamped point at pos
// replaces, so the segment keeps its interpolator.
func (c *Curve[T]) boundaryData(pos float64) CurvePointData[T] {
	return c.points[c.LowerIndex(pos)].Data
}

// ValueWith evaluates the curve at pos using fn, ignoring the interpolators of
// the curve and its points.
func (c *Curve[T]) ValueWith(pos float64, fn Interpolator[T]) T {
	checkPosition(pos)
	c.checkNotEmpty()
	return c.valueInRange(pos, 0, len(c.points)-1, fn)
}

// Add adds a control point. If there already is a point at pos, its value is
// replaced and its interpolator is reset.
func (c *Curve[T]) Add(pos float64, v T) {
	c.setValueAtPosition(pos, v, CurvePointData[T]{}, true)
}

// AddWithInterpolator adds a control point that uses fn to interpolate towards
// the next point.
func (c *Curve[T]) AddWithInterpolator(pos float64, v T, fn Interpolator[T]) {
	c.setValueAtPosition(pos, v, CurvePointData[T]{Interpolator: fn}, true)
}

// SetValueAtPosition sets the value of the point at pos, adding a point if
// necessary. Unlike [Curve.Add], it keeps the interpolator of an existing
// point.
func (c *Curve[T]) SetValueAtPosition(pos float64, v T) {
	var d CurvePointData[T]
	if i, ok := c.indexOf(pos, DefaultEpsilon); ok {
		d = c.points[i].Data
	}
	c.setValueAtPosition(pos, v, d, true)
}

// SetInterpolatorAtIndex sets the interpolator of the i-th point. A nil
// interpolator falls back to the curve's default.
func (c *Curve[T]) SetInterpolatorAtIndex(i int, fn Interpolator[T]) {
	c.SetDataAtIndex(i, CurvePointData[T]{Interpolator: fn})
}

// CopyTo copies all control points to dst. If erase is true, or dst is empty,
// dst ends up with exactly the points of c. Otherwise the points are merged
// into dst, replacing points at the same positions.
func (c *Curve[T]) CopyTo(dst *Curve[T], erase bool) {
	c.copyTo(&dst.Base, erase)
}

// Clone returns a copy of c, including its default interpolator. Observers
// registered with [Base.OnChange] are not copied.
func (c *Curve[T]) Clone() *Curve[T] {
	out := NewCurve[T]()
	out.DefaultInterpolator = c.DefaultInterpolator
	c.CopyTo(out, true)
	return out
}
