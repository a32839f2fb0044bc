package spline

// CubicBez is a cubic Bézier segment with control points of type T. Its methods
// need the arithmetic of T, as resolved by [InterpolatorsFor], and panic if T
// doesn't support cubic interpolation.
type CubicBez[T any] struct {
	P0 T
	P1 T
	P2 T
	P3 T
}

func cubicOps[T any]() *Interpolators[T] {
	ip := InterpolatorsFor[T]()
	ip.mustCubic()
	return ip
}

// HermiteToCubic converts the Hermite segment from a with velocity u to d with
// velocity v into the equivalent Bézier segment.
func HermiteToCubic[T any](a, u, d, v T) CubicBez[T] {
	ip := cubicOps[T]()
	return CubicBez[T]{
		P0: a,
		P1: ip.add(a, ip.scale(u, 1.0/3.0)),
		P2: ip.sub(d, ip.scale(v, 1.0/3.0)),
		P3: d,
	}
}

// CubicToHermite is the inverse of [HermiteToCubic].
func CubicToHermite[T any](c CubicBez[T]) (a, u, d, v T) {
	ip := cubicOps[T]()
	return c.P0, ip.scale(ip.sub(c.P1, c.P0), 3), c.P3, ip.scale(ip.sub(c.P3, c.P2), 3)
}

// Eval evaluates the segment at t, using de Casteljau.
func (c CubicBez[T]) Eval(t float64) T {
	l, _ := c.SplitAt(t)
	return l.P3
}

// SplitAt splits the segment at t into two segments that together trace the
// same curve, using de Casteljau.
func (c CubicBez[T]) SplitAt(t float64) (CubicBez[T], CubicBez[T]) {
	lerp := cubicOps[T]().lerp
	ab := lerp(c.P0, c.P1, t)
	bc := lerp(c.P1, c.P2, t)
	cd := lerp(c.P2, c.P3, t)
	abbc := lerp(ab, bc, t)
	bccd := lerp(bc, cd, t)
	mid := lerp(abbc, bccd, t)
	return CubicBez[T]{c.P0, ab, abbc, mid}, CubicBez[T]{mid, bccd, cd, c.P3}
}

// Subdivide subdivides the cubic into halves.
func (c CubicBez[T]) Subdivide() (CubicBez[T], CubicBez[T]) {
	return c.SplitAt(0.5)
}

// Subsegment returns the part of the segment between t0 and t1.
func (c CubicBez[T]) Subsegment(t0, t1 float64) CubicBez[T] {
	_, tail := c.SplitAt(t0)
	if t0 == 1 {
		return tail
	}
	head, _ := tail.SplitAt((t1 - t0) / (1 - t0))
	return head
}
