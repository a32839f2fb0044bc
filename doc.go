// Package spline provides curves and splines that map a scalar position to a
// value of an arbitrary type, such as a float64, a [Vec2] or a color.
//
// It was designed to serve the needs of games and animation tools, where
// designers author a handful of control points and the program evaluates the
// curve between them many times per frame, but it is general enough to be
// useful for other applications.
//
// # Control points
//
// All curves in this package share the same storage, [Base]. It holds a
// sequence of [ControlPoint] values, sorted by position. Adding a point at a
// position that is already occupied (within [DefaultEpsilon]) replaces the
// existing point instead of adding a duplicate. Evaluating a curve locates the
// two control points bracketing the requested position with a binary search
// and hands them to a type-specific evaluator.
//
// Positions outside of the curve's domain are not an error: they evaluate to
// the value of the first or last control point, respectively.
//
// Removing the last remaining point of a curve leaves a single zero-valued
// point behind, so that the curve can still be evaluated. [Base.Clear], on the
// other hand, empties the curve.
//
// # Curves and Hermite splines
//
// [Curve] stores a plain value per control point and interpolates between
// points using an [Interpolator]. Each point may override the curve's default
// interpolator.
//
// [HermiteSpline] additionally stores a velocity (tangent) per control point
// and evaluates using cubic Hermite interpolation. Tangents can be generated
// automatically with [HermiteSpline.ConvertToCardinal], or by constructing the
// spline with [Cardinal] or [CatmullRom]. Hermite splines can be split at an
// arbitrary position with [HermiteSpline.Split] without changing their shape.
//
// # Value types
//
// Curves are generic over their value type. Instead of requiring the value type
// to implement an interface, the arithmetic needed for interpolation is
// resolved at run time by the honnef.co/go/spline/arith package, once per type.
// Built-in numeric types work out of the box, as do types with Add, Sub and Mul
// methods (such as [Vec2]) and the vectors of gonum's spatial/r2 and r3
// packages. Other types can register adapters with arith. Built-in integer
// types are interpolated in float64 and rounded, saturating at the limits of
// the type.
//
// Types that only provide a Lerp method can be used with [Curve] and the
// linear, cosine and eased interpolators, but not with the cubic and Hermite
// interpolators.
//
// # Iterators
//
// [Base.Points] returns an iterator over (position, value) pairs.
// [Cardinal] and [CatmullRom] accept the same kind of iterator, which makes it
// easy to derive one curve from another.
//
// # Concurrency
//
// Curves are not safe for concurrent mutation. Concurrent evaluation of a curve
// that isn't being modified is safe. The per-type tables built by
// [InterpolatorsFor] and the arith package are safe for concurrent use.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Cubic Hermite spline]
//   - [Easing functions]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Cubic Hermite spline]: https://en.wikipedia.org/wiki/Cubic_Hermite_spline
// [Easing functions]: https://easings.net/
package spline
