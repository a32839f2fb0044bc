package spline

import (
	"math"
	"slices"
)

// quadraticRoots returns the real roots of c0 + c1 x + c2 x². When c2 is zero,
// one of the roots is infinite. If all coefficients are zero, there are no
// roots.
func quadraticRoots(c0, c1, c2 float64) []float64 {
	disc := c1*c1 - 4*c0*c2
	if disc < 0 || (c1 == 0 && c2 == 0) {
		return nil
	}
	// Avoid cancellation between c1 and the square root.
	q := -0.5 * (c1 + math.Copysign(math.Sqrt(disc), c1))
	if q == 0 {
		return []float64{0}
	}
	return []float64{q / c2, c0 / q}
}

// Extrema returns the positions of the local minima and maxima of a scalar
// spline, in ascending order. Control points are only included if the spline's
// slope vanishes there from within a segment.
func Extrema(s *HermiteSpline[float64]) []float64 {
	var out []float64
	pts := s.points
	for i := 0; i+1 < len(pts); i++ {
		p0, p1 := pts[i], pts[i+1]
		c := HermiteToCubic(p0.Value, p0.Data.Velocity, p1.Value, p1.Data.Velocity)
		d0 := c.P1 - c.P0
		d1 := c.P2 - c.P1
		d2 := c.P3 - c.P2
		for _, t := range quadraticRoots(d0, 2*(d1-d0), d0-2*d1+d2) {
			if t > 0 && t < 1 {
				out = append(out, p0.Position+t*(p1.Position-p0.Position))
			}
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
