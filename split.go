package spline

// Split splits the spline at pos into pieces that, evaluated over their own
// domains, trace the same curve as s. The segment containing pos is subdivided
// into two Hermite segments meeting at pos; the points before and after that
// segment are returned unchanged as separate splines. The result has between
// two and four elements, in order of position.
//
// If pos is at or outside the ends of the spline, Split returns s itself. If
// pos is at an interior control point, the spline is split into two at that
// point.
func (s *HermiteSpline[T]) Split(pos float64) []*HermiteSpline[T] {
	checkPosition(pos)
	n := len(s.points)
	if n < 2 || pos <= s.Start()+DefaultEpsilon || pos >= s.End()-DefaultEpsilon {
		return []*HermiteSpline[T]{s}
	}
	if j, ok := s.indexOf(pos, DefaultEpsilon); ok {
		return []*HermiteSpline[T]{s.subspline(0, j), s.subspline(j, n-1)}
	}

	i := s.LowerIndex(pos)
	p0, p1 := s.points[i], s.points[i+1]
	t := (pos - p0.Position) / (p1.Position - p0.Position)

	left, right := s.segment(i).SplitAt(t)

	var out []*HermiteSpline[T]
	if i > 0 {
		out = append(out, s.subspline(0, i))
	}
	for _, piece := range [...]struct {
		start, end float64
		bez        CubicBez[T]
	}{
		{p0.Position, pos, left},
		{pos, p1.Position, right},
	} {
		a, u, d, v := CubicToHermite(piece.bez)
		h := NewHermiteSpline[T]()
		h.points = append(h.points,
			ControlPoint[T, HermitePointData[T]]{Position: piece.start, Value: a, Data: HermitePointData[T]{Velocity: u}},
			ControlPoint[T, HermitePointData[T]]{Position: piece.end, Value: d, Data: HermitePointData[T]{Velocity: v}},
		)
		out = append(out, h)
	}
	if i+1 < n-1 {
		out = append(out, s.subspline(i+1, n-1))
	}
	return out
}
