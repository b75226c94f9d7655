package svg2pts

// Curve flattening by recursive de Casteljau subdivision. A cubic is
// considered flat once both control points deviate from the chord by less
// than the requested accuracy; the polyline formed by the emitted points
// then stays within that accuracy of the true curve.

// FlattenCubic approximates the cubic Bezier curve (p0, p1, p2, p3) with
// line segments whose maximum perpendicular deviation from the true curve
// does not exceed accuracy. The endpoint of each flat piece is passed to
// emit in curve order, ending with p3 itself. The start point p0 is never
// emitted; callers already hold it as their current point.
//
// Smaller accuracy values yield more points and a tighter fit. accuracy
// must be positive; there is no implicit floor.
func FlattenCubic(p0, p1, p2, p3 Point, accuracy float64, emit func(Point) error) error {
	// Squared tolerance so the flatness test avoids a square root.
	return flattenCubicRec(p0, p1, p2, p3, accuracy*accuracy, emit, 0)
}

// maxFlattenDepth bounds subdivision for degenerate inputs (NaN control
// points or a zero accuracy slipping through). 2^24 pieces is far beyond
// any useful tolerance.
const maxFlattenDepth = 24

func flattenCubicRec(p0, p1, p2, p3 Point, accuracySq float64, emit func(Point) error, depth int) error {
	d1 := distanceToChordSquared(p1, p0, p3)
	d2 := distanceToChordSquared(p2, p0, p3)

	if (d1 <= accuracySq && d2 <= accuracySq) || depth >= maxFlattenDepth {
		return emit(p3)
	}

	// Subdivide at t=0.5 using de Casteljau's algorithm.
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	if err := flattenCubicRec(p0, q0, r0, s, accuracySq, emit, depth+1); err != nil {
		return err
	}
	return flattenCubicRec(s, r1, q2, p3, accuracySq, emit, depth+1)
}

// distanceToChordSquared returns the squared perpendicular distance from
// point p to the segment (a, b), clamped to the nearer endpoint when the
// projection falls outside the segment.
func distanceToChordSquared(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLenSq := ab.LengthSquared()

	if abLenSq < 1e-20 {
		// Chord is a point
		return p.DistanceSquared(a)
	}

	ap := p.Sub(a)
	t := ap.Dot(ab) / abLenSq

	if t < 0 {
		return p.DistanceSquared(a)
	}
	if t > 1 {
		return p.DistanceSquared(b)
	}

	return p.DistanceSquared(a.Add(ab.Mul(t)))
}
