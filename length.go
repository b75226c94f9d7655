package svg2pts

// estimateAccuracy is the fixed flattening tolerance used when curves
// only contribute to a length estimate. Deliberately coarse: the estimate
// feeds a spacing derivation, not the output points.
const estimateAccuracy = 0.5

// PathLength returns the approximate arc length of one segment stream.
// Straight segments contribute their Euclidean length, curves the length
// of a coarse polyline approximation, and Close the length of the implied
// closing segment. The walk is read-only and produces no points.
func PathLength(segs []PathSegment) float64 {
	var total float64
	var start, cur Point

	for _, seg := range segs {
		switch s := seg.(type) {
		case MoveTo:
			start = s.Point
			cur = s.Point
		case LineTo:
			total += cur.Distance(s.Point)
			cur = s.Point
		case CurveTo:
			prev := cur
			// The emit callback never fails, so neither does FlattenCubic.
			_ = FlattenCubic(cur, s.Control1, s.Control2, s.Point, estimateAccuracy, func(p Point) error {
				total += prev.Distance(p)
				prev = p
				return nil
			})
			cur = s.Point
		case Close:
			total += cur.Distance(start)
			cur = start
		}
	}
	return total
}

// TotalLength returns the approximate combined arc length of several
// paths. Used to derive a target spacing from a desired point count.
func TotalLength(paths [][]PathSegment) float64 {
	var total float64
	for _, segs := range paths {
		total += PathLength(segs)
	}
	return total
}
