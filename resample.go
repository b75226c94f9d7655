package svg2pts

import "math"

// PointWriter receives the points produced by a Resampler, in order.
// *PointSink is the usual implementation.
type PointWriter interface {
	WritePoint(Point) error
}

// Policy determines how a resampler spaces its output points along a line
// segment. The two implementations are PolicyExact and PolicyEvenSplit;
// selecting one at configuration time keeps the algorithms independently
// testable.
type Policy interface {
	resampleLine(r *Resampler, lineEnd Point) error
}

var (
	// PolicyExact keeps the straight-line spacing between consecutive
	// output points equal to the target distance, even across segment
	// boundaries. Segments too short to reach the target distance from
	// the last emitted point contribute no points of their own; the
	// deficit carries into the following segment.
	PolicyExact Policy = exactPolicy{}

	// PolicyEvenSplit splits every segment independently into the number
	// of near-equal pieces closest to the target distance, always keeping
	// the segment endpoint. Spacing across vertices is approximate, but
	// no vertex is ever dropped.
	PolicyEvenSplit Policy = evenSplitPolicy{}
)

// Resampler converts a stream of path vertices (raw endpoints or
// flattened curve points) into output points spaced at a target distance.
// A zero target distance disables resampling: every vertex is forwarded
// verbatim.
//
// State invariant: anchor is always a point that has already been written
// to the sink; lastVertex is the far end of the most recently processed
// segment.
type Resampler struct {
	out      PointWriter
	policy   Policy
	distance float64
	accuracy float64

	subpathStart Point
	anchor       Point
	lastVertex   Point
}

// NewResampler creates a resampler writing to out. distance is the target
// spacing between output points (0 disables resampling), accuracy the
// maximum deviation allowed when flattening curves. A nil policy selects
// PolicyExact.
func NewResampler(out PointWriter, distance, accuracy float64, policy Policy) *Resampler {
	if policy == nil {
		policy = exactPolicy{}
	}
	return &Resampler{
		out:      out,
		policy:   policy,
		distance: distance,
		accuracy: accuracy,
	}
}

// MoveTo starts a new subpath. The point is emitted unconditionally: a
// subpath start is always a hard anchor, independent of mode.
func (r *Resampler) MoveTo(p Point) error {
	r.subpathStart = p
	r.anchor = p
	r.lastVertex = p
	return r.out.WritePoint(p)
}

// LineTo processes a line segment from the current point to end.
func (r *Resampler) LineTo(end Point) error {
	if r.distance == 0 {
		// Passthrough: emit verbatim but keep the bookkeeping so the
		// mode can be toggled without restructuring callers.
		r.anchor = end
		r.lastVertex = end
		return r.out.WritePoint(end)
	}
	return r.policy.resampleLine(r, end)
}

// CurveTo processes a cubic Bezier segment from the current point,
// flattening it within the configured accuracy and feeding the resulting
// polyline through the active policy.
func (r *Resampler) CurveTo(c1, c2, end Point) error {
	return FlattenCubic(r.lastVertex, c1, c2, end, r.accuracy, r.LineTo)
}

// Close closes the current subpath: a line back to the subpath start,
// processed by the active policy.
func (r *Resampler) Close() error {
	return r.LineTo(r.subpathStart)
}

// rootEps tolerates floating round-off at segment boundaries when
// accepting quadratic roots, without being wide enough to introduce
// duplicate points.
const rootEps = 1e-6

type exactPolicy struct{}

func (exactPolicy) resampleLine(r *Resampler, end Point) error {
	d := r.distance

	// Find the point P on the segment (lastVertex, end), parametrized by
	// t in [0,1], whose distance from the anchor equals d. Expanding
	// |anchor - lerp(lastVertex, end, t)|^2 = d^2 gives a quadratic in t.
	w := r.lastVertex.Sub(r.anchor)
	v := end.Sub(r.lastVertex)
	roots := SolveQuadratic(
		w.LengthSquared()-d*d,
		2*v.Dot(w),
		v.LengthSquared(),
	)

	tMin := 2.0
	for _, t := range roots {
		if t >= -rootEps && t <= 1+rootEps && t < tMin {
			tMin = t
		}
	}
	if tMin > 1+rootEps {
		// Segment too short to reach d from the anchor. Contribute no
		// point; the deficit carries into the next segment.
		r.lastVertex = end
		return nil
	}

	p := r.lastVertex.Lerp(end, math.Min(math.Max(tMin, 0), 1))
	if err := r.out.WritePoint(p); err != nil {
		return err
	}
	r.anchor = p
	r.lastVertex = end

	// March the remainder of the segment at exact multiples of d.
	lineDist := r.anchor.Distance(end)
	if lineDist < d {
		return nil
	}
	td := d / lineDist
	base := r.anchor
	for i := 1; ; i++ {
		t := float64(i) * td
		if t >= 1 {
			break
		}
		p := base.Lerp(end, t)
		if err := r.out.WritePoint(p); err != nil {
			return err
		}
		r.anchor = p
	}
	return nil
}

type evenSplitPolicy struct{}

func (evenSplitPolicy) resampleLine(r *Resampler, end Point) error {
	start := r.lastVertex
	n := int(math.Round(start.Distance(end) / r.distance))

	for i := 1; i < n; i++ {
		p := start.Lerp(end, float64(i)/float64(n))
		if err := r.out.WritePoint(p); err != nil {
			return err
		}
	}
	if err := r.out.WritePoint(end); err != nil {
		return err
	}
	r.anchor = end
	r.lastVertex = end
	return nil
}
