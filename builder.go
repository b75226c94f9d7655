package svg2pts

import "math"

// kappa is the control point distance factor for approximating a quarter
// circle with a cubic Bezier.
const kappa = 0.5522847498

// PathBuilder accumulates path segments with a fluent API. Quadratic
// curves and elliptical arcs are lowered to cubic segments on the way in,
// so consumers only ever see moves, lines, cubics and closes.
type PathBuilder struct {
	segs    []PathSegment
	start   Point
	current Point
}

// NewPathBuilder creates an empty path builder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{segs: make([]PathSegment, 0, 16)}
}

// Segments returns the accumulated segments.
func (b *PathBuilder) Segments() []PathSegment {
	return b.segs
}

// Current returns the current point.
func (b *PathBuilder) Current() Point {
	return b.current
}

// Start returns the start point of the current subpath.
func (b *PathBuilder) Start() Point {
	return b.start
}

// MoveTo starts a new subpath at (x, y).
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	pt := Pt(x, y)
	b.segs = append(b.segs, MoveTo{Point: pt})
	b.start = pt
	b.current = pt
	return b
}

// LineTo adds a line to (x, y).
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	pt := Pt(x, y)
	b.segs = append(b.segs, LineTo{Point: pt})
	b.current = pt
	return b
}

// CubicTo adds a cubic Bezier curve to (x, y).
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	b.segs = append(b.segs, CurveTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	b.current = Pt(x, y)
	return b
}

// QuadTo adds a quadratic Bezier curve to (x, y), raised to its exact
// cubic representation: the cubic control points sit two thirds of the
// way from each endpoint to the quadratic control point.
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) *PathBuilder {
	p0 := b.current
	return b.CubicTo(
		p0.X+(2.0/3.0)*(cx-p0.X), p0.Y+(2.0/3.0)*(cy-p0.Y),
		x+(2.0/3.0)*(cx-x), y+(2.0/3.0)*(cy-y),
		x, y,
	)
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.segs = append(b.segs, Close{})
	b.current = b.start
	return b
}

// Rect adds a rectangle to the path.
func (b *PathBuilder) Rect(x, y, w, h float64) *PathBuilder {
	b.MoveTo(x, y)
	b.LineTo(x+w, y)
	b.LineTo(x+w, y+h)
	b.LineTo(x, y+h)
	b.Close()
	return b
}

// RoundRect adds a rounded rectangle with corner radii rx, ry.
func (b *PathBuilder) RoundRect(x, y, w, h, rx, ry float64) *PathBuilder {
	rx = math.Min(rx, w/2)
	ry = math.Min(ry, h/2)
	if rx <= 0 || ry <= 0 {
		return b.Rect(x, y, w, h)
	}
	kx := kappa * rx
	ky := kappa * ry

	b.MoveTo(x+rx, y)
	b.LineTo(x+w-rx, y)
	b.CubicTo(x+w-rx+kx, y, x+w, y+ry-ky, x+w, y+ry)
	b.LineTo(x+w, y+h-ry)
	b.CubicTo(x+w, y+h-ry+ky, x+w-rx+kx, y+h, x+w-rx, y+h)
	b.LineTo(x+rx, y+h)
	b.CubicTo(x+rx-kx, y+h, x, y+h-ry+ky, x, y+h-ry)
	b.LineTo(x, y+ry)
	b.CubicTo(x, y+ry-ky, x+rx-kx, y, x+rx, y)
	b.Close()
	return b
}

// Circle adds a circle to the path.
func (b *PathBuilder) Circle(cx, cy, r float64) *PathBuilder {
	return b.Ellipse(cx, cy, r, r)
}

// Ellipse adds an ellipse to the path as four cubic arcs.
func (b *PathBuilder) Ellipse(cx, cy, rx, ry float64) *PathBuilder {
	kx := kappa * rx
	ky := kappa * ry

	b.MoveTo(cx+rx, cy)
	b.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	b.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	b.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	b.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	b.Close()
	return b
}

// Polyline adds a sequence of connected line segments. If closed, the
// shape is closed back to the first point (SVG polygon semantics).
func (b *PathBuilder) Polyline(pts []Point, closed bool) *PathBuilder {
	if len(pts) == 0 {
		return b
	}
	b.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		b.LineTo(p.X, p.Y)
	}
	if closed {
		b.Close()
	}
	return b
}

// ArcTo adds an elliptical arc from the current point to (x, y) using SVG
// endpoint parametrization: radii rx, ry, x-axis rotation in degrees, and
// the large-arc and sweep flags. The arc is converted to center
// parametrization and lowered to cubic segments of at most a quarter turn
// each.
func (b *PathBuilder) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) *PathBuilder {
	p0 := b.current
	if p0.X == x && p0.Y == y {
		return b
	}
	// Per SVG spec, zero radii degrade the arc to a straight line.
	if rx == 0 || ry == 0 {
		return b.LineTo(x, y)
	}
	rx = math.Abs(rx)
	ry = math.Abs(ry)

	cx, cy, theta1, theta2 := ellipseToCenter(p0.X, p0.Y, rx, ry, rot, large, sweep, x, y)

	phi := rot * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)
	pointAt := func(theta float64) Point {
		sin, cos := math.Sincos(theta)
		return Pt(
			cx+rx*cos*cosPhi-ry*sin*sinPhi,
			cy+rx*cos*sinPhi+ry*sin*cosPhi,
		)
	}
	derivAt := func(theta float64) Point {
		sin, cos := math.Sincos(theta)
		return Pt(
			-rx*sin*cosPhi-ry*cos*sinPhi,
			-rx*sin*sinPhi+ry*cos*cosPhi,
		)
	}

	// Split into pieces no larger than a quarter turn; each piece is
	// approximated by one cubic with tangent-scaled control points.
	delta := theta2 - theta1
	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	ta := theta1
	pa := pointAt(ta)
	for i := 0; i < n; i++ {
		tb := ta + step
		pb := pointAt(tb)
		if i == n-1 {
			// Land exactly on the endpoint regardless of round-off.
			pb = Pt(x, y)
		}
		da := derivAt(ta)
		db := derivAt(tb)
		b.CubicTo(
			pa.X+k*da.X, pa.Y+k*da.Y,
			pb.X-k*db.X, pb.Y-k*db.Y,
			pb.X, pb.Y,
		)
		ta = tb
		pa = pb
	}
	return b
}

// ellipseToCenter converts an SVG endpoint arc parametrization to center
// parametrization, returning the center and the start and end angles in
// radians. Out-of-range radii are scaled up per the SVG spec.
func ellipseToCenter(x1, y1, rx, ry, rot float64, large, sweep bool, x2, y2 float64) (cx, cy, theta1, theta2 float64) {
	phi := rot * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	x1p := cosPhi*(x1-x2)/2 + sinPhi*(y1-y2)/2
	y1p := -sinPhi*(x1-x2)/2 + cosPhi*(y1-y2)/2

	// Scale radii up when no ellipse can satisfy the constraints.
	radiiCheck := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if radiiCheck > 1 {
		s := math.Sqrt(radiiCheck)
		rx *= s
		ry *= s
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0 {
		sq = 0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx = cosPhi*cxp - sinPhi*cyp + (x1+x2)/2
	cy = sinPhi*cxp + cosPhi*cyp + (y1+y2)/2

	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta1 = math.Acos(clampUnit(ux / math.Hypot(ux, uy)))
	if uy < 0 {
		theta1 = -theta1
	}

	delta := math.Acos(clampUnit((ux*vx + uy*vy) / (math.Hypot(ux, uy) * math.Hypot(vx, vy))))
	if ux*vy-uy*vx < 0 {
		delta = -delta
	}
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}
	return cx, cy, theta1, theta1 + delta
}

// clampUnit guards acos arguments against round-off outside [-1, 1].
func clampUnit(x float64) float64 {
	return math.Min(math.Max(x, -1), 1)
}
