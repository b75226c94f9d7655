package svg2pts

// PathSegment represents a single command in a path. Coordinates are
// absolute document-space coordinates; any local transforms must already
// be applied before segments reach this package.
type PathSegment interface {
	isPathSegment()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathSegment() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathSegment() {}

// CurveTo draws a cubic Bezier curve to a point. The start point of the
// curve is the current point of the path.
type CurveTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CurveTo) isPathSegment() {}

// Close closes the current subpath with a line back to its start point.
type Close struct{}

func (Close) isPathSegment() {}
