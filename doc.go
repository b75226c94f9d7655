// Package svg2pts converts vector paths into ordered 2D point sequences
// suitable for plotting and machining pipelines.
//
// # Overview
//
// The package takes path segments (moves, lines, cubic Bezier curves and
// closes) with absolute document-space coordinates, flattens the curves
// into polylines within a deviation tolerance, and re-samples the result
// so that consecutive output points lie at a caller-chosen spacing. The
// spacing may also be derived from a desired total point count by
// estimating the total arc length first.
//
// # Quick Start
//
//	import "github.com/exrok/svg2pts"
//
//	segs := []svg2pts.PathSegment{
//		svg2pts.MoveTo{Point: svg2pts.Pt(0, 0)},
//		svg2pts.LineTo{Point: svg2pts.Pt(10, 0)},
//		svg2pts.LineTo{Point: svg2pts.Pt(10, 10)},
//		svg2pts.Close{},
//	}
//
//	cfg := svg2pts.Config{Distance: 5, PageHeight: 10}
//	err := svg2pts.Convert(os.Stdout, [][]svg2pts.PathSegment{segs}, cfg)
//
// Each output line is "X Y\n" where the coordinates use the shortest
// decimal text that round-trips to the original float64. The Y axis is
// flipped on output (emitted Y = page height - source Y) so downstream
// tools receive bottom-left-origin Cartesian coordinates.
//
// # Resampling Policies
//
// Two policies are available. The default Exact policy keeps the
// straight-line spacing between consecutive points equal to the target
// distance across segment boundaries, solving a quadratic per segment.
// The EvenSplit policy divides each segment independently into
// near-equal pieces; spacing across vertices is then only approximate,
// but every vertex is preserved.
//
// # Coordinate System
//
// Input follows the SVG convention: origin at top-left, X increases
// right, Y increases down. Output is Y-flipped as described above.
package svg2pts

// Version is the current version of the library.
const Version = "0.2.0"
