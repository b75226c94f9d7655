// Package svg parses SVG documents into the flat path model consumed by
// the svg2pts core: per visible shape, an ordered list of absolute
// move/line/cubic/close segments with all transforms already applied.
//
// The element coverage is deliberately scoped to point extraction:
// structural elements (<svg>, <g>), <path>, and the geometric shapes
// (<rect>, <circle>, <ellipse>, <line>, <polyline>, <polygon>). Referenced
// content (<defs>, <clipPath>, ...), text and raster images produce no
// geometry.
package svg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/exrok/svg2pts"
	"github.com/tdewolff/parse/v2/strconv"
	"golang.org/x/net/html/charset"
)

var errNoSVGElement = errors.New("svg: no <svg> element found")

// ViewBox is the declared viewport of the document.
type ViewBox struct {
	MinX, MinY    float64
	Width, Height float64
}

// Path is one visible shape, lowered to absolute path segments.
type Path struct {
	Segments []svg2pts.PathSegment
}

// Document is the parsed, resolved model of an SVG input.
type Document struct {
	// Width and Height are the root element's width/height attributes
	// with any unit suffix ignored; zero when absent or percentages.
	Width, Height float64

	// ViewBox is the declared view box; all zero when absent.
	ViewBox ViewBox

	// Paths are the visible shapes in document order.
	Paths []Path
}

// PageHeight returns the viewport height used to flip the Y axis on
// output: the view box height when declared, the height attribute
// otherwise.
func (d *Document) PageHeight() float64 {
	if d.ViewBox.Height > 0 {
		return d.ViewBox.Height
	}
	return d.Height
}

// SegmentLists returns the segment stream of every path, in document
// order, in the shape svg2pts.Convert expects.
func (d *Document) SegmentLists() [][]svg2pts.PathSegment {
	lists := make([][]svg2pts.PathSegment, len(d.Paths))
	for i, p := range d.Paths {
		lists[i] = p.Segments
	}
	return lists
}

// skipElements subtrees produce no direct geometry. Their contents are
// referenced indirectly at most, which point extraction does not resolve.
var skipElements = map[string]bool{
	"defs":     true,
	"symbol":   true,
	"clipPath": true,
	"mask":     true,
	"marker":   true,
	"pattern":  true,
	"style":    true,
	"text":     true,
	"metadata": true,
	"title":    true,
	"desc":     true,
}

// frame is the inherited state of one element nesting level.
type frame struct {
	transform Matrix
	paint     paint
}

// Parse reads an SVG document and resolves it to visible paths with
// absolute coordinates. A malformed document yields an error before any
// geometry is returned.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	doc := &Document{}
	sawRoot := false
	stack := []frame{{transform: Identity(), paint: defaultPaint()}}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("svg: unable to parse document: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if skipElements[t.Name.Local] {
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("svg: unable to parse document: %w", err)
				}
				continue
			}

			cur, err := push(stack[len(stack)-1], t)
			if err != nil {
				return nil, err
			}

			switch t.Name.Local {
			case "svg":
				if !sawRoot {
					sawRoot = true
					if err := parseRoot(doc, t); err != nil {
						return nil, err
					}
				}
			case "path", "rect", "circle", "ellipse", "line", "polyline", "polygon":
				b := svg2pts.NewPathBuilder()
				if err := buildShape(b, t); err != nil {
					return nil, err
				}
				addPath(doc, b.Segments(), cur)
			}
			stack = append(stack, cur)

		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if !sawRoot {
		return nil, errNoSVGElement
	}
	svg2pts.Logger().Debug("parsed svg document",
		"paths", len(doc.Paths),
		"pageHeight", doc.PageHeight())
	return doc, nil
}

// push derives the state frame of an element from its parent: the
// transform attribute composes onto the inherited matrix, and fill/stroke
// presentation attributes plus inline style override the inherited paint.
func push(parent frame, t xml.StartElement) (frame, error) {
	cur := parent
	for _, a := range t.Attr {
		switch a.Name.Local {
		case "transform":
			m, err := ParseTransform(a.Value)
			if err != nil {
				return frame{}, err
			}
			cur.transform = cur.transform.Multiply(m)
		case "fill":
			cur.paint.fill = a.Value
		case "stroke":
			cur.paint.stroke = a.Value
		}
	}
	// Style declarations win over presentation attributes.
	if style := attrValue(t, "style"); style != "" {
		cur.paint.applyStyle(style)
	}
	return cur, nil
}

// addPath appends the shape to the document unless it is invisible or
// empty, applying the resolved transform to every coordinate so the core
// only ever sees absolute document space.
func addPath(doc *Document, segs []svg2pts.PathSegment, cur frame) {
	if len(segs) == 0 || !cur.paint.visible() {
		return
	}
	if !cur.transform.IsIdentity() {
		segs = transformSegments(segs, cur.transform)
	}
	doc.Paths = append(doc.Paths, Path{Segments: segs})
}

func transformSegments(segs []svg2pts.PathSegment, m Matrix) []svg2pts.PathSegment {
	out := make([]svg2pts.PathSegment, len(segs))
	for i, seg := range segs {
		switch s := seg.(type) {
		case svg2pts.MoveTo:
			out[i] = svg2pts.MoveTo{Point: m.TransformPoint(s.Point)}
		case svg2pts.LineTo:
			out[i] = svg2pts.LineTo{Point: m.TransformPoint(s.Point)}
		case svg2pts.CurveTo:
			out[i] = svg2pts.CurveTo{
				Control1: m.TransformPoint(s.Control1),
				Control2: m.TransformPoint(s.Control2),
				Point:    m.TransformPoint(s.Point),
			}
		default:
			out[i] = seg
		}
	}
	return out
}

// parseRoot extracts the page geometry from the root <svg> element.
func parseRoot(doc *Document, t xml.StartElement) error {
	doc.Width = parseLength(attrValue(t, "width"))
	doc.Height = parseLength(attrValue(t, "height"))

	vb := attrValue(t, "viewBox")
	if vb == "" {
		return nil
	}
	nums, err := parseNumberList([]byte(vb))
	if err != nil || len(nums) != 4 {
		return fmt.Errorf("svg: malformed viewBox %q", vb)
	}
	doc.ViewBox = ViewBox{MinX: nums[0], MinY: nums[1], Width: nums[2], Height: nums[3]}
	return nil
}

// buildShape lowers one geometry element into path segments.
func buildShape(b *svg2pts.PathBuilder, t xml.StartElement) error {
	attr := func(name string) float64 { return parseLength(attrValue(t, name)) }

	switch t.Name.Local {
	case "path":
		return parsePathData(b, []byte(attrValue(t, "d")))
	case "rect":
		w, h := attr("width"), attr("height")
		if w <= 0 || h <= 0 {
			return nil
		}
		rx, ry := rectRadii(t)
		if rx > 0 && ry > 0 {
			b.RoundRect(attr("x"), attr("y"), w, h, rx, ry)
		} else {
			b.Rect(attr("x"), attr("y"), w, h)
		}
	case "circle":
		if r := attr("r"); r > 0 {
			b.Circle(attr("cx"), attr("cy"), r)
		}
	case "ellipse":
		rx, ry := attr("rx"), attr("ry")
		if rx > 0 && ry > 0 {
			b.Ellipse(attr("cx"), attr("cy"), rx, ry)
		}
	case "line":
		b.MoveTo(attr("x1"), attr("y1"))
		b.LineTo(attr("x2"), attr("y2"))
	case "polyline", "polygon":
		pts, err := parsePoints(attrValue(t, "points"))
		if err != nil {
			return err
		}
		b.Polyline(pts, t.Name.Local == "polygon")
	}
	return nil
}

// rectRadii resolves the corner radii of a <rect>: an absent radius
// defaults to the other one, per the SVG auto rules.
func rectRadii(t xml.StartElement) (rx, ry float64) {
	rxs, rys := attrValue(t, "rx"), attrValue(t, "ry")
	rx, ry = parseLength(rxs), parseLength(rys)
	if rxs == "" {
		rx = ry
	}
	if rys == "" {
		ry = rx
	}
	return rx, ry
}

// parsePoints parses a polyline/polygon points attribute. A dangling
// coordinate without a partner is dropped, matching renderer behavior.
func parsePoints(s string) ([]svg2pts.Point, error) {
	nums, err := parseNumberList([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("svg: malformed points %q: %w", s, err)
	}
	pts := make([]svg2pts.Point, 0, len(nums)/2)
	for i := 0; i+1 < len(nums); i += 2 {
		pts = append(pts, svg2pts.Pt(nums[i], nums[i+1]))
	}
	return pts, nil
}

// attrValue returns the value of the named attribute, or "".
func attrValue(t xml.StartElement, name string) string {
	for _, a := range t.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// parseLength parses the leading number of a length attribute, ignoring
// any unit suffix. Returns 0 for empty, percentage or malformed values.
func parseLength(s string) float64 {
	b := []byte(s)
	i := skipCommaWhitespace(b)
	num, n := strconv.ParseFloat(b[i:])
	if n == 0 {
		return 0
	}
	rest := b[i+n:]
	if len(rest) > 0 && rest[0] == '%' {
		return 0
	}
	return num
}
