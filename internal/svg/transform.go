package svg

import (
	"fmt"
	"math"
	"strings"

	"github.com/exrok/svg2pts"
	"github.com/tdewolff/parse/v2/strconv"
)

// Matrix represents a 2D affine transformation as a 2x3 matrix in
// row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// transforming a point by:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in degrees, per the SVG
// transform grammar).
func Rotate(deg float64) Matrix {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// SkewX creates a horizontal shear matrix (angle in degrees).
func SkewX(deg float64) Matrix {
	return Matrix{
		A: 1, B: math.Tan(deg * math.Pi / 180), C: 0,
		D: 0, E: 1, F: 0,
	}
}

// SkewY creates a vertical shear matrix (angle in degrees).
func SkewY(deg float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: math.Tan(deg * math.Pi / 180), E: 1, F: 0,
	}
}

// Multiply multiplies two matrices (m * other): other is applied first,
// then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p svg2pts.Point) svg2pts.Point {
	return svg2pts.Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// IsIdentity reports whether m is the identity transform.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// ParseTransform parses an SVG transform attribute: a whitespace or comma
// separated list of matrix/translate/scale/rotate/skewX/skewY function
// terms, composed left to right.
func ParseTransform(s string) (Matrix, error) {
	m := Identity()
	rest := strings.TrimSpace(s)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		closing := strings.IndexByte(rest, ')')
		if open < 0 || closing < open {
			return Matrix{}, fmt.Errorf("svg: malformed transform %q", s)
		}
		name := strings.TrimSpace(rest[:open])
		args, err := parseNumberList([]byte(rest[open+1 : closing]))
		if err != nil {
			return Matrix{}, fmt.Errorf("svg: malformed transform %q: %w", s, err)
		}
		rest = strings.TrimLeft(rest[closing+1:], " \t\r\n,")

		var t Matrix
		switch {
		case name == "matrix" && len(args) == 6:
			t = Matrix{
				A: args[0], B: args[2], C: args[4],
				D: args[1], E: args[3], F: args[5],
			}
		case name == "translate" && len(args) == 1:
			t = Translate(args[0], 0)
		case name == "translate" && len(args) == 2:
			t = Translate(args[0], args[1])
		case name == "scale" && len(args) == 1:
			t = Scale(args[0], args[0])
		case name == "scale" && len(args) == 2:
			t = Scale(args[0], args[1])
		case name == "rotate" && len(args) == 1:
			t = Rotate(args[0])
		case name == "rotate" && len(args) == 3:
			// Rotation about a center point.
			t = Translate(args[1], args[2]).
				Multiply(Rotate(args[0])).
				Multiply(Translate(-args[1], -args[2]))
		case name == "skewX" && len(args) == 1:
			t = SkewX(args[0])
		case name == "skewY" && len(args) == 1:
			t = SkewY(args[0])
		default:
			return Matrix{}, fmt.Errorf("svg: unsupported transform %q", name)
		}
		m = m.Multiply(t)
	}
	return m, nil
}

// parseNumberList parses a whitespace or comma separated list of floats.
func parseNumberList(b []byte) ([]float64, error) {
	var nums []float64
	i := 0
	for {
		i += skipCommaWhitespace(b[i:])
		if i >= len(b) {
			return nums, nil
		}
		num, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			return nil, fmt.Errorf("number expected at position %d", i+1)
		}
		nums = append(nums, num)
		i += n
	}
}
