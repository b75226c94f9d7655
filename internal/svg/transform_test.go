package svg

import (
	"math"
	"testing"

	"github.com/exrok/svg2pts"
)

func matrixAlmostEqual(a, b Matrix, eps float64) bool {
	return math.Abs(a.A-b.A) <= eps &&
		math.Abs(a.B-b.B) <= eps &&
		math.Abs(a.C-b.C) <= eps &&
		math.Abs(a.D-b.D) <= eps &&
		math.Abs(a.E-b.E) <= eps &&
		math.Abs(a.F-b.F) <= eps
}

func TestParseTransform(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Matrix
	}{
		{"empty", "", Identity()},
		{"matrix", "matrix(1 2 3 4 5 6)", Matrix{A: 1, B: 3, C: 5, D: 2, E: 4, F: 6}},
		{"translate one arg", "translate(10)", Translate(10, 0)},
		{"translate two args", "translate(10, -5)", Translate(10, -5)},
		{"scale one arg", "scale(2)", Scale(2, 2)},
		{"scale two args", "scale(2 3)", Scale(2, 3)},
		{"rotate", "rotate(90)", Matrix{A: 0, B: -1, C: 0, D: 1, E: 0, F: 0}},
		{"rotate about center", "rotate(180 5 5)", Matrix{A: -1, B: 0, C: 10, D: 0, E: -1, F: 10}},
		{"skewX 45", "skewX(45)", Matrix{A: 1, B: 1, C: 0, D: 0, E: 1, F: 0}},
		{"skewY 45", "skewY(45)", Matrix{A: 1, B: 0, C: 0, D: 1, E: 1, F: 0}},
		{"composition order", "translate(10 0) scale(2)", Matrix{A: 2, B: 0, C: 10, D: 0, E: 2, F: 0}},
		{"comma separated terms", "translate(1,2),scale(3)", Matrix{A: 3, B: 0, C: 1, D: 0, E: 3, F: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTransform(tt.in)
			if err != nil {
				t.Fatalf("ParseTransform(%q): %v", tt.in, err)
			}
			if !matrixAlmostEqual(got, tt.want, 1e-12) {
				t.Errorf("ParseTransform(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTransformErrors(t *testing.T) {
	bad := []string{
		"translate",
		"translate(1",
		"frobnicate(1 2)",
		"translate(1 2 3)",
		"matrix(1 2 3)",
		"scale(x)",
	}
	for _, in := range bad {
		if _, err := ParseTransform(in); err == nil {
			t.Errorf("ParseTransform(%q) should fail", in)
		}
	}
}

func TestMatrixTransformPoint(t *testing.T) {
	m := Translate(10, 20).Multiply(Scale(2, 3))
	got := m.TransformPoint(svg2pts.Pt(1, 1))
	want := svg2pts.Pt(12, 23)
	if got.Distance(want) > 1e-12 {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Multiply applies the right operand first: scaling then translating
	// differs from translating then scaling.
	ts := Translate(10, 0).Multiply(Scale(2, 2))
	st := Scale(2, 2).Multiply(Translate(10, 0))

	p := svg2pts.Pt(1, 0)
	if got, want := ts.TransformPoint(p), svg2pts.Pt(12, 0); got.Distance(want) > 1e-12 {
		t.Errorf("translate*scale: %v, want %v", got, want)
	}
	if got, want := st.TransformPoint(p), svg2pts.Pt(22, 0); got.Distance(want) > 1e-12 {
		t.Errorf("scale*translate: %v, want %v", got, want)
	}
}

func TestIsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("Translate(1, 0).IsIdentity() = true")
	}
}

func TestParseNumberList(t *testing.T) {
	nums, err := parseNumberList([]byte(" 1,2.5  -3e1,,4 "))
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 2.5, -30, 4}
	if len(nums) != len(want) {
		t.Fatalf("got %v, want %v", nums, want)
	}
	for i := range want {
		if nums[i] != want[i] {
			t.Errorf("nums[%d] = %v, want %v", i, nums[i], want[i])
		}
	}
}
