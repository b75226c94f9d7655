package svg2pts

import (
	"errors"
	"math"
	"testing"
)

// evalCubic evaluates the cubic Bezier (p0, p1, p2, p3) at t.
func evalCubic(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t
	return Point{
		X: mt3*p0.X + 3*mt2*t*p1.X + 3*mt*t2*p2.X + t3*p3.X,
		Y: mt3*p0.Y + 3*mt2*t*p1.Y + 3*mt*t2*p2.Y + t3*p3.Y,
	}
}

func collectFlattened(t *testing.T, p0, p1, p2, p3 Point, accuracy float64) []Point {
	t.Helper()
	var pts []Point
	err := FlattenCubic(p0, p1, p2, p3, accuracy, func(p Point) error {
		pts = append(pts, p)
		return nil
	})
	if err != nil {
		t.Fatalf("FlattenCubic returned error: %v", err)
	}
	return pts
}

func TestFlattenCubicEndpoint(t *testing.T) {
	p0, p1, p2, p3 := Pt(0, 0), Pt(10, 20), Pt(30, -10), Pt(40, 5)
	pts := collectFlattened(t, p0, p1, p2, p3, 0.1)

	if len(pts) == 0 {
		t.Fatal("no points emitted")
	}
	if last := pts[len(pts)-1]; last != p3 {
		t.Errorf("last point = %v, want exact endpoint %v", last, p3)
	}
	for _, p := range pts {
		if p == p0 {
			t.Errorf("start point %v re-emitted", p0)
		}
	}
}

func TestFlattenCubicDeviation(t *testing.T) {
	tests := []struct {
		name           string
		p0, p1, p2, p3 Point
		accuracy       float64
	}{
		{"gentle", Pt(0, 0), Pt(10, 10), Pt(20, 10), Pt(30, 0), 0.1},
		{"loop", Pt(0, 0), Pt(40, 40), Pt(-10, 40), Pt(30, 0), 0.05},
		{"tight", Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0), 0.01},
		{"coarse", Pt(0, 0), Pt(10, 10), Pt(20, 10), Pt(30, 0), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := collectFlattened(t, tt.p0, tt.p1, tt.p2, tt.p3, tt.accuracy)
			poly := append([]Point{tt.p0}, pts...)

			// Every dense sample of the true curve must lie within
			// accuracy of the emitted polyline.
			const samples = 1000
			// Slack absorbs endpoint clamping in the distance metric.
			acc := tt.accuracy * 1.05
			accSq := acc * acc
			for i := 0; i <= samples; i++ {
				u := float64(i) / samples
				c := evalCubic(tt.p0, tt.p1, tt.p2, tt.p3, u)
				best := math.Inf(1)
				for j := 0; j+1 < len(poly); j++ {
					if d := distanceToChordSquared(c, poly[j], poly[j+1]); d < best {
						best = d
					}
				}
				if best > accSq {
					t.Fatalf("curve sample at u=%.3f deviates %v from polyline, accuracy %v",
						u, math.Sqrt(best), tt.accuracy)
				}
			}
		})
	}
}

func TestFlattenCubicAccuracyMonotonic(t *testing.T) {
	p0, p1, p2, p3 := Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0)

	coarse := collectFlattened(t, p0, p1, p2, p3, 1.0)
	fine := collectFlattened(t, p0, p1, p2, p3, 0.01)

	if len(fine) <= len(coarse) {
		t.Errorf("smaller accuracy should yield more points: fine=%d coarse=%d",
			len(fine), len(coarse))
	}
}

func TestFlattenCubicDegenerate(t *testing.T) {
	// Control points on the chord: already flat, single endpoint.
	pts := collectFlattened(t, Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), 0.1)
	if len(pts) != 1 || pts[0] != Pt(3, 0) {
		t.Errorf("flat curve should emit only its endpoint, got %v", pts)
	}

	// Zero-length curve.
	pts = collectFlattened(t, Pt(5, 5), Pt(5, 5), Pt(5, 5), Pt(5, 5), 0.1)
	if len(pts) != 1 || pts[0] != Pt(5, 5) {
		t.Errorf("point curve should emit only its endpoint, got %v", pts)
	}
}

func TestFlattenCubicEmitError(t *testing.T) {
	wantErr := errors.New("sink full")
	err := FlattenCubic(Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0), 0.01,
		func(Point) error { return wantErr })
	if !errors.Is(err, wantErr) {
		t.Errorf("emit error not propagated: %v", err)
	}
}
