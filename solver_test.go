package svg2pts

import (
	"math"
	"sort"
	"testing"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func verifySolverRoots(t *testing.T, name string, roots, expected []float64, epsilon float64) {
	t.Helper()

	if len(roots) != len(expected) {
		t.Errorf("%s: got %d roots, want %d. roots=%v, expected=%v",
			name, len(roots), len(expected), roots, expected)
		return
	}

	sortedRoots := make([]float64, len(roots))
	copy(sortedRoots, roots)
	sort.Float64s(sortedRoots)

	sortedExpected := make([]float64, len(expected))
	copy(sortedExpected, expected)
	sort.Float64s(sortedExpected)

	for i := range sortedRoots {
		if !almostEqual(sortedRoots[i], sortedExpected[i], epsilon) {
			t.Errorf("%s: root[%d] = %v, want %v (roots=%v, expected=%v)",
				name, i, sortedRoots[i], sortedExpected[i], sortedRoots, sortedExpected)
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name       string
		c0, c1, c2 float64
		expected   []float64
		epsilon    float64
	}{
		// c2*x^2 + c1*x + c0 = 0
		{
			name: "x^2 - 5 = 0 (two roots)",
			c0:   -5, c1: 0, c2: 1,
			expected: []float64{-math.Sqrt(5), math.Sqrt(5)},
			epsilon:  1e-10,
		},
		{
			name: "x^2 + 5 = 0 (no real roots)",
			c0:   5, c1: 0, c2: 1,
			expected: nil,
			epsilon:  1e-10,
		},
		{
			name: "x + 5 = 0 (linear)",
			c0:   5, c1: 1, c2: 0,
			expected: []float64{-5},
			epsilon:  1e-10,
		},
		{
			name: "x^2 + 2x + 1 = 0 (double root at -1)",
			c0:   1, c1: 2, c2: 1,
			expected: []float64{-1},
			epsilon:  1e-10,
		},
		{
			name: "x^2 - 5x + 6 = 0 (roots at 2 and 3)",
			c0:   6, c1: -5, c2: 1,
			expected: []float64{2, 3},
			epsilon:  1e-10,
		},
		{
			name: "all coefficients zero",
			c0:   0, c1: 0, c2: 0,
			expected: []float64{0},
			epsilon:  1e-10,
		},
		{
			name: "resampler segment hit (100t^2 - 25 = 0)",
			c0:   -25, c1: 0, c2: 100,
			expected: []float64{-0.5, 0.5},
			epsilon:  1e-12,
		},
		{
			name: "catastrophic cancellation regime",
			c0:   1e-12, c1: -2, c2: 1,
			expected: []float64{5e-13, 2},
			epsilon:  1e-10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := SolveQuadratic(tt.c0, tt.c1, tt.c2)
			verifySolverRoots(t, tt.name, roots, tt.expected, tt.epsilon)
		})
	}
}

func TestSolveQuadraticRootsSorted(t *testing.T) {
	roots := SolveQuadratic(6, -5, 1)
	if len(roots) == 2 && roots[0] > roots[1] {
		t.Errorf("roots not ascending: %v", roots)
	}
}
