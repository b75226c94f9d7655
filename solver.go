package svg2pts

import "math"

// Quadratic root solver used by the exact resampling policy to locate the
// point on a line segment at a fixed distance from the current anchor.
//
// Based on algorithms from kurbo (https://github.com/linebender/kurbo)
// with adaptations for Go idioms.

// SolveQuadratic finds real roots of the quadratic equation
// c2*x^2 + c1*x + c0 = 0. Returns roots sorted in ascending order.
//
// The function is numerically robust:
//   - If c2 is zero or nearly zero, treats as linear equation
//   - If all coefficients are zero, returns a single 0.0
//   - Handles edge cases with NaN and Inf gracefully
func SolveQuadratic(c0, c1, c2 float64) []float64 {
	// Scale coefficients to avoid overflow in discriminant calculation
	sc0 := c0 / c2
	sc1 := c1 / c2

	if !isFinite(sc0) || !isFinite(sc1) {
		return solveQuadraticLinear(c0, c1)
	}

	return solveQuadraticNormal(sc0, sc1)
}

// solveQuadraticNormal handles the normal quadratic case with valid scaled
// coefficients.
func solveQuadraticNormal(sc0, sc1 float64) []float64 {
	arg := sc1*sc1 - 4.0*sc0

	if !isFinite(arg) {
		// Overflow in discriminant - use fallback
		return solveQuadraticOverflow(sc0, sc1)
	}

	if arg < 0.0 {
		// No real roots
		return nil
	}
	if arg == 0.0 {
		// One double root
		return []float64{-0.5 * sc1}
	}

	// Two distinct roots.
	// Use numerically stable formula to avoid cancellation
	// See: https://math.stackexchange.com/questions/866331
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	root2 := sc0 / root1

	if !isFinite(root2) {
		return []float64{root1}
	}

	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

// solveQuadraticOverflow handles discriminant overflow.
func solveQuadraticOverflow(sc0, sc1 float64) []float64 {
	// Find one root using sc1*x + x^2 = 0, other as sc0/root1
	root1 := -sc1
	root2 := sc0 / root1

	if !isFinite(root2) {
		return []float64{root1}
	}

	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

// solveQuadraticLinear handles the case when the quadratic coefficient is
// zero or very small.
func solveQuadraticLinear(c0, c1 float64) []float64 {
	root := -c0 / c1
	if isFinite(root) {
		return []float64{root}
	}

	// Degenerate case: all coefficients effectively zero
	if c0 == 0.0 && c1 == 0.0 {
		return []float64{0.0}
	}

	return nil
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
