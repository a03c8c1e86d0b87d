package photons2d

import "math"

func isFinite(x float64) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// sgn is +1 for non-negative input, -1 otherwise.
func sgn(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return -1
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
