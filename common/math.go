package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi] inclusive.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalize returns the unit vector for (x, y), or (0, 0) for the zero
// vector.
func Normalize(x, y float64) (float64, float64) {
	mag := math.Hypot(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}
