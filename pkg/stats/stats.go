package stats

import "math"

// Mean computes the average of a slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return Sum(x) / float64(len(x))
}

// Variance computes the population variance of a slice in a single pass.
func Variance(x []float64) float64 {
	n := float64(len(x))
	if n == 0 {
		return 0
	}
	sum, sumSq := 0.0, 0.0
	for _, v := range x {
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	return sumSq/n - mean*mean
}

// Std computes the standard deviation of a slice.
func Std(x []float64) float64 {
	return math.Sqrt(Variance(x))
}

// Sum returns the sum of all elements in the slice.
func Sum(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += v
	}
	return s
}

// MinMax returns the smallest and largest value in the slice.
func MinMax(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	lo, hi := x[0], x[0]
	for _, v := range x[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Norm2 returns the Euclidean norm of the slice.
func Norm2(x []float64) float64 {
	sumSq := 0.0
	for _, v := range x {
		sumSq += v * v
	}
	return math.Sqrt(sumSq)
}

// ScaleInPlace multiplies every element by s.
func ScaleInPlace(x []float64, s float64) {
	for i := range x {
		x[i] *= s
	}
}

// NormalizeL2InPlace rescales the slice to unit Euclidean norm. A zero
// vector is left untouched.
func NormalizeL2InPlace(x []float64) {
	norm := Norm2(x)
	if norm == 0 {
		return
	}
	ScaleInPlace(x, 1/norm)
}
