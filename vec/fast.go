package vec

import approx "github.com/meko-christian/algo-approx"

// FastNorm returns an approximation of v.Norm() computed with a few
// Babylonian iterations instead of math.Sqrt. The relative error is below
// 1e-5 for finite input, which is larger than Epsilon for most vectors:
// use it for ranking and thresholds, never where the result feeds Equal.
func FastNorm[T Scalar, V Vector[T, V]](v V) float64 {
	return approx.FastSqrt(float64(v.LengthSquared()))
}

// FastDistance is Distance computed through FastNorm.
func FastDistance[T Scalar, V Vector[T, V]](v, w V) float64 {
	return FastNorm[T](v.Sub(w))
}
