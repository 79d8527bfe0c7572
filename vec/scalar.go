package vec

import "math"

// Scalar is the set of component types a vector can hold.
type Scalar interface {
	~float32 | ~float64 |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Epsilon is the absolute per-component tolerance Equal applies to
// floating-point components.
const Epsilon = 1e-8

// isFloat reports whether T is a floating-point type.
func isFloat[T Scalar]() bool {
	var one T = 1
	return one/2 != 0
}

// nearlyEqual compares floats with Epsilon and integers exactly.
func nearlyEqual[T Scalar](a, b T) bool {
	if !isFloat[T]() {
		return a == b
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	return float64(d) < Epsilon
}

// reciprocal returns T(1)/s.
func reciprocal[T Scalar](s T) T {
	var one T = 1
	return one / s
}

// normOf converts a squared length into a norm.
func normOf[T Scalar](lengthSquared T) float64 {
	return math.Sqrt(float64(lengthSquared))
}
