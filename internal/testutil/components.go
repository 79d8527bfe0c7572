package testutil

import "math/rand"

// DeterministicComponents returns n pseudo-random values in
// [-amplitude, amplitude) drawn from a fixed seed.
func DeterministicComponents(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Basis returns the unit vector along axis in n dimensions.
// An axis outside [0, n) yields the zero vector.
func Basis(n, axis int) []float64 {
	out := make([]float64, n)
	if axis >= 0 && axis < n {
		out[axis] = 1
	}
	return out
}

// Constant returns n copies of value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return Constant(1.0, n)
}
