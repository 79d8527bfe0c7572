package testutil

import (
	"fmt"
	"math"
	"testing"
)

// Float is the set of component types the tolerance helpers accept.
type Float interface {
	~float32 | ~float64
}

// RequireNearlyEqual fails t if got and want differ by more than eps
// (absolute tolerance).
func RequireNearlyEqual[F Float](t testing.TB, got, want F, eps float64) {
	t.Helper()
	diff := math.Abs(float64(got) - float64(want))
	if diff > eps || math.IsNaN(diff) {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual[F Float](t testing.TB, got, want []F, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if diff > eps || math.IsNaN(diff) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite[F Float](t testing.TB, data []F) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[F Float](a, b []F) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
