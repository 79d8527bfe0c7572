package vec

import (
	"errors"
	"testing"
)

// requirePanicsWith fails t unless fn panics with an error wrapping target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("panic value %v does not wrap %v", r, target)
		}
	}()
	fn()
}
