package vec

import (
	"errors"
	"fmt"
)

// Errors describing contract violations.
var (
	ErrTooManyComponents = errors.New("vec: too many components")
	ErrIndexOutOfRange   = errors.New("vec: index out of range")
)

func countError(got, dim int) error {
	if got > dim {
		return fmt.Errorf("%w: got %d, dimension %d", ErrTooManyComponents, got, dim)
	}
	return nil
}

func checkCount(got, dim int) {
	if err := countError(got, dim); err != nil {
		panic(err)
	}
}

func checkIndex(i, dim int) {
	if i < 0 || i >= dim {
		panic(fmt.Errorf("%w: index %d, dimension %d", ErrIndexOutOfRange, i, dim))
	}
}
