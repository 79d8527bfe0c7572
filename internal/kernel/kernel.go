// Package kernel provides the component-wise loops behind the N-dimensional
// vector form.
//
// Every operation has a pure Go implementation that works for any Number.
// When the component type is float64 and the operands are between
// blockThreshold and maxBlock long, Add, Scale and Dot hand the work to the
// algo-vecmath block kernels instead. Build with the purego tag to disable
// that path.
//
// Operands are never retained and never escape: the block kernels run on
// pooled scratch copies, so callers may pass slices over stack arrays.
package kernel

import (
	"sync"
	"unsafe"
)

// Number is the set of component types the kernels accept.
type Number interface {
	~float32 | ~float64 |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// blockThreshold is the shortest operand length handed to the block kernels.
const blockThreshold = 4

// maxBlock is the longest operand length handed to the block kernels.
const maxBlock = 64

// blockScratch holds heap copies of the operands. The block kernels are
// reached through function pointers, so anything passed to them escapes.
type blockScratch struct {
	dst, a, b [maxBlock]float64
}

var scratchPool = sync.Pool{
	New: func() any { return new(blockScratch) },
}

// useBlock reports whether operands of length n and element type T take
// the block path: T must be a 64-bit floating-point type.
func useBlock[T Number](n int) bool {
	if !blockEnabled || n < blockThreshold || n > maxBlock {
		return false
	}
	var one T = 1
	return one/2 != 0 && unsafe.Sizeof(one) == 8
}

func load[T Number](dst []float64, src []T) {
	for i, v := range src {
		dst[i] = float64(v)
	}
}

func store[T Number](dst []T, src []float64) {
	for i, v := range src {
		dst[i] = T(v)
	}
}

func checkLen2(op string, a, b int) {
	if a != b {
		panic("kernel: " + op + " length mismatch")
	}
}

func checkLen3(op string, a, b, c int) {
	if a != b || a != c {
		panic("kernel: " + op + " length mismatch")
	}
}
