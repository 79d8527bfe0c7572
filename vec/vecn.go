package vec

import (
	"iter"
	"unsafe"

	"github.com/cwbudde/algo-vec/internal/kernel"
)

// MaxDim is the largest dimension VecN supports.
const MaxDim = 16

// Array is the set of backing arrays a VecN can use: [N]T for N in
// 1..MaxDim. Its length is the vector's dimension.
type Array[T Scalar] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[9]T | ~[10]T | ~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T | ~[16]T
}

// VecN is a vector whose dimension is the length of its backing array A,
// for example VecN[float64, [5]float64]. Vectors of different dimension
// are different types.
//
// Float64 vectors of dimension 4 and up route Add, Scale and Dot through
// block kernels.
type VecN[T Scalar, A Array[T]] struct {
	data A
}

// NewN returns a vector holding vals in index order. Missing components
// are zero. Panics if more values than the dimension are given.
func NewN[T Scalar, A Array[T]](vals ...T) VecN[T, A] {
	v, err := FromSliceN[T, A](vals)
	if err != nil {
		panic(err)
	}
	return v
}

// FromSliceN is NewN for runtime-length input; it reports an oversized
// slice as an error wrapping ErrTooManyComponents.
func FromSliceN[T Scalar, A Array[T]](vals []T) (VecN[T, A], error) {
	var v VecN[T, A]
	if err := countError(len(vals), len(v.data)); err != nil {
		return v, err
	}
	copy(v.Slice(), vals)
	return v, nil
}

// SplatN returns a vector with every component set to s.
func SplatN[T Scalar, A Array[T]](s T) VecN[T, A] {
	var v VecN[T, A]
	for i := 0; i < len(v.data); i++ {
		v.data[i] = s
	}
	return v
}

// FromArray returns a vector holding a copy of a.
func FromArray[T Scalar, A Array[T]](a A) VecN[T, A] {
	return VecN[T, A]{data: a}
}

// Array returns a copy of the backing array.
func (v VecN[T, A]) Array() A { return v.data }

// Len returns the dimension.
func (v VecN[T, A]) Len() int { return len(v.data) }

// At returns component i. Panics if i is outside [0, Len()).
func (v VecN[T, A]) At(i int) T {
	checkIndex(i, len(v.data))
	return v.data[i]
}

// Set assigns component i. Panics if i is outside [0, Len()).
func (v *VecN[T, A]) Set(i int, c T) {
	checkIndex(i, len(v.data))
	v.data[i] = c
}

// Ref returns a pointer to component i. Panics if i is outside [0, Len()).
func (v *VecN[T, A]) Ref(i int) *T {
	checkIndex(i, len(v.data))
	return &v.data[i]
}

// Slice returns a view of the components backed by v.
func (v *VecN[T, A]) Slice() []T {
	return unsafe.Slice(&v.data[0], len(v.data))
}

// Add returns the component-wise sum v + w.
func (v VecN[T, A]) Add(w VecN[T, A]) VecN[T, A] {
	var out VecN[T, A]
	kernel.Add(out.Slice(), v.Slice(), w.Slice())
	return out
}

// Sub returns the component-wise difference v - w.
func (v VecN[T, A]) Sub(w VecN[T, A]) VecN[T, A] {
	var out VecN[T, A]
	kernel.Sub(out.Slice(), v.Slice(), w.Slice())
	return out
}

// Neg returns -v.
func (v VecN[T, A]) Neg() VecN[T, A] {
	var out VecN[T, A]
	kernel.Neg(out.Slice(), v.Slice())
	return out
}

// Scale returns v with every component multiplied by s.
func (v VecN[T, A]) Scale(s T) VecN[T, A] {
	var out VecN[T, A]
	kernel.Scale(out.Slice(), v.Slice(), s)
	return out
}

// Div returns v scaled by the reciprocal of s.
func (v VecN[T, A]) Div(s T) VecN[T, A] {
	return v.Scale(reciprocal(s))
}

// AddInPlace adds w to v.
func (v *VecN[T, A]) AddInPlace(w VecN[T, A]) {
	s := v.Slice()
	kernel.Add(s, s, w.Slice())
}

// SubInPlace subtracts w from v.
func (v *VecN[T, A]) SubInPlace(w VecN[T, A]) {
	s := v.Slice()
	kernel.Sub(s, s, w.Slice())
}

// ScaleInPlace multiplies every component of v by the scalar.
func (v *VecN[T, A]) ScaleInPlace(f T) {
	s := v.Slice()
	kernel.Scale(s, s, f)
}

// DivInPlace scales v by the reciprocal of the scalar.
func (v *VecN[T, A]) DivInPlace(f T) {
	v.ScaleInPlace(reciprocal(f))
}

// Dot returns the sum of the component-wise products of v and w.
func (v VecN[T, A]) Dot(w VecN[T, A]) T {
	return kernel.Dot(v.Slice(), w.Slice())
}

// LengthSquared returns v.Dot(v).
func (v VecN[T, A]) LengthSquared() T { return v.Dot(v) }

// Norm returns the Euclidean length of v.
func (v VecN[T, A]) Norm() float64 { return normOf(v.LengthSquared()) }

// Normalize returns v divided by its norm, or the zero vector when the
// norm is below Epsilon.
func (v VecN[T, A]) Normalize() VecN[T, A] {
	n := v.Norm()
	if n < Epsilon {
		return VecN[T, A]{}
	}
	return v.Div(T(n))
}

// Distance returns the Euclidean distance between v and w.
func (v VecN[T, A]) Distance(w VecN[T, A]) float64 { return v.Sub(w).Norm() }

// Lerp returns v + (w-v)*t. t is not clamped.
func (v VecN[T, A]) Lerp(w VecN[T, A], t T) VecN[T, A] {
	var out VecN[T, A]
	kernel.Lerp(out.Slice(), v.Slice(), w.Slice(), t)
	return out
}

// Equal reports whether every component pair is equal, within Epsilon for
// floating-point T.
func (v VecN[T, A]) Equal(w VecN[T, A]) bool {
	for i := 0; i < len(v.data); i++ {
		if !nearlyEqual(v.data[i], w.data[i]) {
			return false
		}
	}
	return true
}

// NotEqual is the negation of Equal.
func (v VecN[T, A]) NotEqual(w VecN[T, A]) bool { return !v.Equal(w) }

// All yields (index, component) pairs in index order.
func (v VecN[T, A]) All() iter.Seq2[int, T] { return seqAll(v.Slice()) }

// Values yields the components in index order.
func (v VecN[T, A]) Values() iter.Seq[T] { return seqValues(v.Slice()) }

// String renders v as [c0,c1,...].
func (v VecN[T, A]) String() string { return format(v.Slice()) }
