package vec

import "iter"

// Vec2 is a two-component vector. Index 0 is X and index 1 is Y.
type Vec2[T Scalar] [2]T

// V2 returns the vector (x, y).
func V2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// Splat2 returns a vector with both components set to s.
func Splat2[T Scalar](s T) Vec2[T] {
	return Vec2[T]{s, s}
}

// New2 returns a vector holding vals in index order. Missing components
// are zero. Panics if more than two values are given.
func New2[T Scalar](vals ...T) Vec2[T] {
	v, err := FromSlice2(vals)
	if err != nil {
		panic(err)
	}
	return v
}

// FromSlice2 is New2 for runtime-length input; it reports an oversized
// slice as an error wrapping ErrTooManyComponents.
func FromSlice2[T Scalar](vals []T) (Vec2[T], error) {
	var v Vec2[T]
	if err := countError(len(vals), len(v)); err != nil {
		return v, err
	}
	copy(v[:], vals)
	return v, nil
}

// X returns component 0.
func (v Vec2[T]) X() T { return v[0] }

// Y returns component 1.
func (v Vec2[T]) Y() T { return v[1] }

// SetX assigns component 0.
func (v *Vec2[T]) SetX(x T) { v[0] = x }

// SetY assigns component 1.
func (v *Vec2[T]) SetY(y T) { v[1] = y }

// Len returns 2.
func (v Vec2[T]) Len() int { return 2 }

// At returns component i. Panics if i is outside [0, 2).
func (v Vec2[T]) At(i int) T {
	checkIndex(i, 2)
	return v[i]
}

// Set assigns component i. Panics if i is outside [0, 2).
func (v *Vec2[T]) Set(i int, c T) {
	checkIndex(i, 2)
	v[i] = c
}

// Ref returns a pointer to component i. Panics if i is outside [0, 2).
func (v *Vec2[T]) Ref(i int) *T {
	checkIndex(i, 2)
	return &v[i]
}

// Slice returns a view of the components backed by v.
func (v *Vec2[T]) Slice() []T { return v[:] }

// Add returns the component-wise sum v + w.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] + w[0], v[1] + w[1]}
}

// Sub returns the component-wise difference v - w.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] - w[0], v[1] - w[1]}
}

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{-v[0], -v[1]}
}

// Scale returns v with every component multiplied by s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{v[0] * s, v[1] * s}
}

// Div returns v scaled by the reciprocal of s.
func (v Vec2[T]) Div(s T) Vec2[T] {
	return v.Scale(reciprocal(s))
}

// AddInPlace adds w to v.
func (v *Vec2[T]) AddInPlace(w Vec2[T]) {
	v[0] += w[0]
	v[1] += w[1]
}

// SubInPlace subtracts w from v.
func (v *Vec2[T]) SubInPlace(w Vec2[T]) {
	v[0] -= w[0]
	v[1] -= w[1]
}

// ScaleInPlace multiplies every component of v by the scalar.
func (v *Vec2[T]) ScaleInPlace(s T) {
	v[0] *= s
	v[1] *= s
}

// DivInPlace scales v by the reciprocal of the scalar.
func (v *Vec2[T]) DivInPlace(s T) {
	v.ScaleInPlace(reciprocal(s))
}

// Dot returns the sum of the component-wise products of v and w.
func (v Vec2[T]) Dot(w Vec2[T]) T {
	return v[0]*w[0] + v[1]*w[1]
}

// LengthSquared returns v.Dot(v).
func (v Vec2[T]) LengthSquared() T { return v.Dot(v) }

// Norm returns the Euclidean length of v.
func (v Vec2[T]) Norm() float64 { return normOf(v.LengthSquared()) }

// Normalize returns v divided by its norm, or the zero vector when the
// norm is below Epsilon.
func (v Vec2[T]) Normalize() Vec2[T] {
	n := v.Norm()
	if n < Epsilon {
		return Vec2[T]{}
	}
	return v.Div(T(n))
}

// Distance returns the Euclidean distance between v and w.
func (v Vec2[T]) Distance(w Vec2[T]) float64 { return v.Sub(w).Norm() }

// Lerp returns v + (w-v)*t. t is not clamped.
func (v Vec2[T]) Lerp(w Vec2[T], t T) Vec2[T] {
	return Vec2[T]{
		v[0] + (w[0]-v[0])*t,
		v[1] + (w[1]-v[1])*t,
	}
}

// Equal reports whether every component pair is equal, within Epsilon for
// floating-point T.
func (v Vec2[T]) Equal(w Vec2[T]) bool {
	return nearlyEqual(v[0], w[0]) && nearlyEqual(v[1], w[1])
}

// NotEqual is the negation of Equal.
func (v Vec2[T]) NotEqual(w Vec2[T]) bool { return !v.Equal(w) }

// All yields (index, component) pairs in index order.
func (v Vec2[T]) All() iter.Seq2[int, T] { return seqAll(v[:]) }

// Values yields the components in index order.
func (v Vec2[T]) Values() iter.Seq[T] { return seqValues(v[:]) }

// String renders v as [x,y].
func (v Vec2[T]) String() string { return format(v[:]) }
