package vec

import "iter"

// Vec4 is a four-component vector. Indices 0 through 3 are X, Y, Z and W.
type Vec4[T Scalar] [4]T

// V4 returns the vector (x, y, z, w).
func V4[T Scalar](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

// Splat4 returns a vector with every component set to s.
func Splat4[T Scalar](s T) Vec4[T] {
	return Vec4[T]{s, s, s, s}
}

// New4 returns a vector holding vals in index order. Missing components
// are zero. Panics if more than four values are given.
func New4[T Scalar](vals ...T) Vec4[T] {
	v, err := FromSlice4(vals)
	if err != nil {
		panic(err)
	}
	return v
}

// FromSlice4 is New4 for runtime-length input; it reports an oversized
// slice as an error wrapping ErrTooManyComponents.
func FromSlice4[T Scalar](vals []T) (Vec4[T], error) {
	var v Vec4[T]
	if err := countError(len(vals), len(v)); err != nil {
		return v, err
	}
	copy(v[:], vals)
	return v, nil
}

// X returns component 0.
func (v Vec4[T]) X() T { return v[0] }

// Y returns component 1.
func (v Vec4[T]) Y() T { return v[1] }

// Z returns component 2.
func (v Vec4[T]) Z() T { return v[2] }

// W returns component 3.
func (v Vec4[T]) W() T { return v[3] }

// SetX assigns component 0.
func (v *Vec4[T]) SetX(x T) { v[0] = x }

// SetY assigns component 1.
func (v *Vec4[T]) SetY(y T) { v[1] = y }

// SetZ assigns component 2.
func (v *Vec4[T]) SetZ(z T) { v[2] = z }

// SetW assigns component 3.
func (v *Vec4[T]) SetW(w T) { v[3] = w }

// Len returns 4.
func (v Vec4[T]) Len() int { return 4 }

// At returns component i. Panics if i is outside [0, 4).
func (v Vec4[T]) At(i int) T {
	checkIndex(i, 4)
	return v[i]
}

// Set assigns component i. Panics if i is outside [0, 4).
func (v *Vec4[T]) Set(i int, c T) {
	checkIndex(i, 4)
	v[i] = c
}

// Ref returns a pointer to component i. Panics if i is outside [0, 4).
func (v *Vec4[T]) Ref(i int) *T {
	checkIndex(i, 4)
	return &v[i]
}

// Slice returns a view of the components backed by v.
func (v *Vec4[T]) Slice() []T { return v[:] }

// Add returns the component-wise sum v + w.
func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Sub returns the component-wise difference v - w.
func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{-v[0], -v[1], -v[2], -v[3]}
}

// Scale returns v with every component multiplied by s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Div returns v scaled by the reciprocal of s.
func (v Vec4[T]) Div(s T) Vec4[T] {
	return v.Scale(reciprocal(s))
}

// AddInPlace adds w to v.
func (v *Vec4[T]) AddInPlace(w Vec4[T]) {
	v[0] += w[0]
	v[1] += w[1]
	v[2] += w[2]
	v[3] += w[3]
}

// SubInPlace subtracts w from v.
func (v *Vec4[T]) SubInPlace(w Vec4[T]) {
	v[0] -= w[0]
	v[1] -= w[1]
	v[2] -= w[2]
	v[3] -= w[3]
}

// ScaleInPlace multiplies every component of v by the scalar.
func (v *Vec4[T]) ScaleInPlace(s T) {
	v[0] *= s
	v[1] *= s
	v[2] *= s
	v[3] *= s
}

// DivInPlace scales v by the reciprocal of the scalar.
func (v *Vec4[T]) DivInPlace(s T) {
	v.ScaleInPlace(reciprocal(s))
}

// Dot returns the sum of the component-wise products of v and w.
func (v Vec4[T]) Dot(w Vec4[T]) T {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] + v[3]*w[3]
}

// LengthSquared returns v.Dot(v).
func (v Vec4[T]) LengthSquared() T { return v.Dot(v) }

// Norm returns the Euclidean length of v.
func (v Vec4[T]) Norm() float64 { return normOf(v.LengthSquared()) }

// Normalize returns v divided by its norm, or the zero vector when the
// norm is below Epsilon.
func (v Vec4[T]) Normalize() Vec4[T] {
	n := v.Norm()
	if n < Epsilon {
		return Vec4[T]{}
	}
	return v.Div(T(n))
}

// Distance returns the Euclidean distance between v and w.
func (v Vec4[T]) Distance(w Vec4[T]) float64 { return v.Sub(w).Norm() }

// Lerp returns v + (w-v)*t. t is not clamped.
func (v Vec4[T]) Lerp(w Vec4[T], t T) Vec4[T] {
	return Vec4[T]{
		v[0] + (w[0]-v[0])*t,
		v[1] + (w[1]-v[1])*t,
		v[2] + (w[2]-v[2])*t,
		v[3] + (w[3]-v[3])*t,
	}
}

// Equal reports whether every component pair is equal, within Epsilon for
// floating-point T.
func (v Vec4[T]) Equal(w Vec4[T]) bool {
	return nearlyEqual(v[0], w[0]) &&
		nearlyEqual(v[1], w[1]) &&
		nearlyEqual(v[2], w[2]) &&
		nearlyEqual(v[3], w[3])
}

// NotEqual is the negation of Equal.
func (v Vec4[T]) NotEqual(w Vec4[T]) bool { return !v.Equal(w) }

// XY returns the x and y components as a Vec2.
func (v Vec4[T]) XY() Vec2[T] { return Vec2[T]{v[0], v[1]} }

// XZ returns the x and z components as a Vec2.
func (v Vec4[T]) XZ() Vec2[T] { return Vec2[T]{v[0], v[2]} }

// YZ returns the y and z components as a Vec2.
func (v Vec4[T]) YZ() Vec2[T] { return Vec2[T]{v[1], v[2]} }

// XYZ returns the first three components as a Vec3.
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v[0], v[1], v[2]} }

// All yields (index, component) pairs in index order.
func (v Vec4[T]) All() iter.Seq2[int, T] { return seqAll(v[:]) }

// Values yields the components in index order.
func (v Vec4[T]) Values() iter.Seq[T] { return seqValues(v[:]) }

// String renders v as [x,y,z,w].
func (v Vec4[T]) String() string { return format(v[:]) }
