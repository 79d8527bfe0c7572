package vec

import "iter"

// Vec3 is a three-component vector. Indices 0, 1 and 2 are X, Y and Z.
type Vec3[T Scalar] [3]T

// V3 returns the vector (x, y, z).
func V3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// Splat3 returns a vector with every component set to s.
func Splat3[T Scalar](s T) Vec3[T] {
	return Vec3[T]{s, s, s}
}

// New3 returns a vector holding vals in index order. Missing components
// are zero, so New3(1, 2) is (1, 2, 0). Panics if more than three values
// are given.
func New3[T Scalar](vals ...T) Vec3[T] {
	v, err := FromSlice3(vals)
	if err != nil {
		panic(err)
	}
	return v
}

// FromSlice3 is New3 for runtime-length input; it reports an oversized
// slice as an error wrapping ErrTooManyComponents.
func FromSlice3[T Scalar](vals []T) (Vec3[T], error) {
	var v Vec3[T]
	if err := countError(len(vals), len(v)); err != nil {
		return v, err
	}
	copy(v[:], vals)
	return v, nil
}

// X returns component 0.
func (v Vec3[T]) X() T { return v[0] }

// Y returns component 1.
func (v Vec3[T]) Y() T { return v[1] }

// Z returns component 2.
func (v Vec3[T]) Z() T { return v[2] }

// SetX assigns component 0.
func (v *Vec3[T]) SetX(x T) { v[0] = x }

// SetY assigns component 1.
func (v *Vec3[T]) SetY(y T) { v[1] = y }

// SetZ assigns component 2.
func (v *Vec3[T]) SetZ(z T) { v[2] = z }

// Len returns 3.
func (v Vec3[T]) Len() int { return 3 }

// At returns component i. Panics if i is outside [0, 3).
func (v Vec3[T]) At(i int) T {
	checkIndex(i, 3)
	return v[i]
}

// Set assigns component i. Panics if i is outside [0, 3).
func (v *Vec3[T]) Set(i int, c T) {
	checkIndex(i, 3)
	v[i] = c
}

// Ref returns a pointer to component i. Panics if i is outside [0, 3).
func (v *Vec3[T]) Ref(i int) *T {
	checkIndex(i, 3)
	return &v[i]
}

// Slice returns a view of the components backed by v.
func (v *Vec3[T]) Slice() []T { return v[:] }

// Add returns the component-wise sum v + w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns the component-wise difference v - w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-v[0], -v[1], -v[2]}
}

// Scale returns v with every component multiplied by s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v[0] * s, v[1] * s, v[2] * s}
}

// Div returns v scaled by the reciprocal of s.
func (v Vec3[T]) Div(s T) Vec3[T] {
	return v.Scale(reciprocal(s))
}

// AddInPlace adds w to v.
func (v *Vec3[T]) AddInPlace(w Vec3[T]) {
	v[0] += w[0]
	v[1] += w[1]
	v[2] += w[2]
}

// SubInPlace subtracts w from v.
func (v *Vec3[T]) SubInPlace(w Vec3[T]) {
	v[0] -= w[0]
	v[1] -= w[1]
	v[2] -= w[2]
}

// ScaleInPlace multiplies every component of v by the scalar.
func (v *Vec3[T]) ScaleInPlace(s T) {
	v[0] *= s
	v[1] *= s
	v[2] *= s
}

// DivInPlace scales v by the reciprocal of the scalar.
func (v *Vec3[T]) DivInPlace(s T) {
	v.ScaleInPlace(reciprocal(s))
}

// Dot returns the sum of the component-wise products of v and w.
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross returns the right-handed cross product v × w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// LengthSquared returns v.Dot(v).
func (v Vec3[T]) LengthSquared() T { return v.Dot(v) }

// Norm returns the Euclidean length of v.
func (v Vec3[T]) Norm() float64 { return normOf(v.LengthSquared()) }

// Normalize returns v divided by its norm, or the zero vector when the
// norm is below Epsilon.
func (v Vec3[T]) Normalize() Vec3[T] {
	n := v.Norm()
	if n < Epsilon {
		return Vec3[T]{}
	}
	return v.Div(T(n))
}

// Distance returns the Euclidean distance between v and w.
func (v Vec3[T]) Distance(w Vec3[T]) float64 { return v.Sub(w).Norm() }

// Lerp returns v + (w-v)*t. t is not clamped.
func (v Vec3[T]) Lerp(w Vec3[T], t T) Vec3[T] {
	return Vec3[T]{
		v[0] + (w[0]-v[0])*t,
		v[1] + (w[1]-v[1])*t,
		v[2] + (w[2]-v[2])*t,
	}
}

// Equal reports whether every component pair is equal, within Epsilon for
// floating-point T.
func (v Vec3[T]) Equal(w Vec3[T]) bool {
	return nearlyEqual(v[0], w[0]) &&
		nearlyEqual(v[1], w[1]) &&
		nearlyEqual(v[2], w[2])
}

// NotEqual is the negation of Equal.
func (v Vec3[T]) NotEqual(w Vec3[T]) bool { return !v.Equal(w) }

// XY returns the x and y components as a Vec2.
func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{v[0], v[1]} }

// XZ returns the x and z components as a Vec2.
func (v Vec3[T]) XZ() Vec2[T] { return Vec2[T]{v[0], v[2]} }

// YZ returns the y and z components as a Vec2.
func (v Vec3[T]) YZ() Vec2[T] { return Vec2[T]{v[1], v[2]} }

// All yields (index, component) pairs in index order.
func (v Vec3[T]) All() iter.Seq2[int, T] { return seqAll(v[:]) }

// Values yields the components in index order.
func (v Vec3[T]) Values() iter.Seq[T] { return seqValues(v[:]) }

// String renders v as [x,y,z].
func (v Vec3[T]) String() string { return format(v[:]) }
