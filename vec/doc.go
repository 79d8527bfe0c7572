// Package vec provides small fixed-dimension numeric vectors.
//
// Four forms share one operation surface (see [Vector]):
//
//   - [Vec2], [Vec3], [Vec4]: hand-unrolled 2D, 3D and 4D vectors with named
//     components X, Y, Z, W
//   - [VecN]: any dimension from 1 to [MaxDim], fixed at compile time by its
//     backing array type
//
// Components may be any floating-point or integral type (see [Scalar]).
// Vec3 adds [Vec3.Cross]; Vec3 and Vec4 add swizzles such as [Vec3.XY] and
// [Vec4.XYZ].
//
// # Values
//
// Every form is a plain value backed by a single array. Copies are
// independent, and named accessors read and write the same storage as
// indexing: X is index 0, Y index 1, Z index 2, W index 3.
//
//	v := vec.V3(1.0, 2.0, 3.0)
//	w := vec.New3(4.0, 5.0)      // (4, 5, 0)
//	d := v.Dot(w)                // 14
//	u := vec.Mul(2.0, v).Add(w)  // (6, 9, 6)
//
// Arithmetic, metric and comparison operations never allocate, on any
// form.
//
// # Norms
//
// Norm, Normalize and Distance use math.Sqrt. [FastNorm] and [FastDistance]
// trade accuracy for speed (relative error below 1e-5) and must not feed
// Equal.
//
// # Equality
//
// [Vec3.Equal] and friends compare floating-point components with a fixed
// absolute tolerance of [Epsilon] and integral components exactly. The Go ==
// operator on Vec2, Vec3 and Vec4 is always exact.
//
// # Division
//
// Div multiplies by the reciprocal T(1)/s. Floating-point division by zero
// yields Inf or NaN components. For integral T the reciprocal truncates, so
// dividing by any |s| > 1 gives the zero vector, and dividing by zero panics
// with Go's integer divide error.
//
// # Contract violations
//
// Supplying more components than the dimension and indexing outside [0, N)
// panic with an error wrapping [ErrTooManyComponents] or [ErrIndexOutOfRange].
// The checks are always on.
package vec
