package vec

import "iter"

// Vector is the operation surface shared by Vec2, Vec3, Vec4 and VecN.
// V is the implementing vector type itself.
type Vector[T Scalar, V any] interface {
	Len() int
	At(i int) T

	Add(w V) V
	Sub(w V) V
	Neg() V
	Scale(s T) V
	Div(s T) V

	Dot(w V) T
	LengthSquared() T
	Norm() float64
	Normalize() V
	Distance(w V) float64
	Lerp(w V, t T) V

	Equal(w V) bool
	NotEqual(w V) bool

	All() iter.Seq2[int, T]
	Values() iter.Seq[T]
	String() string
}

var (
	_ Vector[float64, Vec2[float64]]             = Vec2[float64]{}
	_ Vector[float32, Vec3[float32]]             = Vec3[float32]{}
	_ Vector[int, Vec4[int]]                     = Vec4[int]{}
	_ Vector[float64, VecN[float64, [5]float64]] = VecN[float64, [5]float64]{}
)

// Mul returns s·v. It is the scalar-on-the-left form of v.Scale(s) and
// always produces the identical result.
func Mul[T Scalar, V Vector[T, V]](s T, v V) V {
	return v.Scale(s)
}

// Sum adds any number of vectors of the same form to zero.
func Sum[T Scalar, V Vector[T, V]](vs ...V) V {
	var total V
	for _, v := range vs {
		total = total.Add(v)
	}
	return total
}
