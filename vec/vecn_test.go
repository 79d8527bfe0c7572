package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	vec1i = VecN[int, [1]int]
	vec3n = VecN[float64, [3]float64]
	vec5d = VecN[float64, [5]float64]
	vec7f = VecN[float32, [7]float32]
)

func TestVecNConstruction(t *testing.T) {
	var zero vec5d
	assert.Equal(t, [5]float64{}, zero.Array())
	assert.Equal(t, 5, zero.Len())

	assert.Equal(t, [5]float64{2, 2, 2, 2, 2}, SplatN[float64, [5]float64](2).Array())
	assert.Equal(t, [5]float64{1, 2, 0, 0, 0}, NewN[float64, [5]float64](1, 2).Array())

	raw := [5]float64{1, 2, 3, 4, 5}
	v := FromArray[float64](raw)
	raw[0] = 100
	assert.InDelta(t, 1.0, v.At(0), 0, "FromArray copies its input")

	requirePanicsWith(t, ErrTooManyComponents, func() {
		NewN[int, [1]int](1, 2)
	})

	_, err := FromSliceN[float64, [5]float64](make([]float64, 6))
	require.ErrorIs(t, err, ErrTooManyComponents)
}

func TestVecNOneDimension(t *testing.T) {
	v := NewN[int, [1]int](-7)
	assert.Equal(t, 1, v.Len())
	assert.Equal(t, "[-7]", v.String())
	assert.InDelta(t, 7.0, v.Norm(), 0)
	assert.Equal(t, 49, v.Dot(v))
	assert.True(t, v.Neg().Equal(NewN[int, [1]int](7)))
	assert.Equal(t, vec1i{}, vec1i{}.Normalize())
}

func TestVecNAccess(t *testing.T) {
	var v vec5d
	v.Set(4, 3)
	*v.Ref(0) = 1
	assert.Equal(t, [5]float64{1, 0, 0, 0, 3}, v.Array())

	s := v.Slice()
	s[2] = 9
	assert.InDelta(t, 9.0, v.At(2), 0, "Slice must share storage with v")

	w := v
	w.Set(0, -1)
	assert.InDelta(t, 1.0, v.At(0), 0, "copies are independent")

	requirePanicsWith(t, ErrIndexOutOfRange, func() { v.At(5) })
	requirePanicsWith(t, ErrIndexOutOfRange, func() { v.Set(-1, 0) })
	requirePanicsWith(t, ErrIndexOutOfRange, func() { v.Ref(16) })
}

func TestVecNOperators(t *testing.T) {
	v := NewN[float64, [5]float64](1, 2, 3, 4, 5)
	w := NewN[float64, [5]float64](5, 4, 3, 2, 1)

	assert.Equal(t, [5]float64{6, 6, 6, 6, 6}, v.Add(w).Array())
	assert.Equal(t, [5]float64{-4, -2, 0, 2, 4}, v.Sub(w).Array())
	assert.Equal(t, [5]float64{-1, -2, -3, -4, -5}, v.Neg().Array())
	assert.Equal(t, [5]float64{2, 4, 6, 8, 10}, v.Scale(2).Array())
	assert.Equal(t, v.Scale(2), Mul(2.0, v))
	assert.Equal(t, [5]float64{0.5, 1, 1.5, 2, 2.5}, v.Div(2).Array())
	assert.InDelta(t, 35.0, v.Dot(w), 1e-12)
	assert.InDelta(t, 55.0, v.LengthSquared(), 1e-12)
	assert.InDelta(t, math.Sqrt(55), v.Norm(), 1e-12)
	assert.InDelta(t, math.Sqrt(40), v.Distance(w), 1e-12)
	assert.True(t, v.Lerp(w, 0.5).Equal(SplatN[float64, [5]float64](3)))

	u := v
	u.AddInPlace(w)
	assert.True(t, u.Equal(SplatN[float64, [5]float64](6)))
	u.SubInPlace(w)
	assert.True(t, u.Equal(v))
	u.ScaleInPlace(4)
	u.DivInPlace(4)
	assert.True(t, u.Equal(v))
	assert.True(t, u.NotEqual(w))
}

func TestVecNFloat32(t *testing.T) {
	v := NewN[float32, [7]float32](1, 2, 3, 4, 5, 6, 7)
	assert.InDelta(t, 140.0, v.Dot(v), 1e-4)
	assert.InDelta(t, 1.0, v.Normalize().Norm(), 1e-6)
	assert.Equal(t, "[1,2,3,4,5,6,7]", v.String())
	assert.Equal(t, vec7f{}, vec7f{}.Normalize())
}

func TestVecNMatchesVec3(t *testing.T) {
	a := V3(1.0, 2.0, 3.0)
	b := V3(4.0, 5.0, 6.0)
	an := FromArray[float64]([3]float64(a))
	bn := FromArray[float64]([3]float64(b))

	assert.Equal(t, [3]float64(a.Add(b)), an.Add(bn).Array())
	assert.Equal(t, [3]float64(a.Sub(b)), an.Sub(bn).Array())
	assert.Equal(t, [3]float64(a.Scale(3)), an.Scale(3).Array())
	assert.Equal(t, [3]float64(a.Lerp(b, 0.25)), an.Lerp(bn, 0.25).Array())
	assert.InDelta(t, a.Dot(b), an.Dot(bn), 0)
	assert.InDelta(t, a.Norm(), an.Norm(), 0)
	assert.Equal(t, a.String(), an.String())

	var _ vec3n = an
}

func TestVecNIteration(t *testing.T) {
	v := NewN[int, [4]int](4, 3, 2, 1)

	var got []int
	for i, c := range v.All() {
		assert.Equal(t, v.At(i), c)
		got = append(got, c)
	}
	assert.Equal(t, []int{4, 3, 2, 1}, got)

	n := 0
	for range v.Values() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)

	for i, c := range v.Slice() {
		v.Slice()[i] = c * 10
	}
	assert.Equal(t, [4]int{40, 30, 20, 10}, v.Array())
}

func TestVecNMaxDim(t *testing.T) {
	v := SplatN[float64, [MaxDim]float64](1)
	assert.Equal(t, MaxDim, v.Len())
	assert.InDelta(t, 4.0, v.Norm(), 0)
	assert.InDelta(t, 1.0, v.Normalize().Norm(), 1e-12)
}
