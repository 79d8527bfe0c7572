package main

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(t *testing.T, rows []row, op string) string {
	t.Helper()
	for _, r := range rows {
		if r.op == op {
			return r.result
		}
	}
	t.Fatalf("no row %q in %v", op, rows)
	return ""
}

func TestParseFloats(t *testing.T) {
	cases := []struct {
		in   string
		want []float64
	}{
		{in: "1,2,3", want: []float64{1, 2, 3}},
		{in: "[1, 2.5, -3]", want: []float64{1, 2.5, -3}},
		{in: " 4 ", want: []float64{4}},
		{in: "[]", want: []float64{}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseFloats(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := parseFloats("1,x")
	require.Error(t, err)
}

func TestParseInts(t *testing.T) {
	got, err := parseInts("[1,2,3,4]")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	_, err = parseInts("1.5")
	require.Error(t, err)
}

func TestRun3D(t *testing.T) {
	rows, err := run([]string{"1,2,3", "4,5,6"}, parseFloats, 0.5)
	require.NoError(t, err)

	assert.Equal(t, "3", lookup(t, rows, "dim"))
	assert.Equal(t, "32", lookup(t, rows, "v · w"))
	assert.Equal(t, "[-3,-3,-3]", lookup(t, rows, "v - w"))
	assert.Equal(t, "[2.5,3.5,4.5]", lookup(t, rows, "lerp(v, w, 0.5)"))
	assert.Equal(t, "[-3,6,-3]", lookup(t, rows, "v × w"))
	assert.Equal(t, "[1,3]", lookup(t, rows, "v.xz"))
	assert.Equal(t, "false", lookup(t, rows, "v == w"))
}

func TestRun4DIntegers(t *testing.T) {
	rows, err := run([]string{"1,2,3,4", "5,6,7,8"}, parseInts, 0)
	require.NoError(t, err)

	assert.Equal(t, "70", lookup(t, rows, "v · w"))
	assert.Equal(t, "[1,2,3]", lookup(t, rows, "v.xyz"))
	assert.Equal(t, "[1,2]", lookup(t, rows, "v.xy"))
	assert.Equal(t, "8", lookup(t, rows, "distance(v, w)"))
}

func TestRunGenericDimensions(t *testing.T) {
	rows, err := run([]string{"[3]"}, parseFloats, 0.5)
	require.NoError(t, err)
	assert.Equal(t, "3", lookup(t, rows, "|v|"))
	assert.Equal(t, "[1]", lookup(t, rows, "normalize(v)"))

	rows, err = run([]string{"1,1,1,1,1,1,1,1,1", "1,1,1,1,1,1,1,1,1"}, parseFloats, 0.5)
	require.NoError(t, err)
	assert.Equal(t, "9", lookup(t, rows, "dim"))
	assert.Equal(t, "true", lookup(t, rows, "v == w"))
	assert.Equal(t, "0", lookup(t, rows, "distance(v, w)"))
}

func TestRunErrors(t *testing.T) {
	_, err := run([]string{"1,2,3", "1,2"}, parseFloats, 0.5)
	require.ErrorIs(t, err, errDimensionMismatch)

	_, err = run([]string{"[]"}, parseFloats, 0.5)
	require.ErrorIs(t, err, errDimension)

	_, err = run([]string{"1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1"}, parseInts, 0)
	require.ErrorIs(t, err, errDimension)
}

func TestRunSingleVector(t *testing.T) {
	rows, err := run([]string{"0,3,4"}, parseFloats, 0.5)
	require.NoError(t, err)
	assert.Equal(t, "5", lookup(t, rows, "|v|"))
	assert.Equal(t, "25", lookup(t, rows, "|v|²"))
	assert.Equal(t, "[-0,-3,-4]", lookup(t, rows, "-v"), "negated zero keeps its sign")
	for _, r := range rows {
		assert.NotEqual(t, "v + w", r.op, "no binary rows without w")
	}
}

func TestIntLerpParam(t *testing.T) {
	cases := []struct {
		name string
		t    float64
		set  bool
		want int
	}{
		{name: "unset", t: 0.5, set: false, want: defaultIntT},
		{name: "zero", t: 0, set: true, want: 0},
		{name: "two", t: 2, set: true, want: 2},
		{name: "negative", t: -3, set: true, want: -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := intLerpParam(tc.t, tc.set)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := intLerpParam(0.5, true)
	require.ErrorIs(t, err, errFractionalT)
}

func TestRunIntegerDefaultLerp(t *testing.T) {
	ti, err := intLerpParam(0.5, false)
	require.NoError(t, err)

	rows, err := run([]string{"1,2", "5,8"}, parseInts, ti)
	require.NoError(t, err)
	assert.Equal(t, "[5,8]", lookup(t, rows, "lerp(v, w, 1)"), "lerp must not collapse to v")
}

func TestRunFastNorm(t *testing.T) {
	rows, err := run([]string{"0,3,4"}, parseFloats, 0.5)
	require.NoError(t, err)
	got, err := strconv.ParseFloat(lookup(t, rows, "fast |v|"), 64)
	require.NoError(t, err)
	assert.InEpsilon(t, 5.0, got, 1e-5)
}
