package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-vec/vec"
)

var (
	errDimensionMismatch = errors.New("vectors have different dimensions")
	errDimension         = fmt.Errorf("dimension must be in [1, %d]", vec.MaxDim)
	errFractionalT       = errors.New("-t must be an integer with -int")
)

// defaultIntT is the lerp parameter used with -int when -t is not given.
const defaultIntT = 1

// intLerpParam converts the -t flag for integer vectors. An unset flag
// yields defaultIntT; a fractional value is rejected.
func intLerpParam(t float64, set bool) (int, error) {
	if !set {
		return defaultIntT, nil
	}
	if t != math.Trunc(t) || math.IsInf(t, 0) {
		return 0, fmt.Errorf("%w, got %v", errFractionalT, t)
	}
	return int(t), nil
}

// row is one line of output.
type row struct {
	op     string
	result string
}

// parseComponents splits "1,2,3" or "[1,2,3]" into trimmed fields.
func parseComponents(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if strings.TrimSpace(s) == "" {
		return nil
	}
	fields := strings.Split(s, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

func parseFloats(s string) ([]float64, error) {
	fields := parseComponents(s)
	out := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		out[i] = x
	}
	return out, nil
}

func parseInts(s string) ([]int, error) {
	fields := parseComponents(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		x, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		out[i] = x
	}
	return out, nil
}

// run parses the vector arguments and computes every applicable operation.
func run[T vec.Scalar](args []string, parse func(string) ([]T, error), t T) ([]row, error) {
	v, err := parse(args[0])
	if err != nil {
		return nil, err
	}
	var w []T
	if len(args) > 1 {
		if w, err = parse(args[1]); err != nil {
			return nil, err
		}
		if len(w) != len(v) {
			return nil, fmt.Errorf("%w: %d and %d", errDimensionMismatch, len(v), len(w))
		}
	}
	return rowsFor(v, w, t)
}

func rowsFor[T vec.Scalar](v, w []T, t T) ([]row, error) {
	switch len(v) {
	case 2:
		return rows2(v, w, t)
	case 3:
		return rows3(v, w, t)
	case 4:
		return rows4(v, w, t)
	case 1:
		return rowsN[T, [1]T](v, w, t)
	case 5:
		return rowsN[T, [5]T](v, w, t)
	case 6:
		return rowsN[T, [6]T](v, w, t)
	case 7:
		return rowsN[T, [7]T](v, w, t)
	case 8:
		return rowsN[T, [8]T](v, w, t)
	case 9:
		return rowsN[T, [9]T](v, w, t)
	case 10:
		return rowsN[T, [10]T](v, w, t)
	case 11:
		return rowsN[T, [11]T](v, w, t)
	case 12:
		return rowsN[T, [12]T](v, w, t)
	case 13:
		return rowsN[T, [13]T](v, w, t)
	case 14:
		return rowsN[T, [14]T](v, w, t)
	case 15:
		return rowsN[T, [15]T](v, w, t)
	case 16:
		return rowsN[T, [16]T](v, w, t)
	}
	return nil, fmt.Errorf("%w, got %d", errDimension, len(v))
}

func rows2[T vec.Scalar](v, w []T, t T) ([]row, error) {
	a, err := vec.FromSlice2(v)
	if err != nil {
		return nil, err
	}
	b, err := vec.FromSlice2(w)
	if err != nil {
		return nil, err
	}
	return common(a, b, len(w) > 0, t), nil
}

func rows3[T vec.Scalar](v, w []T, t T) ([]row, error) {
	a, err := vec.FromSlice3(v)
	if err != nil {
		return nil, err
	}
	b, err := vec.FromSlice3(w)
	if err != nil {
		return nil, err
	}
	rows := common(a, b, len(w) > 0, t)
	if len(w) > 0 {
		rows = append(rows, row{"v × w", a.Cross(b).String()})
	}
	return append(rows,
		row{"v.xy", a.XY().String()},
		row{"v.xz", a.XZ().String()},
		row{"v.yz", a.YZ().String()},
	), nil
}

func rows4[T vec.Scalar](v, w []T, t T) ([]row, error) {
	a, err := vec.FromSlice4(v)
	if err != nil {
		return nil, err
	}
	b, err := vec.FromSlice4(w)
	if err != nil {
		return nil, err
	}
	return append(common(a, b, len(w) > 0, t),
		row{"v.xyz", a.XYZ().String()},
		row{"v.xy", a.XY().String()},
		row{"v.xz", a.XZ().String()},
		row{"v.yz", a.YZ().String()},
	), nil
}

func rowsN[T vec.Scalar, A vec.Array[T]](v, w []T, t T) ([]row, error) {
	a, err := vec.FromSliceN[T, A](v)
	if err != nil {
		return nil, err
	}
	b, err := vec.FromSliceN[T, A](w)
	if err != nil {
		return nil, err
	}
	return common(a, b, len(w) > 0, t), nil
}

// common computes the operations every vector form supports.
func common[T vec.Scalar, V vec.Vector[T, V]](v, w V, hasW bool, t T) []row {
	rows := []row{
		{"v", v.String()},
		{"dim", strconv.Itoa(v.Len())},
		{"|v|", formatFloat(v.Norm())},
		{"fast |v|", formatFloat(vec.FastNorm[T](v))},
		{"|v|²", fmt.Sprint(v.LengthSquared())},
		{"normalize(v)", v.Normalize().String()},
		{"-v", v.Neg().String()},
	}
	if !hasW {
		return rows
	}
	return append(rows,
		row{"w", w.String()},
		row{"v + w", v.Add(w).String()},
		row{"v - w", v.Sub(w).String()},
		row{"v · w", fmt.Sprint(v.Dot(w))},
		row{"distance(v, w)", formatFloat(v.Distance(w))},
		row{fmt.Sprintf("lerp(v, w, %v)", t), v.Lerp(w, t).String()},
		row{"v == w", strconv.FormatBool(v.Equal(w))},
	)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
