package vec

import (
	"fmt"
	"iter"
	"strings"
)

// format renders components as [c0,c1,...].
func format[T Scalar](s []T) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprint(&b, c)
	}
	b.WriteByte(']')
	return b.String()
}

func seqAll[T Scalar](s []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, c := range s {
			if !yield(i, c) {
				return
			}
		}
	}
}

func seqValues[T Scalar](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, c := range s {
			if !yield(c) {
				return
			}
		}
	}
}
