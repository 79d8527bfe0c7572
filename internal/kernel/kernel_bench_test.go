package kernel

import "testing"

var benchLens = []struct {
	name string
	size int
}{
	{"3", 3},
	{"8", 8},
	{"16", 16},
}

func BenchmarkDot(b *testing.B) {
	for _, bl := range benchLens {
		x := make([]float64, bl.size)
		y := make([]float64, bl.size)
		for i := range x {
			x[i] = float64(i) + 0.5
			y[i] = float64(bl.size-i) * 0.25
		}
		b.Run(bl.name, func(b *testing.B) {
			b.ReportAllocs()
			var sink float64
			for i := 0; i < b.N; i++ {
				sink += Dot(x, y)
			}
			_ = sink
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	for _, bl := range benchLens {
		x := make([]float64, bl.size)
		y := make([]float64, bl.size)
		dst := make([]float64, bl.size)
		b.Run(bl.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Add(dst, x, y)
			}
		})
	}
}
