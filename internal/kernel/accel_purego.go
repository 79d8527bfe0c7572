//go:build purego

package kernel

const blockEnabled = false

func addBlock(dst, src []float64) {
	for i := range dst {
		dst[i] += src[i]
	}
}

func scaleBlock(dst, src []float64, s float64) {
	for i := range dst {
		dst[i] = src[i] * s
	}
}

func mulBlock(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}
