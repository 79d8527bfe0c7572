//go:build !purego

package kernel

import "github.com/cwbudde/algo-vecmath"

const blockEnabled = true

func addBlock(dst, src []float64) { vecmath.AddBlockInPlace(dst, src) }

func scaleBlock(dst, src []float64, s float64) { vecmath.ScaleBlock(dst, src, s) }

func mulBlock(dst, a, b []float64) { vecmath.MulBlock(dst, a, b) }
