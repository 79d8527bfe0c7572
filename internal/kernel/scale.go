package kernel

// Scale writes src[i] * s into dst. Panics if the lengths differ.
func Scale[T Number](dst, src []T, s T) {
	checkLen2("Scale", len(dst), len(src))
	if n := len(dst); useBlock[T](n) {
		sc := scratchPool.Get().(*blockScratch)
		load(sc.a[:n], src)
		scaleBlock(sc.dst[:n], sc.a[:n], float64(s))
		store(dst, sc.dst[:n])
		scratchPool.Put(sc)
		return
	}
	for i := range dst {
		dst[i] = src[i] * s
	}
}

// Lerp writes a[i] + (b[i]-a[i])*t into dst. Panics if the lengths differ.
func Lerp[T Number](dst, a, b []T, t T) {
	checkLen3("Lerp", len(dst), len(a), len(b))
	for i := range dst {
		dst[i] = a[i] + (b[i]-a[i])*t
	}
}
