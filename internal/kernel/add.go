package kernel

// Add writes a[i] + b[i] into dst. dst may alias either operand.
// Panics if the lengths differ.
func Add[T Number](dst, a, b []T) {
	checkLen3("Add", len(dst), len(a), len(b))
	if n := len(dst); useBlock[T](n) {
		s := scratchPool.Get().(*blockScratch)
		load(s.dst[:n], a)
		load(s.b[:n], b)
		addBlock(s.dst[:n], s.b[:n])
		store(dst, s.dst[:n])
		scratchPool.Put(s)
		return
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Sub writes a[i] - b[i] into dst. Panics if the lengths differ.
func Sub[T Number](dst, a, b []T) {
	checkLen3("Sub", len(dst), len(a), len(b))
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// Neg writes -src[i] into dst. Panics if the lengths differ.
func Neg[T Number](dst, src []T) {
	checkLen2("Neg", len(dst), len(src))
	for i := range dst {
		dst[i] = -src[i]
	}
}
