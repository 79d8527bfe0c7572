package kernel

// Dot returns sum(a[i] * b[i]). Returns 0 for empty operands.
// Panics if the lengths differ.
func Dot[T Number](a, b []T) T {
	checkLen2("Dot", len(a), len(b))
	if n := len(a); useBlock[T](n) {
		s := scratchPool.Get().(*blockScratch)
		load(s.a[:n], a)
		load(s.b[:n], b)
		mulBlock(s.dst[:n], s.a[:n], s.b[:n])
		sum := 0.0
		for _, p := range s.dst[:n] {
			sum += p
		}
		scratchPool.Put(s)
		return T(sum)
	}
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
