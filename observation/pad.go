package observation

// Pad rounds n up to the next multiple of alignment.
// An alignment of 0 returns n unchanged.
func Pad(n, alignment int) int {
	if alignment <= 0 {
		return n
	}

	if rem := n % alignment; rem != 0 {
		return n + alignment - rem
	}

	return n
}
