package engine

// Sign returns the sign of x: -1, 0, or 1.
func Sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
