package grammar

// IndexIn returns the index of the first occurrence of c in s within the
// half-open range [from, to), or -1 when absent. The range is clamped to the
// bounds of s.
func IndexIn(s string, c byte, from, to int) int {
	if to > len(s) {
		to = len(s)
	}
	if from < 0 {
		from = 0
	}
	for i := from; i < to; i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// MinIndex returns the smaller of two candidate positions, ignoring negative
// ("not found") values. When both are negative it returns def.
func MinIndex(a, b, def int) int {
	switch {
	case a < 0 && b < 0:
		return def
	case a < 0:
		return b
	case b < 0:
		return a
	}
	return min(a, b)
}
