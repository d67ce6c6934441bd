package util

// Clamp limits v to the range [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Lerp blends two values linearly.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ResizePreservingOrder grows or shrinks a slice to length n by mapping
// each output index back onto the input proportionally, so the relative
// order of the source elements is preserved and growth happens by
// repeating elements evenly. The second return value lists the output
// indices that are repeats of an earlier element.
func ResizePreservingOrder[T any](src []T, n int) ([]T, []int) {
	out := make([]T, n)
	var repeated []int
	m := len(src)
	prev := -1
	for i := 0; i < n; i++ {
		j := i * m / n
		out[i] = src[j]
		if j == prev {
			repeated = append(repeated, i)
		}
		prev = j
	}
	return out, repeated
}
