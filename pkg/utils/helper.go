package utils

// Or returns the first non-zero value.
func Or[T comparable](vals ...T) T {
	var zero T
	for _, v := range vals {
		if v != zero {
			return v
		}
	}
	return zero
}

func Ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
