package utils

// FilterSlice maps items through fn, dropping elements fn rejects.
func FilterSlice[T any, R any](items []T, fn func(T) (R, bool)) []R {
	res := make([]R, 0, len(items))
	for _, item := range items {
		if r, ok := fn(item); ok {
			res = append(res, r)
		}
	}
	return res
}

// FilterUniqSlice is FilterSlice with duplicate results removed,
// preserving first-seen order.
func FilterUniqSlice[T any, R comparable](items []T, fn func(T) (R, bool)) []R {
	seen := make(map[R]struct{}, len(items))
	res := make([]R, 0, len(items))
	for _, item := range items {
		r, ok := fn(item)
		if !ok {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		res = append(res, r)
	}
	return res
}

// Slice2Map builds a map from items; fn may reject an element.
func Slice2Map[T any, K comparable, V any](items []T, fn func(T) (K, V, bool)) map[K]V {
	res := make(map[K]V, len(items))
	for _, item := range items {
		if k, v, ok := fn(item); ok {
			res[k] = v
		}
	}
	return res
}
