package helpers

// Unique drops repeated elements, keeping the first occurrence of each.
func Unique[T comparable](arr []T) []T {
	seen := make(map[T]struct{}, len(arr))
	out := make([]T, 0, len(arr))
	for _, v := range arr {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Chunk splits arr into consecutive groups of at most size elements. size must be positive.
func Chunk[T any](arr []T, size int) [][]T {
	out := make([][]T, 0, (len(arr)+size-1)/size)
	for i := 0; i < len(arr); i += size {
		end := i + size
		if end > len(arr) {
			end = len(arr)
		}
		out = append(out, arr[i:end:end])
	}
	return out
}
