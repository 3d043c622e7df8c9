package utils

// Move removes the element at from and reinserts it at to, returning a new slice.
// When either index falls outside [0, len(items)-1] the original slice is returned
// untouched and moved is false.
func Move[T any](items []T, from, to int) (result []T, moved bool) {
	n := len(items)
	if from < 0 || from >= n || to < 0 || to >= n {
		return items, false
	}

	result = make([]T, 0, n)
	result = append(result, items[:from]...)
	result = append(result, items[from+1:]...)

	item := items[from]
	result = append(result, item)
	copy(result[to+1:], result[to:n-1])
	result[to] = item

	return result, true
}
