package domain

// RemoveAt deletes the element at idx by shifting the tail left, keeping
// the relative order of the remaining elements. Out of range indexes leave
// the slice untouched.
func RemoveAt[T any](elements []T, idx int) []T {
	if idx < 0 || idx >= len(elements) {
		return elements
	}
	copy(elements[idx:], elements[idx+1:])
	var zero T
	elements[len(elements)-1] = zero
	return elements[:len(elements)-1]
}
