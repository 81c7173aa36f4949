package sortable

// Sortable is implemented by keys with a total order.
type Sortable[T any] interface {
	// Equals reports whether the receiver and other denote the same key.
	Equals(other T) bool

	// LessThan reports whether the receiver orders strictly before other.
	LessThan(other T) bool
}

// Compare returns -1, 0 or +1 depending on whether a orders before, equal to or after b.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.Equals(b):
		return 0
	case a.LessThan(b):
		return -1
	default:
		return 1
	}
}

// Less is a free-function form of LessThan, convenient for slices.SortFunc style callers.
func Less[T Sortable[T]](a, b T) bool {
	return a.LessThan(b)
}
