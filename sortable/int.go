package sortable

// Int is a sortable wrapper for int.
//
// Example:
//
//	tree := rbtree.New[sortable.Int, string]()
//	tree.Insert(sortable.Int(5), "five")
//	tree.Insert(sortable.Int(3), "three")
//	// ascending traversal yields 3, 5
type Int int

var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if both values are numerically equal.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if i is numerically less than other.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// Int64 is a sortable wrapper for int64.
type Int64 int64

var _ Sortable[Int64] = (*Int64)(nil)

func (i Int64) Equals(other Int64) bool {
	return int64(i) == int64(other)
}

func (i Int64) LessThan(other Int64) bool {
	return int64(i) < int64(other)
}

// Uint32 is a sortable wrapper for uint32.
type Uint32 uint32

var _ Sortable[Uint32] = (*Uint32)(nil)

func (u Uint32) Equals(other Uint32) bool {
	return uint32(u) == uint32(other)
}

func (u Uint32) LessThan(other Uint32) bool {
	return uint32(u) < uint32(other)
}
