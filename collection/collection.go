// Package collection provides ordered doubly-linked lists with a pluggable
// element destruction policy and cursors which survive in-place removal.
//
// Lists and cursors are not safe for concurrent use: a single owner drives
// every mutation and every cursor bound to a list.
package collection

//go:generate go run ../internal/cmd/gstack ..

// Collection is the base of every list. It counts elements and holds the
// ordering and destruction policies chosen at construction.
type Collection[T any] struct {
	count   int
	compare func(a, b T) int
	destroy func(T)
}

// Count returns the number of elements currently held.
func (c *Collection[T]) Count() int {
	return c.count
}

// Compare reports the relative order of a and b as -1, 0 or +1.
// Without a comparator every pair of elements is equal, so lists keep
// insertion order.
func (c *Collection[T]) Compare(a, b T) int {
	if c.compare == nil {
		return 0
	}
	switch r := c.compare(a, b); {
	case r < 0:
		return -1
	case r > 0:
		return 1
	default:
		return 0
	}
}

// SetDestructor replaces the function which receives every element the
// collection discards. A nil fn restores the default no-op.
// fn must not mutate the collection it is installed on.
func (c *Collection[T]) SetDestructor(fn func(T)) {
	c.destroy = fn
}

// Destructor returns the installed destructor or nil.
func (c *Collection[T]) Destructor() func(T) {
	return c.destroy
}

func (c *Collection[T]) release(v T) {
	if c.destroy != nil {
		c.destroy(v)
	}
}
