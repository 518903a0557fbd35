package ptrlist

import "errors"

// ErrNotComparable is the panic value when a handle whose dynamic type cannot
// be compared with == is put into a PtrList.
var ErrNotComparable = errors.New("handle is not comparable")
