// Package presenter keeps presenters in lists ordered by identity.
package presenter

import (
	"cmp"
	"reflect"
)

// Presenter is a handle to an object which renders or dispatches something
// and releases its own resources on Destroy. Presenters are expected to be
// pointer types: Compare orders them by the address they point to.
//
// A List matches presenters with == and keys ownership by them, so it panics
// with ptrlist.ErrNotComparable on a presenter whose dynamic type is not
// comparable, such as a struct value holding a slice.
type Presenter interface {
	Destroy()
}

// Compare orders presenters by address. Equal handles compare 0, and so do
// presenters which are not pointers, as they have no address to order by.
// Presenters of a type which is not comparable are only ordered by address.
func Compare(a, b Presenter) int {
	if identical(a, b) {
		return 0
	}

	return cmp.Compare(address(a), address(b))
}

func identical(a, b Presenter) bool {
	if t := reflect.TypeOf(a); t != nil && !t.Comparable() {
		return false
	}

	return a == b
}

func address(p Presenter) uintptr {
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.UnsafePointer:
		return v.Pointer()
	default:
		return 0
	}
}
