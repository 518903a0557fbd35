package collection

import "errors"

var (
	// ErrListDestroyed is reported when a destroyed list is used through a cursor
	// or receives new elements.
	ErrListDestroyed = errors.New("list is destroyed")

	// ErrCursorInvalidated is reported when the element a cursor stands on was
	// removed by someone other than the cursor itself.
	ErrCursorInvalidated = errors.New("cursor element was removed from the list")

	// ErrNotPositioned is returned when a cursor operation needs a current element.
	ErrNotPositioned = errors.New("cursor is not positioned on an element")
)
