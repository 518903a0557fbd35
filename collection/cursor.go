package collection

import (
	"github.com/isle-engine/omni/internal/stack"
	"github.com/isle-engine/omni/internal/xerrors"
	"github.com/isle-engine/omni/trace"
)

type cursorState uint8

const (
	unpositioned cursorState = iota
	positioned
	exhausted
)

func (s cursorState) String() string {
	switch s {
	case unpositioned:
		return "unpositioned"
	case positioned:
		return "positioned"
	default:
		return "exhausted"
	}
}

// Cursor walks one List in both directions and removes elements in place.
//
// A fresh cursor is unpositioned: Next starts at the head and Prev at the tail.
// Walking off either end exhausts the cursor until First, Last, Find or Reset.
// Deleting the tail also exhausts it, but until Next is called Prev still
// continues from the element before the deleted one.
//
// If the list is destroyed, or the element the cursor stands on (or resumes
// from after deleting the tail) is removed by anything but this cursor, movement reports "not found" and Err returns
// ErrListDestroyed or ErrCursorInvalidated. The error sticks until Reset.
type Cursor[T any] struct {
	list  *List[T]
	node  *node[T]
	state cursorState

	// pending is set after deleting the current element: the cursor already
	// stands on the successor and the next call of Next must not move it
	pending bool

	// back is the predecessor of a deleted tail, where Prev resumes from
	// the exhausted state
	back *node[T]

	err error
}

// NewCursor binds a cursor to l for the cursor's whole life.
func NewCursor[T any](l *List[T]) *Cursor[T] {
	return &Cursor[T]{
		list: l,
	}
}

// List returns the list the cursor is bound to.
func (c *Cursor[T]) List() *List[T] {
	return c.list
}

// Err returns the misuse recorded by the last failed operation.
func (c *Cursor[T]) Err() error {
	return c.err
}

// First moves to the head element.
func (c *Cursor[T]) First() (v T, ok bool) {
	if !c.valid(trace.FunctionID("github.com/isle-engine/omni/collection.(*Cursor).First")) {
		return v, false
	}

	return c.moveTo(c.list.head)
}

// Last moves to the tail element.
func (c *Cursor[T]) Last() (v T, ok bool) {
	if !c.valid(trace.FunctionID("github.com/isle-engine/omni/collection.(*Cursor).Last")) {
		return v, false
	}

	return c.moveTo(c.list.tail)
}

// Next moves towards the tail and returns the element it arrives at.
func (c *Cursor[T]) Next() (v T, ok bool) {
	if !c.valid(trace.FunctionID("github.com/isle-engine/omni/collection.(*Cursor).Next")) {
		return v, false
	}
	switch c.state {
	case unpositioned:
		return c.moveTo(c.list.head)
	case positioned:
		if c.pending {
			c.pending = false

			return c.node.value, true
		}

		return c.moveTo(c.node.next)
	default:
		c.back = nil

		return v, false
	}
}

// Prev moves towards the head and returns the element it arrives at.
func (c *Cursor[T]) Prev() (v T, ok bool) {
	if !c.valid(trace.FunctionID("github.com/isle-engine/omni/collection.(*Cursor).Prev")) {
		return v, false
	}
	switch c.state {
	case unpositioned:
		return c.moveTo(c.list.tail)
	case positioned:
		return c.moveTo(c.node.prev)
	default:
		if c.back != nil {
			return c.moveTo(c.back)
		}

		return v, false
	}
}

// Current returns the element the cursor stands on without moving.
func (c *Cursor[T]) Current() (v T, ok bool) {
	if !c.valid(trace.FunctionID("github.com/isle-engine/omni/collection.(*Cursor).Current")) {
		return v, false
	}
	if c.state != positioned {
		return v, false
	}

	return c.node.value, true
}

// HasMatch reports whether the cursor stands on an element.
func (c *Cursor[T]) HasMatch() bool {
	return c.err == nil && c.state == positioned && c.node.linkedTo(c.list) && !c.list.destroyed
}

// Find moves to the first element which compares equal to v.
// If there is none the cursor becomes unpositioned.
func (c *Cursor[T]) Find(v T) bool {
	if !c.valid(trace.FunctionID("github.com/isle-engine/omni/collection.(*Cursor).Find")) {
		return false
	}
	if n := c.list.find(v); n != nil {
		c.moveTo(n)

		return true
	}
	c.node, c.state, c.pending, c.back = nil, unpositioned, false, nil

	return false
}

// Reset makes the cursor unpositioned and forgets a recorded error.
func (c *Cursor[T]) Reset() {
	c.node, c.state, c.pending, c.back, c.err = nil, unpositioned, false, nil, nil
}

// DeleteCurrent discards the current element through the list destructor.
// The cursor moves to the following element, which the next call of Next
// returns, or becomes exhausted if there is none. Either way the next call of
// Prev returns the element before the deleted one.
func (c *Cursor[T]) DeleteCurrent() error {
	call := trace.FunctionID("github.com/isle-engine/omni/collection.(*Cursor).DeleteCurrent")
	n, err := c.take(call)
	if err != nil {
		return err
	}
	c.list.release(n.value)

	trace.ListOnCursorDelete(c.list.trace, call, c.list.name, false, c.list.count)

	return nil
}

// Detach unlinks the current element and returns it without calling the
// destructor. The cursor moves exactly as with DeleteCurrent.
func (c *Cursor[T]) Detach() (v T, _ error) {
	call := trace.FunctionID("github.com/isle-engine/omni/collection.(*Cursor).Detach")
	n, err := c.take(call)
	if err != nil {
		return v, err
	}

	trace.ListOnCursorDelete(c.list.trace, call, c.list.name, true, c.list.count)

	return n.value, nil
}

// take unlinks the current node and re-points the cursor past it.
func (c *Cursor[T]) take(call stack.Caller) (*node[T], error) {
	if !c.valid(call) {
		return nil, c.err
	}
	if c.state != positioned {
		return nil, xerrors.WithStackTrace(ErrNotPositioned, xerrors.WithSkipDepth(2))
	}
	n, prev, next := c.node, c.node.prev, c.node.next
	c.list.unlink(n)
	if next != nil {
		c.node, c.pending = next, true
	} else {
		c.node, c.state, c.pending, c.back = nil, exhausted, false, prev
	}

	return n, nil
}

func (c *Cursor[T]) moveTo(n *node[T]) (v T, ok bool) {
	c.pending, c.back = false, nil
	if n == nil {
		c.node, c.state = nil, exhausted

		return v, false
	}
	c.node, c.state = n, positioned

	return n.value, true
}

// valid checks that the list is alive and the current node still belongs to it.
// A failure is recorded in c.err and reported to the list trace once.
func (c *Cursor[T]) valid(call stack.Caller) bool {
	if c.err != nil {
		return false
	}
	var err error
	switch {
	case c.list.destroyed:
		err = ErrListDestroyed
	case c.state == positioned && !c.node.linkedTo(c.list):
		err = ErrCursorInvalidated
	case c.back != nil && !c.back.linkedTo(c.list):
		err = ErrCursorInvalidated
	default:
		return true
	}
	c.err = xerrors.WithStackTrace(err, xerrors.WithSkipDepth(2))
	c.node, c.state, c.pending, c.back = nil, exhausted, false, nil

	trace.ListOnCursorError(c.list.trace, call, c.list.name, c.err)

	return false
}
