package collection

import (
	"cmp"

	"github.com/google/uuid"

	"github.com/isle-engine/omni/internal/stack"
	"github.com/isle-engine/omni/internal/xerrors"
	"github.com/isle-engine/omni/internal/xiter"
	"github.com/isle-engine/omni/trace"
)

// List is a doubly-linked sequence of elements kept in Compare order.
//
// The list exclusively owns its nodes. Elements are handed to the installed
// destructor when the list discards them (Remove, DeleteAll, Destroy, cursor
// deletion); Detach gives an element back to the caller instead.
type List[T any] struct {
	Collection[T]

	head *node[T]
	tail *node[T]

	destroyed bool

	name  string
	trace *trace.List
}

// New makes an empty list. Without WithCompare the list is append-only.
func New[T any](opts ...Option[T]) *List[T] {
	cfg := config[T]{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.trace != nil && cfg.name == "" {
		cfg.name = uuid.NewString()
	}

	return &List[T]{
		Collection: Collection[T]{
			compare: cfg.compare,
			destroy: cfg.destroy,
		},
		name:  cfg.name,
		trace: cfg.trace,
	}
}

// NewOrdered makes an empty list sorted ascending by cmp.Compare.
func NewOrdered[T cmp.Ordered](opts ...Option[T]) *List[T] {
	return New(append([]Option[T]{WithCompare(cmp.Compare[T])}, opts...)...)
}

// Name identifies the list in trace events.
func (l *List[T]) Name() string {
	return l.name
}

func (l *List[T]) Empty() bool {
	return l.count == 0
}

// Destroyed reports whether Destroy was called.
func (l *List[T]) Destroyed() bool {
	return l.destroyed
}

// Insert places v before the first element which compares greater than v.
// Elements equal to v keep their places ahead of it.
// Inserting into a destroyed list panics with ErrListDestroyed.
func (l *List[T]) Insert(v T) {
	l.mustBeAlive()

	index := 0
	mark := l.head
	for mark != nil && l.Compare(mark.value, v) <= 0 {
		mark = mark.next
		index++
	}
	l.linkBefore(&node[T]{value: v}, mark)

	trace.ListOnInsert(l.trace,
		trace.FunctionID("github.com/isle-engine/omni/collection.(*List).Insert"),
		l.name, index, l.count,
	)
}

// Append places v after the last element regardless of ordering.
func (l *List[T]) Append(v T) {
	l.mustBeAlive()
	l.linkBefore(&node[T]{value: v}, nil)

	trace.ListOnInsert(l.trace,
		trace.FunctionID("github.com/isle-engine/omni/collection.(*List).Append"),
		l.name, l.count-1, l.count,
	)
}

// Prepend places v before the first element regardless of ordering.
func (l *List[T]) Prepend(v T) {
	l.mustBeAlive()
	l.linkBefore(&node[T]{value: v}, l.head)

	trace.ListOnInsert(l.trace,
		trace.FunctionID("github.com/isle-engine/omni/collection.(*List).Prepend"),
		l.name, 0, l.count,
	)
}

// Remove discards the first element which compares equal to v and passes it
// to the destructor. It reports false and changes nothing if there is none.
func (l *List[T]) Remove(v T) bool {
	n := l.find(v)
	if n != nil {
		l.unlink(n)
		l.release(n.value)
	}

	trace.ListOnRemove(l.trace,
		trace.FunctionID("github.com/isle-engine/omni/collection.(*List).Remove"),
		l.name, n != nil, l.count,
	)

	return n != nil
}

// Detach unlinks the first element which compares equal to v and returns it
// without calling the destructor.
func (l *List[T]) Detach(v T) (detached T, ok bool) {
	n := l.find(v)
	if n != nil {
		l.unlink(n)
		detached, ok = n.value, true
	}

	trace.ListOnDetach(l.trace,
		trace.FunctionID("github.com/isle-engine/omni/collection.(*List).Detach"),
		l.name, ok, l.count,
	)

	return detached, ok
}

// Contains reports whether some element compares equal to v.
func (l *List[T]) Contains(v T) bool {
	return l.find(v) != nil
}

func (l *List[T]) Front() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}

	return l.head.value, true
}

func (l *List[T]) Back() (v T, ok bool) {
	if l.tail == nil {
		return v, false
	}

	return l.tail.value, true
}

// DeleteAll discards every element. The list stays usable.
func (l *List[T]) DeleteAll() {
	l.deleteAll(false,
		trace.FunctionID("github.com/isle-engine/omni/collection.(*List).DeleteAll"),
	)
}

// Destroy discards every element and retires the list: cursors bound to it
// report ErrListDestroyed and inserts panic. Destroying twice is a no-op.
func (l *List[T]) Destroy() {
	if l.destroyed {
		return
	}
	l.deleteAll(true,
		trace.FunctionID("github.com/isle-engine/omni/collection.(*List).Destroy"),
	)
	l.destroyed = true
}

// All iterates from head to tail. The loop body may remove the element it is
// visiting; indexes then stay the positions the elements have when visited.
// Any other change to the list ends the iteration early or skips elements:
// use a Cursor for that.
func (l *List[T]) All() xiter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != nil; {
			next := n.next
			if !yield(i, n.value) {
				return
			}
			if n.linkedTo(l) {
				i++
			}
			if next != nil && !next.linkedTo(l) {
				return
			}
			n = next
		}
	}
}

// Backward iterates from tail to head; indexes count from the head. The loop
// body may remove the element it is visiting, as with All.
func (l *List[T]) Backward() xiter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := l.count - 1
		for n := l.tail; n != nil; {
			prev := n.prev
			if !yield(i, n.value) {
				return
			}
			if prev != nil && !prev.linkedTo(l) {
				return
			}
			n = prev
			i--
		}
	}
}

// Values returns a snapshot of the elements from head to tail.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.count)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}

	return values
}

func (l *List[T]) deleteAll(final bool, call stack.Caller) {
	onDone := trace.ListOnDeleteAll(l.trace, call, l.name, l.count, final)
	destroyed := 0
	for l.head != nil {
		n := l.head
		l.unlink(n)
		l.release(n.value)
		destroyed++
	}
	onDone(destroyed)
}

func (l *List[T]) mustBeAlive() {
	if l.destroyed {
		panic(xerrors.WithStackTrace(ErrListDestroyed, xerrors.WithSkipDepth(2)))
	}
}

func (l *List[T]) find(v T) *node[T] {
	for n := l.head; n != nil; n = n.next {
		if l.Compare(n.value, v) == 0 {
			return n
		}
	}

	return nil
}

// linkBefore links n in front of mark, or at the tail if mark is nil.
func (l *List[T]) linkBefore(n, mark *node[T]) {
	n.list = l
	if mark == nil {
		n.prev = l.tail
		if l.tail != nil {
			l.tail.next = n
		} else {
			l.head = n
		}
		l.tail = n
	} else {
		n.prev = mark.prev
		n.next = mark
		if mark.prev != nil {
			mark.prev.next = n
		} else {
			l.head = n
		}
		mark.prev = n
	}
	l.count++
}

func (l *List[T]) unlink(n *node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	n.list = nil
	l.count--
}
