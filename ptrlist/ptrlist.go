// Package ptrlist specializes collection lists for handles to objects which
// release their own resources, and optionally owns the handles it holds.
package ptrlist

import (
	"reflect"

	"github.com/isle-engine/omni/collection"
	"github.com/isle-engine/omni/internal/xerrors"
)

//go:generate mockgen -destination destroyer_mock_test.go -package ptrlist -write_package_comment=false . Destroyer

// Destroyer releases the resources of the object behind a handle.
type Destroyer interface {
	Destroy()
}

// Handle is an element of a PtrList: usually a pointer to an object, or an
// interface value holding one.
//
// Handles are matched with == and an owning list keys its reference counts by
// them, so the dynamic type behind an interface handle must be comparable.
// Insert, Append and Prepend panic with ErrNotComparable otherwise, before the
// list is changed.
type Handle interface {
	comparable
	Destroyer
}

// PtrList is a collection.List of handles. An owning list destroys every
// handle it discards; a borrowing list only unlinks it. Ownership is fixed
// when the list is made.
//
// An owning list counts the nodes holding each handle, so a handle inserted
// twice is destroyed once, when its last node is discarded. Handles given
// back by Detach are no longer owned by the list.
type PtrList[P Handle] struct {
	*collection.List[P]

	owns    bool
	refs    map[P]int
	destroy func(P)
}

// New makes a list which owns its handles if ownership is true.
//
// Without collection.WithCompare handles keep insertion order and Remove,
// Detach and Contains match them by equality.
func New[P Handle](ownership bool, opts ...collection.Option[P]) *PtrList[P] {
	l := &PtrList[P]{
		List: collection.New(append([]collection.Option[P]{
			collection.WithCompare(matchEqual[P]),
		}, opts...)...),
		owns: ownership,
	}
	if ownership {
		l.refs = make(map[P]int)
	}
	l.SetDestructor(l.List.Destructor())

	return l
}

// Owning makes a list which destroys every handle it discards.
func Owning[P Handle](opts ...collection.Option[P]) *PtrList[P] {
	return New(true, opts...)
}

// Borrowing makes a list which never destroys its handles.
func Borrowing[P Handle](opts ...collection.Option[P]) *PtrList[P] {
	return New(false, opts...)
}

// Owns reports whether discarded handles are destroyed.
func (l *PtrList[P]) Owns() bool {
	return l.owns
}

func (l *PtrList[P]) Insert(p P) {
	mustBeComparable(p)
	l.List.Insert(p)
	l.acquire(p)
}

func (l *PtrList[P]) Append(p P) {
	mustBeComparable(p)
	l.List.Append(p)
	l.acquire(p)
}

func (l *PtrList[P]) Prepend(p P) {
	mustBeComparable(p)
	l.List.Prepend(p)
	l.acquire(p)
}

// Detach unlinks the first handle matching p and hands it to the caller
// without destroying it.
func (l *PtrList[P]) Detach(p P) (P, bool) {
	detached, ok := l.List.Detach(p)
	if ok {
		l.disown(detached)
	}

	return detached, ok
}

// SetDestructor installs fn to be called for each discarded handle. An owning
// list calls fn before the handle's own Destroy.
func (l *PtrList[P]) SetDestructor(fn func(P)) {
	l.destroy = fn
	l.List.SetDestructor(l.discard)
}

// Destructor returns the function installed by SetDestructor or
// collection.WithDestructor.
func (l *PtrList[P]) Destructor() func(P) {
	return l.destroy
}

func (l *PtrList[P]) discard(p P) {
	if l.destroy != nil {
		l.destroy(p)
	}
	if l.disown(p) {
		p.Destroy()
	}
}

func (l *PtrList[P]) acquire(p P) {
	var zero P
	if !l.owns || p == zero {
		return
	}
	l.refs[p]++
}

// disown drops one reference to p and reports whether it was the last one.
func (l *PtrList[P]) disown(p P) (last bool) {
	var zero P
	if !l.owns || p == zero {
		return false
	}
	n, has := l.refs[p]
	if !has {
		return false
	}
	if n > 1 {
		l.refs[p] = n - 1

		return false
	}
	delete(l.refs, p)

	return true
}

// mustBeComparable rejects interface handles holding a slice, map or func,
// which would panic deep inside == or a map lookup.
func mustBeComparable[P Handle](p P) {
	if t := reflect.TypeOf(p); t != nil && !t.Comparable() {
		panic(xerrors.WithStackTrace(ErrNotComparable, xerrors.WithSkipDepth(2)))
	}
}

func matchEqual[P comparable](a, b P) int {
	if a == b {
		return 0
	}

	return -1
}
