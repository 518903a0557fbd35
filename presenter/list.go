package presenter

import (
	"github.com/isle-engine/omni/collection"
	"github.com/isle-engine/omni/ptrlist"
)

// List holds presenters in ascending address order.
type List struct {
	*ptrlist.PtrList[Presenter]
}

// NewList makes a presenter list which destroys the presenters it discards
// if ownership is true. A comparator passed in opts replaces Compare.
func NewList(ownership bool, opts ...collection.Option[Presenter]) *List {
	return &List{
		PtrList: ptrlist.New(ownership, append([]collection.Option[Presenter]{
			collection.WithCompare(Compare),
		}, opts...)...),
	}
}

// Cursor walks a presenter List.
type Cursor struct {
	*ptrlist.Cursor[Presenter]

	list *List
}

func NewCursor(l *List) *Cursor {
	return &Cursor{
		Cursor: ptrlist.NewCursor(l.PtrList),
		list:   l,
	}
}

func (c *Cursor) List() *List {
	return c.list
}
