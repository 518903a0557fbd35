package ptrlist

import (
	"github.com/isle-engine/omni/collection"
)

// Cursor is a collection.Cursor over a PtrList. DeleteCurrent destroys the
// handle if the list owns it; Detach gives it to the caller.
type Cursor[P Handle] struct {
	*collection.Cursor[P]

	list *PtrList[P]
}

func NewCursor[P Handle](l *PtrList[P]) *Cursor[P] {
	return &Cursor[P]{
		Cursor: collection.NewCursor(l.List),
		list:   l,
	}
}

// List returns the list the cursor is bound to.
func (c *Cursor[P]) List() *PtrList[P] {
	return c.list
}

func (c *Cursor[P]) Detach() (P, error) {
	p, err := c.Cursor.Detach()
	if err != nil {
		return p, err
	}
	c.list.disown(p)

	return p, nil
}
