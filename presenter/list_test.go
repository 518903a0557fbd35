package presenter

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rekby/fixenv"
	"github.com/stretchr/testify/require"

	"github.com/isle-engine/omni/ptrlist"
)

func TestCompare(t *testing.T) {
	e := fixenv.New(t)
	ps := OrderedPresenters(e)
	a, b := ps[0], ps[1]

	require.Equal(t, 0, Compare(a, a))
	require.Equal(t, -1, Compare(a, b))
	require.Equal(t, 1, Compare(b, a))
	require.Equal(t, 0, Compare(nil, nil))
	require.Equal(t, -1, Compare(nil, a))

	v := valuePresenter{ids: []uuid.UUID{a.id}}
	require.NotPanics(t, func() {
		require.Equal(t, 0, Compare(v, v))
		require.Equal(t, -1, Compare(v, a))
	})
}

type valuePresenter struct {
	ids []uuid.UUID
}

func (valuePresenter) Destroy() {}

func TestListRejectsNotComparable(t *testing.T) {
	e := fixenv.New(t)
	a := OrderedPresenters(e)[0]
	l := OwningList(e)
	l.Insert(a)

	var err error
	func() {
		defer func() {
			err, _ = recover().(error)
		}()
		l.Insert(valuePresenter{ids: []uuid.UUID{a.id}})
	}()
	require.ErrorIs(t, err, ptrlist.ErrNotComparable)
	require.Equal(t, []uuid.UUID{a.id}, ids(l))
}

func TestListOrdersByIdentity(t *testing.T) {
	e := fixenv.New(t)
	ps := OrderedPresenters(e)
	a, b, c := ps[0], ps[1], ps[2]
	l := BorrowingList(e)

	l.Insert(b)
	l.Insert(a)
	l.Insert(c)
	require.Equal(t, []uuid.UUID{a.id, b.id, c.id}, ids(l))

	require.True(t, l.Remove(b))
	require.Equal(t, []uuid.UUID{a.id, c.id}, ids(l))
	require.Equal(t, 2, l.Count())
	require.Zero(t, b.destroyed)

	require.False(t, l.Remove(b))
	require.Equal(t, 2, l.Count())
}

func TestListOwnership(t *testing.T) {
	t.Run("Owning", func(t *testing.T) {
		e := fixenv.New(t)
		ps := OrderedPresenters(e)
		l := OwningList(e)
		require.True(t, l.Owns())
		for _, p := range ps {
			l.Insert(p)
		}
		l.Destroy()
		for _, p := range ps {
			require.Equal(t, 1, p.destroyed)
		}
	})
	t.Run("Borrowing", func(t *testing.T) {
		e := fixenv.New(t)
		ps := OrderedPresenters(e)
		l := BorrowingList(e)
		require.False(t, l.Owns())
		for _, p := range ps {
			l.Insert(p)
		}
		l.Destroy()
		for _, p := range ps {
			require.Zero(t, p.destroyed)
		}
	})
	t.Run("DuplicateDestroyedOnce", func(t *testing.T) {
		e := fixenv.New(t)
		p := OrderedPresenters(e)[0]
		l := OwningList(e)
		l.Insert(p)
		l.Insert(p)
		l.Destroy()
		require.Equal(t, 1, p.destroyed)
	})
}

func TestCursor(t *testing.T) {
	e := fixenv.New(t)
	ps := OrderedPresenters(e)
	a, b, c := ps[0], ps[1], ps[2]
	l := OwningList(e)
	l.Insert(c)
	l.Insert(a)
	l.Insert(b)

	cur := NewCursor(l)
	require.Same(t, l, cur.List())

	var backward []uuid.UUID
	for p, ok := cur.Prev(); ok; p, ok = cur.Prev() {
		backward = append(backward, p.(*fakePresenter).id)
	}
	require.Equal(t, []uuid.UUID{c.id, b.id, a.id}, backward)

	cur.Reset()
	require.True(t, cur.Find(b))
	require.NoError(t, cur.DeleteCurrent())
	require.Equal(t, 1, b.destroyed)

	p, ok := cur.Next()
	require.True(t, ok)
	require.Same(t, c, p)

	detached, err := cur.Detach()
	require.NoError(t, err)
	require.Same(t, c, detached)
	require.Equal(t, []uuid.UUID{a.id}, ids(l))

	l.Destroy()
	require.Equal(t, 1, a.destroyed)
	require.Zero(t, c.destroyed)
}
