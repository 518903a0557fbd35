package presenter

import (
	"slices"

	"github.com/google/uuid"
	"github.com/rekby/fixenv"
)

type fakePresenter struct {
	id        uuid.UUID
	destroyed int
}

func (p *fakePresenter) Destroy() {
	p.destroyed++
}

func newFakePresenter() *fakePresenter {
	return &fakePresenter{
		id: uuid.New(),
	}
}

func ids(l *List) (ids []uuid.UUID) {
	for _, p := range l.Values() {
		ids = append(ids, p.(*fakePresenter).id)
	}

	return ids
}

// OrderedPresenters returns three presenters with ascending addresses.
func OrderedPresenters(e fixenv.Env) []*fakePresenter {
	f := func() (*fixenv.GenericResult[[]*fakePresenter], error) {
		presenters := []*fakePresenter{newFakePresenter(), newFakePresenter(), newFakePresenter()}
		slices.SortFunc(presenters, func(a, b *fakePresenter) int {
			return Compare(a, b)
		})

		return fixenv.NewGenericResult(presenters), nil
	}

	return fixenv.CacheResult(e, f)
}

func OwningList(e fixenv.Env) *List {
	f := func() (*fixenv.GenericResult[*List], error) {
		l := NewList(true)

		return fixenv.NewGenericResultWithCleanup(l, l.Destroy), nil
	}

	return fixenv.CacheResult(e, f)
}

func BorrowingList(e fixenv.Env) *List {
	f := func() (*fixenv.GenericResult[*List], error) {
		l := NewList(false)

		return fixenv.NewGenericResultWithCleanup(l, l.Destroy), nil
	}

	return fixenv.CacheResult(e, f)
}
