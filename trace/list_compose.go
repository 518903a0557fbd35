package trace

// listComposeOptions is a holder of options
type listComposeOptions struct {
	panicCallback func(e interface{})
}

// ListComposeOption specified List compose option
type ListComposeOption func(o *listComposeOptions)

// WithListPanicCallback specified behavior on panic
func WithListPanicCallback(cb func(e interface{})) ListComposeOption {
	return func(o *listComposeOptions) {
		o.panicCallback = cb
	}
}

// Compose returns a new List which has functional fields composed both from t and x.
func (t *List) Compose(x *List, opts ...ListComposeOption) *List {
	if t == nil {
		return x
	}
	if x == nil {
		return t
	}
	var ret List
	options := listComposeOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	recoverTo := func() {
		if e := recover(); e != nil {
			options.panicCallback(e)
		}
	}
	{
		h1 := t.OnInsert
		h2 := x.OnInsert
		ret.OnInsert = func(info ListInsertInfo) {
			if options.panicCallback != nil {
				defer recoverTo()
			}
			if h1 != nil {
				h1(info)
			}
			if h2 != nil {
				h2(info)
			}
		}
	}
	{
		h1 := t.OnRemove
		h2 := x.OnRemove
		ret.OnRemove = func(info ListRemoveInfo) {
			if options.panicCallback != nil {
				defer recoverTo()
			}
			if h1 != nil {
				h1(info)
			}
			if h2 != nil {
				h2(info)
			}
		}
	}
	{
		h1 := t.OnDetach
		h2 := x.OnDetach
		ret.OnDetach = func(info ListDetachInfo) {
			if options.panicCallback != nil {
				defer recoverTo()
			}
			if h1 != nil {
				h1(info)
			}
			if h2 != nil {
				h2(info)
			}
		}
	}
	{
		h1 := t.OnDeleteAll
		h2 := x.OnDeleteAll
		ret.OnDeleteAll = func(info ListDeleteAllStartInfo) func(ListDeleteAllDoneInfo) {
			if options.panicCallback != nil {
				defer recoverTo()
			}
			var r, r1 func(ListDeleteAllDoneInfo)
			if h1 != nil {
				r = h1(info)
			}
			if h2 != nil {
				r1 = h2(info)
			}

			return func(info ListDeleteAllDoneInfo) {
				if options.panicCallback != nil {
					defer recoverTo()
				}
				if r != nil {
					r(info)
				}
				if r1 != nil {
					r1(info)
				}
			}
		}
	}
	{
		h1 := t.OnCursorDelete
		h2 := x.OnCursorDelete
		ret.OnCursorDelete = func(info ListCursorDeleteInfo) {
			if options.panicCallback != nil {
				defer recoverTo()
			}
			if h1 != nil {
				h1(info)
			}
			if h2 != nil {
				h2(info)
			}
		}
	}
	{
		h1 := t.OnCursorError
		h2 := x.OnCursorError
		ret.OnCursorError = func(info ListCursorErrorInfo) {
			if options.panicCallback != nil {
				defer recoverTo()
			}
			if h1 != nil {
				h1(info)
			}
			if h2 != nil {
				h2(info)
			}
		}
	}

	return &ret
}

func (t *List) onInsert(info ListInsertInfo) {
	if t == nil || t.OnInsert == nil {
		return
	}
	t.OnInsert(info)
}

func (t *List) onRemove(info ListRemoveInfo) {
	if t == nil || t.OnRemove == nil {
		return
	}
	t.OnRemove(info)
}

func (t *List) onDetach(info ListDetachInfo) {
	if t == nil || t.OnDetach == nil {
		return
	}
	t.OnDetach(info)
}

func (t *List) onDeleteAll(info ListDeleteAllStartInfo) func(ListDeleteAllDoneInfo) {
	if t == nil || t.OnDeleteAll == nil {
		return func(ListDeleteAllDoneInfo) {}
	}
	res := t.OnDeleteAll(info)
	if res == nil {
		return func(ListDeleteAllDoneInfo) {}
	}

	return res
}

func (t *List) onCursorDelete(info ListCursorDeleteInfo) {
	if t == nil || t.OnCursorDelete == nil {
		return
	}
	t.OnCursorDelete(info)
}

func (t *List) onCursorError(info ListCursorErrorInfo) {
	if t == nil || t.OnCursorError == nil {
		return
	}
	t.OnCursorError(info)
}

func ListOnInsert(t *List, c call, name string, index, count int) {
	t.onInsert(ListInsertInfo{
		Call:  c,
		Name:  name,
		Index: index,
		Count: count,
	})
}

func ListOnRemove(t *List, c call, name string, found bool, count int) {
	t.onRemove(ListRemoveInfo{
		Call:  c,
		Name:  name,
		Found: found,
		Count: count,
	})
}

func ListOnDetach(t *List, c call, name string, found bool, count int) {
	t.onDetach(ListDetachInfo{
		Call:  c,
		Name:  name,
		Found: found,
		Count: count,
	})
}

func ListOnDeleteAll(t *List, c call, name string, count int, final bool) func(destroyed int) {
	res := t.onDeleteAll(ListDeleteAllStartInfo{
		Call:  c,
		Name:  name,
		Count: count,
		Final: final,
	})

	return func(destroyed int) {
		res(ListDeleteAllDoneInfo{
			Destroyed: destroyed,
		})
	}
}

func ListOnCursorDelete(t *List, c call, name string, detached bool, count int) {
	t.onCursorDelete(ListCursorDeleteInfo{
		Call:     c,
		Name:     name,
		Detached: detached,
		Count:    count,
	})
}

func ListOnCursorError(t *List, c call, name string, err error) {
	t.onCursorError(ListCursorErrorInfo{
		Call:  c,
		Name:  name,
		Error: err,
	})
}
