package trace

type (
	// List specified trace of list and cursor activity.
	// All hooks are called synchronously from the goroutine which owns the list.
	// Hooks must not mutate the list they were called for.
	List struct {
		OnInsert       func(ListInsertInfo)
		OnRemove       func(ListRemoveInfo)
		OnDetach       func(ListDetachInfo)
		OnDeleteAll    func(ListDeleteAllStartInfo) func(ListDeleteAllDoneInfo)
		OnCursorDelete func(ListCursorDeleteInfo)
		OnCursorError  func(ListCursorErrorInfo)
	}
	ListInsertInfo struct {
		Call  call
		Name  string
		Index int
		Count int
	}
	ListRemoveInfo struct {
		Call  call
		Name  string
		Found bool
		Count int
	}
	ListDetachInfo struct {
		Call  call
		Name  string
		Found bool
		Count int
	}
	ListDeleteAllStartInfo struct {
		Call  call
		Name  string
		Count int
		// Final reports that the list is being destroyed and will not accept new elements.
		Final bool
	}
	ListDeleteAllDoneInfo struct {
		Destroyed int
	}
	ListCursorDeleteInfo struct {
		Call     call
		Name     string
		Detached bool
		Count    int
	}
	ListCursorErrorInfo struct {
		Call  call
		Name  string
		Error error
	}
)
