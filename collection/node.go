package collection

type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]

	// list is nil once the node is unlinked
	list *List[T]
}

func (n *node[T]) linkedTo(l *List[T]) bool {
	return n != nil && n.list == l
}
