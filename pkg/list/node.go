package list

// node is one link of the chain. The sentinel is a node whose next link is
// always nil; real nodes always have a non-nil next.
type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// isSentinel reports whether n marks the one-past-the-end position.
func (n *node[T]) isSentinel() bool {
	return n.next == nil
}

// unlink detaches a real node from its neighbours and clears its links.
// The caller fixes up head when n was the front element.
func (n *node[T]) unlink() {
	if n.prev != nil {
		n.prev.next = n.next
	}
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
}
