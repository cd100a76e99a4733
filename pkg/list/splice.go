package list

import "cmp"

// detach unlinks the chain [first, last) from l and returns its final node.
// The detached chain is terminated on both ends so it is reachable from
// neither list until attach links it in again.
func (l *List[T]) detach(first, last *node[T]) *node[T] {
	tail := last.prev
	if first.prev != nil {
		first.prev.next = last
	} else {
		l.head = last
	}
	last.prev = first.prev
	first.prev = nil
	tail.next = nil
	return tail
}

// attach links the detached chain first..tail immediately before at.
func (l *List[T]) attach(at, first, tail *node[T]) {
	first.prev = at.prev
	if at.prev != nil {
		at.prev.next = first
	} else {
		l.head = first
	}
	tail.next = at
	at.prev = tail
}

// Splice moves every element of other before pos in constant time. other is
// left empty; iterators to the moved elements stay valid and now refer into
// l. Splicing a list into itself panics with ErrSelfSplice.
func (l *List[T]) Splice(pos Iterator[T], other *List[T]) {
	if other == l {
		panic(ErrSelfSplice)
	}
	if other.Empty() {
		return
	}
	l.SpliceRange(pos, other, other.Begin(), other.End())
}

// SpliceOne moves the element at it, which must belong to other, before pos.
// Moving an element in front of itself or of its own successor does nothing.
// other may be l.
func (l *List[T]) SpliceOne(pos Iterator[T], other *List[T], it Iterator[T]) {
	at := forwardNode(pos.pos).n
	n := forwardNode(it.pos).n
	if n.isSentinel() {
		panic(ErrEnd)
	}
	if n == at || n.next == at {
		return
	}
	tail := other.detach(n, n.next)
	l.attach(at, n, tail)
}

// SpliceRange moves the elements of [first, last), which must belong to
// other, before pos in constant time regardless of the range length. other
// may be l as long as pos does not lie strictly inside the range.
func (l *List[T]) SpliceRange(pos Iterator[T], other *List[T], first, last Iterator[T]) {
	at := forwardNode(pos.pos).n
	start := forwardNode(first.pos).n
	stop := forwardNode(last.pos).n
	if start == stop || at == start {
		return
	}
	tail := other.detach(start, stop)
	l.attach(at, start, tail)
}

// MergeFunc merges other into l. Both lists must be sorted by less. Each
// element of other is moved before the first element of l it is less than,
// so equal elements already in l stay first. other is left empty. Merging a
// list with itself does nothing.
func (l *List[T]) MergeFunc(other *List[T], less func(a, b T) bool) {
	if other == l || other.Empty() {
		return
	}
	l.lazyInit()

	at := l.head
	for at != l.sentinel && !other.Empty() {
		n := other.head
		if less(n.value, at.value) {
			l.attach(at, n, other.detach(n, n.next))
			continue
		}
		at = at.next
	}

	if !other.Empty() {
		first := other.head
		tail := other.detach(first, other.sentinel)
		l.attach(l.sentinel, first, tail)
	}
}

// Merge merges the ascending list other into the ascending list l.
func Merge[T cmp.Ordered](l, other *List[T]) {
	l.MergeFunc(other, cmp.Less[T])
}
