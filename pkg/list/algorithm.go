package list

// RemoveIf removes every element for which pred returns true and reports how
// many were removed. Survivors keep their relative order.
func (l *List[T]) RemoveIf(pred func(T) bool) int {
	if l.Empty() {
		return 0
	}
	removed := 0
	for n := l.head; n != l.sentinel; {
		if pred(n.value) {
			n = l.remove(n)
			removed++
			continue
		}
		n = n.next
	}
	return removed
}

// Remove removes every element equal to v and reports how many were removed.
func Remove[T comparable](l *List[T], v T) int {
	return l.RemoveIf(func(e T) bool { return e == v })
}

// UniqueFunc collapses every run of consecutive elements for which eq holds
// to the first element of the run. eq is called with the run's first element
// and the candidate. It reports how many elements were removed.
func (l *List[T]) UniqueFunc(eq func(a, b T) bool) int {
	if l.Empty() {
		return 0
	}
	removed := 0
	current := l.head
	for next := current.next; next != l.sentinel; next = current.next {
		if eq(current.value, next.value) {
			l.remove(next)
			removed++
			continue
		}
		current = next
	}
	return removed
}

// Unique collapses runs of consecutive equal elements. Equal elements that
// are not adjacent are kept.
func Unique[T comparable](l *List[T]) int {
	return l.UniqueFunc(func(a, b T) bool { return a == b })
}

// Reverse reverses the order of the elements by swapping the links of every
// node. No element value moves.
func (l *List[T]) Reverse() {
	if l.Empty() {
		return
	}
	front, back := l.head, l.sentinel.prev
	for n := front; n != l.sentinel; {
		next := n.next
		n.prev, n.next = n.next, n.prev
		n = next
	}
	front.next = l.sentinel
	back.prev = nil
	l.sentinel.prev = front
	l.head = back
}
