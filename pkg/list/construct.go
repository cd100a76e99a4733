package list

import "iter"

// NewFilled creates a list holding count copies of v.
func NewFilled[T any](count int, v T) *List[T] {
	l := New[T]()
	l.Resize(count, v)
	return l
}

// NewRange creates a list holding copies of the elements of [first, last).
func NewRange[T any](first, last ConstIterator[T]) *List[T] {
	l := New[T]()
	for it := first; it != last; it = it.Next() {
		l.PushBack(it.Value())
	}
	return l
}

// FromSlice creates a list holding the elements of s in order.
func FromSlice[T any](s []T) *List[T] {
	l := New[T]()
	for _, v := range s {
		l.PushBack(v)
	}
	return l
}

// Collect creates a list holding the values produced by seq in order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	for v := range seq {
		l.PushBack(v)
	}
	return l
}

// Clone returns a copy of the list. Elements are copied by assignment.
func (l *List[T]) Clone() *List[T] {
	return Collect(l.All())
}

// Assign replaces the contents of l with copies of the elements of other.
// Assigning a list to itself does nothing.
func (l *List[T]) Assign(other *List[T]) {
	if l == other {
		return
	}
	l.Clear()
	for v := range other.All() {
		l.PushBack(v)
	}
}

// Swap exchanges the contents of l and other in constant time. Iterators
// follow their elements into the other list, End included.
func (l *List[T]) Swap(other *List[T]) {
	l.lazyInit()
	other.lazyInit()
	l.head, other.head = other.head, l.head
	l.sentinel, other.sentinel = other.sentinel, l.sentinel
}
