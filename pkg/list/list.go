// Package list implements a generic doubly linked list with position handles
// (iterators) and whole-list algorithms that relink nodes instead of copying
// elements.
//
// The chain is not circular: a sentinel node marks the forward end, while the
// reverse end is the absent predecessor of the front element. A List is not
// safe for concurrent use.
package list

import (
	"iter"
	"math"
	"unsafe"
)

// List is a doubly linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	head     *node[T]
	sentinel *node[T]
}

// New creates an empty list.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.lazyInit()
	return l
}

// lazyInit allocates the sentinel of a zero-value list.
func (l *List[T]) lazyInit() {
	if l.sentinel == nil {
		l.sentinel = &node[T]{}
		l.head = l.sentinel
	}
}

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool {
	return l.sentinel == nil || l.head == l.sentinel
}

// Len returns the number of elements. There is no cached count: every call
// walks the whole chain, so Len is O(n).
func (l *List[T]) Len() int {
	count := 0
	for it := l.CBegin(); it != l.CEnd(); it = it.Next() {
		count++
	}
	return count
}

// MaxSize returns the theoretical upper bound on the number of elements.
func (l *List[T]) MaxSize() int {
	var n node[T]
	return math.MaxInt / int(unsafe.Sizeof(n))
}

// Front returns the first element. It panics with ErrEmpty on an empty list.
func (l *List[T]) Front() T {
	return *l.FrontPtr()
}

// FrontPtr returns the address of the first element.
func (l *List[T]) FrontPtr() *T {
	if l.Empty() {
		panic(ErrEmpty)
	}
	return &l.head.value
}

// Back returns the last element. It panics with ErrEmpty on an empty list.
func (l *List[T]) Back() T {
	return *l.BackPtr()
}

// BackPtr returns the address of the last element.
func (l *List[T]) BackPtr() *T {
	if l.Empty() {
		panic(ErrEmpty)
	}
	return &l.sentinel.prev.value
}

// PushFront inserts v at the front.
func (l *List[T]) PushFront(v T) {
	l.lazyInit()
	n := &node[T]{value: v, next: l.head}
	l.head.prev = n
	l.head = n
}

// PushBack inserts v at the back.
func (l *List[T]) PushBack(v T) {
	l.lazyInit()
	if l.Empty() {
		l.PushFront(v)
		return
	}
	n := &node[T]{value: v, prev: l.sentinel.prev, next: l.sentinel}
	l.sentinel.prev.next = n
	l.sentinel.prev = n
}

// PopFront removes the first element. It does nothing on an empty list.
func (l *List[T]) PopFront() {
	if l.Empty() {
		return
	}
	l.remove(l.head)
}

// PopBack removes the last element. It does nothing on an empty list.
func (l *List[T]) PopBack() {
	if l.Empty() {
		return
	}
	l.remove(l.sentinel.prev)
}

// Insert inserts v immediately before pos and returns the position of the new
// element. pos may be End.
func (l *List[T]) Insert(pos Iterator[T], v T) Iterator[T] {
	at := forwardNode(pos.pos).n
	n := &node[T]{value: v, prev: at.prev, next: at}
	at.prev = n
	if n.prev != nil {
		n.prev.next = n
	} else {
		l.head = n
	}
	return Iterator[T]{pos: position[T]{n: n}}
}

// InsertN inserts count copies of v before pos and returns the position of the
// first inserted element, or pos when count is not positive.
func (l *List[T]) InsertN(pos Iterator[T], count int, v T) Iterator[T] {
	for i := 0; i < count; i++ {
		pos = l.Insert(pos, v)
	}
	return pos
}

// InsertRange copies the elements of [first, last) before pos, keeping their
// order, and returns the position of the first copy, or pos when the range is
// empty. The range may belong to any list, including l itself as long as pos
// does not lie strictly inside it.
func (l *List[T]) InsertRange(pos Iterator[T], first, last ConstIterator[T]) Iterator[T] {
	if first == last {
		return pos
	}
	// Stop at the original final element so copies placed right before last
	// are not visited again.
	tail := last.Prev()
	return l.InsertSeq(pos, func(yield func(T) bool) {
		for it := first; ; it = it.Next() {
			if !yield(it.Value()) || it == tail {
				return
			}
		}
	})
}

// InsertSeq copies every value produced by seq before pos, keeping their
// order, and returns the position of the first copy, or pos when seq is empty.
func (l *List[T]) InsertSeq(pos Iterator[T], seq iter.Seq[T]) Iterator[T] {
	first := pos
	inserted := false
	for v := range seq {
		it := l.Insert(pos, v)
		if !inserted {
			first = it
			inserted = true
		}
	}
	return first
}

// Erase removes the element at pos and returns the position that followed
// it. Erasing End panics with ErrEnd.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	at := forwardNode(pos.pos).n
	if at.isSentinel() {
		panic(ErrEnd)
	}
	return Iterator[T]{pos: position[T]{n: l.remove(at)}}
}

// EraseRange removes the elements of [first, last) and returns last.
func (l *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	for first != last {
		first = l.Erase(first)
	}
	return last
}

// Clear removes every element.
func (l *List[T]) Clear() {
	for !l.Empty() {
		l.PopBack()
	}
}

// Resize appends copies of v or removes elements from the back until the
// list holds exactly size elements.
func (l *List[T]) Resize(size int, v T) {
	if size < 0 {
		size = 0
	}
	current := l.Len()
	for i := current; i < size; i++ {
		l.PushBack(v)
	}
	for i := size; i < current; i++ {
		l.PopBack()
	}
}

// remove unlinks a real node and returns its successor.
func (l *List[T]) remove(n *node[T]) *node[T] {
	next := n.next
	if n.prev == nil {
		l.head = next
	}
	n.unlink()
	return next
}

// Begin returns the position of the first element, or End when empty.
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{pos: position[T]{n: l.head}}
}

// End returns the one-past-the-last position.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{pos: position[T]{n: l.sentinel}}
}

// CBegin returns the read-only position of the first element.
func (l *List[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

// CEnd returns the read-only one-past-the-last position.
func (l *List[T]) CEnd() ConstIterator[T] {
	return l.End().Const()
}

// RBegin returns the position of the last element for reverse traversal, or
// REnd when empty.
func (l *List[T]) RBegin() ReverseIterator[T] {
	l.lazyInit()
	return ReverseIterator[T]{pos: position[T]{n: l.sentinel.prev}}
}

// REnd returns the terminal position of reverse traversal.
func (l *List[T]) REnd() ReverseIterator[T] {
	l.lazyInit()
	return ReverseIterator[T]{pos: position[T]{n: l.head.prev}}
}

// CRBegin returns the read-only reverse position of the last element.
func (l *List[T]) CRBegin() ConstReverseIterator[T] {
	return l.RBegin().Const()
}

// CREnd returns the read-only terminal position of reverse traversal.
func (l *List[T]) CREnd() ConstReverseIterator[T] {
	return l.REnd().Const()
}
