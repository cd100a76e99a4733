package list

import "iter"

// position is the cursor state shared by every iterator type. The four
// iterator types are views over it that differ only in direction and in
// whether they hand out write access.
type position[T any] struct {
	n *node[T]
}

// element returns the address of the value stored at p.
func (p position[T]) element() *T {
	if p.n == nil || p.n.isSentinel() {
		panic(ErrEnd)
	}
	return &p.n.value
}

// following returns the position after p in chain order.
func (p position[T]) following() position[T] {
	if p.n == nil || p.n.isSentinel() {
		panic(ErrRange)
	}
	return position[T]{n: p.n.next}
}

// preceding returns the position before p in chain order. The predecessor of
// the front element is the nil position.
func (p position[T]) preceding() position[T] {
	if p.n == nil {
		panic(ErrRange)
	}
	return position[T]{n: p.n.prev}
}

// ConstIterator is a read-only forward cursor. Two iterators are equal when
// they refer to the same position.
type ConstIterator[T any] struct {
	pos position[T]
}

// Value returns the element at the iterator.
func (it ConstIterator[T]) Value() T {
	return *forwardNode(it.pos).element()
}

// Next returns the iterator one step towards the end.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{pos: stepForward(it.pos)}
}

// Prev returns the iterator one step towards the front. Prev of End is the
// back element.
func (it ConstIterator[T]) Prev() ConstIterator[T] {
	return ConstIterator[T]{pos: stepBackward(it.pos)}
}

// Iterator is a forward cursor with write access to the element.
type Iterator[T any] struct {
	pos position[T]
}

// Value returns the element at the iterator.
func (it Iterator[T]) Value() T {
	return *forwardNode(it.pos).element()
}

// Ptr returns the address of the element at the iterator.
func (it Iterator[T]) Ptr() *T {
	return forwardNode(it.pos).element()
}

// Set replaces the element at the iterator.
func (it Iterator[T]) Set(v T) {
	*forwardNode(it.pos).element() = v
}

// Next returns the iterator one step towards the end.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{pos: stepForward(it.pos)}
}

// Prev returns the iterator one step towards the front.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{pos: stepBackward(it.pos)}
}

// Const returns the read-only view of the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{pos: it.pos}
}

// ConstReverseIterator is a read-only cursor walking from the back element
// towards the front. Its terminal position is the absent predecessor of the
// front element, so the zero value equals REnd of any list.
type ConstReverseIterator[T any] struct {
	pos position[T]
}

// Value returns the element at the iterator.
func (it ConstReverseIterator[T]) Value() T {
	return *it.pos.element()
}

// Next returns the iterator one step towards the front.
func (it ConstReverseIterator[T]) Next() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{pos: it.pos.preceding()}
}

// Prev returns the iterator one step towards the back.
func (it ConstReverseIterator[T]) Prev() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{pos: reverseBackward(it.pos)}
}

// ReverseIterator is a reverse cursor with write access to the element.
type ReverseIterator[T any] struct {
	pos position[T]
}

// Value returns the element at the iterator.
func (it ReverseIterator[T]) Value() T {
	return *it.pos.element()
}

// Ptr returns the address of the element at the iterator.
func (it ReverseIterator[T]) Ptr() *T {
	return it.pos.element()
}

// Set replaces the element at the iterator.
func (it ReverseIterator[T]) Set(v T) {
	*it.pos.element() = v
}

// Next returns the iterator one step towards the front.
func (it ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{pos: it.pos.preceding()}
}

// Prev returns the iterator one step towards the back.
func (it ReverseIterator[T]) Prev() ReverseIterator[T] {
	return ReverseIterator[T]{pos: reverseBackward(it.pos)}
}

// Const returns the read-only view of the same position.
func (it ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{pos: it.pos}
}

// forwardNode rejects the zero forward iterator, which points nowhere.
func forwardNode[T any](p position[T]) position[T] {
	if p.n == nil {
		panic(ErrNilIterator)
	}
	return p
}

func stepForward[T any](p position[T]) position[T] {
	return forwardNode(p).following()
}

func stepBackward[T any](p position[T]) position[T] {
	prev := forwardNode(p).preceding()
	if prev.n == nil {
		panic(ErrRange)
	}
	return prev
}

// reverseBackward moves a reverse cursor towards the back. The terminal nil
// position has no way back, and the sentinel lies outside reverse range.
func reverseBackward[T any](p position[T]) position[T] {
	next := p.following()
	if next.n.isSentinel() {
		panic(ErrRange)
	}
	return next
}

// All returns an iterator over the elements from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := l.CBegin(); it != l.CEnd(); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := l.CRBegin(); it != l.CREnd(); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
