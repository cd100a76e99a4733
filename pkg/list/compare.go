package list

import "cmp"

// EqualFunc reports whether a and b have the same length and eq holds for
// every pair of elements at the same position.
func EqualFunc[T any](a, b *List[T], eq func(x, y T) bool) bool {
	if a == b {
		return true
	}
	if a.Len() != b.Len() {
		return false
	}
	for ia, ib := a.CBegin(), b.CBegin(); ia != a.CEnd(); ia, ib = ia.Next(), ib.Next() {
		if !eq(ia.Value(), ib.Value()) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// LessFunc reports whether a sorts before b lexicographically. A proper
// prefix sorts before the longer list; equal lists are not less.
func LessFunc[T any](a, b *List[T], less func(x, y T) bool) bool {
	ia, ib := a.CBegin(), b.CBegin()
	for ; ia != a.CEnd() && ib != b.CEnd(); ia, ib = ia.Next(), ib.Next() {
		if less(ia.Value(), ib.Value()) {
			return true
		}
		if less(ib.Value(), ia.Value()) {
			return false
		}
	}
	return ia == a.CEnd() && ib != b.CEnd()
}

// Less reports whether a sorts before b lexicographically.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	return LessFunc(a, b, cmp.Less[T])
}

// CompareFunc compares a and b lexicographically using compare on elements. The
// result is -1 if a < b, 0 if they are equal and +1 if a > b.
func CompareFunc[T any](a, b *List[T], compare func(x, y T) int) int {
	ia, ib := a.CBegin(), b.CBegin()
	for ; ia != a.CEnd() && ib != b.CEnd(); ia, ib = ia.Next(), ib.Next() {
		if c := compare(ia.Value(), ib.Value()); c != 0 {
			if c < 0 {
				return -1
			}
			return 1
		}
	}
	switch {
	case ia == a.CEnd() && ib == b.CEnd():
		return 0
	case ia == a.CEnd():
		return -1
	default:
		return 1
	}
}

// Compare compares two ordered lists lexicographically.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}
