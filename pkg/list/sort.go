package list

import "cmp"

// SortFunc sorts the list in place so that less never reports a later
// element smaller than an earlier one. For every position, each later element
// that is less than it is swapped into it, which takes O(n^2) comparisons.
// Values are swapped through the iterators and nodes are never relinked, so
// iterators keep their positions but may see different values afterwards.
//
// The sort is not stable: equal elements may change their relative order.
func (l *List[T]) SortFunc(less func(a, b T) bool) {
	end := l.End()
	for it := l.Begin(); it != end; it = it.Next() {
		for jt := it.Next(); jt != end; jt = jt.Next() {
			if less(jt.Value(), it.Value()) {
				a, b := it.Ptr(), jt.Ptr()
				*a, *b = *b, *a
			}
		}
	}
}

// Sort sorts an ordered list in ascending order. See SortFunc.
func Sort[T cmp.Ordered](l *List[T]) {
	l.SortFunc(cmp.Less[T])
}
