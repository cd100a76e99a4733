package list

import (
	"slices"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func TestForwardIteration(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})

	expected := 1
	for it := l.Begin(); it != l.End(); it = it.Next() {
		check.Equal(t, it.Value(), expected)
		expected++
	}
	check.Equal(t, expected, 4)

	t.Run("ConstView", func(t *testing.T) {
		var got []int
		for it := l.CBegin(); it != l.CEnd(); it = it.Next() {
			got = append(got, it.Value())
		}
		assert.True(t, slices.Equal(got, []int{1, 2, 3}))
		check.True(t, l.Begin().Const() == l.CBegin())
	})
	t.Run("PrevFromEnd", func(t *testing.T) {
		check.Equal(t, l.End().Prev().Value(), 3)
		check.Equal(t, l.CEnd().Prev().Prev().Value(), 2)
	})
	t.Run("CopiesAdvanceIndependently", func(t *testing.T) {
		a := l.Begin()
		b := a
		a = a.Next()
		check.Equal(t, b.Value(), 1)
		check.Equal(t, a.Value(), 2)
		check.True(t, a != b)
		check.True(t, b.Next() == a)
	})
	t.Run("MutableAccess", func(t *testing.T) {
		m := FromSlice([]int{1, 2, 3})
		for it := m.Begin(); it != m.End(); it = it.Next() {
			it.Set(it.Value() * 10)
		}
		*m.Begin().Ptr() += 1
		expectValues(t, m, 11, 20, 30)
	})
}

func TestReverseIteration(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})

	expected := 3
	for it := l.RBegin(); it != l.REnd(); it = it.Next() {
		check.Equal(t, it.Value(), expected)
		expected--
	}
	check.Equal(t, expected, 0)

	t.Run("ConstView", func(t *testing.T) {
		var got []int
		for it := l.CRBegin(); it != l.CREnd(); it = it.Next() {
			got = append(got, it.Value())
		}
		assert.True(t, slices.Equal(got, []int{3, 2, 1}))
	})
	t.Run("Prev", func(t *testing.T) {
		it := l.RBegin().Next().Next()
		check.Equal(t, it.Value(), 1)
		check.Equal(t, it.Prev().Value(), 2)
		check.Equal(t, it.Const().Prev().Prev().Value(), 3)
	})
	t.Run("MutableAccess", func(t *testing.T) {
		m := FromSlice([]int{1, 2, 3})
		m.RBegin().Set(30)
		*m.RBegin().Next().Ptr() = 20
		expectValues(t, m, 1, 20, 30)
	})
	t.Run("EmptyList", func(t *testing.T) {
		e := New[int]()
		check.True(t, e.RBegin() == e.REnd())
		check.True(t, e.CRBegin() == ConstReverseIterator[int]{})
	})
}

func TestTerminalPositions(t *testing.T) {
	l := FromSlice([]int{1, 2})

	expectPanic(t, ErrEnd, func() { l.End().Value() })
	expectPanic(t, ErrEnd, func() { l.CEnd().Value() })
	expectPanic(t, ErrRange, func() { l.End().Next() })
	expectPanic(t, ErrRange, func() { l.Begin().Prev() })
	expectPanic(t, ErrRange, func() { l.CBegin().Prev() })

	expectPanic(t, ErrEnd, func() { l.REnd().Value() })
	expectPanic(t, ErrEnd, func() { l.CREnd().Value() })
	expectPanic(t, ErrRange, func() { l.REnd().Next() })
	expectPanic(t, ErrRange, func() { l.RBegin().Prev() })
	expectPanic(t, ErrRange, func() { l.REnd().Prev() })

	expectPanic(t, ErrNilIterator, func() { Iterator[int]{}.Value() })
	expectPanic(t, ErrNilIterator, func() { ConstIterator[int]{}.Next() })
	expectPanic(t, ErrNilIterator, func() { Iterator[int]{}.Prev() })

	empty := New[int]()
	expectPanic(t, ErrRange, func() { empty.End().Prev() })
}

func TestSeqViews(t *testing.T) {
	l := FromSlice([]string{"a", "b", "c", "d"})

	var first []string
	for v := range l.All() {
		if v == "c" {
			break
		}
		first = append(first, v)
	}
	assert.True(t, slices.Equal(first, []string{"a", "b"}))

	var last []string
	for v := range l.Backward() {
		if v == "b" {
			break
		}
		last = append(last, v)
	}
	assert.True(t, slices.Equal(last, []string{"d", "c"}))

	var zero List[string]
	check.Equal(t, len(slices.Collect(zero.All())), 0)
	check.Equal(t, len(slices.Collect(zero.Backward())), 0)
}

func TestLenMatchesTraversal(t *testing.T) {
	l := New[int]()
	for i := 0; i < 40; i++ {
		switch {
		case i%5 == 0:
			l.PopBack()
		case i%2 == 0:
			l.PushFront(i)
		default:
			l.PushBack(i)
		}
		forward := slices.Collect(l.All())
		backward := slices.Collect(l.Backward())
		check.Equal(t, l.Len(), len(forward))
		slices.Reverse(backward)
		check.True(t, slices.Equal(forward, backward))
		checkInvariants(t, l)
	}
}
