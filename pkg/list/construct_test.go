package list

import (
	"slices"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func TestConstructors(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		l := New[int]()
		assert.True(t, l.Empty())
		check.Equal(t, l.Len(), 0)
	})
	t.Run("Fill", func(t *testing.T) {
		l := NewFilled(5, 42)
		check.Equal(t, l.Len(), 5)
		for it := l.Begin(); it != l.End(); it = it.Next() {
			check.Equal(t, it.Value(), 42)
		}
		assert.True(t, NewFilled(0, 1).Empty())
	})
	t.Run("Range", func(t *testing.T) {
		src := FromSlice([]int{1, 2, 3, 4})
		l := NewRange(src.CBegin().Next(), src.CEnd())
		expectValues(t, l, 2, 3, 4)
		expectValues(t, src, 1, 2, 3, 4)
	})
	t.Run("Collect", func(t *testing.T) {
		l := Collect(slices.Values([]string{"x", "y"}))
		expectValues(t, l, "x", "y")
	})
}

func TestCloneAndAssign(t *testing.T) {
	t.Run("CloneIsIndependent", func(t *testing.T) {
		a := NewFilled(3, 7)
		b := a.Clone()
		assert.True(t, Equal(a, b))
		b.Begin().Set(1)
		expectValues(t, a, 7, 7, 7)
		expectValues(t, b, 1, 7, 7)
	})
	t.Run("Assign", func(t *testing.T) {
		a := FromSlice([]int{1, 2})
		b := FromSlice([]int{9, 9, 9})
		b.Assign(a)
		expectValues(t, b, 1, 2)
		a.PushBack(3)
		expectValues(t, b, 1, 2)
	})
	t.Run("SelfAssign", func(t *testing.T) {
		a := FromSlice([]int{1, 2})
		a.Assign(a)
		expectValues(t, a, 1, 2)
	})
}

func TestSwap(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]int{4, 5})
	first := a.Begin()

	a.Swap(b)
	expectValues(t, a, 4, 5)
	expectValues(t, b, 1, 2, 3)
	check.True(t, first == b.Begin())

	var zero List[int]
	zero.Swap(a)
	expectValues(t, &zero, 4, 5)
	expectValues(t, a)
}
