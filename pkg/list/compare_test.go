package list

import (
	"strings"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func TestEqual(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]int{1, 2, 3})
	c := FromSlice([]int{1, 2, 4})
	d := FromSlice([]int{1, 2})

	assert.True(t, Equal(a, b))
	assert.True(t, Equal(a, a))
	assert.True(t, !Equal(a, c))
	assert.True(t, !Equal(a, d))
	assert.True(t, Equal(New[int](), New[int]()))

	x := FromSlice([]string{"Go", "LIST"})
	y := FromSlice([]string{"go", "list"})
	assert.True(t, !Equal(x, y))
	assert.True(t, EqualFunc(x, y, strings.EqualFold))
}

func TestLess(t *testing.T) {
	tests := []struct {
		a, b     []int
		expected bool
	}{
		{a: []int{1, 2}, b: []int{1, 3}, expected: true},
		{a: []int{1, 2}, b: []int{1, 2}, expected: false},
		{a: []int{1, 2, 3}, b: []int{1, 2}, expected: false},
		{a: []int{1, 2}, b: []int{1, 2, 3}, expected: true},
		{a: []int{}, b: []int{0}, expected: true},
		{a: []int{}, b: []int{}, expected: false},
		{a: []int{2}, b: []int{1, 9}, expected: false},
	}

	for _, test := range tests {
		result := Less(FromSlice(test.a), FromSlice(test.b))
		if result != test.expected {
			t.Errorf("Less(%v, %v) = %v, expected %v", test.a, test.b, result, test.expected)
		}
	}

	byLength := func(x, y string) bool { return len(x) < len(y) }
	check.True(t, LessFunc(FromSlice([]string{"zz"}), FromSlice([]string{"aaa"}), byLength))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b     []int
		expected int
	}{
		{a: []int{1, 2}, b: []int{1, 3}, expected: -1},
		{a: []int{1, 3}, b: []int{1, 2}, expected: 1},
		{a: []int{1, 2}, b: []int{1, 2}, expected: 0},
		{a: []int{1, 2, 3}, b: []int{1, 2}, expected: 1},
		{a: []int{1}, b: []int{1, 2}, expected: -1},
		{a: []int{}, b: []int{}, expected: 0},
	}

	for _, test := range tests {
		result := Compare(FromSlice(test.a), FromSlice(test.b))
		if result != test.expected {
			t.Errorf("Compare(%v, %v) = %d, expected %d", test.a, test.b, result, test.expected)
		}
	}

	// comparison results are normalised to -1/0/+1
	diff := func(x, y int) int { return x - y }
	check.Equal(t, CompareFunc(FromSlice([]int{10}), FromSlice([]int{1}), diff), 1)
	check.Equal(t, CompareFunc(FromSlice([]int{1}), FromSlice([]int{10}), diff), -1)
}
