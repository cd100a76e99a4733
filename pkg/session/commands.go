package session

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/ray-d-song/golist/pkg/epub"
	"github.com/ray-d-song/golist/pkg/list"
	"github.com/ray-d-song/golist/pkg/parser"
	"github.com/ray-d-song/golist/pkg/utils"
)

// atoi parses a non-negative count or index
func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNumber, s)
	}
	return n, nil
}

// iterAt returns the position of element idx. When allowEnd is set, idx may
// equal the length of the list and names End.
func iterAt(l *list.List[string], idx int, allowEnd bool) (list.Iterator[string], error) {
	it := l.Begin()
	for i := 0; i < idx; i++ {
		if it == l.End() {
			return it, fmt.Errorf("%w: %d", ErrIndex, idx)
		}
		it = it.Next()
	}
	if it == l.End() && !allowEnd {
		return it, fmt.Errorf("%w: %d", ErrIndex, idx)
	}
	return it, nil
}

// position parses an index argument and resolves it in l
func position(l *list.List[string], arg string, allowEnd bool) (list.Iterator[string], int, error) {
	idx, err := atoi(arg)
	if err != nil {
		return list.Iterator[string]{}, 0, err
	}
	it, err := iterAt(l, idx, allowEnd)
	return it, idx, err
}

func (s *Session) execBuild(verb string, args []string) (string, error) {
	name := args[0]
	switch verb {
	case "new":
		s.dropCursors(name)
		s.lists[name] = list.FromSlice(args[1:])

	case "fill":
		count, err := atoi(args[1])
		if err != nil {
			return "", err
		}
		s.dropCursors(name)
		s.lists[name] = list.NewFilled(count, args[2])

	case "copy":
		src, err := s.get(args[1])
		if err != nil {
			return "", err
		}
		s.dropCursors(name)
		s.lists[name] = src.Clone()

	case "assign":
		dst, err := s.get(name)
		if err != nil {
			return "", err
		}
		src, err := s.get(args[1])
		if err != nil {
			return "", err
		}
		if dst != src {
			s.dropCursors(name)
			dst.Assign(src)
		}

	case "drop":
		if _, err := s.get(name); err != nil {
			return "", err
		}
		s.dropCursors(name)
		delete(s.lists, name)
		return "dropped " + name, nil

	case "load":
		path := utils.ResolvePath(s.script, args[1])
		items, err := loadItems(path)
		if err != nil {
			return "", err
		}
		utils.DebugLog("[INFO:load] Loaded %d items from %s", len(items), path)
		s.dropCursors(name)
		s.lists[name] = list.FromSlice(items)

	case "swap":
		a, err := s.get(name)
		if err != nil {
			return "", err
		}
		b, err := s.get(args[1])
		if err != nil {
			return "", err
		}
		if a == b {
			break
		}
		a.Swap(b)
		// cursors follow their elements into the other list
		for key, c := range s.cursors {
			switch c.list {
			case name:
				c.list = args[1]
			case args[1]:
				c.list = name
			}
			s.cursors[key] = c
		}
		return s.describe(name) + "\n" + s.describe(args[1]), nil
	}
	return s.describe(name), nil
}

func (s *Session) execEdit(verb string, args []string) (string, error) {
	name := args[0]
	l, err := s.get(name)
	if err != nil {
		return "", err
	}

	switch verb {
	case "push_front":
		for _, v := range args[1:] {
			l.PushFront(v)
		}

	case "push_back":
		for _, v := range args[1:] {
			l.PushBack(v)
		}

	case "pop_front", "pop_back":
		if l.Empty() {
			return "", fmt.Errorf("%w: %s", ErrEmptyList, name)
		}
		s.dropCursors(name)
		if verb == "pop_front" {
			l.PopFront()
		} else {
			l.PopBack()
		}

	case "front", "back":
		if l.Empty() {
			return "", fmt.Errorf("%w: %s", ErrEmptyList, name)
		}
		if verb == "front" {
			return l.Front(), nil
		}
		return l.Back(), nil

	case "insert":
		pos, _, err := position(l, args[1], true)
		if err != nil {
			return "", err
		}
		l.InsertSeq(pos, slices.Values(args[2:]))

	case "insert_n":
		pos, _, err := position(l, args[1], true)
		if err != nil {
			return "", err
		}
		count, err := atoi(args[2])
		if err != nil {
			return "", err
		}
		l.InsertN(pos, count, args[3])

	case "erase":
		first, idx, err := position(l, args[1], len(args) == 3)
		if err != nil {
			return "", err
		}
		if len(args) == 2 {
			s.dropCursors(name)
			l.Erase(first)
			break
		}
		last, end, err := position(l, args[2], true)
		if err != nil {
			return "", err
		}
		if end < idx {
			return "", fmt.Errorf("%w: range %d..%d", ErrIndex, idx, end)
		}
		s.dropCursors(name)
		l.EraseRange(first, last)

	case "clear":
		s.dropCursors(name)
		l.Clear()

	case "resize":
		size, err := atoi(args[1])
		if err != nil {
			return "", err
		}
		var fill string
		if len(args) == 3 {
			fill = args[2]
		}
		if size < l.Len() {
			s.dropCursors(name)
		}
		l.Resize(size, fill)
	}
	return s.describe(name), nil
}

func (s *Session) execAlgorithm(verb string, args []string) (string, error) {
	name := args[0]
	l, err := s.get(name)
	if err != nil {
		return "", err
	}

	switch verb {
	case "splice":
		return s.splice(l, args)

	case "remove":
		s.dropCursors(name)
		n := list.Remove(l, args[1])
		return fmt.Sprintf("removed %d\n%s", n, s.describe(name)), nil

	case "remove_if":
		pred, err := s.predicate(args[1], args[2])
		if err != nil {
			return "", err
		}
		s.dropCursors(name)
		n := l.RemoveIf(pred)
		return fmt.Sprintf("removed %d\n%s", n, s.describe(name)), nil

	case "unique":
		s.dropCursors(name)
		n := l.UniqueFunc(s.order.Equal)
		return fmt.Sprintf("removed %d\n%s", n, s.describe(name)), nil

	case "merge":
		src, err := s.get(args[1])
		if err != nil {
			return "", err
		}
		if src == l {
			break
		}
		end := src.End()
		s.moveCursors(args[1], name, func(it list.Iterator[string]) bool { return it != end })
		l.MergeFunc(src, s.order.Less)
		return s.describe(name) + "\n" + s.describe(args[1]), nil

	case "reverse":
		l.Reverse()

	case "sort":
		less := s.order.Less
		if len(args) == 2 {
			switch strings.ToLower(args[1]) {
			case "asc":
			case "desc":
				less = func(a, b string) bool { return s.order.Less(b, a) }
			default:
				return "", fmt.Errorf("%w: sort direction %q", parser.ErrArity, args[1])
			}
		}
		l.SortFunc(less)
	}
	return s.describe(name), nil
}

// splice handles the three forms: a whole list, one element and a range
func (s *Session) splice(dst *list.List[string], args []string) (string, error) {
	dstName, srcName := args[0], args[2]
	src, err := s.get(srcName)
	if err != nil {
		return "", err
	}
	pos, idx, err := position(dst, args[1], true)
	if err != nil {
		return "", err
	}

	switch len(args) {
	case 3:
		if src == dst {
			return "", ErrSelfSplice
		}
		end := src.End()
		s.moveCursors(srcName, dstName, func(it list.Iterator[string]) bool { return it != end })
		dst.Splice(pos, src)

	case 4:
		it, _, err := position(src, args[3], false)
		if err != nil {
			return "", err
		}
		s.moveCursors(srcName, dstName, func(c list.Iterator[string]) bool { return c == it })
		dst.SpliceOne(pos, src, it)

	case 5:
		first, from, err := position(src, args[3], true)
		if err != nil {
			return "", err
		}
		last, to, err := position(src, args[4], true)
		if err != nil {
			return "", err
		}
		if to < from {
			return "", fmt.Errorf("%w: range %d..%d", ErrIndex, from, to)
		}
		if src == dst && idx > from && idx < to {
			return "", fmt.Errorf("%w: position %d lies inside %d..%d", ErrIndex, idx, from, to)
		}
		moved := make(map[list.Iterator[string]]bool)
		for it := first; it != last; it = it.Next() {
			moved[it] = true
		}
		s.moveCursors(srcName, dstName, func(it list.Iterator[string]) bool { return moved[it] })
		dst.SpliceRange(pos, src, first, last)
	}

	if src == dst {
		return s.describe(dstName), nil
	}
	return s.describe(dstName) + "\n" + s.describe(srcName), nil
}

// moveCursors re-targets cursors into src that match to dst. Splicing moves
// nodes, so those cursors stay valid but now walk dst.
func (s *Session) moveCursors(src, dst string, match func(list.Iterator[string]) bool) {
	if src == dst {
		return
	}
	for key, c := range s.cursors {
		if c.list == src && match(c.it) {
			c.list = dst
			s.cursors[key] = c
		}
	}
}

// predicate builds the remove_if test for an operator and operand
func (s *Session) predicate(op, operand string) (func(string) bool, error) {
	var test func(int) bool
	switch op {
	case "<":
		test = func(c int) bool { return c < 0 }
	case "<=":
		test = func(c int) bool { return c <= 0 }
	case ">":
		test = func(c int) bool { return c > 0 }
	case ">=":
		test = func(c int) bool { return c >= 0 }
	case "==":
		test = func(c int) bool { return c == 0 }
	case "!=":
		test = func(c int) bool { return c != 0 }
	default:
		return nil, fmt.Errorf("%w: %s", ErrOperator, op)
	}
	return func(v string) bool { return test(s.order.Compare(v, operand)) }, nil
}

func (s *Session) execQuery(verb string, args []string) (string, error) {
	if verb == "show" {
		if len(args) == 1 {
			if _, err := s.get(args[0]); err != nil {
				return "", err
			}
			return s.describe(args[0]), nil
		}
		lines := make([]string, 0, len(s.lists))
		for _, name := range s.Names() {
			lines = append(lines, s.describe(name))
		}
		return strings.Join(lines, "\n"), nil
	}

	l, err := s.get(args[0])
	if err != nil {
		return "", err
	}
	switch verb {
	case "size":
		return strconv.Itoa(l.Len()), nil
	case "empty":
		return strconv.FormatBool(l.Empty()), nil
	case "max_size":
		return strconv.Itoa(l.MaxSize()), nil
	}

	// cmp
	other, err := s.get(args[1])
	if err != nil {
		return "", err
	}
	return strconv.Itoa(list.CompareFunc(l, other, s.order.Compare)), nil
}

func (s *Session) execCursor(verb string, args []string) (string, error) {
	key := args[0]
	if verb == "cursor" {
		l, err := s.get(args[1])
		if err != nil {
			return "", err
		}
		it, _, err := position(l, args[2], true)
		if err != nil {
			return "", err
		}
		s.cursors[key] = cursor{list: args[1], it: it}
		return s.describeCursor(key), nil
	}

	c, ok := s.cursors[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoCursor, key)
	}
	l := s.lists[c.list]

	switch verb {
	case "step":
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrNumber, args[1])
		}
		it := c.it
		for ; n > 0; n-- {
			if it == l.End() {
				return "", fmt.Errorf("%w: cursor %s stepped past the end", ErrIndex, key)
			}
			it = it.Next()
		}
		for ; n < 0; n++ {
			if it == l.Begin() {
				return "", fmt.Errorf("%w: cursor %s stepped before the front", ErrIndex, key)
			}
			it = it.Prev()
		}
		c.it = it
		s.cursors[key] = c

	case "put":
		if c.it == l.End() {
			return "", fmt.Errorf("%w: cursor %s is at the end", ErrIndex, key)
		}
		c.it.Set(args[1])

	case "get":
		if c.it == l.End() {
			return "", fmt.Errorf("%w: cursor %s is at the end", ErrIndex, key)
		}
		return c.it.Value(), nil
	}
	return s.describeCursor(key), nil
}

// describeCursor reports the list and index a cursor points at
func (s *Session) describeCursor(key string) string {
	c := s.cursors[key]
	l := s.lists[c.list]
	idx := 0
	for it := l.Begin(); it != c.it; it = it.Next() {
		idx++
	}
	if c.it == l.End() {
		return fmt.Sprintf("%s -> %s[%d] (end)", key, c.list, idx)
	}
	return fmt.Sprintf("%s -> %s[%d] = %s", key, c.list, idx, c.it.Value())
}

// loadItems reads the values of a file, picking the reader by extension
func loadItems(path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".epub") {
		return epub.LoadItems(path)
	}
	return parser.LoadItems(path)
}
