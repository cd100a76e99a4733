package session

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ray-d-song/golist/pkg/list"
	"github.com/ray-d-song/golist/pkg/parser"
	"github.com/ray-d-song/golist/pkg/utils"
)

var (
	// ErrNoList is returned when a command names a list that does not exist
	ErrNoList = errors.New("no such list")
	// ErrNoCursor is returned when a command names a cursor that does not exist
	ErrNoCursor = errors.New("no such cursor")
	// ErrIndex is returned for positions outside a list
	ErrIndex = errors.New("index out of range")
	// ErrNumber is returned when a numeric argument does not parse
	ErrNumber = errors.New("not a number")
	// ErrEmptyList is returned when an element of an empty list is requested
	ErrEmptyList = errors.New("list is empty")
	// ErrSelfSplice is returned when a whole list is spliced into itself
	ErrSelfSplice = errors.New("cannot splice a list into itself")
	// ErrOperator is returned for an unknown remove_if operator
	ErrOperator = errors.New("unknown operator")
)

// cursor is a named iterator kept between commands
type cursor struct {
	list string
	it   list.Iterator[string]
}

// Session is a workspace of named lists driven by parsed commands
type Session struct {
	lists   map[string]*list.List[string]
	cursors map[string]cursor
	order   Order
	script  string // Path of the script being run, used to resolve load paths
}

// Option configures a Session
type Option func(*Session)

// WithOrder sets the order used to compare values
func WithOrder(order Order) Option {
	return func(s *Session) {
		s.order = order
	}
}

// WithScript sets the script path that relative load paths are resolved against
func WithScript(path string) Option {
	return func(s *Session) {
		s.script = path
	}
}

// New creates an empty session
func New(opts ...Option) *Session {
	s := &Session{
		lists:   make(map[string]*list.List[string]),
		cursors: make(map[string]cursor),
		order:   OrderNatural,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Order returns the order used to compare values
func (s *Session) Order() Order {
	return s.order
}

// SetOrder changes the order used to compare values
func (s *Session) SetOrder(order Order) {
	s.order = order
}

// Names returns the names of all lists in alphabetical order
func (s *Session) Names() []string {
	names := make([]string, 0, len(s.lists))
	for name := range s.lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the list with the given name
func (s *Session) List(name string) (*list.List[string], bool) {
	l, ok := s.lists[name]
	return l, ok
}

// Render returns the forward and reverse traversals of a list
func (s *Session) Render(name string) ([]string, []string, error) {
	l, err := s.get(name)
	if err != nil {
		return nil, nil, err
	}
	forward := make([]string, 0)
	for v := range l.All() {
		forward = append(forward, v)
	}
	backward := make([]string, 0, len(forward))
	for v := range l.Backward() {
		backward = append(backward, v)
	}
	return forward, backward, nil
}

// ExecLine parses and executes a single line
func (s *Session) ExecLine(line string) (string, error) {
	cmd, err := parser.ParseLine(line)
	if err != nil {
		return "", err
	}
	return s.Exec(cmd)
}

// Run executes commands in order and returns their results. It stops at the
// first failing command.
func (s *Session) Run(cmds []parser.Command) ([]string, error) {
	results := make([]string, 0, len(cmds))
	for i, cmd := range cmds {
		result, err := s.Exec(cmd)
		if err != nil {
			if cmd.Line > 0 {
				return results, fmt.Errorf("line %d: %s: %w", cmd.Line, cmd.Raw, err)
			}
			return results, fmt.Errorf("command %d: %s: %w", i+1, cmd.Raw, err)
		}
		results = append(results, result)
	}
	return results, nil
}

// Exec executes one command and returns a one-line description of the result
func (s *Session) Exec(cmd parser.Command) (string, error) {
	utils.DebugLog("[INFO:Exec] %s", cmd.Raw)
	result, err := s.exec(cmd)
	if err != nil {
		utils.DebugLog("[ERROR:Exec] %s: %v", cmd.Raw, err)
		return "", err
	}
	return result, nil
}

func (s *Session) exec(cmd parser.Command) (string, error) {
	args := cmd.Args
	switch cmd.Verb {
	case "new", "fill", "copy", "assign", "drop", "load", "swap":
		return s.execBuild(cmd.Verb, args)
	case "push_front", "push_back", "pop_front", "pop_back", "front", "back",
		"insert", "insert_n", "erase", "clear", "resize":
		return s.execEdit(cmd.Verb, args)
	case "splice", "remove", "remove_if", "unique", "merge", "reverse", "sort":
		return s.execAlgorithm(cmd.Verb, args)
	case "size", "empty", "max_size", "cmp", "show":
		return s.execQuery(cmd.Verb, args)
	case "cursor", "step", "put", "get":
		return s.execCursor(cmd.Verb, args)
	}
	return "", fmt.Errorf("%w: %s", parser.ErrUnknownVerb, cmd.Verb)
}

// get returns the named list
func (s *Session) get(name string) (*list.List[string], error) {
	l, ok := s.lists[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoList, name)
	}
	return l, nil
}

// dropCursors forgets every cursor into the named lists. Called whenever an
// operation may unlink nodes or move them to another list.
func (s *Session) dropCursors(names ...string) {
	for key, c := range s.cursors {
		for _, name := range names {
			if c.list == name {
				utils.DebugLog("[INFO:dropCursors] Dropping cursor %s into %s", key, name)
				delete(s.cursors, key)
				break
			}
		}
	}
}

// describe returns a short summary of a list
func (s *Session) describe(name string) string {
	l := s.lists[name]
	return fmt.Sprintf("%s (%d): %s", name, l.Len(), FormatValues(l))
}

// FormatValues renders the values of a list in brackets
func FormatValues(l *list.List[string]) string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for v := range l.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		if v == "" || strings.ContainsAny(v, " \t") {
			fmt.Fprintf(&b, "%q", v)
		} else {
			b.WriteString(v)
		}
	}
	b.WriteByte(']')
	return b.String()
}
