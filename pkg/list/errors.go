package list

import "errors"

// Precondition violations. The list has no recoverable error channel: misuse
// panics with one of these values so callers can recover and match them with
// errors.Is.
var (
	// ErrEmpty is raised by Front and Back on an empty list.
	ErrEmpty = errors.New("list: access to an element of an empty list")
	// ErrEnd is raised when a terminal position is dereferenced or erased.
	ErrEnd = errors.New("list: terminal position has no element")
	// ErrRange is raised when an iterator is moved past a terminal position.
	ErrRange = errors.New("list: iterator moved out of range")
	// ErrNilIterator is raised when the zero value of an iterator is used.
	ErrNilIterator = errors.New("list: use of a zero iterator")
	// ErrSelfSplice is raised when a whole list is spliced into itself.
	ErrSelfSplice = errors.New("list: splice of a list into itself")
)
