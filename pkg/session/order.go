package session

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Order decides how element values are compared by sort, merge, unique and cmp
type Order int

const (
	// OrderNatural compares numerically when both values are numbers and
	// lexically otherwise. Numbers sort before words.
	OrderNatural Order = iota
	// OrderLexical compares values as plain strings
	OrderLexical
)

// ParseOrder parses the name of an order
func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(name) {
	case "", "natural":
		return OrderNatural, nil
	case "lexical":
		return OrderLexical, nil
	}
	return OrderNatural, fmt.Errorf("unknown order %q", name)
}

// String returns the name of the order
func (o Order) String() string {
	if o == OrderLexical {
		return "lexical"
	}
	return "natural"
}

// Compare returns -1, 0 or +1 depending on how a sorts relative to b
func (o Order) Compare(a, b string) int {
	if o == OrderNatural {
		fa, errA := strconv.ParseFloat(a, 64)
		fb, errB := strconv.ParseFloat(b, 64)
		switch {
		case errA == nil && errB == nil:
			if c := cmp.Compare(fa, fb); c != 0 {
				return c
			}
		case errA == nil:
			return -1
		case errB == nil:
			return 1
		}
	}
	return strings.Compare(a, b)
}

// Less reports whether a sorts before b
func (o Order) Less(a, b string) bool {
	return o.Compare(a, b) < 0
}

// Equal reports whether a and b sort as equal
func (o Order) Equal(a, b string) bool {
	return o.Compare(a, b) == 0
}
