// Released under an MIT license. See LICENSE.

// Package list provides tup's list type.
// A list is a variable-length, mutable sequence of cells.
package list

import (
	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
	"github.com/michaelmacinnis/tup/internal/common/interface/literal"
	"github.com/michaelmacinnis/tup/internal/common/interface/sequence"
	"github.com/michaelmacinnis/tup/internal/common/interface/truth"
)

const name = "list"

// T (list) holds its elements by reference.
type T struct {
	v []cell.I
}

type list = T

// New creates a new list composed of all of the elements in elements.
// The list does not retain elements; later changes to it are not seen.
func New(elements ...cell.I) *T {
	v := make([]cell.I, len(elements))
	copy(v, elements)

	return &list{v: v}
}

// Append appends each element in elements to the list l.
func (l *list) Append(elements ...cell.I) *T {
	l.v = append(l.v, elements...)

	return l
}

// Bool returns the boolean value of the list l. The empty list is false.
func (l *list) Bool() bool {
	return len(l.v) != 0
}

// Equal returns true if c is a list with elements that are equal to l's.
func (l *list) Equal(c cell.I) bool {
	return Is(c) && sequence.Equal(l, To(c))
}

// Get returns the element at index i. It panics if i is out of range.
func (l *list) Get(i int) cell.I {
	return l.v[i]
}

// Length returns the number of elements in the list l.
func (l *list) Length() int {
	return len(l.v)
}

// Literal returns the literal representation of the list l.
func (l *list) Literal() string {
	return "[" + sequence.Literal(l, literal.String) + "]"
}

// Name returns the name of the list type.
func (l *list) Name() string {
	return name
}

// Set replaces the element at index i with c. It panics if i is out of range.
func (l *list) Set(i int, c cell.I) {
	l.v[i] = c
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.I(&t)

	// The list type has a literal representation.
	_ = literal.I(&t)

	// The list type is a sequence.
	_ = sequence.I(&t)

	// The list type has a truth value.
	_ = truth.I(&t)
}
