// Released under an MIT license. See LICENSE.

// Package tuple provides tup's tuple type.
//
// A tuple is a fixed-length, immutable sequence of cells. Only the tuple is
// immutable. The cells it refers to are shared with whatever else refers to
// them.
package tuple

import (
	"math"

	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
	"github.com/michaelmacinnis/tup/internal/common/interface/literal"
	"github.com/michaelmacinnis/tup/internal/common/interface/sequence"
	"github.com/michaelmacinnis/tup/internal/common/interface/truth"
)

const name = "tuple"

// MaxLength is the largest number of elements a tuple can hold.
const MaxLength = math.MaxUint32

// T (tuple) is never resized or modified after it is filled.
type T struct {
	v []cell.I
}

type tuple = T

// Fill allocates a tuple of length n and sets element i to item(i)
// for each i from 0 to n-1, in order. It panics if n is negative.
func Fill(n int, item func(i int) cell.I) *T {
	t := &tuple{v: make([]cell.I, n)}

	for i := 0; i < n; i++ {
		t.v[i] = item(i)
	}

	return t
}

// New creates a new tuple composed of all of the elements in elements.
func New(elements ...cell.I) *T {
	return Fill(len(elements), func(i int) cell.I {
		return elements[i]
	})
}

// Bool returns the boolean value of the tuple t. The empty tuple is false.
func (t *tuple) Bool() bool {
	return len(t.v) != 0
}

// Equal returns true if c is a tuple with elements that are equal to t's.
func (t *tuple) Equal(c cell.I) bool {
	return Is(c) && sequence.Equal(t, To(c))
}

// Get returns the element at index i. It panics if i is out of range.
func (t *tuple) Get(i int) cell.I {
	return t.v[i]
}

// Length returns the number of elements in the tuple t.
func (t *tuple) Length() int {
	return len(t.v)
}

// Literal returns the literal representation of the tuple t.
// A single element tuple has a trailing comma.
func (t *tuple) Literal() string {
	s := sequence.Literal(t, literal.String)
	if len(t.v) == 1 {
		s += ","
	}

	return "(" + s + ")"
}

// Name returns the name of the tuple type.
func (t *tuple) Name() string {
	return name
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
	var t tuple

	// The tuple type is a cell.
	_ = cell.I(&t)

	// The tuple type has a literal representation.
	_ = literal.I(&t)

	// The tuple type is a sequence.
	_ = sequence.I(&t)

	// The tuple type has a truth value.
	_ = truth.I(&t)
}
