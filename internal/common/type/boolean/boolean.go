// Released under an MIT license. See LICENSE.

// Package boolean provides tup's boolean value type.
package boolean

import (
	"github.com/michaelmacinnis/tup/internal/common"
	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
	"github.com/michaelmacinnis/tup/internal/common/interface/literal"
	"github.com/michaelmacinnis/tup/internal/common/interface/truth"
)

const name = "boolean"

// T (boolean) wraps Go's bool type.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	False = f()
	True  = t()
)

// Bool creates new boolean from the bool b.
func Bool(b bool) cell.I {
	if b {
		return True
	}

	return False
}

// New returns the boolean named by s and whether s names one.
func New(s string) (cell.I, bool) {
	b, ok := map[string]*boolean{
		"true":  True,
		"false": False,
	}[s]

	if ok {
		return b, true
	}

	return nil, false
}

// Bool returns the boolean value of the boolean b.
func (b *boolean) Bool() bool {
	return bool(*b)
}

// Equal returns true if c is a boolean with a matching value.
func (b *boolean) Equal(c cell.I) bool {
	return Is(c) && b.Bool() == To(c).Bool()
}

// Literal returns the literal representation of the boolean b.
func (b *boolean) Literal() string {
	return b.String()
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b *boolean) String() string {
	if bool(*b) {
		return "true"
	}

	return "false"
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

func f() *boolean {
	v := boolean(false)

	return &v
}

func t() *boolean {
	v := boolean(true)

	return &v
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type is a cell.
	_ = cell.I(&t)

	// The boolean type has a literal representation.
	_ = literal.I(&t)

	// The boolean type is a stringer.
	_ = common.Stringer(&t)

	// The boolean type has a truth value.
	_ = truth.I(&t)
}
