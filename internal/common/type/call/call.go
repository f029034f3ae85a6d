// Released under an MIT license. See LICENSE.

// Package call provides the form the parser produces for a builtin invocation.
package call

import (
	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
	"github.com/michaelmacinnis/tup/internal/common/interface/literal"
	"github.com/michaelmacinnis/tup/internal/common/struct/loc"
)

const name = "call"

// T (call) names a builtin and the arguments to pass to it.
type T struct {
	args   []cell.I
	name   string
	source *loc.T
}

type call = T

// New creates a new call.
func New(source *loc.T, name string, args ...cell.I) *T {
	return &call{args: args, name: name, source: source}
}

// Args returns the arguments for the call c.
func (c *call) Args() []cell.I {
	return c.args
}

// Builtin returns the name of the builtin the call c invokes.
func (c *call) Builtin() string {
	return c.name
}

// Equal returns true if o is a call to the same builtin with equal arguments.
func (c *call) Equal(o cell.I) bool {
	if !Is(o) {
		return false
	}

	t := To(o)
	if c.name != t.name || len(c.args) != len(t.args) {
		return false
	}

	for i, a := range c.args {
		if !a.Equal(t.args[i]) {
			return false
		}
	}

	return true
}

// Literal returns the literal representation of the call c.
// Calls passed as arguments are parenthesized.
func (c *call) Literal() string {
	s := c.name

	for _, a := range c.args {
		if Is(a) {
			s += " (" + literal.String(a) + ")"
		} else {
			s += " " + literal.String(a)
		}
	}

	return s
}

// Name returns the name of the call type.
func (c *call) Name() string {
	return name
}

// Source returns where the call c was read from. It may be nil.
func (c *call) Source() *loc.T {
	return c.source
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
	var t call

	// The call type is a cell.
	_ = cell.I(&t)

	// The call type has a literal representation.
	_ = literal.I(&t)
}
