// Released under an MIT license. See LICENSE.

// Package num provides tup's rational number type.
package num

import (
	"math/big"

	"github.com/michaelmacinnis/tup/internal/common"
	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
	"github.com/michaelmacinnis/tup/internal/common/interface/literal"
	"github.com/michaelmacinnis/tup/internal/common/interface/rational"
	"github.com/michaelmacinnis/tup/internal/common/interface/truth"
	"github.com/michaelmacinnis/tup/internal/common/type/errcode"
)

const name = "number"

// T (num) wraps Go's big.Rat type.
type T big.Rat

type num = T

// New creates a new num cell from a string. It panics if s is not a number.
func New(s string) cell.I {
	n, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}

	return n
}

// Parse creates a new num from a string.
func Parse(s string) (cell.I, error) {
	v := &big.Rat{}

	if _, ok := v.SetString(s); !ok {
		return nil, errcode.Errorf(errcode.Syntax, "'%s' is not a valid number", s)
	}

	return Rat(v), nil
}

// Int creates a num from the integer i.
func Int(i int) cell.I {
	return Rat(big.NewRat(int64(i), 1))
}

// Rat wraps the *big.Rat r as a num.
func Rat(r *big.Rat) cell.I {
	return (*num)(r)
}

// Bool returns the boolean value of the num n. Zero is false.
func (n *num) Bool() bool {
	return n.Rat().Sign() != 0
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Rat().Cmp(To(c).Rat()) == 0
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// Rat returns the value of the num n as a *big.Rat.
func (n *num) Rat() *big.Rat {
	return (*big.Rat)(n)
}

// String returns the text of the num n.
func (n *num) String() string {
	return n.Rat().RatString()
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
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a rational.
	_ = rational.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)

	// The num type has a truth value.
	_ = truth.I(&t)
}
