// Released under an MIT license. See LICENSE.

// Package errcode provides tup's status codes and the error type that carries them.
package errcode

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/tup/internal/common"
	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
	"github.com/michaelmacinnis/tup/internal/common/interface/truth"
)

const name = "error"

// Code is the status returned by a native call.
type Code int

// Status codes.
const (
	OK Code = iota
	TypeMismatch
	ArgumentCount
	CapacityExceeded
	IndexRange
	UnknownName
	Syntax
)

// String returns the name of the code c.
func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case TypeMismatch:
		return "type mismatch"
	case ArgumentCount:
		return "argument count"
	case CapacityExceeded:
		return "capacity exceeded"
	case IndexRange:
		return "index out of range"
	case UnknownName:
		return "unknown name"
	case Syntax:
		return "syntax"
	}

	return fmt.Sprintf("code(%d)", int(c))
}

// T (errcode) is an error with a status code. It can be passed where a cell is expected.
type T struct {
	code Code
	msg  string
}

type errcode = T

// New creates a new errcode.
func New(code Code, msg string) *errcode {
	return &errcode{code: code, msg: msg}
}

// Errorf creates a new errcode with a formatted message.
func Errorf(code Code, format string, args ...interface{}) *errcode {
	return New(code, fmt.Sprintf(format, args...))
}

// Mismatch creates a TypeMismatch error for the cell c where kind was expected.
func Mismatch(c cell.I, kind string) *errcode {
	found := "nothing"
	if c != nil {
		found = c.Name()
	}

	return Errorf(TypeMismatch, "expected %s, passed %s", kind, found)
}

// Of returns the code carried by err. A nil err is OK.
// Errors that do not carry a code are reported as TypeMismatch.
func Of(err error) Code {
	if err == nil {
		return OK
	}

	var e *errcode
	if errors.As(err, &e) {
		return e.code
	}

	return TypeMismatch
}

// Bool returns the boolean value of the errcode e.
func (e *errcode) Bool() bool {
	return false
}

// Code returns the status code for the errcode e.
func (e *errcode) Code() Code {
	return e.code
}

// Equal returns true if the cell c is an errcode with the same code and message.
func (e *errcode) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	o := To(c)

	return e.code == o.code && e.msg == o.msg
}

// Error returns the text of the errcode e.
func (e *errcode) Error() string {
	if e.msg == "" {
		return e.code.String()
	}

	return e.code.String() + ": " + e.msg
}

// Is reports whether target is an errcode with the same code.
// This allows errors.Is(err, errcode.New(errcode.TypeMismatch, "")).
func (e *errcode) Is(target error) bool {
	var t *errcode
	if !errors.As(target, &t) {
		return false
	}

	return e.code == t.code
}

// Message returns the message for the errcode e without its code.
func (e *errcode) Message() string {
	return e.msg
}

// Name returns the name of the errcode type.
func (e *errcode) Name() string {
	return name
}

// String returns the text of the errcode e.
func (e *errcode) String() string {
	return e.Error()
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

	panic("not an " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t errcode

	// The errcode type is a cell.
	_ = cell.I(&t)

	// The errcode type is an error.
	_ = error(&t)

	// The errcode type is a stringer.
	_ = common.Stringer(&t)

	// The errcode type has a truth value.
	_ = truth.I(&t)
}
