// Released under an MIT license. See LICENSE.

// Package native provides the calling convention for tup builtins.
//
// A builtin is written as a plain Go function that returns a result or an
// error. The host sees it through Func: the builtin receives its arguments
// and a slot for its result and returns a status code. The slot is written
// only when the status is errcode.OK.
package native

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
	"github.com/michaelmacinnis/tup/internal/common/type/errcode"
)

// Impl is a builtin's implementation.
type Impl func(args []cell.I) (cell.I, error)

// Func is a builtin as seen by the host.
type Func func(args []cell.I, res *cell.I) errcode.Code

// Wrap adapts f to the native calling convention.
// If f fails, res is left unset and the code carried by the error is returned.
func Wrap(f Impl) Func {
	return wrap(f, nil)
}

// wrap is Wrap with detail, when not nil, set to the error behind a failure.
func wrap(f Impl, detail *error) Func {
	return func(args []cell.I, res *cell.I) errcode.Code {
		c, err := f(args)
		if err != nil {
			if detail != nil {
				*detail = err
			}

			return errcode.Of(err)
		}

		*res = c

		return errcode.OK
	}
}

// Table maps names to builtins.
type Table struct {
	fs map[string]Impl
}

// NewTable creates a table holding each builtin in fs.
func NewTable(fs map[string]Impl) *Table {
	t := &Table{fs: map[string]Impl{}}

	for k, f := range fs {
		t.Register(k, f)
	}

	return t
}

// Register adds f to the table t as name, replacing any existing builtin.
func (t *Table) Register(name string, f Impl) {
	t.fs[name] = f
}

// Lookup returns the builtin registered as name in its native form.
func (t *Table) Lookup(name string) (Func, bool) {
	return t.lookup(name, nil)
}

func (t *Table) lookup(name string, detail *error) (Func, bool) {
	f, ok := t.fs[name]
	if !ok {
		return nil, false
	}

	return wrap(f, detail), true
}

// Names returns the sorted names of all registered builtins.
func (t *Table) Names() []string {
	names := maps.Keys(t.fs)
	slices.Sort(names)

	return names
}

// Invoke calls the builtin name using the native calling convention.
func (t *Table) Invoke(name string, args []cell.I, res *cell.I) errcode.Code {
	return t.invoke(name, args, res, nil)
}

// Call invokes the builtin name with args using the native calling convention.
// A status other than errcode.OK is returned as an error carrying that
// status and the builtin's full message.
func (t *Table) Call(name string, args []cell.I) (cell.I, error) {
	var (
		detail error
		res    cell.I
	)

	code := t.invoke(name, args, &res, &detail)
	if code == errcode.OK {
		return res, nil
	}

	if detail == nil {
		detail = errcode.New(code, "")
	}

	return nil, detail
}

func (t *Table) invoke(name string, args []cell.I, res *cell.I, detail *error) errcode.Code {
	f, ok := t.lookup(name, detail)
	if !ok {
		if detail != nil {
			*detail = errcode.Errorf(errcode.UnknownName, "'%s' is not a builtin", name)
		}

		return errcode.UnknownName
	}

	return f(args, res)
}
