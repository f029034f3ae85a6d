// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed tup code.
package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
	"github.com/michaelmacinnis/tup/internal/common/type/call"
	"github.com/michaelmacinnis/tup/internal/common/type/errcode"
	"github.com/michaelmacinnis/tup/internal/engine/commands"
	"github.com/michaelmacinnis/tup/internal/engine/native"
)

// T (engine) is a facade in front of the machinery for evaluating tup code.
type T struct {
	builtins *native.Table
	log      *zap.SugaredLogger
}

// New creates a new T. A nil log discards all messages.
func New(log *zap.SugaredLogger) *T {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &T{
		builtins: native.NewTable(commands.Builtins()),
		log:      log,
	}
}

// Builtins returns the table of builtins used by the engine e.
func (e *T) Builtins() *native.Table {
	return e.builtins
}

// Evaluate returns the value of c.
// A call is evaluated by evaluating its arguments, left to right,
// and passing them to the named builtin. Anything else is its own value.
func (e *T) Evaluate(c cell.I) (cell.I, error) {
	if !call.Is(c) {
		return c, nil
	}

	form := call.To(c)

	args := make([]cell.I, len(form.Args()))
	for i, a := range form.Args() {
		v, err := e.Evaluate(a)
		if err != nil {
			return nil, err
		}

		args[i] = v
	}

	return e.invoke(form, args)
}

func (e *T) invoke(form *call.T, args []cell.I) (v cell.I, err error) {
	name := form.Builtin()

	defer func() {
		fields := []interface{}{
			"builtin", name,
			"arity", len(args),
			"status", errcode.Of(err).String(),
		}

		if src := form.Source(); src != nil {
			fields = append(fields, "source", src.String())
		}

		e.log.Debugw("call", fields...)
	}()

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		v = nil
		err = errcode.Errorf(errcode.TypeMismatch, "%s: %v", name, r)
	}()

	// Call goes through the native calling convention and keeps the message.
	v, err = e.builtins.Call(name, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return v, nil
}
