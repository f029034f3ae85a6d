/*
Tup is a small interpreter for list and tuple values. It exists to host the
to_tuple builtin, which converts a list into a new tuple holding the same
elements in the same order:

    > to_tuple [1, 2, 3]
    (1, 2, 3)
    > to_tuple []
    ()
    > to_tuple 42
    error: to_tuple: type mismatch: expected list, passed number

The -l option bounds the length of list to_tuple accepts. Longer lists fail
with a capacity exceeded error.

Other builtins: append, bool, delete, get, keys, length, list, mapping, type.

Tup is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/michaelmacinnis/tup/internal/engine"
	"github.com/michaelmacinnis/tup/internal/engine/commands"
	"github.com/michaelmacinnis/tup/internal/system/logger"
	"github.com/michaelmacinnis/tup/internal/system/options"
	"github.com/michaelmacinnis/tup/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	opts, err := options.Parse(argv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 2
	}

	log, err := logger.New("tup", opts.Level())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 2
	}

	defer log.Sync() //nolint:errcheck

	e := engine.New(log)

	if opts.Limit > 0 {
		e.Builtins().Register("to_tuple", commands.Converter{Limit: opts.Limit}.Builtin)
	}

	log.Debugw("starting",
		"interactive", opts.Interactive,
		"limit", opts.Limit,
		"script", opts.Script,
		"builtins", e.Builtins().Names(),
	)

	switch {
	case opts.Command != "":
		err = ui.Source(e, "-c", strings.NewReader(opts.Command), os.Stdout, os.Stderr)
	case opts.Script != "":
		err = source(e, opts.Script)
	case opts.Interactive:
		err = ui.Run(e, e.Builtins().Names())
	default:
		err = ui.Source(e, "stdin", os.Stdin, os.Stdout, os.Stderr)
	}

	if err != nil {
		log.Debugw("exiting", "error", err)

		return 1
	}

	return 0
}

func source(e ui.Evaluator, path string) error {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)

		return err
	}
	defer f.Close()

	return ui.Source(e, path, f, os.Stdout, os.Stderr)
}
