// Released under an MIT license. See LICENSE.

// Package options parses tup's command line.
package options

import (
	"fmt"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"

	"github.com/michaelmacinnis/tup/internal/system/logger"
)

// Version is tup's version.
const Version = "0.1.0"

const usage = `tup

Usage:
  tup [-d] [-l LIMIT] SCRIPT
  tup [-d] [-l LIMIT] -c COMMAND
  tup [-di] [-l LIMIT]
  tup -h
  tup -v

Arguments:
  SCRIPT     Path to tup script.

Options:
  -c, --command=COMMAND  Evaluate the specified command.
  -d, --debug            Log each builtin call.
  -i, --interactive      Invert interactive mode.
  -l, --limit=LIMIT      Longest list to_tuple converts [default: 0].
  -h, --help             Display this help.
  -v, --version          Print tup version.

If tup's stdin is a TTY, and tup was invoked with no non-option operands,
interactive features are enabled. Otherwise, these features are disabled.
`

// T (options) holds the settings derived from the command line.
type T struct {
	Command     string
	Debug       bool
	Interactive bool
	Limit       int64 // Zero leaves only tuple.MaxLength.
	Script      string
}

// Parse parses argv (without the program name).
// Help and version requests print and exit, as docopt does by default.
func Parse(argv []string) (*T, error) {
	p := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	return parse(p, argv, isatty.IsTerminal(os.Stdin.Fd()))
}

func parse(p *docopt.Parser, argv []string, terminal bool) (*T, error) {
	opts, err := p.ParseArgs(usage, argv, "tup "+Version)
	if err != nil {
		return nil, err
	}

	return fromOpts(opts, terminal)
}

func fromOpts(opts docopt.Opts, terminal bool) (*T, error) {
	t := &T{}

	limit, err := opts.Int("--limit")
	if err != nil || limit < 0 {
		return nil, fmt.Errorf("limit must be a non-negative integer, got %v", opts["--limit"])
	}

	t.Limit = int64(limit)

	t.Command, _ = opts.String("--command")
	t.Script, _ = opts.String("SCRIPT")
	t.Debug, _ = opts.Bool("--debug")

	if t.Command == "" && t.Script == "" {
		t.Interactive = terminal
	}

	invert, _ := opts.Bool("--interactive")
	t.Interactive = t.Interactive != invert

	return t, nil
}

// Level returns the log level for the options t.
func (t *T) Level() string {
	if t.Debug {
		return logger.DebugLevelStr
	}

	return logger.InfoLevelStr
}
