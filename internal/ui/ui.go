// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the tup language.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
	"github.com/michaelmacinnis/tup/internal/common/interface/literal"
	"github.com/michaelmacinnis/tup/internal/common/type/errcode"
	"github.com/michaelmacinnis/tup/internal/reader"
	"github.com/michaelmacinnis/tup/internal/system/history"
)

// Evaluator is the interface for things that want to process parsed commands.
type Evaluator interface {
	Evaluate(c cell.I) (cell.I, error)
}

// Evaluate reads text with r and evaluates every complete line with e.
// Results are written to out and errors to errs. The first error is returned.
func Evaluate(e Evaluator, r *reader.T, text string, out, errs io.Writer) error {
	cells, err := r.Scan(text)

	for _, c := range cells {
		v, verr := e.Evaluate(c)
		if verr != nil {
			fmt.Fprintln(errs, "error:", verr)

			return verr
		}

		fmt.Fprintln(out, literal.String(v))
	}

	if err != nil {
		fmt.Fprintln(errs, "error:", err)
	}

	return err
}

// Source evaluates each line read from in, stopping at the first error.
// Lines may be of any length.
func Source(e Evaluator, label string, in io.Reader, out, errs io.Writer) error {
	r := reader.New(label)

	b := bufio.NewReader(in)

	for {
		line, err := b.ReadString('\n')
		if line != "" {
			if !strings.HasSuffix(line, "\n") {
				line += "\n"
			}

			if verr := Evaluate(e, r, line, out, errs); verr != nil {
				return verr
			}
		}

		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			fmt.Fprintln(errs, "error:", err)

			return err
		}
	}

	if r.Incomplete() {
		err := errcode.New(errcode.Syntax, label+": unexpected end of input")
		fmt.Fprintln(errs, "error:", err)

		return err
	}

	return nil
}

// Run launches the interactive UI which sends commands to the Evaluator.
// Words in names are offered as completions.
func Run(e Evaluator, names []string) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(completer(names))

	if err := history.Load(cli.ReadHistory); err != nil {
		fmt.Fprintln(os.Stderr, "error: reading history:", err)
	}

	r := reader.New("tup")

	for {
		prompt := "> "
		if r.Incomplete() {
			prompt = "+ "
		}

		line, err := cli.Prompt(prompt)

		switch {
		case err == nil:
			if strings.TrimSpace(line) != "" {
				cli.AppendHistory(line)
			}
		case errors.Is(err, liner.ErrPromptAborted):
			r = reader.New("tup")

			continue
		case errors.Is(err, io.EOF):
			os.Stdout.Write([]byte("\n")) //nolint:errcheck

			return history.Save(cli.WriteHistory)
		default:
			return err
		}

		// Errors have already been reported. Carry on.
		_ = Evaluate(e, r, line+"\n", os.Stdout, os.Stderr)
	}
}

func completer(names []string) liner.WordCompleter {
	return func(line string, pos int) (head string, cs []string, tail string) {
		head = line[:pos]
		tail = line[pos:]

		start := strings.LastIndexAny(head, " \t([,") + 1

		word := head[start:]
		head = head[:start]

		for _, n := range names {
			if strings.HasPrefix(n, word) {
				cs = append(cs, n+" ")
			}
		}

		return head, cs, tail
	}
}
