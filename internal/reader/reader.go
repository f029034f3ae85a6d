// Released under an MIT license. See LICENSE.

// Package reader encapsulates the tup lexer and parser.
package reader

import (
	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
	"github.com/michaelmacinnis/tup/internal/common/struct/token"
	"github.com/michaelmacinnis/tup/internal/reader/lexer"
	"github.com/michaelmacinnis/tup/internal/reader/parser"
)

// T (reader) turns lines of text into cells.
// A line that leaves a bracket or parenthesis open continues on the next line.
type T struct {
	depth   int
	pending []*token.T
	s       *lexer.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &T{s: lexer.New(name)}
}

// Incomplete returns true if the reader is waiting for the rest of a line.
func (r *reader) Incomplete() bool {
	return len(r.pending) != 0 || r.s.Pending()
}

// Scan reads the line and returns the cells for every complete line read.
// If Scan encounters an error it returns the cells read before the error
// and the error. The line with the error is discarded. Any text after it
// is read by the next call to Scan.
func (r *reader) Scan(line string) ([]cell.I, error) {
	r.s.Scan(line)

	var cells []cell.I

	for t := r.s.Token(); t != nil; t = r.s.Token() {
		switch {
		case t.Is('(', '['):
			r.depth++
		case t.Is(')', ']'):
			r.depth--
		case t.Is('\n') && r.depth > 0:
			continue
		}

		r.pending = append(r.pending, t)

		if !t.Is('\n') {
			continue
		}

		parsed, err := r.parse()
		cells = append(cells, parsed...)

		if err != nil {
			return cells, err
		}
	}

	return cells, nil
}

func (r *reader) parse() ([]cell.I, error) {
	tokens := r.pending

	r.depth = 0
	r.pending = nil

	var cells []cell.I

	err := parser.New(func(c cell.I) {
		cells = append(cells, c)
	}, func() *token.T {
		if len(tokens) == 0 {
			return nil
		}

		t := tokens[0]
		tokens = tokens[1:]

		return t
	}).Parse()

	return cells, err
}
