// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the tup language.
package parser

import (
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/tup/internal/common"
	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
	"github.com/michaelmacinnis/tup/internal/common/struct/token"
	"github.com/michaelmacinnis/tup/internal/common/type/boolean"
	"github.com/michaelmacinnis/tup/internal/common/type/call"
	"github.com/michaelmacinnis/tup/internal/common/type/errcode"
	"github.com/michaelmacinnis/tup/internal/common/type/list"
	"github.com/michaelmacinnis/tup/internal/common/type/num"
	"github.com/michaelmacinnis/tup/internal/common/type/str"
	"github.com/michaelmacinnis/tup/internal/common/type/tuple"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	emit  func(cell.I)    // Function to call to emit a parsed line.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of cells.
func New(emit func(cell.I), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Parse consumes tokens and emits cells until there are no more tokens.
// It stops at the first syntax error and returns it.
func (p *T) Parse() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch r := r.(type) {
		case *errcode.T:
			err = r
		case error:
			err = errcode.New(errcode.Syntax, r.Error())
		case string:
			err = errcode.New(errcode.Syntax, r)
		case common.Stringer:
			err = errcode.New(errcode.Syntax, r.String())
		default:
			err = errcode.New(errcode.Syntax, "unexpected error")
		}
	}()

	for t := p.peek(); t != nil; t = p.peek() {
		if t.Is('\n') {
			p.consume()

			continue
		}

		p.emit(p.line())
	}

	return nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) check(c cell.I) cell.I {
	if c == nil {
		p.unexpected()
	}

	return c
}

func (p *T) expect(cs ...token.Class) {
	if p.peek().Is(cs...) {
		p.consume()

		return
	}

	// Make a nice error message.
	n := len(cs)
	e := make([]string, n-1)

	for i, c := range cs[:n-1] {
		e[i] = c.String()
	}

	l := cs[n-1].String()
	if n > 2 { //nolint:gomnd
		l = ", or " + l
	} else if n > 1 {
		l = " or " + l
	}

	l = strings.Join(e, ", ") + l

	panic(at(p.peek(), "expected "+l+" got "+describe(p.peek())))
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

func (p *T) unexpected() {
	panic(at(p.peek(), "unexpected "+describe(p.peek())))
}

// T state functions.

// <line> ::= (<call> | <value>) '\n' .
func (p *T) line() cell.I {
	var c cell.I

	if isBuiltin(p.peek()) {
		c = p.call()
	} else {
		c = p.check(p.value())
	}

	p.expect('\n')

	return c
}

// <call> ::= Symbol <value>* .
func (p *T) call() cell.I {
	t := p.consume()

	args := []cell.I{}
	for v := p.value(); v != nil; v = p.value() {
		args = append(args, v)
	}

	return call.New(t.Source(), t.Value(), args...)
}

// <list> ::= '[' (<value> (',' <value>)* ','?)? ']' .
func (p *T) list() cell.I {
	p.expect('[')

	elements := p.elements(']')

	p.expect(']')

	return list.New(elements...)
}

// <parenthesized> ::= '(' ')'
//
//	| '(' <call> ')'
//	| '(' <value> ')'
//	| '(' <value> ',' (<value> (',' <value>)* ','?)? ')' .
func (p *T) parenthesized() cell.I {
	p.expect('(')

	if p.peek().Is(')') {
		p.consume()

		return tuple.New()
	}

	if isBuiltin(p.peek()) {
		c := p.call()

		p.expect(')')

		return c
	}

	t := p.peek()

	c := p.check(p.value())

	if !p.peek().Is(',') {
		p.expect(')')

		return c
	}

	if call.Is(c) {
		panic(at(t, "a call cannot be an element"))
	}

	p.consume()

	elements := append([]cell.I{c}, p.elements(')')...)

	p.expect(')')

	return tuple.New(elements...)
}

// <elements> ::= (<value> (',' <value>)* ','?)? .
func (p *T) elements(closing token.Class) []cell.I {
	elements := []cell.I{}

	for !p.peek().Is(closing) {
		t := p.peek()

		v := p.check(p.value())
		if call.Is(v) {
			panic(at(t, "a call cannot be an element"))
		}

		elements = append(elements, v)

		if !p.peek().Is(',') {
			break
		}

		p.consume()
	}

	return elements
}

// <value> ::= Number | <string> | 'true' | 'false' | <list> | <parenthesized> .
func (p *T) value() cell.I {
	t := p.peek()

	switch {
	case t.Is(token.Number):
		p.consume()

		n, err := num.Parse(t.Value())
		if err != nil {
			panic(at(t, "'"+t.Value()+"' is not a valid number"))
		}

		return n
	case t.Is(token.DollarSingleQuoted, token.DoubleQuoted, token.SingleQuoted):
		p.consume()

		return text(t)
	case t.Is(token.Symbol):
		b, ok := boolean.New(t.Value())
		if ok {
			p.consume()
		}

		return b
	case t.Is('['):
		return p.list()
	case t.Is('('):
		return p.parenthesized()
	case t.Is(token.Error):
		p.unexpected()
	}

	return nil
}

func at(t *token.T, msg string) *errcode.T {
	if t == nil {
		return errcode.New(errcode.Syntax, msg)
	}

	return errcode.New(errcode.Syntax, t.Source().String()+": "+msg)
}

func describe(t *token.T) string {
	switch {
	case t == nil:
		return "end of input"
	case t.Is('\n'):
		return "newline"
	}

	return "'" + t.Value() + "'"
}

func isBuiltin(t *token.T) bool {
	if !t.Is(token.Symbol) {
		return false
	}

	_, ok := boolean.New(t.Value())

	return !ok
}

func text(t *token.T) cell.I {
	s := t.Value()

	if t.Is(token.SingleQuoted) {
		return str.New(s[1 : len(s)-1])
	}

	if t.Is(token.DollarSingleQuoted) {
		s = s[1:]
	}

	v, err := adapted.ActualBytes(s[1 : len(s)-1])
	if err != nil {
		panic(at(t, err.Error()))
	}

	return str.New(v)
}
