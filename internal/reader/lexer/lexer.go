// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the tup language.
//
// The tup lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
//
// Scanning is incremental. When the lexer reaches the end of the text it has
// been given in the middle of a token, it waits for more text to be passed to
// Scan and resumes where it left off.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/tup/internal/common/struct/loc"
	"github.com/michaelmacinnis/tup/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	runes int      // Runes scanned on the current line.
	saved action   // Escaped action.
	state action   // Current action.

	source loc.T

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = skipWhitespace

	return l
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Pending returns true if the lexer holds text it has not yet turned into tokens.
func (l *T) Pending() bool {
	return l.first < len(l.bytes)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		l.gather()
		if len(l.bytes) == 0 {
			return nil
		}

		select {
		case t := <-l.tokens:
			return t
		default:
			state := l.state(l)
			if state != nil {
				l.state = state
			} else {
				close(l.tokens)
			}
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		// Because we update lines here, if we emit a newline
		// it will be reported as being part of the next line.
		// We fix this when emitting the newline.
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	source := l.source
	if c == '\n' {
		// Report newline as part of previous line.
		source.Line--
	}

	l.tokens <- token.New(c, v, &source)
	l.skip()
}

func (l *T) escape(escaped, a action) action {
	l.saved = escaped
	return a
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	length := len(l.bytes)
	bytes := strings.Join(l.queue, "")

	if length > 0 && l.first < length {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	} else {
		l.source.Char = 1
		l.runes = 1
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
	l.tokens = make(chan *token.T, 16)
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}
	return token.Class(r), w
}

func (l *T) resume() action {
	resumed := l.saved
	l.saved = nil
	return resumed
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

// T states.

func afterDollar(l *T) action {
	r, w := l.peek()

	switch r {
	case eof:
		return nil
	case '\'':
		l.accept(r, w)
		return scanDollarSingleQuoted
	}

	l.emit(token.Error, l.Text())

	return skipWhitespace
}

func escapeNextCharacter(l *T) action {
	r, w := l.peek()
	if r == eof {
		return nil
	}

	l.accept(r, w)

	return l.resume()
}

func scanDollarSingleQuoted(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\'':
			l.accept(r, w)
			l.emit(token.DollarSingleQuoted, l.Text())
			return skipWhitespace
		case '\\':
			l.accept(r, w)
			return l.escape(scanDollarSingleQuoted, escapeNextCharacter)
		}

		l.accept(r, w)
	}
}

func scanDoubleQuoted(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '"':
			l.accept(r, w)
			l.emit(token.DoubleQuoted, l.Text())
			return skipWhitespace
		case '\\':
			l.accept(r, w)
			return l.escape(scanDoubleQuoted, escapeNextCharacter)
		}

		l.accept(r, w)
	}
}

func scanSingleQuoted(l *T) action {
	for {
		r, w := l.peek()
		if r == eof {
			return nil
		}

		l.accept(r, w)

		if r == '\'' {
			l.emit(token.SingleQuoted, l.Text())
			return skipWhitespace
		}
	}
}

// Numbers and symbols are made of the same characters.
// A word that starts like a number is a number.
func scanWord(l *T) action {
	for {
		r, w := l.peek()

		if r == eof {
			return nil
		}

		if !isWordRune(r) {
			break
		}

		l.accept(r, w)
	}

	text := l.Text()
	if isNumber(text) {
		l.emit(token.Number, text)
	} else {
		l.emit(token.Symbol, text)
	}

	return skipWhitespace
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\n':
			l.skip()
			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\t', '\r', ' ':
			l.accept(r, w)
			l.skip()
			continue
		case '\n', ',', '(', ')', '[', ']':
			l.accept(r, w)
			l.emit(r, l.Text())
			return skipWhitespace
		case '#':
			l.accept(r, w)
			return skipComment
		case '"':
			l.accept(r, w)
			return scanDoubleQuoted
		case '$':
			l.accept(r, w)
			return afterDollar
		case '\'':
			l.accept(r, w)
			return scanSingleQuoted
		}

		if isWordRune(r) {
			return scanWord
		}

		l.accept(r, w)
		l.emit(token.Error, l.Text())

		return skipWhitespace
	}
}

func isNumber(s string) bool {
	r, w := utf8.DecodeRuneInString(s)
	if r == '+' || r == '-' || r == '.' {
		r, _ = utf8.DecodeRuneInString(s[w:])
	}

	return r >= '0' && r <= '9'
}

func isWordRune(r token.Class) bool {
	switch r {
	case '!', '%', '*', '+', '-', '.', '/', ':', '=', '?', '@', '_':
		return true
	}

	return unicode.IsLetter(rune(r)) || unicode.IsDigit(rune(r))
}
