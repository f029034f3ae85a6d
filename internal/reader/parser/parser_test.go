// Released under an MIT license. See LICENSE.

package parser

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
	"github.com/michaelmacinnis/tup/internal/common/interface/literal"
	"github.com/michaelmacinnis/tup/internal/common/type/call"
	"github.com/michaelmacinnis/tup/internal/common/type/errcode"
	"github.com/michaelmacinnis/tup/internal/common/type/list"
	"github.com/michaelmacinnis/tup/internal/common/type/num"
	"github.com/michaelmacinnis/tup/internal/common/type/str"
	"github.com/michaelmacinnis/tup/internal/common/type/tuple"
	"github.com/michaelmacinnis/tup/internal/reader/lexer"
)

func parse(t *testing.T, s string) ([]cell.I, error) {
	t.Helper()

	l := lexer.New("test")

	l.Scan(s)

	var cells []cell.I

	err := New(func(c cell.I) {
		cells = append(cells, c)
	}, l.Token).Parse()

	return cells, err
}

// check parses s, prints what was parsed and then parses that again.
func check(t *testing.T, s string) {
	t.Helper()

	parsed, err := parse(t, s)
	assert.NilError(t, err)

	p := ""
	for _, c := range parsed {
		p += literal.String(c) + "\n"
	}

	reparsed, err := parse(t, p)
	assert.NilError(t, err)

	r := ""
	for _, c := range reparsed {
		r += literal.String(c) + "\n"
	}

	if p != r {
		t.Fatalf("Parsed (%s) and reparsed (%s) do not match", p, r)
	}
}

func TestReparse(t *testing.T) {
	for _, s := range []string{
		"to_tuple [1, 2, 3]\n",
		"to_tuple []\n",
		"[(1,), (), (1, 2)]\n",
		"length (to_tuple [true, false])\n",
		"get [\"a\\tb\", 'c', $'d\\'e'] -1\n",
		"list 1/2 -3 4.5\n",
		"# comment only\n\n",
	} {
		check(t, s)
	}
}

func TestCall(t *testing.T) {
	parsed, err := parse(t, "to_tuple [1, 2, 3]\n")
	assert.NilError(t, err)
	assert.Equal(t, len(parsed), 1)

	c := call.To(parsed[0])
	assert.Equal(t, c.Builtin(), "to_tuple")
	assert.Equal(t, c.Source().String(), "test:1:1")
	assert.Equal(t, len(c.Args()), 1)
	assert.Assert(t, c.Args()[0].Equal(list.New(num.Int(1), num.Int(2), num.Int(3))))
}

func TestNestedCall(t *testing.T) {
	parsed, err := parse(t, "length (to_tuple [])\n")
	assert.NilError(t, err)

	outer := call.To(parsed[0])
	inner := call.To(outer.Args()[0])
	assert.Equal(t, inner.Builtin(), "to_tuple")
	assert.Assert(t, inner.Args()[0].Equal(list.New()))
}

func TestTuples(t *testing.T) {
	parsed, err := parse(t, "()\n(1)\n(1,)\n(1, 'a',)\n")
	assert.NilError(t, err)
	assert.Equal(t, len(parsed), 4)

	assert.Assert(t, parsed[0].Equal(tuple.New()))
	assert.Assert(t, parsed[1].Equal(num.Int(1)))
	assert.Assert(t, parsed[2].Equal(tuple.New(num.Int(1))))
	assert.Assert(t, parsed[3].Equal(tuple.New(num.Int(1), str.New("a"))))
}

func TestLiteralsRoundTrip(t *testing.T) {
	parsed, err := parse(t, "[1, [2, (3,)], \"x\\ny\"]\n")
	assert.NilError(t, err)

	assert.Equal(t, literal.String(parsed[0]), `[1, [2, (3,)], $'x\ny']`)
}

func TestSyntaxErrors(t *testing.T) {
	for s, msg := range map[string]string{
		"[1, 2\n":        "syntax: test:1:6: expected ']' got newline",
		"to_tuple foo\n": "syntax: test:1:10: expected newline got 'foo'",
		"[1]]\n":         "syntax: test:1:4: expected newline got ']'",
		"(1 2)\n":        "syntax: test:1:4: expected ')' got '2'",
		"[,]\n":          "syntax: test:1:2: unexpected ','",
		"1/0\n":          "syntax: test:1:1: '1/0' is not a valid number",
		";\n":            "syntax: test:1:1: unexpected ';'",
	} {
		_, err := parse(t, s)
		assert.Equal(t, errcode.Of(err), errcode.Syntax, s)
		assert.Error(t, err, msg, s)
	}
}

func TestCallAsElement(t *testing.T) {
	for _, s := range []string{
		"[(list)]\n",
		"((list), 1)\n",
	} {
		_, err := parse(t, s)
		assert.ErrorContains(t, err, "a call cannot be an element", s)
	}
}
