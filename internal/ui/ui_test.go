// Released under an MIT license. See LICENSE.

package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/michaelmacinnis/tup/internal/common/type/errcode"
	"github.com/michaelmacinnis/tup/internal/engine"
)

func TestSource(t *testing.T) {
	var out, errs bytes.Buffer

	script := strings.Join([]string{
		"to_tuple [1, 2, 3]",
		"to_tuple []",
		"to_tuple [[1],",
		"  'two']",
		"length (to_tuple (append [1] 2 3))",
		"",
	}, "\n")

	err := Source(engine.New(nil), "script", strings.NewReader(script), &out, &errs)
	assert.NilError(t, err)
	assert.Equal(t, errs.String(), "")
	assert.Equal(t, out.String(), "(1, 2, 3)\n()\n([1], $'two')\n3\n")
}

func TestSourceStopsAtFirstError(t *testing.T) {
	var out, errs bytes.Buffer

	script := "to_tuple 42\nto_tuple []\n"

	err := Source(engine.New(nil), "script", strings.NewReader(script), &out, &errs)
	assert.Equal(t, errcode.Of(err), errcode.TypeMismatch)
	assert.Equal(t, out.String(), "")
	assert.Equal(t, errs.String(),
		"error: to_tuple: type mismatch: expected list, passed number\n")
}

func TestSourceUnexpectedEnd(t *testing.T) {
	var out, errs bytes.Buffer

	err := Source(engine.New(nil), "script", strings.NewReader("to_tuple [1,"), &out, &errs)
	assert.Equal(t, errcode.Of(err), errcode.Syntax)
	assert.ErrorContains(t, err, "unexpected end of input")
}

func TestSourceLongLine(t *testing.T) {
	var out, errs bytes.Buffer

	n := 30000
	script := "length (to_tuple [" + strings.Repeat("1, ", n) + "])\n"
	assert.Assert(t, len(script) > 64*1024)

	err := Source(engine.New(nil), "script", strings.NewReader(script), &out, &errs)
	assert.NilError(t, err)
	assert.Equal(t, errs.String(), "")
	assert.Equal(t, out.String(), "30000\n")
}

func TestSourceLastLineWithoutNewline(t *testing.T) {
	var out, errs bytes.Buffer

	err := Source(engine.New(nil), "script", strings.NewReader("to_tuple [1]"), &out, &errs)
	assert.NilError(t, err)
	assert.Equal(t, out.String(), "(1,)\n")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestSourceReadErrorIsReported(t *testing.T) {
	var out, errs bytes.Buffer

	err := Source(engine.New(nil), "script", failingReader{}, &out, &errs)
	assert.Error(t, err, "device gone")
	assert.Equal(t, errs.String(), "error: device gone\n")
}

func TestCompleter(t *testing.T) {
	complete := completer([]string{"append", "length", "list", "to_tuple"})

	head, cs, tail := complete("length (l", 9)
	assert.Equal(t, head, "length (")
	assert.DeepEqual(t, cs, []string{"length ", "list "})
	assert.Equal(t, tail, "")

	head, cs, _ = complete("to", 2)
	assert.Equal(t, head, "")
	assert.DeepEqual(t, cs, []string{"to_tuple "})
}
