// Released under an MIT license. See LICENSE.

package commands

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
	"github.com/michaelmacinnis/tup/internal/common/interface/literal"
	"github.com/michaelmacinnis/tup/internal/common/type/boolean"
	"github.com/michaelmacinnis/tup/internal/common/type/errcode"
	"github.com/michaelmacinnis/tup/internal/common/type/list"
	"github.com/michaelmacinnis/tup/internal/common/type/num"
	"github.com/michaelmacinnis/tup/internal/common/type/str"
	"github.com/michaelmacinnis/tup/internal/common/type/tuple"
)

func TestAppend(t *testing.T) {
	l := list.New(num.Int(1))

	v, err := appendBuiltin([]cell.I{l, num.Int(2), num.Int(3)})
	assert.NilError(t, err)
	assert.Assert(t, v == cell.I(l))
	assert.Equal(t, l.Length(), 3)

	_, err = appendBuiltin([]cell.I{tuple.New(), num.Int(1)})
	assert.Equal(t, errcode.Of(err), errcode.TypeMismatch)
}

func TestGet(t *testing.T) {
	a, b := str.New("a"), str.New("b")

	for _, s := range []cell.I{list.New(a, b), tuple.New(a, b)} {
		v, err := get([]cell.I{s, num.Int(0)})
		assert.NilError(t, err)
		assert.Assert(t, v == a)

		v, err = get([]cell.I{s, num.Int(-1)})
		assert.NilError(t, err)
		assert.Assert(t, v == b)

		_, err = get([]cell.I{s, num.Int(2)})
		assert.Equal(t, errcode.Of(err), errcode.IndexRange)
		assert.Error(t, err, "index out of range: index 2, length 2")

		dflt := str.New("default")

		v, err = get([]cell.I{s, num.Int(-3), dflt})
		assert.NilError(t, err)
		assert.Assert(t, v == dflt)
	}

	_, err := get([]cell.I{list.New(), num.New("1/2")})
	assert.Equal(t, errcode.Of(err), errcode.TypeMismatch)

	_, err = get([]cell.I{num.Int(7), num.Int(0)})
	assert.Equal(t, errcode.Of(err), errcode.TypeMismatch)
}

func TestLength(t *testing.T) {
	v, err := length([]cell.I{list.New(num.Int(1), num.Int(2))})
	assert.NilError(t, err)
	assert.Assert(t, v.Equal(num.Int(2)))

	v, err = length([]cell.I{tuple.New()})
	assert.NilError(t, err)
	assert.Assert(t, v.Equal(num.Int(0)))

	_, err = length([]cell.I{str.New("abc")})
	assert.Equal(t, errcode.Of(err), errcode.TypeMismatch)
}

func TestMakeListAndType(t *testing.T) {
	v, err := makeList([]cell.I{num.Int(1), num.Int(2)})
	assert.NilError(t, err)
	assert.Assert(t, v.Equal(list.New(num.Int(1), num.Int(2))))

	for c, expected := range map[cell.I]string{
		list.New():  "list",
		tuple.New(): "tuple",
		num.Int(1):  "number",
		str.New(""): "string",
	} {
		v, err := typeName([]cell.I{c})
		assert.NilError(t, err)
		assert.Assert(t, v.Equal(str.New(expected)))
	}
}

func TestTruthValue(t *testing.T) {
	for c, expected := range map[cell.I]bool{
		list.New():           false,
		list.New(num.Int(0)): true,
		tuple.New():          false,
		num.Int(0):           false,
		num.New("1/2"):       true,
		str.New(""):          false,
		str.New("false"):     true,
		boolean.True:         true,
		boolean.False:        false,
	} {
		v, err := truthValue([]cell.I{c})
		assert.NilError(t, err)
		assert.Assert(t, v == boolean.Bool(expected), "%s", literal.String(c))
	}

	_, err := truthValue([]cell.I{})
	assert.Equal(t, errcode.Of(err), errcode.ArgumentCount)
}
