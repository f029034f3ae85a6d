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
)

func TestMapping(t *testing.T) {
	m, err := makeMapping([]cell.I{str.New("b"), num.Int(2), str.New("a"), num.Int(1)})
	assert.NilError(t, err)
	assert.Equal(t, literal.String(m), "{$'a': 1, $'b': 2}")

	v, err := get([]cell.I{m, str.New("a")})
	assert.NilError(t, err)
	assert.Assert(t, v.Equal(num.Int(1)))

	_, err = get([]cell.I{m, str.New("c")})
	assert.Equal(t, errcode.Of(err), errcode.UnknownName)

	dflt := num.Int(0)

	v, err = get([]cell.I{m, str.New("c"), dflt})
	assert.NilError(t, err)
	assert.Assert(t, v == dflt)

	v, err = keys([]cell.I{m})
	assert.NilError(t, err)
	assert.Equal(t, literal.String(v), "[$'a', $'b']")

	v, err = length([]cell.I{m})
	assert.NilError(t, err)
	assert.Assert(t, v.Equal(num.Int(2)))
}

func TestDeleteKey(t *testing.T) {
	m, err := makeMapping([]cell.I{str.New("a"), num.Int(1), str.New("b"), num.Int(2)})
	assert.NilError(t, err)

	v, err := deleteKey([]cell.I{m, str.New("a")})
	assert.NilError(t, err)
	assert.Assert(t, v == boolean.True)

	v, err = deleteKey([]cell.I{m, str.New("a")})
	assert.NilError(t, err)
	assert.Assert(t, v == boolean.False)

	assert.Equal(t, literal.String(m), "{$'b': 2}")

	_, err = deleteKey([]cell.I{m, num.Int(1)})
	assert.Equal(t, errcode.Of(err), errcode.TypeMismatch)

	_, err = deleteKey([]cell.I{list.New(), str.New("a")})
	assert.Equal(t, errcode.Of(err), errcode.TypeMismatch)

	_, err = deleteKey([]cell.I{m})
	assert.Equal(t, errcode.Of(err), errcode.ArgumentCount)
}

func TestMappingErrors(t *testing.T) {
	_, err := makeMapping([]cell.I{str.New("a")})
	assert.Equal(t, errcode.Of(err), errcode.ArgumentCount)

	_, err = makeMapping([]cell.I{num.Int(1), num.Int(2)})
	assert.Equal(t, errcode.Of(err), errcode.TypeMismatch)

	_, err = keys([]cell.I{num.Int(1)})
	assert.Equal(t, errcode.Of(err), errcode.TypeMismatch)
}

func TestToTupleRejectsMapping(t *testing.T) {
	m, err := makeMapping([]cell.I{str.New("a"), num.Int(1)})
	assert.NilError(t, err)

	v, err := ToTuple(m)
	assert.Assert(t, v == nil)
	assert.Equal(t, errcode.Of(err), errcode.TypeMismatch)
	assert.Error(t, err, "type mismatch: expected list, passed mapping")
}
