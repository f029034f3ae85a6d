// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
	"github.com/michaelmacinnis/tup/internal/common/interface/integer"
	"github.com/michaelmacinnis/tup/internal/common/interface/sequence"
	"github.com/michaelmacinnis/tup/internal/common/type/errcode"
	"github.com/michaelmacinnis/tup/internal/common/type/list"
	"github.com/michaelmacinnis/tup/internal/common/type/mapping"
	"github.com/michaelmacinnis/tup/internal/common/type/num"
	"github.com/michaelmacinnis/tup/internal/common/validate"
)

func appendBuiltin(args []cell.I) (cell.I, error) {
	v, rest, err := validate.Variadic(args, 1, 1)
	if err != nil {
		return nil, err
	}

	if !list.Is(v[0]) {
		return nil, errcode.Mismatch(v[0], "list")
	}

	return list.To(v[0]).Append(rest...), nil
}

// get sequence index [default]
// get mapping key [default]
func get(args []cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 3) //nolint:gomnd
	if err != nil {
		return nil, err
	}

	if mapping.Is(v[0]) {
		return lookup(mapping.To(v[0]), v)
	}

	s, ok := v[0].(sequence.I)
	if !ok {
		return nil, errcode.Mismatch(v[0], "sequence")
	}

	i, ok := integer.Value(v[1])
	if !ok {
		return nil, errcode.Mismatch(v[1], "integer")
	}

	length := int64(s.Length())

	j := i
	if j < 0 {
		j = length + j
	}

	if j < 0 || j >= length {
		if len(v) == 3 { //nolint:gomnd
			return v[2], nil
		}

		return nil, errcode.Errorf(
			errcode.IndexRange, "index %d, length %d", i, length,
		)
	}

	return s.Get(int(j)), nil
}

func length(args []cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	if mapping.Is(v[0]) {
		return num.Int(mapping.To(v[0]).Size()), nil
	}

	s, ok := v[0].(sequence.I)
	if !ok {
		return nil, errcode.Mismatch(v[0], "sequence")
	}

	return num.Int(s.Length()), nil
}

func makeList(args []cell.I) (cell.I, error) {
	return list.New(args...), nil
}
