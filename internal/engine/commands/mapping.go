// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
	"github.com/michaelmacinnis/tup/internal/common/type/boolean"
	"github.com/michaelmacinnis/tup/internal/common/type/errcode"
	"github.com/michaelmacinnis/tup/internal/common/type/list"
	"github.com/michaelmacinnis/tup/internal/common/type/mapping"
	"github.com/michaelmacinnis/tup/internal/common/type/str"
	"github.com/michaelmacinnis/tup/internal/common/validate"
)

// delete mapping key
func deleteKey(args []cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2) //nolint:gomnd
	if err != nil {
		return nil, err
	}

	if !mapping.Is(v[0]) {
		return nil, errcode.Mismatch(v[0], "mapping")
	}

	if !str.Is(v[1]) {
		return nil, errcode.Mismatch(v[1], "string")
	}

	return boolean.Bool(mapping.To(v[0]).Del(str.To(v[1]).String())), nil
}

// keys mapping
func keys(args []cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	if !mapping.Is(v[0]) {
		return nil, errcode.Mismatch(v[0], "mapping")
	}

	l := list.New()
	for _, k := range mapping.To(v[0]).Keys() {
		l.Append(str.New(k))
	}

	return l, nil
}

// mapping [key value]...
func makeMapping(args []cell.I) (cell.I, error) {
	if len(args)%2 != 0 {
		return nil, errcode.Errorf(
			errcode.ArgumentCount,
			"expected key value pairs, passed %d arguments", len(args),
		)
	}

	m := mapping.New()

	for i := 0; i < len(args); i += 2 {
		if !str.Is(args[i]) {
			return nil, errcode.Mismatch(args[i], "string")
		}

		m.Set(str.To(args[i]).String(), args[i+1])
	}

	return m, nil
}

func lookup(m *mapping.T, v []cell.I) (cell.I, error) {
	if !str.Is(v[1]) {
		return nil, errcode.Mismatch(v[1], "string")
	}

	k := str.To(v[1]).String()

	c, ok := m.Get(k)
	if ok {
		return c, nil
	}

	if len(v) == 3 { //nolint:gomnd
		return v[2], nil
	}

	return nil, errcode.Errorf(errcode.UnknownName, "no key %s", str.To(v[1]).Literal())
}
