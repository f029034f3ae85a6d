// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
	"github.com/michaelmacinnis/tup/internal/common/interface/truth"
	"github.com/michaelmacinnis/tup/internal/common/type/boolean"
	"github.com/michaelmacinnis/tup/internal/common/type/errcode"
	"github.com/michaelmacinnis/tup/internal/common/type/str"
	"github.com/michaelmacinnis/tup/internal/common/validate"
)

// bool value
func truthValue(args []cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	if _, ok := v[0].(truth.I); !ok {
		return nil, errcode.Mismatch(v[0], "truth value")
	}

	return boolean.Bool(truth.Value(v[0])), nil
}

// type value
func typeName(args []cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return str.New(v[0].Name()), nil
}
