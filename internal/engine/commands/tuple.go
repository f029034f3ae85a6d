// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
	"github.com/michaelmacinnis/tup/internal/common/type/errcode"
	"github.com/michaelmacinnis/tup/internal/common/type/list"
	"github.com/michaelmacinnis/tup/internal/common/type/tuple"
	"github.com/michaelmacinnis/tup/internal/common/validate"
)

// Converter turns lists into tuples.
type Converter struct {
	// Limit is the largest list that can be converted.
	// Zero, or anything above tuple.MaxLength, means tuple.MaxLength.
	Limit int64
}

// ToTuple returns a new tuple holding the elements of the list source.
func ToTuple(source cell.I) (cell.I, error) {
	return Converter{}.Convert(source)
}

// Convert returns a new tuple holding the elements of the list source,
// in order. The elements are shared, not copied, and source is not modified.
// If source is not a list, Convert fails with a TypeMismatch error.
func (c Converter) Convert(source cell.I) (cell.I, error) {
	if !list.Is(source) {
		return nil, errcode.Mismatch(source, "list")
	}

	l := list.To(source)
	n := l.Length()

	limit := c.Limit
	if limit <= 0 || limit > tuple.MaxLength {
		limit = tuple.MaxLength
	}

	if int64(n) > limit {
		return nil, errcode.Errorf(
			errcode.CapacityExceeded, "list of %d elements exceeds limit of %d", n, limit,
		)
	}

	return tuple.Fill(n, l.Get), nil
}

// Builtin is c's conversion as the to_tuple builtin.
func (c Converter) Builtin(args []cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return c.Convert(v[0])
}

func toTuple(args []cell.I) (cell.I, error) {
	return Converter{}.Builtin(args)
}
