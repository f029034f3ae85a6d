// Released under an MIT license. See LICENSE.

// Package integer converts a tup cell to an int64 value, if possible.
package integer

import (
	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
	"github.com/michaelmacinnis/tup/internal/common/interface/rational"
)

// Value returns the int64 value for a cell and whether it has one.
func Value(c cell.I) (int64, bool) {
	r, isRational := c.(rational.I)
	if !isRational {
		return 0, false
	}

	br := r.Rat()
	if !br.IsInt() {
		return 0, false
	}

	bi := br.Num()
	if !bi.IsInt64() {
		return 0, false
	}

	return bi.Int64(), true
}
