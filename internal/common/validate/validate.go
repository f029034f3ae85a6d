// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to builtins.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
	"github.com/michaelmacinnis/tup/internal/common/type/errcode"
)

// Variadic returns the first max arguments in actual and the rest.
// At least min arguments must be passed.
func Variadic(actual []cell.I, min, max int) ([]cell.I, []cell.I, error) {
	if len(actual) < min {
		s := Count(min, "argument", "s")

		return nil, nil, errcode.Errorf(
			errcode.ArgumentCount, "expected %s, passed %d", s, len(actual),
		)
	}

	if len(actual) < max {
		max = len(actual)
	}

	return actual[:max], actual[max:], nil
}

// Fixed returns actual if it holds between min and max arguments.
func Fixed(actual []cell.I, min, max int) ([]cell.I, error) {
	expected, rest, err := Variadic(actual, min, max)
	if err != nil {
		return nil, err
	}

	if len(rest) != 0 {
		s := Count(max, "argument", "s")
		if min != max {
			s = fmt.Sprintf("%d to %s", min, s)
		}

		return nil, errcode.Errorf(
			errcode.ArgumentCount, "expected %s, passed %d", s, len(actual),
		)
	}

	return expected, nil
}

// Count returns n followed by label, pluralized with p if n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
