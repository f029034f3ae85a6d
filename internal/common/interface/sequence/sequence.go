// Released under an MIT license. See LICENSE.

// Package sequence defines the interface for tup's ordered, indexable containers.
package sequence

import (
	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
)

// I (sequence) is an ordered collection of cells indexed from zero.
type I interface {
	Length() int
	Get(i int) cell.I
}

// Equal returns true if a and b have the same length and equal elements.
func Equal(a, b I) bool {
	n := a.Length()
	if n != b.Length() {
		return false
	}

	for i := 0; i < n; i++ {
		if !a.Get(i).Equal(b.Get(i)) {
			return false
		}
	}

	return true
}

// Literal returns the elements of s as literals separated by commas.
func Literal(s I, str func(cell.I) string) string {
	l := ""

	n := s.Length()
	for i := 0; i < n; i++ {
		if i > 0 {
			l += ", "
		}

		l += str(s.Get(i))
	}

	return l
}
