// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all tup types.
package cell

// I (cell) is the basic unit of storage in tup.
// Containers hold cells by reference; copying a cell copies the handle.
type I interface {
	Equal(c I) bool
	Name() string
}
