// Released under an MIT license. See LICENSE.

// Package rational defines the interface for tup's numeric types.
package rational

import (
	"math/big"
)

// I (rational) is anything that can be treated as a rational number in tup.
type I interface {
	Rat() *big.Rat
}
