// Released under an MIT license. See LICENSE.

// Package commands provides tup's builtins.
package commands

import (
	"github.com/michaelmacinnis/tup/internal/engine/native"
)

// Builtins returns the implementation of every builtin by name.
func Builtins() map[string]native.Impl {
	return map[string]native.Impl{
		"append":   appendBuiltin,
		"bool":     truthValue,
		"delete":   deleteKey,
		"get":      get,
		"keys":     keys,
		"length":   length,
		"list":     makeList,
		"mapping":  makeMapping,
		"to_tuple": toTuple,
		"type":     typeName,
	}
}
