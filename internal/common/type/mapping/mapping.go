// Released under an MIT license. See LICENSE.

// Package mapping provides tup's string to value mapping type.
package mapping

import (
	"strings"
	"sync"

	"github.com/michaelmacinnis/adapted"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
	"github.com/michaelmacinnis/tup/internal/common/interface/literal"
	"github.com/michaelmacinnis/tup/internal/common/interface/truth"
)

const name = "mapping"

// T (mapping) maps strings to values.
type T struct {
	sync.RWMutex
	m map[string]cell.I
}

type mapping = T

// New creates a new, empty mapping.
func New() *mapping {
	return &mapping{m: map[string]cell.I{}}
}

// Bool returns the boolean value of the mapping m. The empty mapping is false.
func (m *mapping) Bool() bool {
	return m.Size() != 0
}

// Del frees the key k from any association in the mapping m.
func (m *mapping) Del(k string) bool {
	m.Lock()
	defer m.Unlock()

	_, ok := m.m[k]
	if !ok {
		return false
	}

	delete(m.m, k)

	return true
}

// Equal returns true if c is a mapping with the same keys and equal values.
func (m *mapping) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	o := To(c)
	if o == m {
		return true
	}

	keys := m.Keys()
	if len(keys) != o.Size() {
		return false
	}

	for _, k := range keys {
		a, _ := m.Get(k)

		b, ok := o.Get(k)
		if !ok || !a.Equal(b) {
			return false
		}
	}

	return true
}

// Get retrieves the value associated with the key k in the mapping m.
func (m *mapping) Get(k string) (cell.I, bool) {
	m.RLock()
	defer m.RUnlock()

	c, ok := m.m[k]

	return c, ok
}

// Keys returns the keys of the mapping m in sorted order.
func (m *mapping) Keys() []string {
	m.RLock()
	defer m.RUnlock()

	keys := maps.Keys(m.m)
	slices.Sort(keys)

	return keys
}

// Literal returns the literal representation of the mapping m.
func (m *mapping) Literal() string {
	keys := m.Keys()

	entries := make([]string, 0, len(keys))

	for _, k := range keys {
		v, _ := m.Get(k)
		entries = append(entries, adapted.CanonicalString(k)+": "+literal.String(v))
	}

	return "{" + strings.Join(entries, ", ") + "}"
}

// Name returns the name of the mapping type.
func (m *mapping) Name() string {
	return name
}

// Set associates the key k with the cell v in the mapping m.
func (m *mapping) Set(k string, v cell.I) {
	m.Lock()
	defer m.Unlock()

	m.m[k] = v
}

// Size returns the number of entries in the mapping m.
func (m *mapping) Size() int {
	m.RLock()
	defer m.RUnlock()

	return len(m.m)
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t mapping

	// The mapping type is a cell.
	_ = cell.I(&t)

	// The mapping type has a literal representation.
	_ = literal.I(&t)

	// The mapping type has a truth value.
	_ = truth.I(&t)
}
