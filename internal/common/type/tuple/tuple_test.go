// Released under an MIT license. See LICENSE.

package tuple

import (
	"testing"

	"github.com/michaelmacinnis/tup/internal/common/interface/cell"
	"github.com/michaelmacinnis/tup/internal/common/type/list"
	"github.com/michaelmacinnis/tup/internal/common/type/num"
)

func TestFillOrder(t *testing.T) {
	var order []int

	f := Fill(4, func(i int) cell.I {
		order = append(order, i)

		return num.Int(i * i)
	})

	for i, v := range order {
		if i != v {
			t.Fatalf("expected index %d to be filled in order, got %v", i, order)
		}
	}

	if f.Literal() != "(0, 1, 4, 9)" {
		t.Fatalf("unexpected tuple %s", f.Literal())
	}
}

func TestLiteral(t *testing.T) {
	for expected, v := range map[string]*T{
		"()":       New(),
		"(1,)":     New(num.Int(1)),
		"(1, 2)":   New(num.Int(1), num.Int(2)),
		"([], ())": New(list.New(), New()),
	} {
		if v.Literal() != expected {
			t.Fatalf("expected %s, got %s", expected, v.Literal())
		}
	}
}

func TestEqual(t *testing.T) {
	a := New(num.Int(1), num.Int(2))

	if !a.Equal(New(num.Int(1), num.Int(2))) {
		t.Fail()
	}

	if a.Equal(New(num.Int(1))) {
		t.Fail()
	}

	if a.Equal(list.New(num.Int(1), num.Int(2))) {
		t.Fatal("a tuple should never equal a list")
	}
}

func TestNewDoesNotRetainSlice(t *testing.T) {
	v := []cell.I{num.Int(1)}
	tup := New(v...)

	v[0] = num.Int(2)

	if !tup.Get(0).Equal(num.Int(1)) {
		t.Fatal("tuple changed when the slice it was built from changed")
	}
}

func TestBool(t *testing.T) {
	if New().Bool() || !New(num.Int(0)).Bool() {
		t.Fail()
	}
}
