package data

import (
	"strconv"

	"github.com/ergoplasma/ergotree-go/types"
)

// Coll is a finite, ordered, homogeneous sequence. The element type is
// recorded alongside the items, not inferred, so an empty Coll still
// carries a concrete type.
type Coll struct {
	elem  types.SType
	items []Value
}

// NewColl builds a Coll, failing if any item's type disagrees with elem.
func NewColl(elem types.SType, items []Value) (Coll, error) {
	for i, it := range items {
		if !it.Type().Equal(elem) {
			return Coll{}, &TypeMismatchError{
				Context:  "Coll element",
				Expected: elem,
				Actual:   it.Type(),
				Index:    i,
			}
		}
	}
	return Coll{elem: elem, items: append([]Value(nil), items...)}, nil
}

func (c Coll) Type() types.SType { return types.SColl(c.elem) }

// Len returns the number of elements.
func (c Coll) Len() int { return len(c.items) }

// Items returns a defensive copy of the elements.
func (c Coll) Items() []Value {
	return append([]Value(nil), c.items...)
}

// Get returns the i-th element.
func (c Coll) Get(i int) Value { return c.items[i] }

func (c Coll) Equal(other Value) bool {
	o, ok := other.(Coll)
	if !ok || !c.elem.Equal(o.elem) || len(c.items) != len(o.items) {
		return false
	}
	for i := range c.items {
		if !c.items[i].Equal(o.items[i]) {
			return false
		}
	}
	return true
}

// TypeMismatchError reports a construction-time type disagreement inside
// a compound value (Coll element, Tuple slot, ...).
type TypeMismatchError struct {
	Context  string
	Expected types.SType
	Actual   types.SType
	Index    int
}

func (e *TypeMismatchError) Error() string {
	return e.Context + " #" + strconv.Itoa(e.Index) + ": expected " + e.Expected.String() + ", got " + e.Actual.String()
}
