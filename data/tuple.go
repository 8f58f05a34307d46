package data

import (
	"github.com/ergoplasma/ergotree-go/types"
)

// Tuple is a heterogeneous fixed-arity sequence with per-slot types.
type Tuple struct {
	items []Value
}

// NewTuple builds a Tuple from its slot values.
func NewTuple(items ...Value) Tuple {
	return Tuple{items: append([]Value(nil), items...)}
}

func (t Tuple) Type() types.SType {
	slotTypes := make([]types.SType, len(t.items))
	for i, it := range t.items {
		slotTypes[i] = it.Type()
	}
	return types.STuple(slotTypes...)
}

// Len returns the arity.
func (t Tuple) Len() int { return len(t.items) }

// Get returns the i-th slot (0-indexed).
func (t Tuple) Get(i int) Value { return t.items[i] }

// Items returns a defensive copy of the slots.
func (t Tuple) Items() []Value {
	return append([]Value(nil), t.items...)
}

func (t Tuple) Equal(other Value) bool {
	o, ok := other.(Tuple)
	if !ok || len(t.items) != len(o.items) {
		return false
	}
	for i := range t.items {
		if !t.items[i].Equal(o.items[i]) {
			return false
		}
	}
	return true
}
