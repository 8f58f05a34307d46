package mir

import "github.com/ergoplasma/ergotree-go/types"

// Tuple constructs a heterogeneous fixed-arity value from sub-expressions.
type Tuple struct {
	Items []Expr
}

// NewTuple builds a Tuple node.
func NewTuple(items []Expr) *Tuple {
	return &Tuple{Items: append([]Expr(nil), items...)}
}

func (t *Tuple) OpCode() OpCode { return OpTuple }

func (t *Tuple) Tpe() types.SType {
	slotTypes := make([]types.SType, len(t.Items))
	for i, it := range t.Items {
		slotTypes[i] = it.Tpe()
	}
	return types.STuple(slotTypes...)
}
