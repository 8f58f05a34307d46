package mir

import "github.com/ergoplasma/ergotree-go/types"

// Coll is a collection literal/constructor built from sub-expressions
// that must all agree with elemTpe.
type Coll struct {
	Items   []Expr
	ElemTpe types.SType
}

// NewColl builds a Coll node, rejecting an item whose static type
// disagrees with elemTpe.
func NewColl(elemTpe types.SType, items []Expr) (*Coll, error) {
	for _, it := range items {
		if !it.Tpe().Equal(elemTpe) {
			return nil, &TypeMismatchError{Node: "Coll item", Expected: elemTpe.String(), Actual: it.Tpe()}
		}
	}
	cp := append([]Expr(nil), items...)
	return &Coll{Items: cp, ElemTpe: elemTpe}, nil
}

func (c *Coll) OpCode() OpCode   { return OpColl }
func (c *Coll) Tpe() types.SType { return types.SColl(c.ElemTpe) }
