package mir

import (
	"github.com/ergoplasma/ergotree-go/data"
	"github.com/ergoplasma/ergotree-go/types"
)

// Const is a ground literal; its type is the value's own type.
type Const struct {
	Value data.Value
}

// NewConst wraps v as a Const node.
func NewConst(v data.Value) *Const {
	return &Const{Value: v}
}

func (c *Const) OpCode() OpCode  { return OpConst }
func (c *Const) Tpe() types.SType { return c.Value.Type() }
