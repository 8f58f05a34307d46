package eval

import (
	"github.com/ergoplasma/ergotree-go/data"
	"github.com/ergoplasma/ergotree-go/ergoctx"
	"github.com/ergoplasma/ergotree-go/mir"
	"github.com/ergoplasma/ergotree-go/types"
)

// Closure is the runtime representation of a FuncValue: its parameter
// list, its body, and the Env it closes over. It satisfies data.Value so
// it can flow through Apply and the Coll.map/filter/exists/forall method
// calls like any other runtime value, but it is never itself serializable
// or comparable — lambdas do not appear on the wire as data, only as
// Expr (§3).
type Closure struct {
	Params []mir.Param
	Body   mir.Expr
	Env    *ergoctx.Env
	tpe    types.SType
}

func (c *Closure) Type() types.SType { return c.tpe }

// Equal is identity-based: two Closures are never structurally comparable
// (the spec domain has no function equality), only the same value equals
// itself.
func (c *Closure) Equal(other data.Value) bool {
	o, ok := other.(*Closure)
	return ok && o == c
}
