package mir

import "github.com/ergoplasma/ergotree-go/types"

// Param declares one lambda parameter: the bound-variable index it
// introduces (referenced by ValUse in the body) and its type.
type Param struct {
	Index int
	Tpe   types.SType
}

// FuncValue is a lambda: Params bound fresh in a child Env, Body
// evaluated against that child (§3 Environment: "lambda application
// produces a child environment shadowing the parent").
type FuncValue struct {
	Params []Param
	Body   Expr
}

// NewFuncValue builds a FuncValue node.
func NewFuncValue(params []Param, body Expr) *FuncValue {
	return &FuncValue{Params: append([]Param(nil), params...), Body: body}
}

func (f *FuncValue) OpCode() OpCode { return OpFuncValue }

func (f *FuncValue) Tpe() types.SType {
	argTypes := make([]types.SType, len(f.Params))
	for i, p := range f.Params {
		argTypes[i] = p.Tpe
	}
	return types.SFunc(argTypes, f.Body.Tpe())
}

// ValUse references a bound variable introduced by an enclosing
// FuncValue's parameter list.
type ValUse struct {
	ValID int
	Tpe_  types.SType
}

// NewValUse builds a ValUse node.
func NewValUse(valID int, tpe types.SType) *ValUse {
	return &ValUse{ValID: valID, Tpe_: tpe}
}

func (v *ValUse) OpCode() OpCode   { return OpValUse }
func (v *ValUse) Tpe() types.SType { return v.Tpe_ }
