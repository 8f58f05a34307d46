package mir

import "github.com/ergoplasma/ergotree-go/types"

// Apply calls Fn with Args. §4.2: Fn's parameter types must match the
// argument types positionally.
type Apply struct {
	Fn   Expr
	Args []Expr
	tpe  types.SType
}

// NewApply builds an Apply node, checking Fn is a function type whose
// parameters match Args positionally.
func NewApply(fn Expr, args []Expr) (*Apply, error) {
	fnTpe := fn.Tpe()
	if fnTpe.Code() != types.CFunc {
		return nil, &TypeMismatchError{Node: "Apply.fn", Expected: "Func", Actual: fnTpe}
	}
	params := fnTpe.FuncArgs()
	if len(params) != len(args) {
		return nil, &TypeMismatchError{Node: "Apply arity", Expected: fnTpe.String(), Actual: fnTpe}
	}
	for i, a := range args {
		if !a.Tpe().Equal(params[i]) {
			return nil, &TypeMismatchError{Node: "Apply.args", Expected: params[i].String(), Actual: a.Tpe()}
		}
	}
	return &Apply{Fn: fn, Args: append([]Expr(nil), args...), tpe: fnTpe.FuncResult()}, nil
}

func (a *Apply) OpCode() OpCode   { return OpApply }
func (a *Apply) Tpe() types.SType { return a.tpe }
