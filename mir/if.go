package mir

import "github.com/ergoplasma/ergotree-go/types"

// If evaluates condition, then evaluates exactly one branch (§4.4). Its
// type is the (required-equal) type of both branches.
type If struct {
	Condition   Expr
	TrueBranch  Expr
	FalseBranch Expr
	tpe         types.SType
}

// NewIf builds an If node. Per §4.2: condition must be SBoolean and
// branch types must match exactly — no implicit widening.
func NewIf(condition, trueBranch, falseBranch Expr) (*If, error) {
	if !condition.Tpe().Equal(types.SBoolean) {
		return nil, &TypeMismatchError{Node: "If.condition", Expected: "Boolean", Actual: condition.Tpe()}
	}
	tt, ft := trueBranch.Tpe(), falseBranch.Tpe()
	if !tt.Equal(ft) {
		return nil, &TypeMismatchError{Node: "If branches", Expected: tt.String(), Actual: ft}
	}
	return &If{Condition: condition, TrueBranch: trueBranch, FalseBranch: falseBranch, tpe: tt}, nil
}

func (i *If) OpCode() OpCode   { return OpIf }
func (i *If) Tpe() types.SType { return i.tpe }
