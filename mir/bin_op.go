package mir

import "github.com/ergoplasma/ergotree-go/types"

// ArithOp is a numeric operator between two operands of the same
// integer-family type.
type ArithOp byte

const (
	Plus ArithOp = iota
	Minus
	Multiply
	Divide
	Max
	Min
)

func (a ArithOp) OpCode() OpCode {
	switch a {
	case Plus:
		return OpPlus
	case Minus:
		return OpMinus
	case Multiply:
		return OpMultiply
	case Divide:
		return OpDivide
	case Max:
		return OpMax
	default:
		return OpMin
	}
}

// RelationOp is a relational or logical operator; its result is always
// SBoolean.
type RelationOp byte

const (
	Eq RelationOp = iota
	NEq
	GT
	GE
	LT
	LE
	And
	Or
)

func (r RelationOp) OpCode() OpCode {
	switch r {
	case Eq:
		return OpEq
	case NEq:
		return OpNEq
	case GT:
		return OpGT
	case GE:
		return OpGE
	case LT:
		return OpLT
	case LE:
		return OpLE
	case And:
		return OpAnd
	default:
		return OpOr
	}
}

// BinOpKind discriminates the two operator families sharing the BinOp
// node shape.
type BinOpKind struct {
	arith    ArithOp
	relation RelationOp
	isArith  bool
}

// Arith wraps an ArithOp as a BinOpKind.
func Arith(op ArithOp) BinOpKind { return BinOpKind{arith: op, isArith: true} }

// Relation wraps a RelationOp as a BinOpKind.
func Relation(op RelationOp) BinOpKind { return BinOpKind{relation: op} }

// IsArith reports whether this is an arithmetic (non-relational) kind.
func (k BinOpKind) IsArith() bool { return k.isArith }

// ArithOp returns the wrapped ArithOp; valid only when IsArith() is true.
func (k BinOpKind) ArithOp() ArithOp { return k.arith }

// RelationOp returns the wrapped RelationOp; valid only when IsArith() is false.
func (k BinOpKind) RelationOp() RelationOp { return k.relation }

func (k BinOpKind) opCode() OpCode {
	if k.isArith {
		return k.arith.OpCode()
	}
	return k.relation.OpCode()
}

// BinOp is a binary operation node. Per spec.md §4.2: arithmetic requires
// both operands to share a numeric type; And/Or require SBoolean; Eq/NEq
// accept any matching pair; ordering is defined only for integer/BigInt
// operands (checked at evaluation time, not construction time, since it
// depends on the dynamic variant for polymorphic sites — construction
// only enforces the static type agreement both sides must share).
type BinOp struct {
	Kind  BinOpKind
	Left  Expr
	Right Expr
	tpe   types.SType
}

// NewBinOp builds a BinOp, enforcing §4.2's construction-time contract.
func NewBinOp(kind BinOpKind, left, right Expr) (*BinOp, error) {
	lt, rt := left.Tpe(), right.Tpe()

	if kind.IsArith() {
		if !lt.Equal(rt) {
			return nil, &TypeMismatchError{Node: "BinOp(" + kind.arith.OpCode().String() + ")", Expected: lt.String(), Actual: rt}
		}
		if !lt.IsNumeric() {
			return nil, &TypeMismatchError{Node: "BinOp(" + kind.arith.OpCode().String() + ")", Expected: "numeric", Actual: lt}
		}
		return &BinOp{Kind: kind, Left: left, Right: right, tpe: lt}, nil
	}

	switch kind.relation {
	case And, Or:
		if !lt.Equal(types.SBoolean) || !rt.Equal(types.SBoolean) {
			return nil, &TypeMismatchError{Node: "BinOp(And/Or)", Expected: "Boolean", Actual: rt}
		}
	case Eq, NEq:
		if !lt.Equal(rt) {
			return nil, &TypeMismatchError{Node: "BinOp(Eq/NEq)", Expected: lt.String(), Actual: rt}
		}
	default: // GT, GE, LT, LE
		if !lt.Equal(rt) {
			return nil, &TypeMismatchError{Node: "BinOp(relational)", Expected: lt.String(), Actual: rt}
		}
	}
	return &BinOp{Kind: kind, Left: left, Right: right, tpe: types.SBoolean}, nil
}

func (b *BinOp) OpCode() OpCode   { return b.Kind.opCode() }
func (b *BinOp) Tpe() types.SType { return b.tpe }
