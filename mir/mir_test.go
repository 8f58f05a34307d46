package mir

import (
	"testing"

	"github.com/ergoplasma/ergotree-go/data"
	"github.com/ergoplasma/ergotree-go/types"
)

func TestBinOpArithRequiresMatchingNumericOperands(t *testing.T) {
	l := NewConst(data.Long(1))
	r := NewConst(data.Int(1))
	if _, err := NewBinOp(Arith(Plus), l, r); err == nil {
		t.Fatal("expected type mismatch between Long and Int operands")
	}

	r2 := NewConst(data.Long(2))
	op, err := NewBinOp(Arith(Plus), l, r2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !op.Tpe().Equal(types.SLong) {
		t.Fatalf("arithmetic BinOp.tpe should equal operand type, got %v", op.Tpe())
	}
}

func TestBinOpRelationIsAlwaysBoolean(t *testing.T) {
	op, err := NewBinOp(Relation(GT), NewConst(data.Int(3)), NewConst(data.Int(2)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !op.Tpe().Equal(types.SBoolean) {
		t.Fatal("relational BinOp.tpe must be Boolean")
	}
}

func TestIfRequiresBooleanConditionAndMatchingBranches(t *testing.T) {
	cond := NewConst(data.Boolean(true))
	trueB := NewConst(data.Long(1))
	falseB := NewConst(data.Int(1))
	if _, err := NewIf(cond, trueB, falseB); err == nil {
		t.Fatal("expected branch type mismatch to be rejected")
	}

	badCond := NewConst(data.Int(1))
	if _, err := NewIf(badCond, trueB, trueB); err == nil {
		t.Fatal("expected non-boolean condition to be rejected")
	}

	ifExpr, err := NewIf(cond, trueB, trueB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ifExpr.Tpe().Equal(types.SLong) {
		t.Fatal("If.tpe should equal branch type")
	}
}

func TestCollRejectsMismatchedItem(t *testing.T) {
	_, err := NewColl(types.SInt, []Expr{NewConst(data.Int(1)), NewConst(data.Boolean(true))})
	if err == nil {
		t.Fatal("expected item type mismatch to be rejected")
	}
}

func TestMethodCallUnknownID(t *testing.T) {
	receiver := NewConst(mustColl())
	_, err := NewMethodCall(receiver, MethodID{TypeCode: types.CColl, MethodCode: 250}, nil)
	if err == nil {
		t.Fatal("expected unknown method id to be rejected")
	}
}

func TestMethodCallCollSize(t *testing.T) {
	receiver := NewConst(mustColl())
	mc, err := NewMethodCall(receiver, MethodID{TypeCode: types.CColl, MethodCode: MCollSize}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !mc.Tpe().Equal(types.SInt) {
		t.Fatalf("Coll.size should return SInt, got %v", mc.Tpe())
	}
}

func TestApplyArityAndTypeChecking(t *testing.T) {
	fn := NewFuncValue([]Param{{Index: 0, Tpe: types.SInt}}, NewValUse(0, types.SInt))
	if _, err := NewApply(fn, []Expr{NewConst(data.Boolean(true))}); err == nil {
		t.Fatal("expected arg type mismatch to be rejected")
	}
	app, err := NewApply(fn, []Expr{NewConst(data.Int(5))})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !app.Tpe().Equal(types.SInt) {
		t.Fatal("Apply.tpe should equal function result type")
	}
}

func mustColl() data.Coll {
	c, err := data.NewColl(types.SInt, []data.Value{data.Int(1), data.Int(2)})
	if err != nil {
		panic(err)
	}
	return c
}
