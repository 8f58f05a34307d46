package eval

import (
	"testing"

	"github.com/ergoplasma/ergotree-go/data"
	"github.com/ergoplasma/ergotree-go/ergoctx"
	"github.com/ergoplasma/ergotree-go/mir"
	"github.com/ergoplasma/ergotree-go/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvaluator() *Evaluator {
	return New(NewCostAccumulator(DefaultCostTable(), 1_000_000, 0))
}

func TestIfLazinessDoesNotEvaluateUntakenBranch(t *testing.T) {
	divByZero, err := mir.NewBinOp(mir.Arith(mir.Divide), mir.NewConst(data.Long(1)), mir.NewConst(data.Long(0)))
	require.NoError(t, err)

	ifTrue, err := mir.NewIf(mir.NewConst(data.Boolean(true)), mir.NewConst(data.Long(1)), divByZero)
	require.NoError(t, err)

	v, err := newEvaluator().Eval(ifTrue, &ergoctx.EmptyEnv, nil)
	require.NoError(t, err)
	assert.Equal(t, data.Long(1), v)

	ifFalse, err := mir.NewIf(mir.NewConst(data.Boolean(false)), divByZero, mir.NewConst(data.Long(1)))
	require.NoError(t, err)
	v, err = newEvaluator().Eval(ifFalse, &ergoctx.EmptyEnv, nil)
	require.NoError(t, err)
	assert.Equal(t, data.Long(1), v)
}

func TestAndOrShortCircuit(t *testing.T) {
	divByZero, err := mir.NewBinOp(mir.Arith(mir.Divide), mir.NewConst(data.Int(1)), mir.NewConst(data.Int(0)))
	require.NoError(t, err)
	divBoolType, err := mir.NewBinOp(mir.Relation(mir.GT), divByZero, mir.NewConst(data.Int(0)))
	require.NoError(t, err)

	orExpr, err := mir.NewBinOp(mir.Relation(mir.Or), mir.NewConst(data.Boolean(true)), divBoolType)
	require.NoError(t, err)
	v, err := newEvaluator().Eval(orExpr, &ergoctx.EmptyEnv, nil)
	require.NoError(t, err)
	assert.Equal(t, data.Boolean(true), v)

	andExpr, err := mir.NewBinOp(mir.Relation(mir.And), mir.NewConst(data.Boolean(false)), divBoolType)
	require.NoError(t, err)
	v, err = newEvaluator().Eval(andExpr, &ergoctx.EmptyEnv, nil)
	require.NoError(t, err)
	assert.Equal(t, data.Boolean(false), v)
}

func TestLongOverflowIsArithmeticException(t *testing.T) {
	maxLong := mir.NewConst(data.Long(9223372036854775807))
	one := mir.NewConst(data.Long(1))
	plus, err := mir.NewBinOp(mir.Arith(mir.Plus), maxLong, one)
	require.NoError(t, err)

	_, err = newEvaluator().Eval(plus, &ergoctx.EmptyEnv, nil)
	require.Error(t, err)
	var arithErr *ArithmeticException
	assert.ErrorAs(t, err, &arithErr)
}

func TestLongMultiplyMinInt64ByNegOneIsArithmeticException(t *testing.T) {
	minLong := mir.NewConst(data.Long(-9223372036854775808))
	negOne := mir.NewConst(data.Long(-1))
	mul, err := mir.NewBinOp(mir.Arith(mir.Multiply), minLong, negOne)
	require.NoError(t, err)

	_, err = newEvaluator().Eval(mul, &ergoctx.EmptyEnv, nil)
	require.Error(t, err)
	var arithErr *ArithmeticException
	assert.ErrorAs(t, err, &arithErr)

	mul2, err := mir.NewBinOp(mir.Arith(mir.Multiply), negOne, minLong)
	require.NoError(t, err)
	_, err = newEvaluator().Eval(mul2, &ergoctx.EmptyEnv, nil)
	require.Error(t, err)
	assert.ErrorAs(t, err, &arithErr)
}

func TestDivisionByZero(t *testing.T) {
	div, err := mir.NewBinOp(mir.Arith(mir.Divide), mir.NewConst(data.Int(1)), mir.NewConst(data.Int(0)))
	require.NoError(t, err)
	_, err = newEvaluator().Eval(div, &ergoctx.EmptyEnv, nil)
	require.Error(t, err)
	var arithErr *ArithmeticException
	assert.ErrorAs(t, err, &arithErr)
}

func TestRelationalAgreement(t *testing.T) {
	gt, err := mir.NewBinOp(mir.Relation(mir.GT), mir.NewConst(data.Int(3)), mir.NewConst(data.Int(2)))
	require.NoError(t, err)
	v, err := newEvaluator().Eval(gt, &ergoctx.EmptyEnv, nil)
	require.NoError(t, err)
	assert.Equal(t, data.Boolean(true), v)
}

func TestEqIsReflexive(t *testing.T) {
	eq, err := mir.NewBinOp(mir.Relation(mir.Eq), mir.NewConst(data.Int(7)), mir.NewConst(data.Int(7)))
	require.NoError(t, err)
	v, err := newEvaluator().Eval(eq, &ergoctx.EmptyEnv, nil)
	require.NoError(t, err)
	assert.Equal(t, data.Boolean(true), v)
}

func TestCostExceeded(t *testing.T) {
	plus, err := mir.NewBinOp(mir.Arith(mir.Plus), mir.NewConst(data.Int(1)), mir.NewConst(data.Int(2)))
	require.NoError(t, err)
	ev := New(NewCostAccumulator(DefaultCostTable(), 1, 0))
	_, err = ev.Eval(plus, &ergoctx.EmptyEnv, nil)
	require.Error(t, err)
	var costErr *CostExceededError
	assert.ErrorAs(t, err, &costErr)
}

func TestApplyClosureOverValUse(t *testing.T) {
	fn := mir.NewFuncValue([]mir.Param{{Index: 0, Tpe: types.SInt}}, mir.NewValUse(0, types.SInt))
	apply, err := mir.NewApply(fn, []mir.Expr{mir.NewConst(data.Int(5))})
	require.NoError(t, err)

	v, err := newEvaluator().Eval(apply, &ergoctx.EmptyEnv, nil)
	require.NoError(t, err)
	assert.Equal(t, data.Int(5), v)
}

func TestCollMapAndFilter(t *testing.T) {
	coll, err := mir.NewColl(types.SInt, []mir.Expr{mir.NewConst(data.Int(1)), mir.NewConst(data.Int(2)), mir.NewConst(data.Int(3))})
	require.NoError(t, err)

	addOne := mir.NewFuncValue([]mir.Param{{Index: 0, Tpe: types.SInt}},
		mustBinOp(t, mir.Arith(mir.Plus), mir.NewValUse(0, types.SInt), mir.NewConst(data.Int(1))))
	mapCall, err := mir.NewMethodCall(coll, mir.MethodID{TypeCode: types.CColl, MethodCode: mir.MCollMap}, []mir.Expr{addOne})
	require.NoError(t, err)

	v, err := newEvaluator().Eval(mapCall, &ergoctx.EmptyEnv, nil)
	require.NoError(t, err)
	mapped, ok := v.(data.Coll)
	require.True(t, ok)
	assert.Equal(t, 3, mapped.Len())
	assert.Equal(t, data.Int(2), mapped.Get(0))
	assert.Equal(t, data.Int(4), mapped.Get(2))

	isTwo := mir.NewFuncValue([]mir.Param{{Index: 0, Tpe: types.SInt}},
		mustBinOp(t, mir.Relation(mir.Eq),
			mustBinOp(t, mir.Arith(mir.Plus), mir.NewValUse(0, types.SInt), mir.NewConst(data.Int(0))),
			mir.NewConst(data.Int(2))))
	filterCall, err := mir.NewMethodCall(coll, mir.MethodID{TypeCode: types.CColl, MethodCode: mir.MCollFilter}, []mir.Expr{isTwo})
	require.NoError(t, err)
	v, err = newEvaluator().Eval(filterCall, &ergoctx.EmptyEnv, nil)
	require.NoError(t, err)
	filtered, ok := v.(data.Coll)
	require.True(t, ok)
	assert.Equal(t, 1, filtered.Len())
	assert.Equal(t, data.Int(2), filtered.Get(0))
}

func TestGetVarAbsentIsNoneNotError(t *testing.T) {
	gv := mir.NewGetVar(3, types.SInt)
	box := fakeBox{id: [32]byte{9}}
	ctx, err := ergoctx.NewContext(0, []data.BoxValue{box}, nil, nil, 0, nil, data.Identity)
	require.NoError(t, err)

	v, err := newEvaluator().Eval(gv, &ergoctx.EmptyEnv, ctx)
	require.NoError(t, err)
	opt, ok := v.(data.Option)
	require.True(t, ok)
	assert.False(t, opt.IsDefined())
}

func TestGetVarPresent(t *testing.T) {
	gv := mir.NewGetVar(3, types.SInt)
	box := fakeBox{id: [32]byte{9}}
	ext := ergoctx.NewExtension(nil).Set(3, data.Int(42))
	ctx, err := ergoctx.NewContext(0, []data.BoxValue{box}, nil, nil, 0, []ergoctx.Extension{ext}, data.Identity)
	require.NoError(t, err)

	v, err := newEvaluator().Eval(gv, &ergoctx.EmptyEnv, ctx)
	require.NoError(t, err)
	opt, ok := v.(data.Option)
	require.True(t, ok)
	require.True(t, opt.IsDefined())
	assert.Equal(t, data.Int(42), opt.Get())
}

func mustBinOp(t *testing.T, kind mir.BinOpKind, l, r mir.Expr) mir.Expr {
	t.Helper()
	op, err := mir.NewBinOp(kind, l, r)
	require.NoError(t, err)
	return op
}

type fakeBox struct {
	id [32]byte
}

func (b fakeBox) Type() types.SType           { return types.SBox }
func (b fakeBox) Equal(other data.Value) bool { o, ok := other.(fakeBox); return ok && o.id == b.id }
func (b fakeBox) BoxID() [32]byte             { return b.id }
