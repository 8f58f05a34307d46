package sigmaser

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ergoplasma/ergotree-go/data"
	"github.com/ergoplasma/ergotree-go/mir"
	"github.com/ergoplasma/ergotree-go/types"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigFromString(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad test fixture")
	}
	return v
}

func newByteReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

func roundTrip(t *testing.T, e mir.Expr) mir.Expr {
	t.Helper()
	b, err := Serialize(e)
	require.NoError(t, err)
	out, err := Parse(b, nil)
	require.NoError(t, err)
	return out
}

func TestRoundTripConstPrimitives(t *testing.T) {
	cases := []data.Value{
		data.Boolean(true),
		data.Boolean(false),
		data.Byte(-12),
		data.Short(-1000),
		data.Int(123456),
		data.Long(-9223372036854775808),
	}
	for _, v := range cases {
		c := mir.NewConst(v)
		out := roundTrip(t, c)
		oc, ok := out.(*mir.Const)
		require.True(t, ok)
		assert.True(t, v.Equal(oc.Value), "round-trip mismatch for %T", v)
	}
}

func TestRoundTripConstFuzzedIntegers(t *testing.T) {
	f := fuzz.New()
	for i := 0; i < 200; i++ {
		var n int32
		f.Fuzz(&n)
		c := mir.NewConst(data.Int(n))
		out := roundTrip(t, c)
		oc, ok := out.(*mir.Const)
		require.True(t, ok)
		assert.Equal(t, data.Int(n), oc.Value)
	}
}

func TestRoundTripBigInt(t *testing.T) {
	big1, err := data.NewBigInt(bigFromString("57896044618658097711785492504343953926634992332820282019728792003956564819968"))
	require.NoError(t, err)
	c := mir.NewConst(big1)
	out := roundTrip(t, c)
	oc, ok := out.(*mir.Const)
	require.True(t, ok)
	assert.True(t, big1.Equal(oc.Value))
}

func TestRoundTripCollAndTuple(t *testing.T) {
	coll, err := data.NewColl(types.SInt, []data.Value{data.Int(1), data.Int(2), data.Int(3)})
	require.NoError(t, err)
	c := mir.NewConst(coll)
	out := roundTrip(t, c)
	oc, ok := out.(*mir.Const)
	require.True(t, ok)
	assert.True(t, coll.Equal(oc.Value))

	tup := data.NewTuple(data.Int(1), data.Boolean(true))
	tc := mir.NewConst(tup)
	out = roundTrip(t, tc)
	oc, ok = out.(*mir.Const)
	require.True(t, ok)
	assert.True(t, tup.Equal(oc.Value))
}

func TestRoundTripIfAndBinOp(t *testing.T) {
	plus, err := mir.NewBinOp(mir.Arith(mir.Plus), mir.NewConst(data.Long(1)), mir.NewConst(data.Long(2)))
	require.NoError(t, err)
	ifExpr, err := mir.NewIf(mir.NewConst(data.Boolean(true)), plus, mir.NewConst(data.Long(0)))
	require.NoError(t, err)

	out := roundTrip(t, ifExpr)
	oif, ok := out.(*mir.If)
	require.True(t, ok)
	assert.True(t, oif.Tpe().Equal(types.SLong))
}

func TestRoundTripMethodCallAndFuncValue(t *testing.T) {
	coll, err := mir.NewColl(types.SInt, []mir.Expr{mir.NewConst(data.Int(1)), mir.NewConst(data.Int(2))})
	require.NoError(t, err)
	fn := mir.NewFuncValue([]mir.Param{{Index: 0, Tpe: types.SInt}},
		mustBinOp(t, mir.Relation(mir.GT), mir.NewValUse(0, types.SInt), mir.NewConst(data.Int(0))))
	call, err := mir.NewMethodCall(coll, mir.MethodID{TypeCode: types.CColl, MethodCode: mir.MCollFilter}, []mir.Expr{fn})
	require.NoError(t, err)

	out := roundTrip(t, call)
	oc, ok := out.(*mir.MethodCall)
	require.True(t, ok)
	assert.Equal(t, call.Method.ID, oc.Method.ID)
}

func TestParseUnknownOpcodeFails(t *testing.T) {
	_, err := Parse([]byte{0xFE}, nil)
	require.Error(t, err)
}

func TestParseTruncatedInputFails(t *testing.T) {
	_, err := Parse([]byte{byte(mir.OpIf)}, nil)
	require.Error(t, err)
}

func TestParseInvalidVLQFails(t *testing.T) {
	// eleven continuation bytes that never terminate.
	bad := make([]byte, maxVLQBytes+1)
	for i := range bad {
		bad[i] = 0x80
	}
	_, err := ReadVLQ(newByteReader(bad))
	require.Error(t, err)
}

func mustBinOp(t *testing.T, kind mir.BinOpKind, l, r mir.Expr) mir.Expr {
	t.Helper()
	op, err := mir.NewBinOp(kind, l, r)
	require.NoError(t, err)
	return op
}
