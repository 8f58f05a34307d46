package data

import (
	"math/big"
	"testing"

	"github.com/ergoplasma/ergotree-go/types"
)

func TestPrimitiveEquality(t *testing.T) {
	if !Int(5).Equal(Int(5)) {
		t.Fatal("Int(5) should equal Int(5)")
	}
	if Int(5).Equal(Long(5)) {
		t.Fatal("Int(5) should not equal Long(5): cross-variant equality must be false, not panic")
	}
	if Int(5).Equal(Int(6)) {
		t.Fatal("Int(5) should not equal Int(6)")
	}
}

func TestByteArrayIsDefensiveCopy(t *testing.T) {
	raw := []byte{1, 2, 3}
	ba := NewByteArray(raw)
	raw[0] = 0xff
	if ba.Bytes()[0] != 1 {
		t.Fatal("ByteArray must copy its input, not alias it")
	}
	out := ba.Bytes()
	out[0] = 0xff
	if ba.Bytes()[0] != 1 {
		t.Fatal("ByteArray.Bytes() must return a defensive copy")
	}
}

func TestBigIntBound(t *testing.T) {
	max := new(big.Int).Lsh(big.NewInt(1), BigIntMaxBits-1)
	if _, err := NewBigInt(max); err != nil {
		t.Fatalf("boundary value should be accepted: %v", err)
	}
	tooBig := new(big.Int).Add(max, big.NewInt(1))
	if _, err := NewBigInt(tooBig); err == nil {
		t.Fatal("magnitude exceeding the bound should be rejected")
	}
	neg := new(big.Int).Neg(max)
	if _, err := NewBigInt(neg); err != nil {
		t.Fatalf("negative boundary value should be accepted: %v", err)
	}
}

func TestTryExtract(t *testing.T) {
	var v Value = Int(42)
	got, err := TryExtract[Int](v)
	if err != nil || got != 42 {
		t.Fatalf("expected Int(42), got %v, err %v", got, err)
	}
	if _, err := TryExtract[Long](v); err == nil {
		t.Fatal("expected UnexpectedValueError extracting Long from Int")
	}
}

func TestCollTypeMismatch(t *testing.T) {
	_, err := NewColl(types.SInt, []Value{Int(1), Boolean(true)})
	if err == nil {
		t.Fatal("expected type mismatch error")
	}
}

func TestCollEquality(t *testing.T) {
	a, _ := NewColl(types.SInt, []Value{Int(1), Int(2)})
	b, _ := NewColl(types.SInt, []Value{Int(1), Int(2)})
	c, _ := NewColl(types.SInt, []Value{Int(1), Int(3)})
	if !a.Equal(b) {
		t.Fatal("identical colls should be equal")
	}
	if a.Equal(c) {
		t.Fatal("differing colls should not be equal")
	}
}

func TestOptionNoneProbe(t *testing.T) {
	none := NewNone(types.SInt)
	if none.IsDefined() {
		t.Fatal("NewNone should not be defined")
	}
	some := NewSome(Int(7))
	if !some.IsDefined() || some.Get().(Int) != 7 {
		t.Fatal("NewSome should carry its value")
	}
}

func TestTupleSlots(t *testing.T) {
	tup := NewTuple(Int(1), Boolean(true))
	if tup.Len() != 2 {
		t.Fatal("expected arity 2")
	}
	if !tup.Type().Equal(types.STuple(types.SInt, types.SBoolean)) {
		t.Fatalf("unexpected tuple type: %v", tup.Type())
	}
}

func TestGroupElementIdentity(t *testing.T) {
	if len(Identity.Bytes()) != 1 || Identity.Bytes()[0] != 0 {
		t.Fatal("identity element must encode as a single zero byte")
	}
	g, err := NewGroupElement(Identity.Bytes())
	if err != nil {
		t.Fatalf("re-parsing identity should succeed: %v", err)
	}
	if !g.Equal(Identity) {
		t.Fatal("re-parsed identity should equal Identity")
	}
}
