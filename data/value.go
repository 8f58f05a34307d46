// Package data implements the runtime value domain of ErgoTree: the tagged
// union of values an Expr evaluates to. Every concrete type here is
// immutable once constructed and carries its own SType so the evaluator
// never has to reconstruct a type from a bare value.
package data

import (
	"github.com/ergoplasma/ergotree-go/types"
)

// Value is satisfied by every runtime value variant. Equal is total:
// comparing across variants never panics, it returns false.
type Value interface {
	Type() types.SType
	Equal(other Value) bool
}

// Boolean wraps a bool.
type Boolean bool

func (b Boolean) Type() types.SType { return types.SBoolean }
func (b Boolean) Equal(other Value) bool {
	o, ok := other.(Boolean)
	return ok && b == o
}

// Byte wraps an int8.
type Byte int8

func (b Byte) Type() types.SType { return types.SByte }
func (b Byte) Equal(other Value) bool {
	o, ok := other.(Byte)
	return ok && b == o
}

// Short wraps an int16.
type Short int16

func (s Short) Type() types.SType { return types.SShort }
func (s Short) Equal(other Value) bool {
	o, ok := other.(Short)
	return ok && s == o
}

// Int wraps an int32.
type Int int32

func (i Int) Type() types.SType { return types.SInt }
func (i Int) Equal(other Value) bool {
	o, ok := other.(Int)
	return ok && i == o
}

// Long wraps an int64.
type Long int64

func (l Long) Type() types.SType { return types.SLong }
func (l Long) Equal(other Value) bool {
	o, ok := other.(Long)
	return ok && l == o
}

// ByteArray is an immutable byte string.
type ByteArray struct {
	bytes []byte
}

// NewByteArray copies b into a new ByteArray.
func NewByteArray(b []byte) ByteArray {
	return ByteArray{bytes: append([]byte(nil), b...)}
}

func (a ByteArray) Type() types.SType { return types.SByteArray }

// Bytes returns a defensive copy of the underlying bytes.
func (a ByteArray) Bytes() []byte {
	return append([]byte(nil), a.bytes...)
}

func (a ByteArray) Equal(other Value) bool {
	o, ok := other.(ByteArray)
	if !ok || len(a.bytes) != len(o.bytes) {
		return false
	}
	for i := range a.bytes {
		if a.bytes[i] != o.bytes[i] {
			return false
		}
	}
	return true
}
