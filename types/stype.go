// Package types implements SType, the static type system of ErgoTree
// expressions. Types are structural: two types are equal when their shape
// and element types match, never by identity.
package types

import (
	"fmt"
	"strings"
)

// Code identifies the shape of an SType: a ground (leaf) type or one of
// the four type constructors.
type Code byte

const (
	// CAny is the upper bound used at polymorphic sites such as Eq/NEq.
	CAny Code = iota
	CBoolean
	CByte
	CShort
	CInt
	CLong
	CBigInt
	CByteArray
	CGroupElement
	CSigmaProp
	CBox
	CAvlTree
	COption
	CColl
	CTuple
	CFunc
)

// SType is the closed variant set described by the specification:
//
//	SAny | SBoolean | SByte | SShort | SInt | SLong | SBigInt | SByteArray |
//	SGroupElement | SSigmaProp | SBox | SAvlTree |
//	SOption(SType) | SColl(SType) | STuple(Vec<SType>) | SFunc(args, result)
//
// The zero value is SAny (CAny is code 0); use one of the ground-type
// constants or a type-constructor constructor function below.
type SType struct {
	code  Code
	elem  *SType   // SOption, SColl
	items []SType  // STuple
	args  []SType  // SFunc
	res   *SType   // SFunc
}

var (
	SAny          = SType{code: CAny}
	SBoolean      = SType{code: CBoolean}
	SByte         = SType{code: CByte}
	SShort        = SType{code: CShort}
	SInt          = SType{code: CInt}
	SLong         = SType{code: CLong}
	SBigInt       = SType{code: CBigInt}
	SByteArray    = SType{code: CByteArray}
	SGroupElement = SType{code: CGroupElement}
	SSigmaProp    = SType{code: CSigmaProp}
	SBox          = SType{code: CBox}
	SAvlTree      = SType{code: CAvlTree}
)

// SOption builds an Option[elem] type.
func SOption(elem SType) SType {
	e := elem
	return SType{code: COption, elem: &e}
}

// SColl builds a Coll[elem] type.
func SColl(elem SType) SType {
	e := elem
	return SType{code: CColl, elem: &e}
}

// STuple builds a fixed-arity heterogeneous tuple type.
func STuple(items ...SType) SType {
	cp := append([]SType(nil), items...)
	return SType{code: CTuple, items: cp}
}

// SFunc builds a function type from argument types to a result type.
func SFunc(args []SType, result SType) SType {
	a := append([]SType(nil), args...)
	r := result
	return SType{code: CFunc, args: a, res: &r}
}

// Code returns the type's discriminator.
func (t SType) Code() Code { return t.code }

// IsGround reports whether t is a leaf (non-constructor) type.
func (t SType) IsGround() bool {
	switch t.code {
	case COption, CColl, CTuple, CFunc:
		return false
	default:
		return true
	}
}

// IsNumeric reports whether t is one of the fixed-width signed integer
// types or SBigInt — the operand domain of arithmetic BinOp.
func (t SType) IsNumeric() bool {
	switch t.code {
	case CByte, CShort, CInt, CLong, CBigInt:
		return true
	default:
		return false
	}
}

// Elem returns the element type of an SOption or SColl. It panics if t is
// not a type constructor with an element — callers must check Code first.
func (t SType) Elem() SType {
	if t.elem == nil {
		panic(fmt.Sprintf("types: %v has no element type", t))
	}
	return *t.elem
}

// Items returns the slot types of an STuple.
func (t SType) Items() []SType {
	return append([]SType(nil), t.items...)
}

// FuncArgs returns the parameter types of an SFunc.
func (t SType) FuncArgs() []SType {
	return append([]SType(nil), t.args...)
}

// FuncResult returns the result type of an SFunc.
func (t SType) FuncResult() SType {
	if t.res == nil {
		panic("types: not a function type")
	}
	return *t.res
}

// Equal reports structural equality, recursing into constructors.
func (t SType) Equal(other SType) bool {
	if t.code != other.code {
		return false
	}
	switch t.code {
	case COption, CColl:
		return t.Elem().Equal(other.Elem())
	case CTuple:
		if len(t.items) != len(other.items) {
			return false
		}
		for i := range t.items {
			if !t.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case CFunc:
		if len(t.args) != len(other.args) {
			return false
		}
		for i := range t.args {
			if !t.args[i].Equal(other.args[i]) {
				return false
			}
		}
		return t.FuncResult().Equal(other.FuncResult())
	default:
		return true
	}
}

// String renders a printable form, e.g. "Coll[Tuple[Int,Boolean]]".
func (t SType) String() string {
	switch t.code {
	case CAny:
		return "Any"
	case CBoolean:
		return "Boolean"
	case CByte:
		return "Byte"
	case CShort:
		return "Short"
	case CInt:
		return "Int"
	case CLong:
		return "Long"
	case CBigInt:
		return "BigInt"
	case CByteArray:
		return "ByteArray"
	case CGroupElement:
		return "GroupElement"
	case CSigmaProp:
		return "SigmaProp"
	case CBox:
		return "Box"
	case CAvlTree:
		return "AvlTree"
	case COption:
		return "Option[" + t.Elem().String() + "]"
	case CColl:
		return "Coll[" + t.Elem().String() + "]"
	case CTuple:
		parts := make([]string, len(t.items))
		for i, it := range t.items {
			parts[i] = it.String()
		}
		return "Tuple[" + strings.Join(parts, ",") + "]"
	case CFunc:
		parts := make([]string, len(t.args))
		for i, it := range t.args {
			parts[i] = it.String()
		}
		return "Func[(" + strings.Join(parts, ",") + ")=>" + t.FuncResult().String() + "]"
	default:
		return "Unknown"
	}
}
