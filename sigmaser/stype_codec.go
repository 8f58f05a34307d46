package sigmaser

import (
	"bytes"
	"io"

	"github.com/ergoplasma/ergotree-go/types"
)

// maxTypeDepth bounds nested type constructors (Coll[Coll[Coll[...]]]),
// the same recursion-depth guard §9 asks for at the tree level.
const maxTypeDepth = 64

// EncodeSType writes t's wire tag, recursing into element/item/arg types
// for the type constructors (§4.3: "single-byte tag for ground types;
// composite types prefix a tag and recurse").
func EncodeSType(w io.Writer, t types.SType) error {
	if _, err := w.Write([]byte{byte(t.Code())}); err != nil {
		return err
	}
	switch t.Code() {
	case types.COption, types.CColl:
		return EncodeSType(w, t.Elem())
	case types.CTuple:
		items := t.Items()
		if err := WriteVLQ(w, uint64(len(items))); err != nil {
			return err
		}
		for _, it := range items {
			if err := EncodeSType(w, it); err != nil {
				return err
			}
		}
		return nil
	case types.CFunc:
		args := t.FuncArgs()
		if err := WriteVLQ(w, uint64(len(args))); err != nil {
			return err
		}
		for _, a := range args {
			if err := EncodeSType(w, a); err != nil {
				return err
			}
		}
		return EncodeSType(w, t.FuncResult())
	default:
		return nil
	}
}

// DecodeSType reads one SType from r, failing with DepthExceededError
// past maxTypeDepth nested constructors.
func DecodeSType(r *bytes.Reader) (types.SType, error) {
	return decodeSType(r, 0)
}

func decodeSType(r *bytes.Reader, depth int) (types.SType, error) {
	if depth > maxTypeDepth {
		return types.SAny, &DepthExceededError{Limit: maxTypeDepth}
	}
	tagByte, err := r.ReadByte()
	if err != nil {
		return types.SAny, &TruncatedInputError{Context: "SType tag"}
	}
	tag := types.Code(tagByte)

	switch tag {
	case types.CAny:
		return types.SAny, nil
	case types.CBoolean:
		return types.SBoolean, nil
	case types.CByte:
		return types.SByte, nil
	case types.CShort:
		return types.SShort, nil
	case types.CInt:
		return types.SInt, nil
	case types.CLong:
		return types.SLong, nil
	case types.CBigInt:
		return types.SBigInt, nil
	case types.CByteArray:
		return types.SByteArray, nil
	case types.CGroupElement:
		return types.SGroupElement, nil
	case types.CSigmaProp:
		return types.SSigmaProp, nil
	case types.CBox:
		return types.SBox, nil
	case types.CAvlTree:
		return types.SAvlTree, nil
	case types.COption:
		elem, err := decodeSType(r, depth+1)
		if err != nil {
			return types.SAny, err
		}
		return types.SOption(elem), nil
	case types.CColl:
		elem, err := decodeSType(r, depth+1)
		if err != nil {
			return types.SAny, err
		}
		return types.SColl(elem), nil
	case types.CTuple:
		n, err := ReadVLQ(r)
		if err != nil {
			return types.SAny, err
		}
		items := make([]types.SType, n)
		for i := range items {
			it, err := decodeSType(r, depth+1)
			if err != nil {
				return types.SAny, err
			}
			items[i] = it
		}
		return types.STuple(items...), nil
	case types.CFunc:
		n, err := ReadVLQ(r)
		if err != nil {
			return types.SAny, err
		}
		args := make([]types.SType, n)
		for i := range args {
			a, err := decodeSType(r, depth+1)
			if err != nil {
				return types.SAny, err
			}
			args[i] = a
		}
		res, err := decodeSType(r, depth+1)
		if err != nil {
			return types.SAny, err
		}
		return types.SFunc(args, res), nil
	default:
		return types.SAny, &UnknownTypeTagError{Tag: tagByte}
	}
}
