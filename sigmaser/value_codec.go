package sigmaser

import (
	"bytes"
	"io"
	"math/big"

	"github.com/ergoplasma/ergotree-go/data"
	"github.com/ergoplasma/ergotree-go/types"
)

// maxValueDepth bounds nested compound values (Coll[Tuple[Coll[...]]]).
const maxValueDepth = 64

// EncodeValue writes v's payload (§4.3: "fixed-width for primitives,
// length:bytes for arrays, recursive for compound types"). The caller is
// responsible for writing v's SType tag first, via EncodeSType.
func EncodeValue(w io.Writer, v data.Value) error {
	switch x := v.(type) {
	case data.Boolean:
		b := byte(0)
		if bool(x) {
			b = 1
		}
		_, err := w.Write([]byte{b})
		return err
	case data.Byte:
		_, err := w.Write([]byte{byte(x)})
		return err
	case data.Short:
		return WriteZigZagVLQ(w, int64(x))
	case data.Int:
		return WriteZigZagVLQ(w, int64(x))
	case data.Long:
		return WriteZigZagVLQ(w, int64(x))
	case data.BigInt:
		return encodeBigInt(w, x)
	case data.ByteArray:
		return WriteBytes(w, x.Bytes())
	case data.GroupElement:
		return WriteBytes(w, x.Bytes())
	case data.SigmaProp:
		return WriteBytes(w, x.Tree())
	case data.AvlTree:
		return encodeAvlTree(w, x)
	case data.Option:
		if !x.IsDefined() {
			_, err := w.Write([]byte{0})
			return err
		}
		if _, err := w.Write([]byte{1}); err != nil {
			return err
		}
		return EncodeValue(w, x.Get())
	case data.Coll:
		if err := WriteVLQ(w, uint64(x.Len())); err != nil {
			return err
		}
		for _, item := range x.Items() {
			if err := EncodeValue(w, item); err != nil {
				return err
			}
		}
		return nil
	case data.Tuple:
		for _, item := range x.Items() {
			if err := EncodeValue(w, item); err != nil {
				return err
			}
		}
		return nil
	default:
		// data.BoxValue (chain.Box) never appears as a Const literal —
		// boxes only arrive through Context, never the constant stream.
		return &ReconstructionTypeError{Node: "Const value", Cause: &UnexpectedTypeForEncodingError{}}
	}
}

// DecodeValue reads a value payload for the given (already-decoded) tpe.
func DecodeValue(r *bytes.Reader, tpe types.SType) (data.Value, error) {
	return decodeValue(r, tpe, 0)
}

func decodeValue(r *bytes.Reader, tpe types.SType, depth int) (data.Value, error) {
	if depth > maxValueDepth {
		return nil, &DepthExceededError{Limit: maxValueDepth}
	}
	switch tpe.Code() {
	case types.CBoolean:
		b, err := r.ReadByte()
		if err != nil {
			return nil, &TruncatedInputError{Context: "Boolean"}
		}
		return data.Boolean(b != 0), nil
	case types.CByte:
		b, err := r.ReadByte()
		if err != nil {
			return nil, &TruncatedInputError{Context: "Byte"}
		}
		return data.Byte(int8(b)), nil
	case types.CShort:
		v, err := ReadZigZagVLQ(r)
		if err != nil {
			return nil, err
		}
		return data.Short(v), nil
	case types.CInt:
		v, err := ReadZigZagVLQ(r)
		if err != nil {
			return nil, err
		}
		return data.Int(v), nil
	case types.CLong:
		v, err := ReadZigZagVLQ(r)
		if err != nil {
			return nil, err
		}
		return data.Long(v), nil
	case types.CBigInt:
		return decodeBigInt(r)
	case types.CByteArray:
		b, err := ReadBytes(r)
		if err != nil {
			return nil, err
		}
		return data.NewByteArray(b), nil
	case types.CGroupElement:
		b, err := ReadBytes(r)
		if err != nil {
			return nil, err
		}
		ge, err := data.NewGroupElement(b)
		if err != nil {
			return nil, &ReconstructionTypeError{Node: "GroupElement", Cause: err}
		}
		return ge, nil
	case types.CSigmaProp:
		b, err := ReadBytes(r)
		if err != nil {
			return nil, err
		}
		return data.NewSigmaProp(b), nil
	case types.CAvlTree:
		return decodeAvlTree(r)
	case types.COption:
		present, err := r.ReadByte()
		if err != nil {
			return nil, &TruncatedInputError{Context: "Option presence"}
		}
		if present == 0 {
			return data.NewNone(tpe.Elem()), nil
		}
		v, err := decodeValue(r, tpe.Elem(), depth+1)
		if err != nil {
			return nil, err
		}
		return data.NewSome(v), nil
	case types.CColl:
		n, err := ReadVLQ(r)
		if err != nil {
			return nil, err
		}
		items := make([]data.Value, n)
		for i := range items {
			v, err := decodeValue(r, tpe.Elem(), depth+1)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		c, err := data.NewColl(tpe.Elem(), items)
		if err != nil {
			return nil, &ReconstructionTypeError{Node: "Coll", Cause: err}
		}
		return c, nil
	case types.CTuple:
		slots := tpe.Items()
		items := make([]data.Value, len(slots))
		for i, st := range slots {
			v, err := decodeValue(r, st, depth+1)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return data.NewTuple(items...), nil
	default:
		return nil, &ReconstructionTypeError{Node: "Const value", Cause: &UnexpectedTypeForEncodingError{}}
	}
}

// encodeBigInt writes a sign byte (0 non-negative, 1 negative) followed
// by the length-prefixed unsigned magnitude.
func encodeBigInt(w io.Writer, b data.BigInt) error {
	v := b.Big()
	sign := byte(0)
	if v.Sign() < 0 {
		sign = 1
	}
	if _, err := w.Write([]byte{sign}); err != nil {
		return err
	}
	return WriteBytes(w, new(big.Int).Abs(v).Bytes())
}

func decodeBigInt(r *bytes.Reader) (data.Value, error) {
	sign, err := r.ReadByte()
	if err != nil {
		return nil, &TruncatedInputError{Context: "BigInt sign"}
	}
	mag, err := ReadBytes(r)
	if err != nil {
		return nil, err
	}
	v := new(big.Int).SetBytes(mag)
	if sign == 1 {
		v.Neg(v)
	}
	bi, err := data.NewBigInt(v)
	if err != nil {
		return nil, &ReconstructionTypeError{Node: "BigInt", Cause: err}
	}
	return bi, nil
}

func encodeAvlTree(w io.Writer, t data.AvlTree) error {
	if err := WriteBytes(w, t.Digest); err != nil {
		return err
	}
	if err := WriteZigZagVLQ(w, int64(t.KeyLength)); err != nil {
		return err
	}
	if t.ValueLengthOpt == nil {
		_, err := w.Write([]byte{0})
		return err
	}
	if _, err := w.Write([]byte{1}); err != nil {
		return err
	}
	return WriteZigZagVLQ(w, int64(*t.ValueLengthOpt))
}

func decodeAvlTree(r *bytes.Reader) (data.Value, error) {
	digest, err := ReadBytes(r)
	if err != nil {
		return nil, err
	}
	keyLen, err := ReadZigZagVLQ(r)
	if err != nil {
		return nil, err
	}
	present, err := r.ReadByte()
	if err != nil {
		return nil, &TruncatedInputError{Context: "AvlTree valueLength presence"}
	}
	var valueLenOpt *int32
	if present != 0 {
		vl, err := ReadZigZagVLQ(r)
		if err != nil {
			return nil, err
		}
		v := int32(vl)
		valueLenOpt = &v
	}
	return data.AvlTree{Digest: digest, KeyLength: int32(keyLen), ValueLengthOpt: valueLenOpt}, nil
}

// UnexpectedTypeForEncodingError reports a Value variant this codec does
// not know how to place on the wire (currently only data.BoxValue
// implementations, which never appear as Const literals).
type UnexpectedTypeForEncodingError struct{}

func (e *UnexpectedTypeForEncodingError) Error() string {
	return "sigmaser: value variant has no wire encoding"
}
