package sigmaser

import (
	"bytes"
	"io"

	"github.com/ergoplasma/ergotree-go/mir"
	"github.com/ergoplasma/ergotree-go/types"
)

// maxExprDepth bounds nested Expr trees — the recursion-depth guard that
// keeps an adversarial or corrupt stream from driving the parser's own
// call stack to overflow (§9).
const maxExprDepth = 256

// EncodeExpr writes one opcode byte followed by e's node-specific
// payload (§4.3), recursing into children. Constants are always emitted
// inline — this implementation's canonical mode (§9: "must both emit one
// mode and accept both when parsing").
func EncodeExpr(w io.Writer, e mir.Expr) error {
	if _, err := w.Write([]byte{byte(e.OpCode())}); err != nil {
		return err
	}
	switch n := e.(type) {
	case *mir.Const:
		if err := EncodeSType(w, n.Value.Type()); err != nil {
			return err
		}
		return EncodeValue(w, n.Value)

	case mir.Height:
		return nil

	case *mir.If:
		if err := EncodeExpr(w, n.Condition); err != nil {
			return err
		}
		if err := EncodeExpr(w, n.TrueBranch); err != nil {
			return err
		}
		return EncodeExpr(w, n.FalseBranch)

	case *mir.BinOp:
		if err := EncodeExpr(w, n.Left); err != nil {
			return err
		}
		return EncodeExpr(w, n.Right)

	case *mir.Coll:
		if err := EncodeSType(w, n.ElemTpe); err != nil {
			return err
		}
		if err := WriteVLQ(w, uint64(len(n.Items))); err != nil {
			return err
		}
		for _, it := range n.Items {
			if err := EncodeExpr(w, it); err != nil {
				return err
			}
		}
		return nil

	case *mir.Tuple:
		if err := WriteVLQ(w, uint64(len(n.Items))); err != nil {
			return err
		}
		for _, it := range n.Items {
			if err := EncodeExpr(w, it); err != nil {
				return err
			}
		}
		return nil

	case *mir.GetVar:
		if _, err := w.Write([]byte{n.Index}); err != nil {
			return err
		}
		return EncodeSType(w, n.Tpe_)

	case *mir.MethodCall:
		if _, err := w.Write([]byte{byte(n.Method.ID.TypeCode), n.Method.ID.MethodCode}); err != nil {
			return err
		}
		if err := EncodeExpr(w, n.Receiver); err != nil {
			return err
		}
		if err := WriteVLQ(w, uint64(len(n.Args))); err != nil {
			return err
		}
		for _, a := range n.Args {
			if err := EncodeExpr(w, a); err != nil {
				return err
			}
		}
		return nil

	case *mir.FuncValue:
		if err := WriteVLQ(w, uint64(len(n.Params))); err != nil {
			return err
		}
		for _, p := range n.Params {
			if err := WriteVLQ(w, uint64(p.Index)); err != nil {
				return err
			}
			if err := EncodeSType(w, p.Tpe); err != nil {
				return err
			}
		}
		return EncodeExpr(w, n.Body)

	case *mir.ValUse:
		if err := WriteVLQ(w, uint64(n.ValID)); err != nil {
			return err
		}
		return EncodeSType(w, n.Tpe_)

	case *mir.Apply:
		if err := EncodeExpr(w, n.Fn); err != nil {
			return err
		}
		if err := WriteVLQ(w, uint64(len(n.Args))); err != nil {
			return err
		}
		for _, a := range n.Args {
			if err := EncodeExpr(w, a); err != nil {
				return err
			}
		}
		return nil

	case *mir.ExtractRegisterAs:
		if err := EncodeExpr(w, n.Box); err != nil {
			return err
		}
		if _, err := w.Write([]byte{n.RegID}); err != nil {
			return err
		}
		return EncodeSType(w, n.Tpe_)

	case mir.GroupGenerator:
		return nil

	case *mir.ProveDlog:
		return EncodeExpr(w, n.Value)

	default:
		return &ReconstructionTypeError{Node: "Expr", Cause: &UnexpectedTypeForEncodingError{}}
	}
}

// ConstTable resolves OpConstPlaceholder references (§4.3/§9): the
// deduplicated-constant-table wire mode. This implementation always
// emits inline, but Parse accepts either — a placeholder with no table
// supplied is a parse failure, not a silent zero value.
type ConstTable []mir.Expr

// DecodeExpr reads one Expr node from r, recursing with a depth guard.
// constTable resolves any table-mode Const reference encountered; pass
// nil if the stream is known to be inline-only.
func DecodeExpr(r *bytes.Reader, constTable ConstTable) (mir.Expr, error) {
	return decodeExpr(r, constTable, 0)
}

func decodeExpr(r *bytes.Reader, constTable ConstTable, depth int) (mir.Expr, error) {
	if depth > maxExprDepth {
		return nil, &DepthExceededError{Limit: maxExprDepth}
	}
	opByte, err := r.ReadByte()
	if err != nil {
		return nil, &TruncatedInputError{Context: "opcode"}
	}
	op := mir.OpCode(opByte)

	switch op {
	case mir.OpConst:
		tpe, err := DecodeSType(r)
		if err != nil {
			return nil, err
		}
		v, err := DecodeValue(r, tpe)
		if err != nil {
			return nil, err
		}
		return mir.NewConst(v), nil

	case mir.OpConstPlaceholder:
		idx, err := ReadVLQ(r)
		if err != nil {
			return nil, err
		}
		if constTable == nil || idx >= uint64(len(constTable)) {
			return nil, &ReconstructionTypeError{Node: "ConstPlaceholder", Cause: &UnexpectedTypeForEncodingError{}}
		}
		return constTable[idx], nil

	case mir.OpHeight:
		return mir.Height{}, nil

	case mir.OpIf:
		cond, err := decodeExpr(r, constTable, depth+1)
		if err != nil {
			return nil, err
		}
		trueB, err := decodeExpr(r, constTable, depth+1)
		if err != nil {
			return nil, err
		}
		falseB, err := decodeExpr(r, constTable, depth+1)
		if err != nil {
			return nil, err
		}
		ifExpr, err := mir.NewIf(cond, trueB, falseB)
		if err != nil {
			return nil, &ReconstructionTypeError{Node: "If", Cause: err}
		}
		return ifExpr, nil

	case mir.OpPlus, mir.OpMinus, mir.OpMultiply, mir.OpDivide, mir.OpMax, mir.OpMin,
		mir.OpEq, mir.OpNEq, mir.OpGT, mir.OpGE, mir.OpLT, mir.OpLE, mir.OpAnd, mir.OpOr:
		left, err := decodeExpr(r, constTable, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(r, constTable, depth+1)
		if err != nil {
			return nil, err
		}
		kind := binOpKindForOpcode(op)
		binOp, err := mir.NewBinOp(kind, left, right)
		if err != nil {
			return nil, &ReconstructionTypeError{Node: "BinOp", Cause: err}
		}
		return binOp, nil

	case mir.OpColl:
		elemTpe, err := DecodeSType(r)
		if err != nil {
			return nil, err
		}
		n, err := ReadVLQ(r)
		if err != nil {
			return nil, err
		}
		items := make([]mir.Expr, n)
		for i := range items {
			items[i], err = decodeExpr(r, constTable, depth+1)
			if err != nil {
				return nil, err
			}
		}
		coll, err := mir.NewColl(elemTpe, items)
		if err != nil {
			return nil, &ReconstructionTypeError{Node: "Coll", Cause: err}
		}
		return coll, nil

	case mir.OpTuple:
		n, err := ReadVLQ(r)
		if err != nil {
			return nil, err
		}
		items := make([]mir.Expr, n)
		for i := range items {
			items[i], err = decodeExpr(r, constTable, depth+1)
			if err != nil {
				return nil, err
			}
		}
		return mir.NewTuple(items), nil

	case mir.OpGetVar:
		idx, err := r.ReadByte()
		if err != nil {
			return nil, &TruncatedInputError{Context: "GetVar.index"}
		}
		tpe, err := DecodeSType(r)
		if err != nil {
			return nil, err
		}
		return mir.NewGetVar(idx, tpe), nil

	case mir.OpMethodCall:
		typeCodeByte, err := r.ReadByte()
		if err != nil {
			return nil, &TruncatedInputError{Context: "MethodCall.typeCode"}
		}
		methodCodeByte, err := r.ReadByte()
		if err != nil {
			return nil, &TruncatedInputError{Context: "MethodCall.methodCode"}
		}
		receiver, err := decodeExpr(r, constTable, depth+1)
		if err != nil {
			return nil, err
		}
		n, err := ReadVLQ(r)
		if err != nil {
			return nil, err
		}
		args := make([]mir.Expr, n)
		for i := range args {
			args[i], err = decodeExpr(r, constTable, depth+1)
			if err != nil {
				return nil, err
			}
		}
		mc, err := mir.NewMethodCall(receiver, mir.MethodID{TypeCode: types.Code(typeCodeByte), MethodCode: methodCodeByte}, args)
		if err != nil {
			return nil, &ReconstructionTypeError{Node: "MethodCall", Cause: err}
		}
		return mc, nil

	case mir.OpFuncValue:
		n, err := ReadVLQ(r)
		if err != nil {
			return nil, err
		}
		params := make([]mir.Param, n)
		for i := range params {
			idx, err := ReadVLQ(r)
			if err != nil {
				return nil, err
			}
			tpe, err := DecodeSType(r)
			if err != nil {
				return nil, err
			}
			params[i] = mir.Param{Index: int(idx), Tpe: tpe}
		}
		body, err := decodeExpr(r, constTable, depth+1)
		if err != nil {
			return nil, err
		}
		return mir.NewFuncValue(params, body), nil

	case mir.OpValUse:
		id, err := ReadVLQ(r)
		if err != nil {
			return nil, err
		}
		tpe, err := DecodeSType(r)
		if err != nil {
			return nil, err
		}
		return mir.NewValUse(int(id), tpe), nil

	case mir.OpApply:
		fn, err := decodeExpr(r, constTable, depth+1)
		if err != nil {
			return nil, err
		}
		n, err := ReadVLQ(r)
		if err != nil {
			return nil, err
		}
		args := make([]mir.Expr, n)
		for i := range args {
			args[i], err = decodeExpr(r, constTable, depth+1)
			if err != nil {
				return nil, err
			}
		}
		app, err := mir.NewApply(fn, args)
		if err != nil {
			return nil, &ReconstructionTypeError{Node: "Apply", Cause: err}
		}
		return app, nil

	case mir.OpExtractRegisterAs:
		box, err := decodeExpr(r, constTable, depth+1)
		if err != nil {
			return nil, err
		}
		regID, err := r.ReadByte()
		if err != nil {
			return nil, &TruncatedInputError{Context: "ExtractRegisterAs.regID"}
		}
		tpe, err := DecodeSType(r)
		if err != nil {
			return nil, err
		}
		ex, err := mir.NewExtractRegisterAs(box, regID, tpe)
		if err != nil {
			return nil, &ReconstructionTypeError{Node: "ExtractRegisterAs", Cause: err}
		}
		return ex, nil

	case mir.OpGroupGenerator:
		return mir.GroupGenerator{}, nil

	case mir.OpProveDlog:
		v, err := decodeExpr(r, constTable, depth+1)
		if err != nil {
			return nil, err
		}
		pd, err := mir.NewProveDlog(v)
		if err != nil {
			return nil, &ReconstructionTypeError{Node: "ProveDlog", Cause: err}
		}
		return pd, nil

	default:
		return nil, &UnknownOpcodeError{Opcode: opByte}
	}
}

func binOpKindForOpcode(op mir.OpCode) mir.BinOpKind {
	switch op {
	case mir.OpPlus:
		return mir.Arith(mir.Plus)
	case mir.OpMinus:
		return mir.Arith(mir.Minus)
	case mir.OpMultiply:
		return mir.Arith(mir.Multiply)
	case mir.OpDivide:
		return mir.Arith(mir.Divide)
	case mir.OpMax:
		return mir.Arith(mir.Max)
	case mir.OpMin:
		return mir.Arith(mir.Min)
	case mir.OpEq:
		return mir.Relation(mir.Eq)
	case mir.OpNEq:
		return mir.Relation(mir.NEq)
	case mir.OpGT:
		return mir.Relation(mir.GT)
	case mir.OpGE:
		return mir.Relation(mir.GE)
	case mir.OpLT:
		return mir.Relation(mir.LT)
	case mir.OpLE:
		return mir.Relation(mir.LE)
	case mir.OpAnd:
		return mir.Relation(mir.And)
	default:
		return mir.Relation(mir.Or)
	}
}
