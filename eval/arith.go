package eval

import (
	"math"
	"math/big"

	"github.com/ergoplasma/ergotree-go/data"
	"github.com/ergoplasma/ergotree-go/mir"
)

// evalArith applies an ArithOp to two values of the same integer-family
// variant. Fixed-width addition/subtraction/multiplication is checked:
// overflow raises ArithmeticException instead of wrapping (§4.4). Max/Min
// are total. Division raises ArithmeticException on a zero divisor or on
// the one signed overflow case (MinInt / -1).
func evalArith(op mir.ArithOp, l, r data.Value) (data.Value, error) {
	switch lv := l.(type) {
	case data.Byte:
		rv, ok := r.(data.Byte)
		if !ok {
			return nil, &UnexpectedValueError{Node: "BinOp(arith)", Detail: "operands must share a type"}
		}
		return arithByte(op, lv, rv)
	case data.Short:
		rv, ok := r.(data.Short)
		if !ok {
			return nil, &UnexpectedValueError{Node: "BinOp(arith)", Detail: "operands must share a type"}
		}
		return arithShort(op, lv, rv)
	case data.Int:
		rv, ok := r.(data.Int)
		if !ok {
			return nil, &UnexpectedValueError{Node: "BinOp(arith)", Detail: "operands must share a type"}
		}
		return arithInt(op, lv, rv)
	case data.Long:
		rv, ok := r.(data.Long)
		if !ok {
			return nil, &UnexpectedValueError{Node: "BinOp(arith)", Detail: "operands must share a type"}
		}
		return arithLong(op, lv, rv)
	case data.BigInt:
		rv, ok := r.(data.BigInt)
		if !ok {
			return nil, &UnexpectedValueError{Node: "BinOp(arith)", Detail: "operands must share a type"}
		}
		return arithBigInt(op, lv, rv)
	default:
		return nil, &UnexpectedValueError{Node: "BinOp(arith)", Detail: "operand is not a numeric variant"}
	}
}

// widen64 performs the operation in int64 arithmetic, where overflow of
// the narrower width is detectable by range-checking the int64 result —
// valid for Byte/Short/Int since int64 cannot itself overflow for these
// magnitudes.
func widen64(op mir.ArithOp, l, r int64) (int64, error) {
	switch op {
	case mir.Plus:
		return l + r, nil
	case mir.Minus:
		return l - r, nil
	case mir.Multiply:
		return l * r, nil
	case mir.Divide:
		if r == 0 {
			return 0, &ArithmeticException{Op: "Divide", Detail: "division by zero"}
		}
		return l / r, nil
	case mir.Max:
		if l > r {
			return l, nil
		}
		return r, nil
	case mir.Min:
		if l < r {
			return l, nil
		}
		return r, nil
	default:
		return 0, &UnexpectedValueError{Node: "BinOp(arith)", Detail: "unknown ArithOp"}
	}
}

func arithByte(op mir.ArithOp, l, r data.Byte) (data.Value, error) {
	res, err := widen64(op, int64(l), int64(r))
	if err != nil {
		return nil, err
	}
	if res < math.MinInt8 || res > math.MaxInt8 {
		return nil, &ArithmeticException{Op: op.OpCode().String(), Detail: "Byte overflow"}
	}
	return data.Byte(res), nil
}

func arithShort(op mir.ArithOp, l, r data.Short) (data.Value, error) {
	res, err := widen64(op, int64(l), int64(r))
	if err != nil {
		return nil, err
	}
	if res < math.MinInt16 || res > math.MaxInt16 {
		return nil, &ArithmeticException{Op: op.OpCode().String(), Detail: "Short overflow"}
	}
	return data.Short(res), nil
}

func arithInt(op mir.ArithOp, l, r data.Int) (data.Value, error) {
	res, err := widen64(op, int64(l), int64(r))
	if err != nil {
		return nil, err
	}
	if res < math.MinInt32 || res > math.MaxInt32 {
		return nil, &ArithmeticException{Op: op.OpCode().String(), Detail: "Int overflow"}
	}
	return data.Int(res), nil
}

// arithLong cannot widen further in a native type, so each operator
// checks for overflow directly against int64's own range.
func arithLong(op mir.ArithOp, l, r data.Long) (data.Value, error) {
	a, b := int64(l), int64(r)
	switch op {
	case mir.Plus:
		sum := a + b
		if (b > 0 && sum < a) || (b < 0 && sum > a) {
			return nil, &ArithmeticException{Op: "Plus", Detail: "Long overflow"}
		}
		return data.Long(sum), nil
	case mir.Minus:
		diff := a - b
		if (b < 0 && diff < a) || (b > 0 && diff > a) {
			return nil, &ArithmeticException{Op: "Minus", Detail: "Long overflow"}
		}
		return data.Long(diff), nil
	case mir.Multiply:
		if a == 0 || b == 0 {
			return data.Long(0), nil
		}
		if (a == math.MinInt64 && b == -1) || (a == -1 && b == math.MinInt64) {
			return nil, &ArithmeticException{Op: "Multiply", Detail: "Long overflow"}
		}
		prod := a * b
		if prod/b != a {
			return nil, &ArithmeticException{Op: "Multiply", Detail: "Long overflow"}
		}
		return data.Long(prod), nil
	case mir.Divide:
		if b == 0 {
			return nil, &ArithmeticException{Op: "Divide", Detail: "division by zero"}
		}
		if a == math.MinInt64 && b == -1 {
			return nil, &ArithmeticException{Op: "Divide", Detail: "Long overflow"}
		}
		return data.Long(a / b), nil
	case mir.Max:
		if a > b {
			return data.Long(a), nil
		}
		return data.Long(b), nil
	case mir.Min:
		if a < b {
			return data.Long(a), nil
		}
		return data.Long(b), nil
	default:
		return nil, &UnexpectedValueError{Node: "BinOp(arith)", Detail: "unknown ArithOp"}
	}
}

// arithBigInt operates on arbitrary-precision values, re-validating the
// 256-bit magnitude bound on the result through data.NewBigInt (§9 Open
// Question: exceeding the bound is ArithmeticException, never a silent
// wraparound or zero).
func arithBigInt(op mir.ArithOp, l, r data.BigInt) (data.Value, error) {
	a, b := l.Big(), r.Big()
	var res *big.Int
	switch op {
	case mir.Plus:
		res = new(big.Int).Add(a, b)
	case mir.Minus:
		res = new(big.Int).Sub(a, b)
	case mir.Multiply:
		res = new(big.Int).Mul(a, b)
	case mir.Divide:
		if b.Sign() == 0 {
			return nil, &ArithmeticException{Op: "Divide", Detail: "division by zero"}
		}
		res = new(big.Int).Quo(a, b)
	case mir.Max:
		if a.Cmp(b) >= 0 {
			res = a
		} else {
			res = b
		}
	case mir.Min:
		if a.Cmp(b) <= 0 {
			res = a
		} else {
			res = b
		}
	default:
		return nil, &UnexpectedValueError{Node: "BinOp(arith)", Detail: "unknown ArithOp"}
	}
	bi, err := data.NewBigInt(res)
	if err != nil {
		return nil, &ArithmeticException{Op: op.OpCode().String(), Detail: err.Error()}
	}
	return bi, nil
}

// evalRelation applies an ordering operator (GT/GE/LT/LE); Eq/NEq and
// And/Or are handled directly by the evaluator (structural equality and
// laziness respectively, §4.4).
func evalRelation(op mir.RelationOp, l, r data.Value) (bool, error) {
	cmp, err := compareNumeric(l, r)
	if err != nil {
		return false, err
	}
	switch op {
	case mir.GT:
		return cmp > 0, nil
	case mir.GE:
		return cmp >= 0, nil
	case mir.LT:
		return cmp < 0, nil
	case mir.LE:
		return cmp <= 0, nil
	default:
		return false, &UnexpectedValueError{Node: "BinOp(relation)", Detail: "not an ordering operator"}
	}
}

// compareNumeric returns -1/0/1, defined only for matching integer or
// BigInt operands (§4.4).
func compareNumeric(l, r data.Value) (int, error) {
	switch lv := l.(type) {
	case data.Byte:
		rv, ok := r.(data.Byte)
		if !ok {
			break
		}
		return cmpInt64(int64(lv), int64(rv)), nil
	case data.Short:
		rv, ok := r.(data.Short)
		if !ok {
			break
		}
		return cmpInt64(int64(lv), int64(rv)), nil
	case data.Int:
		rv, ok := r.(data.Int)
		if !ok {
			break
		}
		return cmpInt64(int64(lv), int64(rv)), nil
	case data.Long:
		rv, ok := r.(data.Long)
		if !ok {
			break
		}
		return cmpInt64(int64(lv), int64(rv)), nil
	case data.BigInt:
		rv, ok := r.(data.BigInt)
		if !ok {
			break
		}
		return lv.Big().Cmp(rv.Big()), nil
	}
	return 0, &UnexpectedValueError{Node: "BinOp(relation)", Detail: "ordering is defined only for matching integer or BigInt operands"}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
