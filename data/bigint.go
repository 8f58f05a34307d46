package data

import (
	"fmt"
	"math/big"

	"github.com/ergoplasma/ergotree-go/types"
	"github.com/holiman/uint256"
)

// BigIntMaxBits sets the BigInt magnitude bound: a value's absolute value
// may be at most 2^(BigIntMaxBits-1), so both -2^255 and +2^255 are in
// range. The wire layer encodes a BigInt as a sign byte plus a
// length-prefixed magnitude, so the bound is enforced here, not by the
// encoding. This is a deliberate decision, not a silently-assumed
// default — see DESIGN.md.
const BigIntMaxBits = 256

// BigInt wraps an arbitrary-precision signed integer, bounded to
// BigIntMaxBits of magnitude. The wrapper mirrors the teacher's bn.Int:
// a value type holding a *big.Int so copies never share state.
type BigInt struct {
	value *big.Int
}

var bigZero = new(big.Int)

// NewBigInt builds a BigInt from a big.Int, returning an error if its
// magnitude exceeds BigIntMaxBits.
func NewBigInt(v *big.Int) (BigInt, error) {
	if v == nil {
		return BigInt{}, nil
	}
	if !fitsBigIntBound(v) {
		return BigInt{}, &BigIntOutOfBoundsError{Value: new(big.Int).Set(v)}
	}
	return BigInt{value: new(big.Int).Set(v)}, nil
}

// MustBigInt is like NewBigInt but panics on out-of-bound input; intended
// for tests and constant tables built from literals known to be in range.
func MustBigInt(v *big.Int) BigInt {
	b, err := NewBigInt(v)
	if err != nil {
		panic(err)
	}
	return b
}

func fitsBigIntBound(v *big.Int) bool {
	abs := new(uint256.Int)
	_, overflow := abs.SetFromBig(new(big.Int).Abs(v))
	if overflow {
		return false
	}
	// uint256 covers 256 unsigned bits; a 256-bit signed magnitude bound
	// allows abs value up to and including 2^255 (one bit reserved for
	// sign).
	limit := new(uint256.Int).Lsh(uint256.NewInt(1), BigIntMaxBits-1)
	return abs.Lt(limit) || abs.Eq(limit)
}

// Big returns a copy of the underlying value as *big.Int.
func (b BigInt) Big() *big.Int {
	if b.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(b.value)
}

func (b BigInt) Type() types.SType { return types.SBigInt }

func (b BigInt) Equal(other Value) bool {
	o, ok := other.(BigInt)
	return ok && b.Big().Cmp(o.Big()) == 0
}

func (b BigInt) String() string {
	if b.value == nil {
		return bigZero.String()
	}
	return b.value.String()
}

// BigIntOutOfBoundsError reports a BigInt literal or arithmetic result
// whose magnitude exceeds BigIntMaxBits.
type BigIntOutOfBoundsError struct {
	Value *big.Int
}

func (e *BigIntOutOfBoundsError) Error() string {
	return fmt.Sprintf("bigint magnitude exceeds %d bits: %s", BigIntMaxBits, e.Value.String())
}
