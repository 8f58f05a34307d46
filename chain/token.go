// Package chain implements the unsigned-transaction object ErgoTree
// expressions guard (§3/§4.6): boxes, tokens, inputs, output candidates,
// and the bounded transaction aggregate with its canonical
// serialize-for-signing and blake2b-256 id (§6).
package chain

import (
	"encoding/hex"

	"github.com/ergoplasma/ergotree-go/data"
	"github.com/ergoplasma/ergotree-go/types"
)

// TokenID is a 32-byte token identifier — conventionally the id of the
// box whose creation minted the token.
type TokenID [32]byte

// String renders the id as lowercase hex, matching the teacher's
// acc.Address.String() 0x-free hex-digest convention used for
// on-chain identifiers that are never an Ethereum-style address.
func (id TokenID) String() string { return hex.EncodeToString(id[:]) }

// Token is a (id, amount) pair attached to a box.
type Token struct {
	ID     TokenID
	Amount int64
}

// tupleValue renders t as one (id, amount) element of the
// Coll[Tuple[ByteArray, Long]] shape register 2 (tokens) exposes to
// ExtractRegisterAs/MethodCall (§4.5's "tokens" accessor).
func (t Token) tupleValue() data.Value {
	return data.NewTuple(data.NewByteArray(t.ID[:]), data.Long(t.Amount))
}

// tokensColl builds the Coll[Tuple[ByteArray, Long]] value Box.Tokens()
// and register 2 both expose.
func tokensColl(tokens []Token) data.Coll {
	items := make([]data.Value, len(tokens))
	for i, t := range tokens {
		items[i] = t.tupleValue()
	}
	elem := types.STuple(types.SByteArray, types.SLong)
	c, err := data.NewColl(elem, items)
	if err != nil {
		// tupleValue always produces exactly this shape; disagreement
		// here would mean a programming error, not bad input.
		panic(err)
	}
	return c
}
