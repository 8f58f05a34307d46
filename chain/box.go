package chain

import (
	"encoding/hex"

	"github.com/ergoplasma/ergotree-go/data"
	"github.com/ergoplasma/ergotree-go/types"
)

// BoxID is the 32-byte identifier of a box — the blake2b-256 digest of
// the box's own serialization together with the index of the
// transaction output that created it (see ComputeBoxID).
type BoxID [32]byte

func (id BoxID) String() string { return hex.EncodeToString(id[:]) }

// maxRegisters matches spec.md §3/glossary: "up to ten registers",
// indexed 0..9. Registers 0-3 are the mandatory value/ergoTree/tokens/
// creationInfo slots every box carries; 4-9 are additional, spender-
// defined registers.
const maxRegisters = 10

// Box is the full UTXO-style record the evaluation Context exposes for
// inputs, data inputs and outputs (§3): monetary value, guarding
// ergo-tree, creation height, tokens and up to ten registers. It
// implements data.BoxFields so the evaluator's MethodCall and
// ExtractRegisterAs dispatch (§4.5) can operate on it without importing
// this package.
type Box struct {
	id             BoxID
	value          int64
	ergoTree       []byte
	creationHeight int32
	tokens         []Token
	registers      map[byte]data.Value // additional registers 4..9 only
}

// NewBox builds a Box with a precomputed id. Additional registers are
// indices 4..9 of extra; an index outside that range is rejected, the
// same eager-validation discipline the teacher's block.Builder applies
// to its own fields.
func NewBox(id BoxID, value int64, ergoTree []byte, creationHeight int32, tokens []Token, extra map[byte]data.Value) (*Box, error) {
	if value < 0 {
		return nil, &InvalidBoxError{Detail: "box value must be non-negative"}
	}
	regs := make(map[byte]data.Value, len(extra))
	for k, v := range extra {
		if k < 4 || k >= maxRegisters {
			return nil, &InvalidBoxError{Detail: "additional registers are indices 4..9"}
		}
		regs[k] = v
	}
	return &Box{
		id:             id,
		value:          value,
		ergoTree:       append([]byte(nil), ergoTree...),
		creationHeight: creationHeight,
		tokens:         append([]Token(nil), tokens...),
		registers:      regs,
	}, nil
}

// InvalidBoxError reports a box construction that violates §3/§4.6's
// field invariants.
type InvalidBoxError struct{ Detail string }

func (e *InvalidBoxError) Error() string { return "invalid box: " + e.Detail }

func (b *Box) Type() types.SType { return types.SBox }

func (b *Box) Equal(other data.Value) bool {
	o, ok := other.(*Box)
	return ok && b.id == o.id
}

func (b *Box) BoxID() [32]byte { return b.id }

func (b *Box) Value() data.Long { return data.Long(b.value) }

func (b *Box) CreationHeight() data.Int { return data.Int(b.creationHeight) }

func (b *Box) ErgoTree() []byte { return append([]byte(nil), b.ergoTree...) }

func (b *Box) TokenList() []Token { return append([]Token(nil), b.tokens...) }

func (b *Box) Tokens() data.Coll { return tokensColl(b.tokens) }

// Register reads register id (0..9): 0 is value, 1 is the ergo-tree
// bytes, 2 is tokens, 3 is creation-height paired with the box id
// ("creation info", matching the real chain's R3 convention), 4..9 are
// additional spender-defined registers. An index outside the
// transaction's register range or one that was never set returns
// (nil, false), matching §4.5's "absent register is None" contract —
// ExtractRegisterAs turns that into Option(None), never an error.
func (b *Box) Register(id byte) (data.Value, bool) {
	switch id {
	case 0:
		return b.Value(), true
	case 1:
		return data.NewByteArray(b.ergoTree), true
	case 2:
		return b.Tokens(), true
	case 3:
		return data.NewTuple(b.CreationHeight(), data.NewByteArray(b.id[:])), true
	default:
		if id >= maxRegisters {
			return nil, false
		}
		v, ok := b.registers[id]
		return v, ok
	}
}
