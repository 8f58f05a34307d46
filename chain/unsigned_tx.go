package chain

import (
	"bytes"
	"io"

	"github.com/ergoplasma/ergotree-go/data"
	"github.com/ergoplasma/ergotree-go/ergoctx"
	"github.com/ergoplasma/ergotree-go/sigmaser"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// MaxBoxesPerTx bounds the input, data-input and output lists of a
// transaction (§4.6/§6's N_MAX), matching the network protocol's use of
// a 16-bit count for each list.
const MaxBoxesPerTx = 32767

// Input is a spent box reference without a spending proof — an unsigned
// transaction names which box it consumes and what per-input extension
// (§4.5) the spender attaches, nothing more.
type Input struct {
	BoxID     BoxID
	Extension ergoctx.Extension
}

// OutputCandidate is the creation intent for a new box: everything a
// Box carries except the id, which only exists once the enclosing
// transaction's id is known (§4.6).
type OutputCandidate struct {
	Value          int64
	ErgoTree       []byte
	CreationHeight int32
	Tokens         []Token
	Registers      map[byte]data.Value // additional registers 4..9
}

// TransactionError reports a bound violation at UnsignedTransaction
// construction (§4.6/§7: "the transaction layer maps internal errors to
// TransactionError with distinct variants for each bound violation").
type TransactionError struct {
	Kind string
	Got  int
}

func (e *TransactionError) Error() string {
	return "invalid transaction: " + e.Kind
}

// UnsignedTransaction is the bounded (inputs, data inputs, output
// candidates) tuple ErgoTree expressions are evaluated to guard, plus
// its precomputed id (§3/§4.6).
type UnsignedTransaction struct {
	inputs     []Input
	dataInputs []BoxID
	outputs    []OutputCandidate
	id         BoxID
}

// NewUnsignedTransaction validates the bound on each list (§4.6: "1 ≤
// |inputs| ≤ N_MAX", "0 ≤ |data_inputs| ≤ N_MAX", "1 ≤ |outputs| ≤
// N_MAX") and recomputes the id from the serialization, the same
// builder-recomputes-derived-field discipline the teacher's
// block.Builder.Build() uses for TxsRootFeatures.Root.
func NewUnsignedTransaction(inputs []Input, dataInputs []BoxID, outputs []OutputCandidate) (*UnsignedTransaction, error) {
	if len(inputs) == 0 || len(inputs) > MaxBoxesPerTx {
		return nil, &TransactionError{Kind: "inputs out of bounds", Got: len(inputs)}
	}
	if len(dataInputs) > MaxBoxesPerTx {
		return nil, &TransactionError{Kind: "data inputs out of bounds", Got: len(dataInputs)}
	}
	if len(outputs) == 0 || len(outputs) > MaxBoxesPerTx {
		return nil, &TransactionError{Kind: "outputs out of bounds", Got: len(outputs)}
	}

	tx := &UnsignedTransaction{
		inputs:     append([]Input(nil), inputs...),
		dataInputs: append([]BoxID(nil), dataInputs...),
		outputs:    append([]OutputCandidate(nil), outputs...),
	}
	id, err := computeTxID(tx)
	if err != nil {
		return nil, errors.Wrap(err, "chain.NewUnsignedTransaction")
	}
	tx.id = id
	return tx, nil
}

func (tx *UnsignedTransaction) Inputs() []Input { return append([]Input(nil), tx.inputs...) }

func (tx *UnsignedTransaction) DataInputs() []BoxID { return append([]BoxID(nil), tx.dataInputs...) }

func (tx *UnsignedTransaction) Outputs() []OutputCandidate {
	return append([]OutputCandidate(nil), tx.outputs...)
}

// ID returns the cached transaction id. It always agrees with a fresh
// recomputation (§4.6 invariant) because NewUnsignedTransaction is the
// only constructor and it is computed eagerly.
func (tx *UnsignedTransaction) ID() BoxID { return tx.id }

// DistinctTokenIDs performs the linear, first-appearance-order scan of
// §4.6 across every output candidate's token list.
func (tx *UnsignedTransaction) DistinctTokenIDs() []TokenID {
	seen := make(map[TokenID]bool)
	var out []TokenID
	for _, o := range tx.outputs {
		for _, t := range o.Tokens {
			if !seen[t.ID] {
				seen[t.ID] = true
				out = append(out, t.ID)
			}
		}
	}
	return out
}

// BytesToSign is the canonical serialization the prover signs — this
// unsigned transaction already carries no proof bytes, so it is simply
// the deterministic encoding of every field (§4.6: "build a transient
// 'transaction with proof bytes empty' equivalent").
func (tx *UnsignedTransaction) BytesToSign() ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeUnsignedTx(&buf, tx); err != nil {
		return nil, errors.Wrap(err, "chain.BytesToSign")
	}
	return buf.Bytes(), nil
}

// Blake2b256 is the hash primitive backing the transaction id and
// ComputeBoxID (§6: "TxId = blake2b-256(...)"), exposed for FFI/CLI
// callers that need the same digest over arbitrary bytes.
func Blake2b256(b []byte) [32]byte { return blake2b.Sum256(b) }

func computeTxID(tx *UnsignedTransaction) (BoxID, error) {
	b, err := tx.BytesToSign()
	if err != nil {
		return BoxID{}, err
	}
	return Blake2b256(b), nil
}

// ComputeBoxID derives the id a given output will receive once included
// in a transaction with id txID at position index — blake2b-256 of the
// output's own serialization together with its creating transaction id
// and index, matching the real chain's "id depends on where you were
// created" box-id rule (§6's ID-derivation boundary is explicitly the
// one piece of transaction persistence this module still owns).
func ComputeBoxID(txID BoxID, index int, c OutputCandidate) (BoxID, error) {
	var buf bytes.Buffer
	if err := encodeOutputCandidate(&buf, c); err != nil {
		return BoxID{}, err
	}
	buf.Write(txID[:])
	if err := sigmaser.WriteVLQ(&buf, uint64(index)); err != nil {
		return BoxID{}, err
	}
	return Blake2b256(buf.Bytes()), nil
}

func encodeUnsignedTx(w io.Writer, tx *UnsignedTransaction) error {
	if err := sigmaser.WriteVLQ(w, uint64(len(tx.inputs))); err != nil {
		return err
	}
	for _, in := range tx.inputs {
		if err := encodeInput(w, in); err != nil {
			return err
		}
	}
	if err := sigmaser.WriteVLQ(w, uint64(len(tx.dataInputs))); err != nil {
		return err
	}
	for _, di := range tx.dataInputs {
		if _, err := w.Write(di[:]); err != nil {
			return err
		}
	}
	if err := sigmaser.WriteVLQ(w, uint64(len(tx.outputs))); err != nil {
		return err
	}
	for _, out := range tx.outputs {
		if err := encodeOutputCandidate(w, out); err != nil {
			return err
		}
	}
	return nil
}

func encodeInput(w io.Writer, in Input) error {
	if _, err := w.Write(in.BoxID[:]); err != nil {
		return err
	}
	return encodeExtension(w, in.Extension)
}

func encodeExtension(w io.Writer, ext ergoctx.Extension) error {
	if err := sigmaser.WriteVLQ(w, uint64(ext.Len())); err != nil {
		return err
	}
	ids := ext.VarIDs()
	for _, id := range ids {
		v, _ := ext.Get(id)
		if _, err := w.Write([]byte{id}); err != nil {
			return err
		}
		if err := sigmaser.EncodeSType(w, v.Type()); err != nil {
			return err
		}
		if err := sigmaser.EncodeValue(w, v); err != nil {
			return err
		}
	}
	return nil
}

func encodeOutputCandidate(w io.Writer, c OutputCandidate) error {
	if c.Value < 0 {
		return &InvalidBoxError{Detail: "output value must be non-negative"}
	}
	if err := sigmaser.WriteVLQ(w, uint64(c.Value)); err != nil {
		return err
	}
	if err := sigmaser.WriteBytes(w, c.ErgoTree); err != nil {
		return err
	}
	if err := sigmaser.WriteVLQ(w, uint64(uint32(c.CreationHeight))); err != nil {
		return err
	}
	if err := sigmaser.WriteVLQ(w, uint64(len(c.Tokens))); err != nil {
		return err
	}
	for _, t := range c.Tokens {
		if _, err := w.Write(t.ID[:]); err != nil {
			return err
		}
		if err := sigmaser.WriteVLQ(w, uint64(t.Amount)); err != nil {
			return err
		}
	}
	regIDs := make([]byte, 0, len(c.Registers))
	for id := range c.Registers {
		regIDs = append(regIDs, id)
	}
	sortBytes(regIDs)
	if err := sigmaser.WriteVLQ(w, uint64(len(regIDs))); err != nil {
		return err
	}
	for _, id := range regIDs {
		v := c.Registers[id]
		if _, err := w.Write([]byte{id}); err != nil {
			return err
		}
		if err := sigmaser.EncodeSType(w, v.Type()); err != nil {
			return err
		}
		if err := sigmaser.EncodeValue(w, v); err != nil {
			return err
		}
	}
	return nil
}

// sortBytes is a tiny insertion sort — register counts are at most six
// (4..9), not worth pulling in sort.Slice's reflection-backed closure.
func sortBytes(b []byte) {
	for i := 1; i < len(b); i++ {
		for j := i; j > 0 && b[j-1] > b[j]; j-- {
			b[j-1], b[j] = b[j], b[j-1]
		}
	}
}
