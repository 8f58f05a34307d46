package chain

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/ergoplasma/ergotree-go/data"
	"github.com/ergoplasma/ergotree-go/ergoctx"
	"github.com/ergoplasma/ergotree-go/sigmaser"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// The JSON shapes below mirror the teacher's api/account_types.go style:
// exported struct fields with json tags, hexutil.Bytes for anything that
// is logically a byte string rather than a number. A typed Const (an
// extension variable or an additional register value) is projected as
// the hex of its own sigmaser type-tag+payload encoding rather than a
// bespoke per-variant JSON shape — §4.7 only requires the mapping to be
// bidirectional and lossless, not human-editable per field.

type jsonTypedValue struct {
	Bytes hexutil.Bytes `json:"bytes"`
}

func marshalTypedValue(v data.Value) (jsonTypedValue, error) {
	var buf bytes.Buffer
	if err := sigmaser.EncodeSType(&buf, v.Type()); err != nil {
		return jsonTypedValue{}, err
	}
	if err := sigmaser.EncodeValue(&buf, v); err != nil {
		return jsonTypedValue{}, err
	}
	return jsonTypedValue{Bytes: buf.Bytes()}, nil
}

func unmarshalTypedValue(j jsonTypedValue) (data.Value, error) {
	r := bytes.NewReader(j.Bytes)
	tpe, err := sigmaser.DecodeSType(r)
	if err != nil {
		return nil, err
	}
	return sigmaser.DecodeValue(r, tpe)
}

type jsonInput struct {
	BoxID     hexutil.Bytes             `json:"boxId"`
	Extension map[string]jsonTypedValue `json:"extension,omitempty"`
}

type jsonToken struct {
	TokenID hexutil.Bytes `json:"tokenId"`
	Amount  int64         `json:"amount"`
}

type jsonOutput struct {
	Value                int64                     `json:"value"`
	ErgoTree             hexutil.Bytes             `json:"ergoTreeBytes"`
	CreationHeight       int32                     `json:"creationHeight"`
	Tokens               []jsonToken               `json:"tokens,omitempty"`
	AdditionalRegisters  map[string]jsonTypedValue `json:"additionalRegisters,omitempty"`
}

type jsonUnsignedTransaction struct {
	Inputs     []jsonInput  `json:"inputs"`
	DataInputs []string     `json:"dataInputs"`
	Outputs    []jsonOutput `json:"outputs"`
	ID         string       `json:"id"`
}

// MarshalJSON writes the FFI/wallet-facing projection of tx (§4.7):
// inputs and outputs verbatim in order, an empty array (never an absent
// key) for "dataInputs" when there are none.
func (tx *UnsignedTransaction) MarshalJSON() ([]byte, error) {
	out := jsonUnsignedTransaction{
		ID:         tx.id.String(),
		DataInputs: []string{},
	}
	for _, in := range tx.inputs {
		ji := jsonInput{BoxID: in.BoxID[:]}
		ids := in.Extension.VarIDs()
		if len(ids) > 0 {
			ji.Extension = make(map[string]jsonTypedValue, len(ids))
			for _, id := range ids {
				v, _ := in.Extension.Get(id)
				jv, err := marshalTypedValue(v)
				if err != nil {
					return nil, errors.Wrap(err, "chain.UnsignedTransaction.MarshalJSON")
				}
				ji.Extension[varIDKey(id)] = jv
			}
		}
		out.Inputs = append(out.Inputs, ji)
	}
	for _, di := range tx.dataInputs {
		out.DataInputs = append(out.DataInputs, di.String())
	}
	for _, o := range tx.outputs {
		jo := jsonOutput{
			Value:          o.Value,
			ErgoTree:       o.ErgoTree,
			CreationHeight: o.CreationHeight,
		}
		for _, t := range o.Tokens {
			jo.Tokens = append(jo.Tokens, jsonToken{TokenID: t.ID[:], Amount: t.Amount})
		}
		if len(o.Registers) > 0 {
			jo.AdditionalRegisters = make(map[string]jsonTypedValue, len(o.Registers))
			ids := make([]byte, 0, len(o.Registers))
			for id := range o.Registers {
				ids = append(ids, id)
			}
			sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
			for _, id := range ids {
				jv, err := marshalTypedValue(o.Registers[id])
				if err != nil {
					return nil, errors.Wrap(err, "chain.UnsignedTransaction.MarshalJSON")
				}
				jo.AdditionalRegisters[varIDKey(id)] = jv
			}
		}
		out.Outputs = append(out.Outputs, jo)
	}
	return json.Marshal(out)
}

// UnmarshalUnsignedTransactionJSON decodes b into an UnsignedTransaction,
// validating the same input/output bounds NewUnsignedTransaction enforces
// and recomputing the id from the decoded fields (§4.7: "decoding
// validates input bounds and recomputes the id").
func UnmarshalUnsignedTransactionJSON(b []byte) (*UnsignedTransaction, error) {
	var in jsonUnsignedTransaction
	if err := json.Unmarshal(b, &in); err != nil {
		return nil, &MiscError{Detail: err.Error()}
	}

	inputs := make([]Input, len(in.Inputs))
	for i, ji := range in.Inputs {
		var boxID BoxID
		if len(ji.BoxID) != len(boxID) {
			return nil, &MiscError{Detail: "chain: input boxId must be 32 bytes"}
		}
		copy(boxID[:], ji.BoxID)

		vars := make(map[byte]data.Value, len(ji.Extension))
		for k, jv := range ji.Extension {
			id, err := parseVarIDKey(k)
			if err != nil {
				return nil, &MiscError{Detail: err.Error()}
			}
			v, err := unmarshalTypedValue(jv)
			if err != nil {
				return nil, &MiscError{Detail: err.Error()}
			}
			vars[id] = v
		}
		inputs[i] = Input{BoxID: boxID, Extension: ergoctx.NewExtension(vars)}
	}

	dataInputs := make([]BoxID, len(in.DataInputs))
	for i, s := range in.DataInputs {
		b, err := hexutil.Decode(ensureHexPrefix(s))
		if err != nil || len(b) != 32 {
			return nil, &MiscError{Detail: "chain: dataInput must be a 32-byte hex id"}
		}
		copy(dataInputs[i][:], b)
	}

	outputs := make([]OutputCandidate, len(in.Outputs))
	for i, jo := range in.Outputs {
		var tokens []Token
		if len(jo.Tokens) > 0 {
			tokens = make([]Token, len(jo.Tokens))
		}
		for j, jt := range jo.Tokens {
			var id TokenID
			if len(jt.TokenID) != len(id) {
				return nil, &MiscError{Detail: "chain: tokenId must be 32 bytes"}
			}
			copy(id[:], jt.TokenID)
			tokens[j] = Token{ID: id, Amount: jt.Amount}
		}
		var regs map[byte]data.Value
		if len(jo.AdditionalRegisters) > 0 {
			regs = make(map[byte]data.Value, len(jo.AdditionalRegisters))
		}
		for k, jv := range jo.AdditionalRegisters {
			id, err := parseVarIDKey(k)
			if err != nil {
				return nil, &MiscError{Detail: err.Error()}
			}
			v, err := unmarshalTypedValue(jv)
			if err != nil {
				return nil, &MiscError{Detail: err.Error()}
			}
			regs[id] = v
		}
		outputs[i] = OutputCandidate{
			Value:          jo.Value,
			ErgoTree:       jo.ErgoTree,
			CreationHeight: jo.CreationHeight,
			Tokens:         tokens,
			Registers:      regs,
		}
	}

	tx, err := NewUnsignedTransaction(inputs, dataInputs, outputs)
	if err != nil {
		return nil, &MiscError{Detail: err.Error()}
	}
	return tx, nil
}

// MiscError is the single classification-free boundary error kind JSON
// and FFI callers see (§7).
type MiscError struct{ Detail string }

func (e *MiscError) Error() string { return e.Detail }

func varIDKey(id byte) string { return hexutil.EncodeUint64(uint64(id))[2:] }

func parseVarIDKey(k string) (byte, error) {
	v, err := hexutil.DecodeUint64(ensureHexPrefix(k))
	if err != nil || v > 255 {
		return 0, errors.Errorf("chain: invalid variable id %q", k)
	}
	return byte(v), nil
}

func ensureHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s
	}
	return "0x" + s
}
