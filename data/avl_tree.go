package data

import (
	"bytes"

	"github.com/ergoplasma/ergotree-go/types"
)

// AvlTree is an opaque authenticated dictionary digest plus the metadata
// needed to validate proofs against it. Proof verification itself is a
// cryptographic collaborator's responsibility (out of scope); the
// evaluator only reads these fields and compares/serializes the value.
type AvlTree struct {
	Digest         []byte
	KeyLength      int32
	ValueLengthOpt *int32
}

func (t AvlTree) Type() types.SType { return types.SAvlTree }

func (t AvlTree) Equal(other Value) bool {
	o, ok := other.(AvlTree)
	if !ok || t.KeyLength != o.KeyLength || !bytes.Equal(t.Digest, o.Digest) {
		return false
	}
	switch {
	case t.ValueLengthOpt == nil && o.ValueLengthOpt == nil:
		return true
	case t.ValueLengthOpt == nil || o.ValueLengthOpt == nil:
		return false
	default:
		return *t.ValueLengthOpt == *o.ValueLengthOpt
	}
}
