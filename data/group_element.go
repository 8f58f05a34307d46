package data

import (
	"bytes"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ergoplasma/ergotree-go/types"
)

// GroupElement is a point on the group used by sigma-protocol
// propositions. The evaluator treats it as opaque data — it never derives
// or recombines points — but the value is still backed by a real curve
// point (rather than a bare byte slice) so construction rejects points
// that are not on the curve, the same validation a prover/verifier
// collaborator would require before ever seeing this value.
type GroupElement struct {
	point *secp256k1.PublicKey
}

// Identity is the group's identity (point at infinity) element, encoded
// the same way Ergo encodes it on the wire: a single zero byte.
var Identity = GroupElement{}

// NewGroupElement parses a compressed SEC1 curve point.
func NewGroupElement(compressed []byte) (GroupElement, error) {
	if len(compressed) == 1 && compressed[0] == 0 {
		return Identity, nil
	}
	pub, err := secp256k1.ParsePubKey(compressed)
	if err != nil {
		return GroupElement{}, &GroupElementError{Cause: err}
	}
	return GroupElement{point: pub}, nil
}

func (g GroupElement) Type() types.SType { return types.SGroupElement }

// Bytes returns the compressed SEC1 encoding, or a single zero byte for
// the identity element.
func (g GroupElement) Bytes() []byte {
	if g.point == nil {
		return []byte{0}
	}
	return g.point.SerializeCompressed()
}

func (g GroupElement) Equal(other Value) bool {
	o, ok := other.(GroupElement)
	return ok && bytes.Equal(g.Bytes(), o.Bytes())
}

// GroupElementError reports an invalid curve point on construction.
type GroupElementError struct {
	Cause error
}

func (e *GroupElementError) Error() string { return "invalid group element: " + e.Cause.Error() }
func (e *GroupElementError) Unwrap() error { return e.Cause }

// SigmaProp wraps an opaque, already-serialized sigma proposition tree.
// Constructing, combining (AND/OR) and proving sigma propositions is a
// cryptographic collaborator's job (out of scope per spec.md §1); the
// evaluator only needs to move these bytes around and compare them.
type SigmaProp struct {
	tree []byte
}

// NewSigmaProp copies tree into a new SigmaProp.
func NewSigmaProp(tree []byte) SigmaProp {
	return SigmaProp{tree: append([]byte(nil), tree...)}
}

func (p SigmaProp) Type() types.SType { return types.SSigmaProp }

// Tree returns a defensive copy of the serialized sigma proposition.
func (p SigmaProp) Tree() []byte {
	return append([]byte(nil), p.tree...)
}

func (p SigmaProp) Equal(other Value) bool {
	o, ok := other.(SigmaProp)
	return ok && bytes.Equal(p.tree, o.tree)
}
