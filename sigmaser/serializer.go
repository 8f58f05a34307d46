package sigmaser

import (
	"bytes"

	"github.com/ergoplasma/ergotree-go/mir"
	"github.com/pkg/errors"
)

// Serialize produces the canonical byte encoding of e: constants inline,
// one opcode byte per node (§4.3). Serializing the same tree twice
// yields identical bytes (§4.6/§8 determinism).
func Serialize(e mir.Expr) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeExpr(&buf, e); err != nil {
		return nil, errors.Wrap(err, "sigmaser.Serialize")
	}
	return buf.Bytes(), nil
}

// Parse reconstructs an Expr tree from b. constTable resolves any
// table-mode Const reference in the stream (§9); pass nil for
// inline-only input, which is what Serialize produces. b must hold
// exactly one root expression; bytes left over after it are an error.
func Parse(b []byte, constTable ConstTable) (mir.Expr, error) {
	r := bytes.NewReader(b)
	e, err := DecodeExpr(r, constTable)
	if err != nil {
		return nil, errors.Wrap(err, "sigmaser.Parse")
	}
	if r.Len() != 0 {
		return nil, errors.Errorf("sigmaser.Parse: %d trailing bytes at offset %d after the root expression", r.Len(), len(b)-r.Len())
	}
	return e, nil
}
