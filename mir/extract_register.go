package mir

import "github.com/ergoplasma/ergotree-go/types"

// ExtractRegisterAs reads register RegID (0..9) from a box, decoded as
// Tpe_. §4.5: an absent register is Option(None); a register present
// under a different type is UnexpectedValue at evaluation time.
type ExtractRegisterAs struct {
	Box   Expr
	RegID byte
	Tpe_  types.SType
}

// NewExtractRegisterAs builds the node, requiring box to statically be
// SBox.
func NewExtractRegisterAs(box Expr, regID byte, tpe types.SType) (*ExtractRegisterAs, error) {
	if !box.Tpe().Equal(types.SBox) {
		return nil, &TypeMismatchError{Node: "ExtractRegisterAs.box", Expected: "Box", Actual: box.Tpe()}
	}
	return &ExtractRegisterAs{Box: box, RegID: regID, Tpe_: tpe}, nil
}

func (e *ExtractRegisterAs) OpCode() OpCode   { return OpExtractRegisterAs }
func (e *ExtractRegisterAs) Tpe() types.SType { return types.SOption(e.Tpe_) }
