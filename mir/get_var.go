package mir

import "github.com/ergoplasma/ergotree-go/types"

// GetVar reads the per-input context extension at Index. §4.5: the
// result is always Option[Tpe] — an absent key is Option(None), not an
// error.
type GetVar struct {
	Index byte
	Tpe_  types.SType
}

// NewGetVar builds a GetVar node for the given extension slot and
// expected value type.
func NewGetVar(index byte, tpe types.SType) *GetVar {
	return &GetVar{Index: index, Tpe_: tpe}
}

func (g *GetVar) OpCode() OpCode   { return OpGetVar }
func (g *GetVar) Tpe() types.SType { return types.SOption(g.Tpe_) }
