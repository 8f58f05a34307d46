package mir

import "github.com/ergoplasma/ergotree-go/types"

// Height is GlobalVars::Height — the current block height, SInt-typed.
// It is a singleton leaf with no children.
type Height struct{}

func (Height) OpCode() OpCode   { return OpHeight }
func (Height) Tpe() types.SType { return types.SInt }
