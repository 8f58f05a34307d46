package mir

import "github.com/ergoplasma/ergotree-go/types"

// GroupGenerator is the fixed group generator point — a singleton leaf
// with no children, matching the original's opcode-addressable sigma
// constructor leaves (§3). The evaluator resolves it without consulting
// Env or Context.
type GroupGenerator struct{}

func (GroupGenerator) OpCode() OpCode   { return OpGroupGenerator }
func (GroupGenerator) Tpe() types.SType { return types.SGroupElement }

// ProveDlog builds a "prove knowledge of discrete log" sigma proposition
// from a group element. Building, combining and proving sigma
// propositions beyond this opaque wrapping is a cryptographic
// collaborator's job (§1); the evaluator only needs to serialize and
// compare the result.
type ProveDlog struct {
	Value Expr
}

// NewProveDlog builds a ProveDlog node, requiring its operand to be an
// SGroupElement.
func NewProveDlog(value Expr) (*ProveDlog, error) {
	if !value.Tpe().Equal(types.SGroupElement) {
		return nil, &TypeMismatchError{Node: "ProveDlog.value", Expected: "GroupElement", Actual: value.Tpe()}
	}
	return &ProveDlog{Value: value}, nil
}

func (p *ProveDlog) OpCode() OpCode   { return OpProveDlog }
func (p *ProveDlog) Tpe() types.SType { return types.SSigmaProp }
