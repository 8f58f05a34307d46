package ergoctx

import (
	"fmt"

	"github.com/ergoplasma/ergotree-go/data"
)

// Context is the read-only blockchain/transaction view an Expr evaluates
// against (§3, §4.5) — Height, the spending transaction's inputs, data
// inputs and outputs, which input is "Self", and the per-input Extension
// supplied by the spender. Every accessor returns a defensive copy, the
// same discipline the teacher's block.Transactions()/block.Header applies
// to its backing slices.
type Context struct {
	height      int32
	inputs      []data.BoxValue
	dataInputs  []data.BoxValue
	outputs     []data.BoxValue
	selfIndex   int
	extensions  []Extension
	minerPubKey data.GroupElement
}

// NewContext builds a Context. extensions must be either nil or the same
// length as inputs — extensions[i] is the Extension supplied for
// inputs[i]. selfIndex must address a valid element of inputs.
func NewContext(
	height int32,
	inputs, dataInputs, outputs []data.BoxValue,
	selfIndex int,
	extensions []Extension,
	minerPubKey data.GroupElement,
) (*Context, error) {
	if selfIndex < 0 || selfIndex >= len(inputs) {
		return nil, fmt.Errorf("ergoctx: selfIndex %d out of range for %d inputs", selfIndex, len(inputs))
	}
	if extensions != nil && len(extensions) != len(inputs) {
		return nil, fmt.Errorf("ergoctx: %d extensions for %d inputs", len(extensions), len(inputs))
	}

	c := &Context{
		height:      height,
		inputs:      append([]data.BoxValue(nil), inputs...),
		dataInputs:  append([]data.BoxValue(nil), dataInputs...),
		outputs:     append([]data.BoxValue(nil), outputs...),
		selfIndex:   selfIndex,
		minerPubKey: minerPubKey,
	}
	if extensions == nil {
		c.extensions = make([]Extension, len(inputs))
	} else {
		c.extensions = append([]Extension(nil), extensions...)
	}
	return c, nil
}

func (c *Context) Height() int32 { return c.height }

func (c *Context) Inputs() []data.BoxValue {
	return append([]data.BoxValue(nil), c.inputs...)
}

func (c *Context) DataInputs() []data.BoxValue {
	return append([]data.BoxValue(nil), c.dataInputs...)
}

func (c *Context) Outputs() []data.BoxValue {
	return append([]data.BoxValue(nil), c.outputs...)
}

// Self is the input box the guarding ErgoTree is attached to.
func (c *Context) Self() data.BoxValue { return c.inputs[c.selfIndex] }

func (c *Context) SelfIndex() int { return c.selfIndex }

func (c *Context) MinerPubKey() data.GroupElement { return c.minerPubKey }

// ExtensionFor returns the Extension the spender attached to inputs[index].
func (c *Context) ExtensionFor(index int) (Extension, error) {
	if index < 0 || index >= len(c.extensions) {
		return Extension{}, fmt.Errorf("ergoctx: input index %d out of range", index)
	}
	return c.extensions[index], nil
}

// SelfExtension returns the Extension attached to the Self input.
func (c *Context) SelfExtension() Extension {
	return c.extensions[c.selfIndex]
}

// WithSelfIndex returns a Context identical to c but evaluating against a
// different Self input, so every input of one transaction can be
// evaluated against the same Inputs/Outputs view (for example as
// separate EvaluateAll Tasks, §5).
func (c *Context) WithSelfIndex(selfIndex int) (*Context, error) {
	if selfIndex < 0 || selfIndex >= len(c.inputs) {
		return nil, fmt.Errorf("ergoctx: selfIndex %d out of range for %d inputs", selfIndex, len(c.inputs))
	}
	cp := *c
	cp.selfIndex = selfIndex
	return &cp, nil
}
