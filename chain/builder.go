package chain

import "github.com/ergoplasma/ergotree-go/ergoctx"

// Builder accumulates inputs/data-inputs/outputs and produces a validated
// UnsignedTransaction on Build — the same fluent Builder idiom the
// teacher's block.Builder uses for assembling a Block.
type Builder struct {
	inputs     []Input
	dataInputs []BoxID
	outputs    []OutputCandidate
}

// NewUnsignedTxBuilder starts an empty Builder.
func NewUnsignedTxBuilder() *Builder { return &Builder{} }

// Input appends a spent-box reference with its per-input extension.
func (b *Builder) Input(boxID BoxID, ext ergoctx.Extension) *Builder {
	b.inputs = append(b.inputs, Input{BoxID: boxID, Extension: ext})
	return b
}

// DataInput appends a read-only data-input reference.
func (b *Builder) DataInput(boxID BoxID) *Builder {
	b.dataInputs = append(b.dataInputs, boxID)
	return b
}

// Output appends a new box's creation intent.
func (b *Builder) Output(c OutputCandidate) *Builder {
	b.outputs = append(b.outputs, c)
	return b
}

// Build validates the accumulated lists and recomputes the transaction
// id, exactly as block.Builder.Build() recomputes TxsRootFeatures.Root
// from its accumulated transactions.
func (b *Builder) Build() (*UnsignedTransaction, error) {
	return NewUnsignedTransaction(b.inputs, b.dataInputs, b.outputs)
}
