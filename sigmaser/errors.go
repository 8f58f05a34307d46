// Package sigmaser implements the bidirectional mapping between mir.Expr
// trees and a byte stream: per-node opcodes, VLQ/zigzag integers, and an
// optional constant table (§4.3/§6). One file per node kind, each with a
// symmetrical encode/decode pair, mirrors the teacher's
// EncodeRLP/DecodeRLP discipline in block/header.go — but the wire shape
// itself is hand-rolled rather than reusing go-ethereum/rlp, since RLP's
// list/string model cannot express ErgoTree's fixed
// one-opcode-byte-per-node format.
package sigmaser

import "fmt"

// UnknownOpcodeError reports a byte that does not name any node kind this
// implementation supports.
type UnknownOpcodeError struct {
	Opcode byte
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("sigmaser: unknown opcode 0x%02x", e.Opcode)
}

// TruncatedInputError reports the byte stream ending before a node's
// payload was fully consumed.
type TruncatedInputError struct {
	Context string
}

func (e *TruncatedInputError) Error() string {
	return "sigmaser: truncated input at " + e.Context
}

// InvalidVLQError reports a variable-length integer that never
// terminates within the encoding's width bound.
type InvalidVLQError struct {
	Context string
}

func (e *InvalidVLQError) Error() string {
	return "sigmaser: invalid VLQ at " + e.Context
}

// DepthExceededError reports recursion past the parser's configured
// nesting limit — the guard against adversarial inputs driving the host
// stack to overflow (§9).
type DepthExceededError struct {
	Limit int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("sigmaser: recursion depth exceeded limit %d", e.Limit)
}

// ReconstructionTypeError reports a type mismatch discovered while
// rebuilding an Expr tree from decoded payload — e.g. an If whose decoded
// branches disagree, surfaced as a ParseError-class failure distinct from
// mir's construction-time TypeMismatchError only in how it was reached.
type ReconstructionTypeError struct {
	Node  string
	Cause error
}

func (e *ReconstructionTypeError) Error() string {
	return "sigmaser: type mismatch reconstructing " + e.Node + ": " + e.Cause.Error()
}

func (e *ReconstructionTypeError) Unwrap() error { return e.Cause }

// UnknownTypeTagError reports an SType tag byte with no ground-type or
// constructor meaning.
type UnknownTypeTagError struct {
	Tag byte
}

func (e *UnknownTypeTagError) Error() string {
	return fmt.Sprintf("sigmaser: unknown type tag 0x%02x", e.Tag)
}
