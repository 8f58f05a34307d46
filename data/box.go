package data

// BoxValue is satisfied by a UTXO-style box value. It is declared here —
// rather than as a concrete struct — so the full box type (with its
// register/token bookkeeping) can live in the chain package without data
// importing chain, avoiding an import cycle, the way the teacher's
// `abi.Method` wraps an opaque `ethabi.Method` rather than redefining it.
// A BoxValue is itself a Value (Type() always reports types.SBox); the
// evaluator type-asserts to BoxValue wherever it needs box-specific
// accessors (registers, tokens, creation height).
type BoxValue interface {
	Value
	BoxID() [32]byte
}

// BoxFields is the accessor surface MethodCall evaluation needs beyond
// the bare BoxValue identity — value, creation height, tokens and
// registers (§4.5). Declared here for the same import-cycle reason as
// BoxValue; chain.Box implements both.
type BoxFields interface {
	BoxValue
	Value() Long
	CreationHeight() Int
	Tokens() Coll
	// Register returns the raw value stored at register id and true, or
	// (nil, false) if the register is unset.
	Register(id byte) (Value, bool)
}
