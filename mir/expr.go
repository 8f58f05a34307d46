package mir

import "github.com/ergoplasma/ergotree-go/types"

// Expr is satisfied by every node kind. OpCode identifies the node for
// serialization (§4.3); Tpe returns its statically-known result type —
// every well-formed Expr must return a concrete type (§3 invariant).
type Expr interface {
	OpCode() OpCode
	Tpe() types.SType
}

// TypeMismatchError reports a smart constructor rejecting ill-typed
// children, the construction-time half of §7's TypeError kind.
type TypeMismatchError struct {
	Node     string
	Expected string
	Actual   types.SType
}

func (e *TypeMismatchError) Error() string {
	return "mir: " + e.Node + ": expected " + e.Expected + ", got " + e.Actual.String()
}
