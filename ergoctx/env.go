// Package ergoctx implements the evaluator's two read-only inputs: Env,
// the lambda-parameter binding environment, and Context, the
// blockchain/transaction view an Expr evaluates against (§3, §4.5).
package ergoctx

import "github.com/ergoplasma/ergotree-go/data"

// Env is an immutable, ordered mapping from bound-variable index to
// Value. Lambda application produces a child Env that shadows the
// parent — Get walks outward from the innermost frame, never mutating
// either.
type Env struct {
	parent *Env
	index  int
	value  data.Value
}

// EmptyEnv is the root environment with no bindings.
var EmptyEnv = Env{}

// Bind returns a new child Env with index bound to value, shadowing any
// outer binding of the same index. The receiver is left unmodified.
func (e *Env) Bind(index int, value data.Value) *Env {
	return &Env{parent: e, index: index, value: value}
}

// Get looks up index, searching from the innermost frame outward.
func (e *Env) Get(index int) (data.Value, bool) {
	for frame := e; frame != nil && frame.value != nil; frame = frame.parent {
		if frame.index == index {
			return frame.value, true
		}
	}
	return nil, false
}
