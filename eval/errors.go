package eval

import "fmt"

// ArithmeticException reports integer overflow, division by zero, or a
// BigInt magnitude bound violation (§4.4/§7).
type ArithmeticException struct {
	Op     string
	Detail string
}

func (e *ArithmeticException) Error() string {
	return fmt.Sprintf("arithmetic exception in %s: %s", e.Op, e.Detail)
}

// UnexpectedValueError reports a node receiving a value of a variant it
// does not support — a dynamic type failure distinct from the
// construction-time TypeError the mir smart constructors raise (§7).
type UnexpectedValueError struct {
	Node   string
	Detail string
}

func (e *UnexpectedValueError) Error() string {
	return fmt.Sprintf("unexpected value in %s: %s", e.Node, e.Detail)
}

// CostExceededError reports the cost accumulator or step budget running
// out before evaluation finished (§4.4/§5).
type CostExceededError struct {
	Spent   uint64
	Ceiling uint64
}

func (e *CostExceededError) Error() string {
	return fmt.Sprintf("cost exceeded: spent %d, ceiling %d", e.Spent, e.Ceiling)
}

// MiscError is the classification-free boundary error kind for JSON/FFI
// surfaces (§7/§4.7) — it carries only a string by design.
type MiscError struct {
	Detail string
}

func (e *MiscError) Error() string { return e.Detail }
