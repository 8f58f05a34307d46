package mir

import (
	"fmt"

	"github.com/ergoplasma/ergotree-go/types"
)

// MethodID addresses a method the way the teacher's abi.MethodID
// addresses a contract method, and the way builtin/native_calls.go keys
// its dispatch table on {receiver type, method id} rather than a plain
// method name — collisions between e.g. Coll's and Option's method #1
// are impossible by construction.
type MethodID struct {
	TypeCode   types.Code
	MethodCode byte
}

func (m MethodID) String() string {
	return fmt.Sprintf("%v#%d", m.TypeCode, m.MethodCode)
}

// MethodDesc describes one method's static contract: its id, a printable
// name, and a function computing the call's result type from the
// receiver's full type (carrying its element/item types) and the
// argument types.
type MethodDesc struct {
	ID         MethodID
	Name       string
	ResultType func(receiver types.SType, args []types.SType) (types.SType, error)
}

var methodRegistry = map[MethodID]*MethodDesc{}

// RegisterMethod adds a method descriptor to the global registry keyed by
// its MethodID. Called from package init in methods.go.
func RegisterMethod(desc *MethodDesc) {
	methodRegistry[desc.ID] = desc
}

// LookupMethod returns the descriptor for id, or nil if unregistered.
func LookupMethod(id MethodID) *MethodDesc {
	return methodRegistry[id]
}

// MethodCall invokes a method on Receiver with Args. The result type is
// computed once at construction via the method's ResultType function and
// cached.
type MethodCall struct {
	Receiver Expr
	Method   *MethodDesc
	Args     []Expr
	tpe      types.SType
}

// NewMethodCall builds a MethodCall node, looking up id in the registry
// and computing (and checking) its result type.
func NewMethodCall(receiver Expr, id MethodID, args []Expr) (*MethodCall, error) {
	desc := LookupMethod(id)
	if desc == nil {
		return nil, &UnknownMethodError{ID: id}
	}
	argTypes := make([]types.SType, len(args))
	for i, a := range args {
		argTypes[i] = a.Tpe()
	}
	resultTpe, err := desc.ResultType(receiver.Tpe(), argTypes)
	if err != nil {
		return nil, err
	}
	return &MethodCall{Receiver: receiver, Method: desc, Args: append([]Expr(nil), args...), tpe: resultTpe}, nil
}

func (m *MethodCall) OpCode() OpCode   { return OpMethodCall }
func (m *MethodCall) Tpe() types.SType { return m.tpe }

// UnknownMethodError is a ParseError-class failure: a MethodID with no
// registered descriptor, e.g. because it refers to a method this
// implementation doesn't support.
type UnknownMethodError struct {
	ID MethodID
}

func (e *UnknownMethodError) Error() string {
	return "mir: unknown method " + e.ID.String()
}
