package data

import (
	"github.com/ergoplasma/ergotree-go/types"
)

// Option is either empty or carries a single value of a recorded element
// type — used both for optional user values and for the "absent key"
// probes of GetVar/ExtractRegisterAs (§4.5), which never error on a
// missing lookup.
type Option struct {
	elem  types.SType
	value Value // nil when empty
}

// NewSome wraps a present value.
func NewSome(v Value) Option {
	return Option{elem: v.Type(), value: v}
}

// NewNone builds an empty Option of the given element type.
func NewNone(elem types.SType) Option {
	return Option{elem: elem}
}

func (o Option) Type() types.SType { return types.SOption(o.elem) }

// IsDefined reports whether the option carries a value.
func (o Option) IsDefined() bool { return o.value != nil }

// Get returns the wrapped value; callers must check IsDefined first.
func (o Option) Get() Value { return o.value }

func (o Option) Equal(other Value) bool {
	ot, ok := other.(Option)
	if !ok || o.IsDefined() != ot.IsDefined() {
		return false
	}
	if !o.IsDefined() {
		return o.elem.Equal(ot.elem)
	}
	return o.value.Equal(ot.value)
}
