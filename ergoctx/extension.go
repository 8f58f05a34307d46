package ergoctx

import "github.com/ergoplasma/ergotree-go/data"

// Extension is a spender-supplied, per-input side channel of typed values
// (GetVar reads from it). Modeled as a first-class type rather than a bare
// map so zero-value Extensions behave correctly and callers can't stash
// untyped data.Value slices under it by accident.
type Extension struct {
	vars map[byte]data.Value
}

// NewExtension builds an Extension from an initial var set; a nil map is a
// valid, empty Extension.
func NewExtension(vars map[byte]data.Value) Extension {
	cp := make(map[byte]data.Value, len(vars))
	for k, v := range vars {
		cp[k] = v
	}
	return Extension{vars: cp}
}

// Get returns the value bound to id, or false if unbound. GetVar's result
// type is always an Option, so a missing id is not itself an error.
func (e Extension) Get(id byte) (data.Value, bool) {
	v, ok := e.vars[id]
	return v, ok
}

// Set returns a new Extension with id bound to value, leaving the receiver
// unmodified.
func (e Extension) Set(id byte, value data.Value) Extension {
	cp := make(map[byte]data.Value, len(e.vars)+1)
	for k, v := range e.vars {
		cp[k] = v
	}
	cp[id] = value
	return Extension{vars: cp}
}

// Len reports the number of bound variables.
func (e Extension) Len() int { return len(e.vars) }

// VarIDs returns the bound variable ids in ascending order — callers
// that need a deterministic iteration order (serialization) use this
// instead of ranging over the backing map directly.
func (e Extension) VarIDs() []byte {
	ids := make([]byte, 0, len(e.vars))
	for id := range e.vars {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}
