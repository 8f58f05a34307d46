package ergoctx

import (
	"testing"

	"github.com/ergoplasma/ergotree-go/data"
	"github.com/ergoplasma/ergotree-go/types"
)

// fakeBox is a minimal data.BoxValue stand-in — the real box lives in the
// chain package, not yet wired up when this package is exercised alone.
type fakeBox struct {
	id [32]byte
}

func (b fakeBox) Type() types.SType          { return types.SBox }
func (b fakeBox) Equal(other data.Value) bool { o, ok := other.(fakeBox); return ok && o.id == b.id }
func (b fakeBox) BoxID() [32]byte             { return b.id }

func TestEnvBindShadowsOuter(t *testing.T) {
	root := &EmptyEnv
	e1 := root.Bind(0, data.Int(1))
	e2 := e1.Bind(0, data.Int(2))

	v, ok := e2.Get(0)
	if !ok || !v.Equal(data.Int(2)) {
		t.Fatalf("expected innermost binding 2, got %v, %v", v, ok)
	}
	if _, ok := root.Get(0); ok {
		t.Fatal("EmptyEnv must have no bindings")
	}
}

func TestEnvGetMissing(t *testing.T) {
	root := &EmptyEnv
	e1 := root.Bind(0, data.Int(1))
	if _, ok := e1.Get(1); ok {
		t.Fatal("index 1 was never bound")
	}
}

func TestEnvBindDoesNotMutateReceiver(t *testing.T) {
	root := &EmptyEnv
	e1 := root.Bind(0, data.Int(1))
	_ = e1.Bind(0, data.Int(2))

	v, ok := e1.Get(0)
	if !ok || !v.Equal(data.Int(1)) {
		t.Fatal("Bind must not mutate its receiver frame")
	}
}

func TestContextSelfAndIndex(t *testing.T) {
	in := []data.BoxValue{fakeBox{id: [32]byte{1}}, fakeBox{id: [32]byte{2}}}
	ctx, err := NewContext(100, in, nil, nil, 1, nil, data.Identity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.Self().BoxID() != in[1].BoxID() {
		t.Fatal("Self should resolve selfIndex into Inputs")
	}
	if ctx.Height() != 100 {
		t.Fatal("Height should round-trip")
	}
}

func TestContextRejectsOutOfRangeSelfIndex(t *testing.T) {
	in := []data.BoxValue{fakeBox{id: [32]byte{1}}}
	if _, err := NewContext(0, in, nil, nil, 5, nil, data.Identity); err == nil {
		t.Fatal("expected out-of-range selfIndex to be rejected")
	}
}

func TestContextRejectsMismatchedExtensionLength(t *testing.T) {
	in := []data.BoxValue{fakeBox{id: [32]byte{1}}}
	if _, err := NewContext(0, in, nil, nil, 0, []Extension{{}, {}}, data.Identity); err == nil {
		t.Fatal("expected mismatched extension length to be rejected")
	}
}

func TestExtensionSetIsImmutable(t *testing.T) {
	e0 := NewExtension(nil)
	e1 := e0.Set(3, data.Int(7))
	if _, ok := e0.Get(3); ok {
		t.Fatal("Set must not mutate the receiver")
	}
	v, ok := e1.Get(3)
	if !ok || !v.Equal(data.Int(7)) {
		t.Fatal("expected var 3 bound to 7 in the derived Extension")
	}
}

func TestContextSelfExtension(t *testing.T) {
	in := []data.BoxValue{fakeBox{id: [32]byte{1}}, fakeBox{id: [32]byte{2}}}
	exts := []Extension{NewExtension(nil), NewExtension(nil).Set(0, data.Boolean(true))}
	ctx, err := NewContext(0, in, nil, nil, 1, exts, data.Identity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := ctx.SelfExtension().Get(0)
	if !ok || !v.Equal(data.Boolean(true)) {
		t.Fatal("SelfExtension should resolve to extensions[selfIndex]")
	}
}
