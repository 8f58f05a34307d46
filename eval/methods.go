package eval

import (
	"github.com/ergoplasma/ergotree-go/data"
	"github.com/ergoplasma/ergotree-go/ergoctx"
	"github.com/ergoplasma/ergotree-go/mir"
	"github.com/ergoplasma/ergotree-go/types"
	"github.com/pkg/errors"
)

// evalMethodCall evaluates the receiver, evaluates each argument
// (arguments to Coll.map/filter/exists/forall are FuncValue expressions,
// producing Closures), and dispatches on the method's {TypeCode,
// MethodCode} the same way mir.methodRegistry keys its static contract.
func (e *Evaluator) evalMethodCall(n *mir.MethodCall, env *ergoctx.Env, ctx *ergoctx.Context) (data.Value, error) {
	recv, err := e.Eval(n.Receiver, env, ctx)
	if err != nil {
		return nil, errors.Wrap(err, "MethodCall.receiver")
	}
	args := make([]data.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.Eval(a, env, ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "MethodCall.args[%d]", i)
		}
		args[i] = v
	}

	switch n.Method.ID.TypeCode {
	case types.CColl:
		coll, ok := recv.(data.Coll)
		if !ok {
			return nil, &UnexpectedValueError{Node: n.Method.Name, Detail: "receiver is not a Coll"}
		}
		return e.evalCollMethod(n, coll, args, ctx)

	case types.COption:
		opt, ok := recv.(data.Option)
		if !ok {
			return nil, &UnexpectedValueError{Node: n.Method.Name, Detail: "receiver is not an Option"}
		}
		return e.evalOptionMethod(n, opt, args)

	case types.CBox:
		box, ok := recv.(data.BoxFields)
		if !ok {
			return nil, &UnexpectedValueError{Node: n.Method.Name, Detail: "receiver is not a Box"}
		}
		return e.evalBoxMethod(n, box)

	default:
		return nil, &UnexpectedValueError{Node: "MethodCall", Detail: "unhandled method " + n.Method.ID.String()}
	}
}

func (e *Evaluator) evalCollMethod(n *mir.MethodCall, coll data.Coll, args []data.Value, ctx *ergoctx.Context) (data.Value, error) {
	switch n.Method.ID.MethodCode {
	case mir.MCollSize:
		return data.Int(coll.Len()), nil

	case mir.MCollMap:
		fn, ok := args[0].(*Closure)
		if !ok {
			return nil, &UnexpectedValueError{Node: "Coll.map", Detail: "argument is not a function"}
		}
		out := make([]data.Value, coll.Len())
		for i := 0; i < coll.Len(); i++ {
			v, err := e.applyClosure(fn, []data.Value{coll.Get(i)}, ctx)
			if err != nil {
				return nil, errors.Wrapf(err, "Coll.map item %d", i)
			}
			out[i] = v
		}
		return data.NewColl(n.Tpe().Elem(), out)

	case mir.MCollFilter:
		fn, ok := args[0].(*Closure)
		if !ok {
			return nil, &UnexpectedValueError{Node: "Coll.filter", Detail: "argument is not a function"}
		}
		var out []data.Value
		for i := 0; i < coll.Len(); i++ {
			v, err := e.applyClosure(fn, []data.Value{coll.Get(i)}, ctx)
			if err != nil {
				return nil, errors.Wrapf(err, "Coll.filter item %d", i)
			}
			b, ok := v.(data.Boolean)
			if !ok {
				return nil, &UnexpectedValueError{Node: "Coll.filter", Detail: "predicate did not return Boolean"}
			}
			if bool(b) {
				out = append(out, coll.Get(i))
			}
		}
		return data.NewColl(n.Tpe().Elem(), out)

	case mir.MCollExists:
		fn, ok := args[0].(*Closure)
		if !ok {
			return nil, &UnexpectedValueError{Node: "Coll.exists", Detail: "argument is not a function"}
		}
		for i := 0; i < coll.Len(); i++ {
			v, err := e.applyClosure(fn, []data.Value{coll.Get(i)}, ctx)
			if err != nil {
				return nil, errors.Wrapf(err, "Coll.exists item %d", i)
			}
			b, ok := v.(data.Boolean)
			if !ok {
				return nil, &UnexpectedValueError{Node: "Coll.exists", Detail: "predicate did not return Boolean"}
			}
			if bool(b) {
				return data.Boolean(true), nil
			}
		}
		return data.Boolean(false), nil

	case mir.MCollForall:
		fn, ok := args[0].(*Closure)
		if !ok {
			return nil, &UnexpectedValueError{Node: "Coll.forall", Detail: "argument is not a function"}
		}
		for i := 0; i < coll.Len(); i++ {
			v, err := e.applyClosure(fn, []data.Value{coll.Get(i)}, ctx)
			if err != nil {
				return nil, errors.Wrapf(err, "Coll.forall item %d", i)
			}
			b, ok := v.(data.Boolean)
			if !ok {
				return nil, &UnexpectedValueError{Node: "Coll.forall", Detail: "predicate did not return Boolean"}
			}
			if !bool(b) {
				return data.Boolean(false), nil
			}
		}
		return data.Boolean(true), nil

	default:
		return nil, &UnexpectedValueError{Node: "Coll method", Detail: "unhandled method code"}
	}
}

func (e *Evaluator) evalOptionMethod(n *mir.MethodCall, opt data.Option, args []data.Value) (data.Value, error) {
	switch n.Method.ID.MethodCode {
	case mir.MOptionGet:
		if !opt.IsDefined() {
			return nil, &UnexpectedValueError{Node: "Option.get", Detail: "option is empty"}
		}
		return opt.Get(), nil

	case mir.MOptionGetOrElse:
		if opt.IsDefined() {
			return opt.Get(), nil
		}
		return args[0], nil

	case mir.MOptionIsDefined:
		return data.Boolean(opt.IsDefined()), nil

	default:
		return nil, &UnexpectedValueError{Node: "Option method", Detail: "unhandled method code"}
	}
}

func (e *Evaluator) evalBoxMethod(n *mir.MethodCall, box data.BoxFields) (data.Value, error) {
	switch n.Method.ID.MethodCode {
	case mir.MBoxValue:
		return box.Value(), nil
	case mir.MBoxCreationHeight:
		return box.CreationHeight(), nil
	case mir.MBoxID:
		id := box.BoxID()
		return data.NewByteArray(id[:]), nil
	case mir.MBoxTokens:
		return box.Tokens(), nil
	default:
		return nil, &UnexpectedValueError{Node: "Box method", Detail: "unhandled method code"}
	}
}
