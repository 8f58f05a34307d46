// Package eval implements the single-threaded tree-walking evaluator
// (§4.4): it takes an Expr, an Env, and a Context and produces a Value or
// a classified error. Each node passes through the conceptual states
// Entered (cost charged, about to recurse) -> ChildrenEvaluated (operands
// resolved) -> Produced (result returned); there is no partial result —
// any error aborts the whole evaluation.
package eval

import (
	"github.com/ergoplasma/ergotree-go/data"
	"github.com/ergoplasma/ergotree-go/ergoctx"
	"github.com/ergoplasma/ergotree-go/mir"
	"github.com/pkg/errors"
)

// Evaluator walks one Expr tree per call to Eval, charging its cost
// accumulator as it enters each node.
type Evaluator struct {
	cost *CostAccumulator
}

// New builds an Evaluator against the given cost accumulator. Callers
// that need independent cost budgets per evaluation should build a fresh
// CostAccumulator per Evaluator.
func New(cost *CostAccumulator) *Evaluator {
	return &Evaluator{cost: cost}
}

// Cost exposes the accumulator so callers can inspect spend after Eval
// returns (§8: "cost monotonicity").
func (e *Evaluator) Cost() *CostAccumulator { return e.cost }

// Eval evaluates expr against (env, ctx), recursing into children as
// required by expr's kind.
func (e *Evaluator) Eval(expr mir.Expr, env *ergoctx.Env, ctx *ergoctx.Context) (data.Value, error) {
	if err := e.cost.Charge(expr.OpCode()); err != nil {
		return nil, err
	}

	switch n := expr.(type) {
	case *mir.Const:
		return n.Value, nil

	case mir.Height:
		return data.Int(ctx.Height()), nil

	case *mir.If:
		cond, err := e.Eval(n.Condition, env, ctx)
		if err != nil {
			return nil, errors.Wrap(err, "If.condition")
		}
		b, ok := cond.(data.Boolean)
		if !ok {
			return nil, &UnexpectedValueError{Node: "If.condition", Detail: "expected Boolean"}
		}
		if bool(b) {
			return e.Eval(n.TrueBranch, env, ctx)
		}
		return e.Eval(n.FalseBranch, env, ctx)

	case *mir.BinOp:
		return e.evalBinOp(n, env, ctx)

	case *mir.Coll:
		items := make([]data.Value, len(n.Items))
		for i, it := range n.Items {
			v, err := e.Eval(it, env, ctx)
			if err != nil {
				return nil, errors.Wrapf(err, "Coll item %d", i)
			}
			items[i] = v
		}
		c, err := data.NewColl(n.ElemTpe, items)
		if err != nil {
			return nil, err
		}
		return c, nil

	case *mir.Tuple:
		items := make([]data.Value, len(n.Items))
		for i, it := range n.Items {
			v, err := e.Eval(it, env, ctx)
			if err != nil {
				return nil, errors.Wrapf(err, "Tuple item %d", i)
			}
			items[i] = v
		}
		return data.NewTuple(items...), nil

	case *mir.GetVar:
		return e.evalGetVar(n, ctx)

	case *mir.ExtractRegisterAs:
		return e.evalExtractRegisterAs(n, env, ctx)

	case *mir.MethodCall:
		return e.evalMethodCall(n, env, ctx)

	case *mir.FuncValue:
		return &Closure{Params: n.Params, Body: n.Body, Env: env, tpe: n.Tpe()}, nil

	case *mir.ValUse:
		v, ok := env.Get(n.ValID)
		if !ok {
			return nil, &UnexpectedValueError{Node: "ValUse", Detail: "unbound value id"}
		}
		return v, nil

	case *mir.Apply:
		return e.evalApply(n, env, ctx)

	case mir.GroupGenerator:
		return groupGenerator()

	case *mir.ProveDlog:
		return e.evalProveDlog(n, env, ctx)

	default:
		return nil, &UnexpectedValueError{Node: "Eval", Detail: "unhandled Expr kind"}
	}
}

func (e *Evaluator) evalBinOp(n *mir.BinOp, env *ergoctx.Env, ctx *ergoctx.Context) (data.Value, error) {
	if !n.Kind.IsArith() && n.Kind.RelationOp() == mir.And {
		l, err := e.Eval(n.Left, env, ctx)
		if err != nil {
			return nil, errors.Wrap(err, "And.left")
		}
		lb, ok := l.(data.Boolean)
		if !ok {
			return nil, &UnexpectedValueError{Node: "And", Detail: "expected Boolean"}
		}
		if !bool(lb) {
			return data.Boolean(false), nil // short-circuit: right never evaluated, never charged
		}
		r, err := e.Eval(n.Right, env, ctx)
		if err != nil {
			return nil, errors.Wrap(err, "And.right")
		}
		rb, ok := r.(data.Boolean)
		if !ok {
			return nil, &UnexpectedValueError{Node: "And", Detail: "expected Boolean"}
		}
		return rb, nil
	}

	if !n.Kind.IsArith() && n.Kind.RelationOp() == mir.Or {
		l, err := e.Eval(n.Left, env, ctx)
		if err != nil {
			return nil, errors.Wrap(err, "Or.left")
		}
		lb, ok := l.(data.Boolean)
		if !ok {
			return nil, &UnexpectedValueError{Node: "Or", Detail: "expected Boolean"}
		}
		if bool(lb) {
			return data.Boolean(true), nil // short-circuit: right never evaluated, never charged
		}
		r, err := e.Eval(n.Right, env, ctx)
		if err != nil {
			return nil, errors.Wrap(err, "Or.right")
		}
		rb, ok := r.(data.Boolean)
		if !ok {
			return nil, &UnexpectedValueError{Node: "Or", Detail: "expected Boolean"}
		}
		return rb, nil
	}

	l, err := e.Eval(n.Left, env, ctx)
	if err != nil {
		return nil, errors.Wrap(err, "BinOp.left")
	}
	r, err := e.Eval(n.Right, env, ctx)
	if err != nil {
		return nil, errors.Wrap(err, "BinOp.right")
	}

	if n.Kind.IsArith() {
		return evalArith(n.Kind.ArithOp(), l, r)
	}

	switch n.Kind.RelationOp() {
	case mir.Eq:
		return data.Boolean(l.Equal(r)), nil
	case mir.NEq:
		return data.Boolean(!l.Equal(r)), nil
	default:
		b, err := evalRelation(n.Kind.RelationOp(), l, r)
		if err != nil {
			return nil, err
		}
		return data.Boolean(b), nil
	}
}

func (e *Evaluator) evalGetVar(n *mir.GetVar, ctx *ergoctx.Context) (data.Value, error) {
	v, ok := ctx.SelfExtension().Get(n.Index)
	if !ok {
		return data.NewNone(n.Tpe_), nil
	}
	if !v.Type().Equal(n.Tpe_) {
		return nil, &UnexpectedValueError{Node: "GetVar", Detail: "extension value type disagrees with requested type"}
	}
	return data.NewSome(v), nil
}

func (e *Evaluator) evalExtractRegisterAs(n *mir.ExtractRegisterAs, env *ergoctx.Env, ctx *ergoctx.Context) (data.Value, error) {
	boxVal, err := e.Eval(n.Box, env, ctx)
	if err != nil {
		return nil, errors.Wrap(err, "ExtractRegisterAs.box")
	}
	box, ok := boxVal.(data.BoxFields)
	if !ok {
		return nil, &UnexpectedValueError{Node: "ExtractRegisterAs", Detail: "receiver is not a register-bearing box"}
	}
	v, ok := box.Register(n.RegID)
	if !ok {
		return data.NewNone(n.Tpe_), nil
	}
	if !v.Type().Equal(n.Tpe_) {
		return nil, &UnexpectedValueError{Node: "ExtractRegisterAs", Detail: "register value type disagrees with requested type"}
	}
	return data.NewSome(v), nil
}

func (e *Evaluator) evalApply(n *mir.Apply, env *ergoctx.Env, ctx *ergoctx.Context) (data.Value, error) {
	fnVal, err := e.Eval(n.Fn, env, ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Apply.fn")
	}
	cl, ok := fnVal.(*Closure)
	if !ok {
		return nil, &UnexpectedValueError{Node: "Apply", Detail: "fn did not evaluate to a closure"}
	}
	args := make([]data.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.Eval(a, env, ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "Apply.args[%d]", i)
		}
		args[i] = v
	}
	return e.applyClosure(cl, args, ctx)
}

func (e *Evaluator) applyClosure(cl *Closure, args []data.Value, ctx *ergoctx.Context) (data.Value, error) {
	if len(args) != len(cl.Params) {
		return nil, &UnexpectedValueError{Node: "Apply", Detail: "argument count disagrees with closure arity"}
	}
	childEnv := cl.Env
	for i, p := range cl.Params {
		childEnv = childEnv.Bind(p.Index, args[i])
	}
	return e.Eval(cl.Body, childEnv, ctx)
}

func (e *Evaluator) evalProveDlog(n *mir.ProveDlog, env *ergoctx.Env, ctx *ergoctx.Context) (data.Value, error) {
	v, err := e.Eval(n.Value, env, ctx)
	if err != nil {
		return nil, errors.Wrap(err, "ProveDlog.value")
	}
	ge, ok := v.(data.GroupElement)
	if !ok {
		return nil, &UnexpectedValueError{Node: "ProveDlog", Detail: "expected GroupElement"}
	}
	// Building, combining and proving sigma propositions beyond this
	// opaque leaf wrapping is a cryptographic collaborator's job (§1);
	// the tag byte plus point bytes is enough for the evaluator's own
	// move/compare/serialize needs.
	const proveDlogTag = 0xCD
	tree := append([]byte{proveDlogTag}, ge.Bytes()...)
	return data.NewSigmaProp(tree), nil
}
