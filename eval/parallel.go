package eval

import (
	"context"

	"github.com/ergoplasma/ergotree-go/data"
	"github.com/ergoplasma/ergotree-go/ergoctx"
	"github.com/ergoplasma/ergotree-go/mir"
	"golang.org/x/sync/errgroup"
)

// Task is one independent (Expr, Env, Context) evaluation — independent
// meaning it shares no mutable state with any other Task in the same
// EvaluateAll call (§5: "Multiple independent evaluations may run in
// parallel on separate contexts with no shared mutable state").
type Task struct {
	Expr  mir.Expr
	Env   *ergoctx.Env
	Ctx   *ergoctx.Context
	Table CostTable
	// Ceiling and StepLimit configure a fresh CostAccumulator built for
	// this task alone — accumulators are never shared across goroutines.
	Ceiling   uint64
	StepLimit uint64
}

// EvaluateAll runs every Task concurrently and returns results in the
// same order as tasks. If any Task fails, EvaluateAll returns the first
// error errgroup reports; the other Tasks still run to completion,
// because evaluation observes neither ctx nor the group's derived
// context.
func EvaluateAll(ctx context.Context, tasks []Task) ([]data.Value, error) {
	results := make([]data.Value, len(tasks))
	g, _ := errgroup.WithContext(ctx)
	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			accum := NewCostAccumulator(t.Table, t.Ceiling, t.StepLimit)
			v, err := New(accum).Eval(t.Expr, t.Env, t.Ctx)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
