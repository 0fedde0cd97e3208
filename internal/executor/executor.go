// Package executor runs independent units of hourly work with bounded
// concurrency. A failing unit never cancels its siblings.
package executor

import (
	"context"

	"github.com/specialistvlad/gridcarbon/internal/ctxlog"
	"golang.org/x/sync/errgroup"
)

// Outcome pairs one input with its result or error.
type Outcome[In, Out any] struct {
	Input  In
	Result Out
	Err    error
}

// Run applies fn to every input using at most workers goroutines and returns
// the outcomes in input order. Errors are recorded per input. Once ctx is
// done no further inputs are started; those not yet started report
// ctx.Err().
func Run[In, Out any](ctx context.Context, inputs []In, workers int, fn func(context.Context, In) (Out, error)) []Outcome[In, Out] {
	logger := ctxlog.FromContext(ctx)
	if workers < 1 {
		workers = 1
	}

	outcomes := make([]Outcome[In, Out], len(inputs))
	var g errgroup.Group
	g.SetLimit(workers)

	for i, in := range inputs {
		outcomes[i].Input = in
		if err := ctx.Err(); err != nil {
			outcomes[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i].Err = err
				return nil
			}
			res, err := fn(ctx, in)
			if err != nil {
				logger.Debug("Work item failed.", "index", i, "error", err)
				outcomes[i].Err = err
				return nil
			}
			outcomes[i].Result = res
			return nil
		})
	}
	_ = g.Wait()
	logger.Debug("All work items settled.", "count", len(inputs), "workers", workers)
	return outcomes
}

// Failed counts outcomes carrying an error.
func Failed[In, Out any](outcomes []Outcome[In, Out]) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
