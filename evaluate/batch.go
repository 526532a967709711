package evaluate

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/strokematch/geom"
	"github.com/katalvlaran/strokematch/svgpath"
)

// Request is one independent evaluation.
type Request struct {
	Stroke    geom.Stroke
	Reference svgpath.Descriptor
	Samples   int
}

// EvaluateBatch evaluates reqs concurrently, at most GOMAXPROCS at a time.
// Results are in request order. If ctx is cancelled before the batch
// completes, the context error is returned and the results are discarded.
func (e *Evaluator) EvaluateBatch(ctx context.Context, reqs []Request) ([]Result, error) {
	out := make([]Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, r := range reqs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if e.metrics != nil {
				e.metrics.ActiveEvaluations.Add(gctx, 1)
				defer e.metrics.ActiveEvaluations.Add(gctx, -1)
			}
			out[i] = e.evaluate(gctx, r.Stroke, r.Reference, r.Samples)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
