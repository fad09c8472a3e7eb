package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/safecall/pkg/safe"
)

// Run executes every callable under the capture region on a bounded pool
// of workers and streams the Results. Result order follows completion,
// not submission. Callables not yet started when ctx expires are emitted
// as KindCanceled failures; the channel is closed once everything has
// been accounted for.
func Run[T, E any](ctx context.Context, workers int, fns ...func() T) <-chan safe.Result[T, E] {
	calls := make([]func() safe.Result[T, E], len(fns))
	for i, fn := range fns {
		calls[i] = func() safe.Result[T, E] {
			return safe.Call[T, E](fn)
		}
	}
	return run(ctx, workers, calls)
}

// RunErr is Run for callables of the native (T, error) shape.
func RunErr[T, E any](ctx context.Context, workers int, fns ...func() (T, error)) <-chan safe.Result[T, E] {
	calls := make([]func() safe.Result[T, E], len(fns))
	for i, fn := range fns {
		calls[i] = func() safe.Result[T, E] {
			return safe.CallErr[T, E](fn)
		}
	}
	return run(ctx, workers, calls)
}

func run[T, E any](ctx context.Context, workers int, calls []func() safe.Result[T, E]) <-chan safe.Result[T, E] {
	if workers < 1 {
		workers = 1
	}

	out := make(chan safe.Result[T, E])

	go func() {
		defer close(out)

		g := new(errgroup.Group)
		g.SetLimit(workers)

		for _, call := range calls {
			if ctx.Err() != nil {
				out <- safe.FailErr[T, E](ctx.Err())
				continue
			}

			g.Go(func() error {
				out <- call()
				return nil
			})
		}

		g.Wait()
	}()

	return out
}
