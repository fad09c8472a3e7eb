package promise

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

var ErrNoPromises = errors.New("no promises to combine")

// All awaits every promise and resolves with their values in input
// order. The first rejection (or ctx expiry) rejects the combined
// promise and stops waiting on the rest.
func All[T any](ctx context.Context, promises ...*Promise[T]) *Promise[[]T] {
	out := New[[]T]()

	if len(promises) == 0 {
		out.Resolve(nil)
		return out
	}

	values := make([]T, len(promises))
	g, gctx := errgroup.WithContext(ctx)

	for i, pr := range promises {
		g.Go(func() error {
			v, err := pr.Await(gctx)
			if err != nil {
				return err
			}
			values[i] = v
			return nil
		})
	}

	go func() {
		if err := g.Wait(); err != nil {
			out.Reject(err)
			return
		}
		out.Resolve(values)
	}()

	return out
}

// Race settles with the first promise to settle, resolved or rejected.
// Ctx expiry rejects the race if nothing settled before it.
func Race[T any](ctx context.Context, promises ...*Promise[T]) *Promise[T] {
	out := New[T]()

	if len(promises) == 0 {
		out.Reject(ErrNoPromises)
		return out
	}

	for _, pr := range promises {
		pr.Then(out.Resolve, out.Reject)
	}

	go func() {
		select {
		case <-ctx.Done():
			out.Reject(ctx.Err())
		case <-out.done:
		}
	}()

	return out
}
