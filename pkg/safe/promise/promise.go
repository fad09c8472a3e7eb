package promise

import (
	"context"
	"errors"
	"sync"
)

// ErrNilRejection replaces a nil error passed to Reject, so a rejected
// promise can never be mistaken for a resolved one.
var ErrNilRejection = errors.New("promise rejected with nil error")

// Promise is a settle-once container for a value that arrives later.
// The first Resolve or Reject wins; later settlements are ignored.
// Reads of value and err are ordered by the done channel close.
type Promise[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

func New[T any]() *Promise[T] {
	return &Promise[T]{done: make(chan struct{})}
}

// Resolved returns a promise already settled with v.
func Resolved[T any](v T) *Promise[T] {
	p := New[T]()
	p.Resolve(v)
	return p
}

// Rejected returns a promise already settled with err.
func Rejected[T any](err error) *Promise[T] {
	p := New[T]()
	p.Reject(err)
	return p
}

// Go runs fn in its own goroutine and returns a promise settled with its
// outcome.
func Go[T any](fn func() (T, error)) *Promise[T] {
	p := New[T]()
	go func() {
		v, err := fn()
		if err != nil {
			p.Reject(err)
			return
		}
		p.Resolve(v)
	}()
	return p
}

func (p *Promise[T]) Resolve(v T) {
	p.once.Do(func() {
		p.value = v
		close(p.done)
	})
}

func (p *Promise[T]) Reject(err error) {
	p.once.Do(func() {
		if err == nil {
			err = ErrNilRejection
		}
		p.err = err
		close(p.done)
	})
}

// Then registers continuations; the matching one fires asynchronously
// once the promise settles. Registering after settlement still fires.
// Nil continuations are skipped.
func (p *Promise[T]) Then(onResolved func(T), onRejected func(error)) {
	go func() {
		<-p.done
		if p.err != nil {
			if onRejected != nil {
				onRejected(p.err)
			}
			return
		}
		if onResolved != nil {
			onResolved(p.value)
		}
	}()
}

// Await blocks until the promise settles or ctx expires. On expiry the
// ctx error is returned; the promise itself stays unsettled and can
// still be awaited again.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done is closed once the promise settles.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

func (p *Promise[T]) Settled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}
