package safe

import (
	"context"
	"errors"
	"fmt"

	"github.com/ib-77/safecall/pkg/safe/promise"
)

// ErrNotAdaptable reports a caller contract violation: Adapt was given a
// value that is neither callable nor awaitable. This is the one case the
// adapter panics instead of producing a Result, since no computation was
// ever entered.
var ErrNotAdaptable = errors.New("computation is neither callable nor awaitable")

// Call invokes fn inside a capture region and returns its outcome
// synchronously. A panic does not escape: the recovered value becomes a
// KindPanic failure, kept verbatim as the payload when assignable to E.
func Call[T, E any](fn func() T) (res Result[T, E]) {
	defer func() {
		if r := recover(); r != nil {
			res = Fail[T, E](failureFromRecovered[E](r))
		}
	}()
	return Success[T, E](fn())
}

// CallErr adapts the native Go callable shape. A returned error becomes
// a KindError failure (KindCanceled for context errors); a panic is
// captured the same way as in Call.
func CallErr[T, E any](fn func() (T, error)) (res Result[T, E]) {
	defer func() {
		if r := recover(); r != nil {
			res = Fail[T, E](failureFromRecovered[E](r))
		}
	}()

	v, err := fn()
	if err != nil {
		return FailErr[T, E](err)
	}
	return Success[T, E](v)
}

// Await attaches continuations to aw and returns a promise of the
// eventual Result. The returned promise always resolves; a rejection of
// aw resolves it with a KindRejection failure, never a rejection of its
// own.
func Await[T, E any](aw Awaitable[T]) *promise.Promise[Result[T, E]] {
	p := promise.New[Result[T, E]]()

	aw.Then(
		func(v T) {
			p.Resolve(Success[T, E](v))
		},
		func(err error) {
			p.Resolve(Fail[T, E](failureFromRejection[E](err)))
		},
	)

	return p
}

// CallAsync invokes fn inside a capture region and awaits the returned
// awaitable. A synchronous panic yields an already-resolved failure
// promise; so does a nil awaitable, which would otherwise never settle.
func CallAsync[T, E any](fn func() Awaitable[T]) *promise.Promise[Result[T, E]] {
	var aw Awaitable[T]

	res := Call[Unit, E](func() Unit {
		aw = fn()
		return Unit{}
	})
	if res.IsFailure() {
		return promise.Resolved(Fail[T, E](res.Failure()))
	}

	if IsNil(aw) {
		return promise.Resolved(FailMsg[T, E]("callable returned a nil awaitable"))
	}

	return Await[T, E](aw)
}

// Adapted is the outcome of the dynamic Adapt dispatch: exactly one of
// an immediate Result (synchronous branch) or a deferred promise of one
// (asynchronous branch).
type Adapted[T, E any] struct {
	res       Result[T, E]
	immediate bool
	deferred  *promise.Promise[Result[T, E]]
}

func (a Adapted[T, E]) IsImmediate() bool {
	return a.immediate
}

// Sync returns the immediate Result, if the synchronous branch was
// taken.
func (a Adapted[T, E]) Sync() (Result[T, E], bool) {
	return a.res, a.immediate
}

// Deferred returns the promise of the eventual Result, if the
// asynchronous branch was taken.
func (a Adapted[T, E]) Deferred() (*promise.Promise[Result[T, E]], bool) {
	if a.immediate {
		return nil, false
	}
	return a.deferred, true
}

// Wait collapses both branches to a Result: the immediate one as-is, the
// deferred one by awaiting. Ctx expiry before settlement becomes a
// KindCanceled failure.
func (a Adapted[T, E]) Wait(ctx context.Context) Result[T, E] {
	if a.immediate {
		return a.res
	}

	res, err := a.deferred.Await(ctx)
	if err != nil {
		return Fail[T, E](NewFailure[E](KindCanceled, err.Error()).WithCause(err))
	}
	return res
}

func immediate[T, E any](res Result[T, E]) Adapted[T, E] {
	return Adapted[T, E]{res: res, immediate: true}
}

func deferred[T, E any](p *promise.Promise[Result[T, E]]) Adapted[T, E] {
	return Adapted[T, E]{deferred: p}
}

// Adapt is the single value-level entry point over every accepted
// computation shape:
//
//   - Awaitable[T]                -> deferred
//   - func() T                    -> immediate (panic captured)
//   - func() (T, error)           -> immediate (error or panic captured)
//   - func() Awaitable[T]         -> deferred
//   - func() *promise.Promise[T]  -> deferred
//
// Awaitable shape is probed structurally, and probed again on the return
// value of an invoked callable, since only the latter is known at
// invocation time. Anything else is a contract violation: Adapt panics
// with an error wrapping ErrNotAdaptable.
func Adapt[T, E any](computation any) Adapted[T, E] {
	if aw, ok := computation.(Awaitable[T]); ok {
		return deferred(Await[T, E](aw))
	}

	if fn, ok := computation.(func() T); ok {
		res := Call[T, E](fn)
		if res.IsSuccess() {
			if aw, ok := any(res.Value()).(Awaitable[T]); ok {
				return deferred(Await[T, E](aw))
			}
		}
		return immediate(res)
	}

	if fn, ok := computation.(func() (T, error)); ok {
		return immediate(CallErr[T, E](fn))
	}

	if fn, ok := computation.(func() Awaitable[T]); ok {
		return deferred(CallAsync[T, E](fn))
	}

	if fn, ok := computation.(func() *promise.Promise[T]); ok {
		return deferred(CallAsync[T, E](func() Awaitable[T] { return fn() }))
	}

	panic(fmt.Errorf("%w: got %T", ErrNotAdaptable, computation))
}

func failureFromRecovered[E any](r any) Failure[E] {
	var f Failure[E]

	if err, ok := r.(error); ok {
		f = NewFailure[E](KindPanic, err.Error()).WithCause(err)
	} else {
		f = NewFailure[E](KindPanic, fmt.Sprint(r))
	}

	if p, ok := r.(E); ok {
		f = f.WithPayload(p)
	}
	return f
}

func failureFromRejection[E any](err error) Failure[E] {
	kind := KindRejection
	if IsCancellationError(err) {
		kind = KindCanceled
	}

	f := NewFailure[E](kind, err.Error()).WithCause(err)
	if p, ok := any(err).(E); ok {
		f = f.WithPayload(p)
	}
	return f
}
