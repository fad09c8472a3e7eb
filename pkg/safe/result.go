package safe

import (
	"time"

	"github.com/google/uuid"
)

// Unit is the empty payload type for results that carry no value on one
// side, e.g. Result[Unit, E] for failure-only or Result[T, Unit] when no
// typed failure payload is wanted.
type Unit = struct{}

// Result holds exactly one of a success value T or a Failure[E]. The
// variant is fixed at construction and all fields stay unexported, so a
// produced Result cannot be flipped or mutated afterwards.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	failure   Failure[E]
	failed    bool
}

func Success[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
	}
}

func Fail[T, E any](f Failure[E]) Result[T, E] {
	return Result[T, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		failure:   f,
		failed:    true,
	}
}

// FailErr builds a failure Result from a plain error. Cancellation
// errors are tagged KindCanceled, everything else KindError. When the
// error is assignable to E it is also kept verbatim as the payload.
func FailErr[T, E any](err error) Result[T, E] {
	return Fail[T, E](failureFromErr[E](err))
}

func FailMsg[T, E any](msg string) Result[T, E] {
	return Fail[T, E](NewFailure[E](KindError, msg))
}

// FailFrom carries a failure across a value-type switch, keeping the
// original id and creation time.
func FailFrom[Out, In, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		id:        from.id,
		createdAt: from.createdAt,
		failure:   from.failure,
		failed:    from.failed,
	}
}

// Value returns the success value; the zero value of T on the failure
// variant.
func (r Result[T, E]) Value() T {
	return r.value
}

// Failure returns the failure description; the zero Failure on the
// success variant.
func (r Result[T, E]) Failure() Failure[E] {
	return r.failure
}

func (r Result[T, E]) IsSuccess() bool {
	return !r.failed
}

func (r Result[T, E]) IsFailure() bool {
	return r.failed
}

func (r Result[T, E]) IsCanceled() bool {
	return r.failed && r.failure.kind == KindCanceled
}

// Err returns the failure as a non-nil error exactly when the failure
// variant holds, so ordinary `if err != nil` narrowing applies.
func (r Result[T, E]) Err() error {
	if !r.failed {
		return nil
	}
	return r.failure
}

// Unwrap splits the result into the familiar (value, error) pair.
func (r Result[T, E]) Unwrap() (T, error) {
	return r.value, r.Err()
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func failureFromErr[E any](err error) Failure[E] {
	kind := KindError
	if IsCancellationError(err) {
		kind = KindCanceled
	}
	f := NewFailure[E](kind, err.Error()).WithCause(err)
	if p, ok := any(err).(E); ok {
		f = f.WithPayload(p)
	}
	return f
}
