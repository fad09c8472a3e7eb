package safe

import "time"

// Awaitable is the structural contract for values that complete later:
// anything exposing a continuation-registration member is awaitable.
// Exactly one of the two continuations fires, after the value settles.
// Satisfying this interface is the capability probe the adapter uses;
// no concrete promise implementation is special-cased.
type Awaitable[T any] interface {
	Then(onResolved func(T), onRejected func(error))
}

type ResultProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time of creation (UTC)
	CreatedAt() time.Time
}

// WithFailure defines an interface for types that hold either a value or
// a failure description
type WithFailure[T, E any] interface {
	ResultProvider[T]
	// Failure returns the failure description if the operation failed
	Failure() Failure[E]
	// Err returns the failure as an error, nil on success
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}
