// Package safe reifies failing computations as values instead of
// letting them propagate.
//
// Result[T, E] holds exactly one of a success value or a failure
// description; the variant is fixed at construction and immutable. The
// adapter family wraps the three computation shapes:
// - Call/CallErr: synchronous callables, panics and errors captured
// - Await: an awaitable, adapted to a promise of a Result that never rejects
// - CallAsync: a callable producing an awaitable
// - Adapt: single value-level entry dispatching on the shape at runtime
//
// Downstream code inspects outcomes uniformly through IsFailure/Err;
// the only deliberate panic left is Adapt's contract violation when
// given a value that is neither callable nor awaitable.
package safe
