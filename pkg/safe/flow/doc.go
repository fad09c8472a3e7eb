// Package flow provides combinators and a fluent Chain[T, E] for
// synchronous composition of safe.Result values.
//
// Key operations:
// - Map/Then: transform the value or switch to a new Result
// - MapFailure/Tee/TeeFailure/DoubleTee: rewrite or observe either side
// - Finally: reduce to a concrete value via handlers
// - Chain: From/FromValue, Then/ThenErr, Map, Ensure, Finally
//
// A failure short-circuits every success-side combinator and passes
// through unchanged.
package flow
