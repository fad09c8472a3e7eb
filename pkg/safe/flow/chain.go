package flow

import (
	"github.com/ib-77/safecall/pkg/safe"
)

// Chain is a small fluent wrapper over Result[T, E] for synchronous
// composition.
type Chain[T, E any] struct {
	res safe.Result[T, E]
}

func From[T, E any](r safe.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

func FromValue[T, E any](v T) Chain[T, E] {
	return From(safe.Success[T, E](v))
}

func (c Chain[T, E]) Result() safe.Result[T, E] {
	return c.res
}

// Then composes functions that already return a Result
func (c Chain[T, E]) Then(onSuccess func(t T) safe.Result[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{res: onSuccess(c.res.Value())}
}

// ThenErr composes functions that return (T, error) — like repo calls.
// The call runs inside the capture region, so a panic becomes a failure
// too.
func (c Chain[T, E]) ThenErr(try func(t T) (T, error)) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{res: safe.CallErr[T, E](func() (T, error) {
		return try(c.res.Value())
	})}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess func(t T) T) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{res: safe.Success[T, E](onSuccess(c.res.Value()))}
}

// Ensure triggers side effects for success/failure without changing the
// result
func (c Chain[T, E]) Ensure(onSuccess func(T), onFailure func(safe.Failure[E])) Chain[T, E] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.res.Failure())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value
func (c Chain[T, E]) Finally(onSuccess func(T) T, onFailure func(safe.Failure[E]) T) T {
	return Finally(c.res, onSuccess, onFailure)
}
