package flow

import (
	"github.com/ib-77/safecall/pkg/safe"
)

// Map transforms the successful value; a failure passes through
// untouched.
func Map[T, U, E any](input safe.Result[T, E], onSuccess func(T) U) safe.Result[U, E] {
	if input.IsFailure() {
		return safe.FailFrom[U](input)
	}
	return safe.Success[U, E](onSuccess(input.Value()))
}

// Then switches to a new Result produced from the successful value.
func Then[T, U, E any](input safe.Result[T, E], onSuccess func(T) safe.Result[U, E]) safe.Result[U, E] {
	if input.IsFailure() {
		return safe.FailFrom[U](input)
	}
	return onSuccess(input.Value())
}

// MapFailure rewrites the failure description; a success passes through
// untouched.
func MapFailure[T, E any](input safe.Result[T, E], onFailure func(safe.Failure[E]) safe.Failure[E]) safe.Result[T, E] {
	if input.IsSuccess() {
		return input
	}
	return safe.Fail[T, E](onFailure(input.Failure()))
}

// Tee triggers a side effect on success without changing the result.
func Tee[T, E any](input safe.Result[T, E], onSuccess func(T)) safe.Result[T, E] {
	if input.IsSuccess() {
		onSuccess(input.Value())
	}
	return input
}

// TeeFailure triggers a side effect on failure without changing the
// result.
func TeeFailure[T, E any](input safe.Result[T, E], onFailure func(safe.Failure[E])) safe.Result[T, E] {
	if input.IsFailure() {
		onFailure(input.Failure())
	}
	return input
}

// DoubleTee triggers the matching side effect for either variant.
func DoubleTee[T, E any](input safe.Result[T, E],
	onSuccess func(T), onFailure func(safe.Failure[E])) safe.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(input.Value())
	} else {
		onFailure(input.Failure())
	}
	return input
}

// Finally collapses a Result to a final value via the matching handler.
func Finally[T, U, E any](input safe.Result[T, E],
	onSuccess func(T) U, onFailure func(safe.Failure[E]) U) U {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onFailure(input.Failure())
}
