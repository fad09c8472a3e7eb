package batch

import (
	"github.com/samber/lo"

	"github.com/ib-77/safecall/pkg/safe"
)

// Collect drains the channel into a slice.
func Collect[T, E any](ch <-chan safe.Result[T, E]) []safe.Result[T, E] {
	var results []safe.Result[T, E]
	for r := range ch {
		results = append(results, r)
	}
	return results
}

// Values extracts the success values, dropping failures.
func Values[T, E any](results []safe.Result[T, E]) []T {
	return lo.FilterMap(results, func(r safe.Result[T, E], _ int) (T, bool) {
		return r.Value(), r.IsSuccess()
	})
}

// Failures extracts the failure descriptions, dropping successes.
func Failures[T, E any](results []safe.Result[T, E]) []safe.Failure[E] {
	return lo.FilterMap(results, func(r safe.Result[T, E], _ int) (safe.Failure[E], bool) {
		return r.Failure(), r.IsFailure()
	})
}

// Partition splits results into success values and failure descriptions.
func Partition[T, E any](results []safe.Result[T, E]) ([]T, []safe.Failure[E]) {
	return Values(results), Failures(results)
}
