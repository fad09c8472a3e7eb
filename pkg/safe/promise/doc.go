// Package promise provides a minimal settle-once Promise[T] used as the
// awaitable half of the safe adapter.
//
// A Promise is created pending and settles exactly once, by Resolve or
// Reject; later settlements are ignored. Consumers pick the style that
// fits:
// - Then: register continuations, fired asynchronously after settlement
// - Await: block with a context until settlement or expiry
// - Done/Settled: select-friendly observation
//
// Go runs a (T, error) function in a goroutine and settles from its
// outcome. All and Race combine several promises under one context.
package promise
