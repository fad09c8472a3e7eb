// Package batch captures the outcomes of many callables concurrently.
//
// Run/RunErr execute the callables on a bounded worker pool, each inside
// the safe capture region, and stream Results on a channel. Collect,
// Values, Failures and Partition reduce the stream for callers that want
// slices.
//
// Cancellation: callables not yet started when the context expires are
// emitted as canceled failures, so every submitted callable is accounted
// for exactly once.
package batch
