// Package flow contains the channel plumbing for applying a two-track stage
// to a bulk sequence of inputs: a source helper, worker fan-out, a finalize
// step, and a collector. Each element's Result is computed independently;
// the package imposes no ordering between completions and performs no
// aggregation beyond gathering channel output.
//
// Common usage:
// - Source/SourceSlice: feed values in as successes
// - Run: fan a Stage out over a fixed number of workers
// - Finally: map Result[In] to Out via success/failure handlers
// - Collect: gather results into a slice
package flow
