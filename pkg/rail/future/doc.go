// Package future lifts the rail combinator algebra over asynchronous
// computations. Task[T] is the underlying promise primitive: completed
// exactly once, readable many times.
//
// Highlights:
// - New/FromFunc/Resolved: construct tasks
// - Lift: convert a faultable Task into a Result-bearing one, catching
//   exactly one fault class
// - MapAsync/BindAsync/Then: sequence continuations with failure
//   short-circuit (a failed input never schedules the continuation)
// - RecoverWithAsync: async fallback computation
// - ResolveAll: await a batch in order
// - Throttled: rate-limit a continuation via golang.org/x/time
//
// Within one chain continuations execute in composition order; unrelated
// chains run concurrently. Cancellation of the awaited context faults the
// chain rather than being swallowed.
package future
