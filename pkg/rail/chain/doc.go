// Package chain provides a fluent, context-carrying wrapper around
// rail.Result for building synchronous Railway-Oriented pipelines.
//
// It composes the core combinators behind a Chain[T, E] type so callers do
// not branch on results at every step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: switch to a new Result[U, E] via a function
// - ThenTry: call a function (U, error) and convert the error to a failure
// - Map/MapError: transform the success value or the error channel
// - Ensure/EnsureError: run side effects without changing the result
// - Recover: computed fallback for a failed chain
// - Finally: collapse the chain into a final value via handlers
package chain
