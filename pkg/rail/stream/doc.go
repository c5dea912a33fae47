// Package stream runs Railway-Oriented pipelines over channels of results
// with worker fan-out.
//
// A pipeline starts from Source, flows through stages fanned out by
// Run/Turnout, and ends in Finalize. Stage constructors (Validate, Bind,
// Map, Try, Tee) lift the synchronous rail combinators into channel stages,
// so per-item semantics are exactly those of the core: failures pass
// through stages untouched and never invoke the wrapped function.
//
// Worker fan-out and drain-on-cancel behavior are read from the context via
// WithWorkers and WithDrainOnCancel.
package stream
