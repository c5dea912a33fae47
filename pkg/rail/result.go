// Package rail provides a generic Result[S, E] sum type and its combinator
// algebra for Railway-Oriented error handling: success stays on track,
// failure diverts to the error path and short-circuits the rest of the
// pipeline.
package rail

import (
	"time"

	"github.com/google/uuid"
)

// Result is a two-variant sum type: either a success carrying a value of S,
// or a failure carrying an error payload of E. Which variant holds is fixed
// at construction; combinators always build a new Result, never mutate one.
//
// Every Result is stamped with a creation id and UTC timestamp. Pass-through
// conversions (a failure flowing untouched through Map or Bind) keep the
// original stamp, so the payload travels by identity, not as a fresh copy.
type Result[S, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     S
	err       E
	isSuccess bool
}

// Success wraps v into the success variant. It has no failure mode.
func Success[S, E any](v S) Result[S, E] {
	return Result[S, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure wraps e into the failure variant. Construction itself cannot fail.
func Failure[S, E any](e E) Result[S, E] {
	return Result[S, E]{
		err:       e,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// From adapts a native (value, error) return into a Result over the error
// channel. A nil error yields a success.
func From[S any](v S, err error) Result[S, error] {
	if err != nil {
		return Failure[S, error](err)
	}
	return Success[S, error](v)
}

// TryWith runs a fallible thunk at the construction boundary, mapping a
// returned error into the failure channel through mapErr. Panics inside f
// are not recovered.
func TryWith[S, E any](f func() (S, error), mapErr func(error) E) Result[S, E] {
	v, err := f()
	if err != nil {
		return Failure[S, E](mapErr(err))
	}
	return Success[S, E](v)
}

// Validate wraps in into a success when f approves it, otherwise into a
// failure carrying the payload f reports.
func Validate[S, E any](in S, f func(S) (bool, E)) Result[S, E] {
	if ok, e := f(in); !ok {
		return Failure[S, E](e)
	}
	return Success[S, E](in)
}

// AndValidate applies a further validation to an existing success; failures
// pass through untouched.
func AndValidate[S, E any](r Result[S, E], f func(S) (bool, E)) Result[S, E] {
	if !r.isSuccess {
		return r
	}
	return Validate(r.value, f)
}

// FailureFrom re-types a failure from one success type to another,
// preserving the error payload and the provenance stamp.
// Calling it on a success panics with *AccessError.
func FailureFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	if from.isSuccess {
		panic(&AccessError{Op: "FailureFrom", Variant: "success"})
	}
	return Result[Out, E]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// IsSuccess reports whether r holds the success variant.
func (r Result[S, E]) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure reports whether r holds the failure variant.
func (r Result[S, E]) IsFailure() bool {
	return !r.isSuccess
}

// Value returns the success payload. It panics with *AccessError when
// called on a failure; use Match or the OrElse family to unwrap safely.
func (r Result[S, E]) Value() S {
	if !r.isSuccess {
		panic(&AccessError{Op: "Value", Variant: "failure"})
	}
	return r.value
}

// Error returns the failure payload. It panics with *AccessError when
// called on a success.
func (r Result[S, E]) Error() E {
	if r.isSuccess {
		panic(&AccessError{Op: "Error", Variant: "success"})
	}
	return r.err
}

// ID returns the provenance id stamped at construction.
func (r Result[S, E]) ID() uuid.UUID {
	return r.id
}

// CreatedAt returns the construction time (UTC).
func (r Result[S, E]) CreatedAt() time.Time {
	return r.createdAt
}
