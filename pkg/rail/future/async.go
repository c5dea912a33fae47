package future

import (
	"context"
	"errors"

	"github.com/ib-77/rail/pkg/rail"
)

// Lift converts a Task that may fault into a Result-bearing Task. Faults
// matching class (per errors.Is) become failures through mapErr; any other
// fault, including ctx cancellation while awaiting, propagates as a fault of
// the returned Task. This is the single boundary where host faults enter the
// Result algebra.
func Lift[S, E any](ctx context.Context, t *Task[S], class error,
	mapErr func(error) E) *Task[rail.Result[S, E]] {

	out := New[rail.Result[S, E]]()

	go func() {
		v, err := t.Get(ctx)
		if err != nil {
			if class != nil && errors.Is(err, class) {
				out.Complete(rail.Failure[S](mapErr(err)))
				return
			}
			out.Fail(err)
			return
		}
		out.Complete(rail.Success[S, E](v))
	}()

	return out
}

// MapAsync awaits t; on a success it schedules f, awaits it, and wraps the
// value in a success. On a failure f is never scheduled and the failure
// passes through. A fault of t or of f's task propagates as a fault.
func MapAsync[S, E, U any](ctx context.Context, t *Task[rail.Result[S, E]],
	f func(S) *Task[U]) *Task[rail.Result[U, E]] {

	out := New[rail.Result[U, E]]()

	go func() {
		res, err := t.Get(ctx)
		if err != nil {
			out.Fail(err)
			return
		}
		if res.IsFailure() {
			out.Complete(rail.FailureFrom[S, U](res))
			return
		}
		v, err := f(res.Value()).Get(ctx)
		if err != nil {
			out.Fail(err)
			return
		}
		out.Complete(rail.Success[U, E](v))
	}()

	return out
}

// BindAsync awaits t; on a success it schedules the continuation, whose
// Result-bearing Task becomes the outcome without double nesting. On a
// failure the continuation is never scheduled.
func BindAsync[S, E, U any](ctx context.Context, t *Task[rail.Result[S, E]],
	f func(S) *Task[rail.Result[U, E]]) *Task[rail.Result[U, E]] {

	out := New[rail.Result[U, E]]()

	go func() {
		res, err := t.Get(ctx)
		if err != nil {
			out.Fail(err)
			return
		}
		if res.IsFailure() {
			out.Complete(rail.FailureFrom[S, U](res))
			return
		}
		next, err := f(res.Value()).Get(ctx)
		if err != nil {
			out.Fail(err)
			return
		}
		out.Complete(next)
	}()

	return out
}

// Then applies a synchronous continuation to an async chain.
func Then[S, E, U any](ctx context.Context, t *Task[rail.Result[S, E]],
	f func(S) rail.Result[U, E]) *Task[rail.Result[U, E]] {

	out := New[rail.Result[U, E]]()

	go func() {
		res, err := t.Get(ctx)
		if err != nil {
			out.Fail(err)
			return
		}
		out.Complete(rail.Bind(res, f))
	}()

	return out
}

// RecoverWithAsync awaits t; on a failure it schedules the fallback
// computation, which may itself fail. A success passes through and the
// fallback is never scheduled.
func RecoverWithAsync[S, E any](ctx context.Context, t *Task[rail.Result[S, E]],
	f func(E) *Task[rail.Result[S, E]]) *Task[rail.Result[S, E]] {

	out := New[rail.Result[S, E]]()

	go func() {
		res, err := t.Get(ctx)
		if err != nil {
			out.Fail(err)
			return
		}
		if res.IsSuccess() {
			out.Complete(res)
			return
		}
		next, err := f(res.Error()).Get(ctx)
		if err != nil {
			out.Fail(err)
			return
		}
		out.Complete(next)
	}()

	return out
}

// ResolveAll waits for every task and returns their results in input order.
// If ctx is canceled before all tasks complete, the ctx error is returned.
func ResolveAll[S, E any](ctx context.Context,
	ts []*Task[rail.Result[S, E]]) ([]rail.Result[S, E], error) {

	res := make([]rail.Result[S, E], 0, len(ts))

	for _, t := range ts {
		r, err := t.Get(ctx)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}

	return res, nil
}
