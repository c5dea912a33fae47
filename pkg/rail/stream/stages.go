package stream

import (
	"context"

	"github.com/ib-77/rail/pkg/rail"
)

// Validate builds a stage that fails items the predicate rejects.
func Validate[T, E any](f func(ctx context.Context, in T) (bool, E)) Stage[T, T, E] {
	return func(ctx context.Context, in rail.Result[T, E]) rail.Result[T, E] {
		return rail.AndValidate(in, func(t T) (bool, E) {
			return f(ctx, t)
		})
	}
}

// Bind builds a stage from a function that may itself fail.
func Bind[In, Out, E any](f func(ctx context.Context, in In) rail.Result[Out, E]) Stage[In, Out, E] {
	return func(ctx context.Context, in rail.Result[In, E]) rail.Result[Out, E] {
		return rail.Bind(in, func(v In) rail.Result[Out, E] {
			return f(ctx, v)
		})
	}
}

// Map builds a stage from a pure transformation.
func Map[In, Out, E any](f func(ctx context.Context, in In) Out) Stage[In, Out, E] {
	return func(ctx context.Context, in rail.Result[In, E]) rail.Result[Out, E] {
		return rail.Map(in, func(v In) Out {
			return f(ctx, v)
		})
	}
}

// Try builds a stage from a native (value, error) function, for pipelines
// whose error channel is the native error type.
func Try[In, Out any](f func(ctx context.Context, in In) (Out, error)) Stage[In, Out, error] {
	return func(ctx context.Context, in rail.Result[In, error]) rail.Result[Out, error] {
		return rail.BindTry(in, func(v In) (Out, error) {
			return f(ctx, v)
		})
	}
}

// Tee builds a stage that observes successes without altering them.
func Tee[T, E any](f func(ctx context.Context, in T)) Stage[T, T, E] {
	return func(ctx context.Context, in rail.Result[T, E]) rail.Result[T, E] {
		return in.Tap(func(t T) {
			f(ctx, t)
		})
	}
}

// TeeError builds a stage that observes failures without altering them.
func TeeError[T, E any](f func(ctx context.Context, e E)) Stage[T, T, E] {
	return func(ctx context.Context, in rail.Result[T, E]) rail.Result[T, E] {
		return in.TapError(func(e E) {
			f(ctx, e)
		})
	}
}

// FinallyHandlers eliminates both variants into a common output type at the
// end of a pipeline.
type FinallyHandlers[In, Out, E any] struct {
	OnSuccess func(ctx context.Context, in In) Out
	OnFailure func(ctx context.Context, e E) Out
}

// Finalize collapses a pipeline of results into plain values via the
// handlers, one output per input, stopping on cancellation.
func Finalize[In, Out, E any](ctx context.Context, in <-chan rail.Result[In, E],
	handlers FinallyHandlers[In, Out, E]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-in:
				if !ok {
					return
				}

				v := rail.Match(r,
					func(t In) Out { return handlers.OnSuccess(ctx, t) },
					func(e E) Out { return handlers.OnFailure(ctx, e) })

				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
