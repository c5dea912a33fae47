package future

import (
	"context"

	"golang.org/x/time/rate"
)

// Throttled wraps an async continuation so each invocation first reserves a
// slot from the rate limiter. A limiter wait error (ctx canceled, burst
// exceeded) faults the returned task.
func Throttled[In, Out any](ctx context.Context, lim *rate.Limiter,
	f func(In) *Task[Out]) func(In) *Task[Out] {

	return func(in In) *Task[Out] {
		out := New[Out]()

		go func() {
			if err := lim.Wait(ctx); err != nil {
				out.Fail(err)
				return
			}
			v, err := f(in).Get(ctx)
			if err != nil {
				out.Fail(err)
				return
			}
			out.Complete(v)
		}()

		return out
	}
}
