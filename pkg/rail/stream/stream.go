package stream

import (
	"context"
	"sync"

	"github.com/ib-77/rail/pkg/rail"
)

// Stage transforms one result into the next as items flow through a
// pipeline. Stages are built with the constructors in this package (Bind,
// Map, Tee, Validate, Try) but any function of this shape works.
type Stage[In, Out, E any] func(ctx context.Context, in rail.Result[In, E]) rail.Result[Out, E]

// CancelHandlers customizes what happens to items still in flight when the
// context is canceled mid-pipeline.
type CancelHandlers[In, Out, E any] struct {
	// OnCancelRemaining maps each undelivered input to the output emitted
	// while draining. Nil disables draining for the stage.
	OnCancelRemaining func(ctx context.Context, in rail.Result[In, E]) rail.Result[Out, E]
}

// Run fans a same-type stage out over the given number of workers.
func Run[T, E any](ctx context.Context, in <-chan rail.Result[T, E],
	stage Stage[T, T, E], workers int) <-chan rail.Result[T, E] {
	return TurnoutWith(ctx, in, stage, CancelHandlers[T, T, E]{}, workers)
}

// RunWith is Run with explicit cancellation handlers.
func RunWith[T, E any](ctx context.Context, in <-chan rail.Result[T, E],
	stage Stage[T, T, E], handlers CancelHandlers[T, T, E], workers int) <-chan rail.Result[T, E] {
	return TurnoutWith(ctx, in, stage, handlers, workers)
}

// Turnout fans a type-changing stage out over the given number of workers.
// Output order across workers is not defined; per-item semantics are those
// of the stage.
func Turnout[In, Out, E any](ctx context.Context, in <-chan rail.Result[In, E],
	stage Stage[In, Out, E], workers int) <-chan rail.Result[Out, E] {
	return TurnoutWith(ctx, in, stage, CancelHandlers[In, Out, E]{}, workers)
}

// TurnoutWith is Turnout with explicit cancellation handlers.
func TurnoutWith[In, Out, E any](ctx context.Context, in <-chan rail.Result[In, E],
	stage Stage[In, Out, E], handlers CancelHandlers[In, Out, E], workers int) <-chan rail.Result[Out, E] {

	out := make(chan rail.Result[Out, E])
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go pump(ctx, in, out, stage, handlers, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// pump is the worker loop: pull an item, apply the stage, push the result,
// watching for cancellation at every blocking point.
func pump[In, Out, E any](ctx context.Context, in <-chan rail.Result[In, E],
	out chan<- rail.Result[Out, E], stage Stage[In, Out, E],
	handlers CancelHandlers[In, Out, E], wg *sync.WaitGroup) {

	defer wg.Done()

	for {
		// cancellation takes priority over pending input
		if ctx.Err() != nil {
			drainRemaining(ctx, in, out, handlers)
			return
		}

		select {
		case <-ctx.Done():
			drainRemaining(ctx, in, out, handlers)
			return
		case r, ok := <-in:
			if !ok {
				return
			}

			pr := stage(ctx, r)

			select {
			case out <- pr:
			case <-ctx.Done():
				drainRemaining(ctx, in, out, handlers)
				return
			}
		}
	}
}

func drainRemaining[In, Out, E any](ctx context.Context, in <-chan rail.Result[In, E],
	out chan<- rail.Result[Out, E], handlers CancelHandlers[In, Out, E]) {

	if handlers.OnCancelRemaining == nil || !DrainOnCancel(ctx, true) {
		return
	}

	for r := range in {
		out <- handlers.OnCancelRemaining(ctx, r)
	}
}
