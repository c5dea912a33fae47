package stream

import (
	"context"

	"github.com/ib-77/rail/pkg/rail"
)

// Emit feeds plain values into a channel, stopping on cancellation.
func Emit[T any](ctx context.Context, values ...T) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		for _, v := range values {
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Source feeds values into a pipeline as successes.
func Source[T, E any](ctx context.Context, values ...T) <-chan rail.Result[T, E] {
	out := make(chan rail.Result[T, E])

	go func() {
		defer close(out)

		for _, v := range values {
			select {
			case out <- rail.Success[T, E](v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Collect gathers every value from the channel until it closes or the
// context is canceled.
func Collect[T any](ctx context.Context, in <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-in:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// First returns the first value from the channel, or def when the channel
// closes empty or the context is canceled.
func First[T any](ctx context.Context, in <-chan T, def T) T {
	select {
	case v, ok := <-in:
		if !ok {
			return def
		}
		return v
	case <-ctx.Done():
		return def
	}
}
