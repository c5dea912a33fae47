package chain

import (
	"context"

	"github.com/ib-77/rail/pkg/rail"
)

// Chain wraps a rail.Result with a context to enable fluent composition.
type Chain[T, E any] struct {
	ctx    context.Context
	result rail.Result[T, E]
}

// Start creates a new chain from an existing rail.Result.
func Start[T, E any](ctx context.Context, result rail.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value.
func FromValue[T, E any](ctx context.Context, value T) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: rail.Success[T, E](value),
	}
}

// Result returns the underlying rail.Result.
func (c *Chain[T, E]) Result() rail.Result[T, E] {
	return c.result
}

// Then chains a function that returns rail.Result[U, E]. A failed chain
// skips the function and carries the failure forward.
func Then[T, E, U any](c *Chain[T, E], onSuccess func(context.Context, T) rail.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		result: rail.Bind(c.result, func(t T) rail.Result[U, E] {
			return onSuccess(c.ctx, t)
		}),
	}
}

// ThenTry chains a function that returns (U, error), for chains whose error
// channel is the native error type.
func ThenTry[T, U any](c *Chain[T, error], try func(context.Context, T) (U, error)) *Chain[U, error] {
	return &Chain[U, error]{
		ctx: c.ctx,
		result: rail.BindTry(c.result, func(t T) (U, error) {
			return try(c.ctx, t)
		}),
	}
}

// Map chains a pure transformation function.
func Map[T, E, U any](c *Chain[T, E], onSuccess func(context.Context, T) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		result: rail.Map(c.result, func(t T) U {
			return onSuccess(c.ctx, t)
		}),
	}
}

// MapError re-types the error channel of the chain.
func MapError[T, E, F any](c *Chain[T, E], onFailure func(context.Context, E) F) *Chain[T, F] {
	return &Chain[T, F]{
		ctx: c.ctx,
		result: rail.MapError(c.result, func(e E) F {
			return onFailure(c.ctx, e)
		}),
	}
}

// Ensure performs a side effect on success without changing the result.
func (c *Chain[T, E]) Ensure(onSuccess func(context.Context, T)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		result: c.result.Tap(func(t T) {
			onSuccess(c.ctx, t)
		}),
	}
}

// EnsureError performs a side effect on failure without changing the result.
func (c *Chain[T, E]) EnsureError(onFailure func(context.Context, E)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		result: c.result.TapError(func(e E) {
			onFailure(c.ctx, e)
		}),
	}
}

// Recover supplies a computed fallback value for a failed chain.
func (c *Chain[T, E]) Recover(onFailure func(context.Context, E) T) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		result: c.result.Recover(func(e E) T {
			return onFailure(c.ctx, e)
		}),
	}
}

// Finally collapses the chain into a final value via the two handlers.
func Finally[T, E, U any](c *Chain[T, E], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, E) U) U {

	return rail.Match(c.result,
		func(t T) U { return onSuccess(c.ctx, t) },
		func(e E) U { return onFailure(c.ctx, e) })
}
