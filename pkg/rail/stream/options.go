package stream

import "context"

type optionKey string

const (
	workerOptionKey optionKey = "worker_options"
	drainOptionKey  optionKey = "drain_options"
)

// WithWorkers stores the worker fan-out for downstream pipeline stages.
func WithWorkers(ctx context.Context, workers int) context.Context {
	return context.WithValue(ctx, workerOptionKey, workers)
}

// Workers reads the worker fan-out from the context, falling back to def.
func Workers(ctx context.Context, def int) int {
	if n, ok := ctx.Value(workerOptionKey).(int); ok {
		return n
	}
	return def
}

// WithDrainOnCancel stores whether canceled pipelines drain in-flight items
// through their cancellation handlers.
func WithDrainOnCancel(ctx context.Context, drain bool) context.Context {
	return context.WithValue(ctx, drainOptionKey, drain)
}

// DrainOnCancel reads the drain flag from the context, falling back to def.
func DrainOnCancel(ctx context.Context, def bool) bool {
	if d, ok := ctx.Value(drainOptionKey).(bool); ok {
		return d
	}
	return def
}
