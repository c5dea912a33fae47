package rail

// Map transforms the success payload through f, which must not itself be a
// fallible operation (use Bind for that). A failure passes through with its
// original payload and provenance stamp. Panics inside f are not recovered.
func Map[S, E, U any](r Result[S, E], f func(S) U) Result[U, E] {
	if !r.isSuccess {
		return FailureFrom[S, U](r)
	}
	return Success[U, E](f(r.value))
}

// Bind sequences r into a further fallible step. On success it returns f's
// Result directly, with no double wrapping; on failure f is never invoked
// and the failure passes through. Chained Binds evaluate strictly left to
// right and short-circuit on the first failure.
func Bind[S, E, U any](r Result[S, E], f func(S) Result[U, E]) Result[U, E] {
	if !r.isSuccess {
		return FailureFrom[S, U](r)
	}
	return f(r.value)
}

// MapError transforms the failure payload through f; a success passes
// through unchanged apart from the re-typed error channel.
func MapError[S, E, F any](r Result[S, E], f func(E) F) Result[S, F] {
	if r.isSuccess {
		return Result[S, F]{
			value:     r.value,
			isSuccess: true,
			createdAt: r.createdAt,
			id:        r.id,
		}
	}
	return Result[S, F]{
		err:       f(r.err),
		isSuccess: false,
		createdAt: r.createdAt,
		id:        r.id,
	}
}

// BindTry sequences a native (value, error) function into an error-channel
// pipeline, converting a returned error into a failure.
func BindTry[In, Out any](r Result[In, error], f func(In) (Out, error)) Result[Out, error] {
	if !r.isSuccess {
		return FailureFrom[In, Out](r)
	}
	out, err := f(r.value)
	if err != nil {
		return Failure[Out, error](err)
	}
	return Success[Out, error](out)
}

// Match eliminates the sum type into a common type R. Exactly one of the
// two handlers is invoked.
func Match[S, E, R any](r Result[S, E], onSuccess func(S) R, onFailure func(E) R) R {
	if r.isSuccess {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// Tap invokes f with the success payload and returns r unchanged. Failures
// skip f. Whatever f does internally, the returned Result carries the
// pre-tap payload.
func (r Result[S, E]) Tap(f func(S)) Result[S, E] {
	if r.isSuccess {
		f(r.value)
	}
	return r
}

// TapError invokes f with the failure payload and returns r unchanged.
func (r Result[S, E]) TapError(f func(E)) Result[S, E] {
	if !r.isSuccess {
		f(r.err)
	}
	return r
}

// OrElse unwraps the success payload, falling back to def on a failure.
func (r Result[S, E]) OrElse(def S) S {
	if r.isSuccess {
		return r.value
	}
	return def
}

// OrElseGet unwraps the success payload, invoking the supplier only on a
// failure. The supplier is never evaluated on the success path.
func (r Result[S, E]) OrElseGet(f func() S) S {
	if r.isSuccess {
		return r.value
	}
	return f()
}

// OrElseThrow unwraps the success payload, or panics with the error built
// by f. This is the deliberate bridge out of the Result algebra into
// panic-based control flow; use it only at the pipeline's outer edge.
func (r Result[S, E]) OrElseThrow(f func(E) error) S {
	if r.isSuccess {
		return r.value
	}
	panic(f(r.err))
}

// Recover turns a failure into a success via a computed fallback value.
// A success is returned as-is and f is never invoked.
func (r Result[S, E]) Recover(f func(E) S) Result[S, E] {
	if r.isSuccess {
		return r
	}
	return Success[S, E](f(r.err))
}

// RecoverWith turns a failure into the Result of a fallback computation
// that may itself fail. A success is returned as-is.
func (r Result[S, E]) RecoverWith(f func(E) Result[S, E]) Result[S, E] {
	if r.isSuccess {
		return r
	}
	return f(r.err)
}
