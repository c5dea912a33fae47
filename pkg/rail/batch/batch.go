package batch

import (
	"github.com/ib-77/rail/pkg/rail"
)

// Tuple2 groups two independent success payloads in order.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// Tuple3 groups three independent success payloads in order.
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple4 groups four independent success payloads in order.
type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Combine2 succeeds only when both inputs succeed, pairing their payloads.
// On failure the first failing input wins, scanned left to right.
func Combine2[A, B, E any](ra rail.Result[A, E], rb rail.Result[B, E]) rail.Result[Tuple2[A, B], E] {
	if ra.IsFailure() {
		return rail.FailureFrom[A, Tuple2[A, B]](ra)
	}
	if rb.IsFailure() {
		return rail.FailureFrom[B, Tuple2[A, B]](rb)
	}
	return rail.Success[Tuple2[A, B], E](Tuple2[A, B]{First: ra.Value(), Second: rb.Value()})
}

// Combine3 is Combine2 extended to three inputs.
func Combine3[A, B, C, E any](ra rail.Result[A, E], rb rail.Result[B, E],
	rc rail.Result[C, E]) rail.Result[Tuple3[A, B, C], E] {

	if ra.IsFailure() {
		return rail.FailureFrom[A, Tuple3[A, B, C]](ra)
	}
	if rb.IsFailure() {
		return rail.FailureFrom[B, Tuple3[A, B, C]](rb)
	}
	if rc.IsFailure() {
		return rail.FailureFrom[C, Tuple3[A, B, C]](rc)
	}
	return rail.Success[Tuple3[A, B, C], E](Tuple3[A, B, C]{
		First:  ra.Value(),
		Second: rb.Value(),
		Third:  rc.Value(),
	})
}

// Combine4 is Combine2 extended to four inputs.
func Combine4[A, B, C, D, E any](ra rail.Result[A, E], rb rail.Result[B, E],
	rc rail.Result[C, E], rd rail.Result[D, E]) rail.Result[Tuple4[A, B, C, D], E] {

	if ra.IsFailure() {
		return rail.FailureFrom[A, Tuple4[A, B, C, D]](ra)
	}
	if rb.IsFailure() {
		return rail.FailureFrom[B, Tuple4[A, B, C, D]](rb)
	}
	if rc.IsFailure() {
		return rail.FailureFrom[C, Tuple4[A, B, C, D]](rc)
	}
	if rd.IsFailure() {
		return rail.FailureFrom[D, Tuple4[A, B, C, D]](rd)
	}
	return rail.Success[Tuple4[A, B, C, D], E](Tuple4[A, B, C, D]{
		First:  ra.Value(),
		Second: rb.Value(),
		Third:  rc.Value(),
		Fourth: rd.Value(),
	})
}

// Combine2Lazy is Combine2 over suppliers: once an earlier input fails,
// later suppliers are never invoked.
func Combine2Lazy[A, B, E any](fa func() rail.Result[A, E],
	fb func() rail.Result[B, E]) rail.Result[Tuple2[A, B], E] {

	ra := fa()
	if ra.IsFailure() {
		return rail.FailureFrom[A, Tuple2[A, B]](ra)
	}
	return Combine2(ra, fb())
}

// Combine3Lazy is Combine3 over suppliers with the same short-circuit rule.
func Combine3Lazy[A, B, C, E any](fa func() rail.Result[A, E],
	fb func() rail.Result[B, E], fc func() rail.Result[C, E]) rail.Result[Tuple3[A, B, C], E] {

	ra := fa()
	if ra.IsFailure() {
		return rail.FailureFrom[A, Tuple3[A, B, C]](ra)
	}
	rb := fb()
	if rb.IsFailure() {
		return rail.FailureFrom[B, Tuple3[A, B, C]](rb)
	}
	return Combine3(ra, rb, fc())
}

// Sequence collapses a collection of results into a result of a collection.
// Traversal stops at the first failure; on success the payloads keep the
// input order.
func Sequence[T, E any](results []rail.Result[T, E]) rail.Result[[]T, E] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsFailure() {
			return rail.FailureFrom[T, []T](r)
		}
		values = append(values, r.Value())
	}
	return rail.Success[[]T, E](values)
}

// Traverse partitions the full input instead of short-circuiting: it
// succeeds with all payloads only when no input failed, and otherwise fails
// with every error payload in input order. Use it when the caller wants a
// complete error report rather than only the first error.
func Traverse[T, E any](results []rail.Result[T, E]) rail.Result[[]T, []E] {
	values, errs := Partition(results)
	if len(errs) > 0 {
		return rail.Failure[[]T](errs)
	}
	return rail.Success[[]T, []E](values)
}

// Partition splits the input into its success payloads and failure
// payloads, both in input order.
func Partition[T, E any](results []rail.Result[T, E]) ([]T, []E) {
	values := make([]T, 0, len(results))
	var errs []E
	for _, r := range results {
		if r.IsFailure() {
			errs = append(errs, r.Error())
			continue
		}
		values = append(values, r.Value())
	}
	return values, errs
}
