package future

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrCanceled is the fault reported when a task is completed by calling Cancel.
var ErrCanceled = errors.New("task canceled")

// Task represents an asynchronous computation that eventually yields a value
// of T or a fault. A Task can be completed exactly once; the first completion
// wins and later completions are silently ignored. Unlike a channel, a
// completed Task can be read any number of times by any number of goroutines.
//
// The fault channel carries the host's native error mechanism (scheduler
// faults, cancellation); modeled domain failures ride inside T as a
// rail.Result, lifted via Lift.
type Task[T any] struct {
	isCompleted uint32
	completed   chan struct{}

	value T
	fault error
}

// New creates an uncompleted Task that must be completed manually through
// Complete, Fail, or Cancel.
func New[T any]() *Task[T] {
	return &Task[T]{
		completed: make(chan struct{}),
	}
}

// FromFunc runs f on its own goroutine and completes the returned Task with
// f's outcome.
func FromFunc[T any](f func() (T, error)) *Task[T] {
	t := New[T]()

	go func() {
		v, err := f()
		if err != nil {
			t.Fail(err)
			return
		}
		t.Complete(v)
	}()

	return t
}

// Resolved returns a Task already completed with v.
func Resolved[T any](v T) *Task[T] {
	t := New[T]()
	t.Complete(v)
	return t
}

// Complete completes the task with a value. Ignored if already completed.
func (t *Task[T]) Complete(value T) {
	t.complete(value, nil)
}

// Fail completes the task with a fault. Ignored if already completed.
func (t *Task[T]) Fail(err error) {
	t.complete(*new(T), err)
}

// Cancel completes the task with ErrCanceled. Ignored if already completed.
func (t *Task[T]) Cancel() {
	t.Fail(ErrCanceled)
}

func (t *Task[T]) complete(value T, err error) {
	if atomic.CompareAndSwapUint32(&t.isCompleted, 0, 1) {
		t.value = value
		t.fault = err
		close(t.completed)
	}
}

// Get blocks until the task completes or ctx is done, whichever comes
// first. All readers observe the same outcome.
func (t *Task[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-t.completed:
		return t.value, t.fault
	case <-ctx.Done():
		return *new(T), ctx.Err()
	}
}
