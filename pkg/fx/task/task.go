package task

import (
	"context"

	"github.com/ib-77/fx3/pkg/fx"
)

// Outcome carries the resolved value or the unexpected error of one run.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Task is a lazy, re-runnable computation. The wrapped function is not
// invoked at construction time, only by Run or Fork, and nothing about a run
// is cached: every invocation is independent. Callers own the idempotence of
// the wrapped function when running it more than once.
type Task[T any] struct {
	run func(ctx context.Context) (T, error)
}

func From[T any](run func(ctx context.Context) (T, error)) Task[T] {
	return Task[T]{run: run}
}

// Of wraps an already-available value.
func Of[T any](value T) Task[T] {
	return From(func(ctx context.Context) (T, error) {
		return value, nil
	})
}

// Fail wraps an already-failed computation.
func Fail[T any](err error) Task[T] {
	return From(func(ctx context.Context) (T, error) {
		return *new(T), err
	})
}

// Run invokes the wrapped function and blocks until it resolves or fails.
// An error here is an unexpected failure; it is never translated or caught.
func (t Task[T]) Run(ctx context.Context) (T, error) {
	return t.run(ctx)
}

// Fork starts the computation on its own goroutine and returns a one-shot
// channel that will carry the outcome. The channel is buffered, so the
// goroutine never outlives the computation even if nobody receives.
func (t Task[T]) Fork(ctx context.Context) <-chan Outcome[T] {
	out := make(chan Outcome[T], 1)

	go func() {
		defer close(out)

		v, err := t.run(ctx)
		out <- Outcome[T]{Value: v, Err: err}
	}()

	return out
}

// Tap runs a side effect on the resolved value and resolves with the value
// unchanged. The effect is skipped on failure.
func (t Task[T]) Tap(onResolved func(r T)) Task[T] {
	return From(func(ctx context.Context) (T, error) {
		v, err := t.run(ctx)
		if err != nil {
			return v, err
		}
		onResolved(v)
		return v, nil
	})
}

func Map[In, Out any](t Task[In],
	onResolved func(r In) Out) Task[Out] {

	return From(func(ctx context.Context) (Out, error) {
		v, err := t.run(ctx)
		if err != nil {
			return *new(Out), err
		}
		return onResolved(v), nil
	})
}

// FlatMap is sequential composition: the second task's function is not
// invoked until the first has resolved.
func FlatMap[In, Out any](t Task[In],
	onResolved func(r In) Task[Out]) Task[Out] {

	return From(func(ctx context.Context) (Out, error) {
		v, err := t.run(ctx)
		if err != nil {
			return *new(Out), err
		}
		return onResolved(v).run(ctx)
	})
}

// Ap forks the function task and the argument task before awaiting either,
// so both are in flight at once, then applies the function to the argument.
func Ap[In, Out any](onResolved Task[func(In) Out],
	arg Task[In]) Task[Out] {

	return From(func(ctx context.Context) (Out, error) {
		fnCh := onResolved.Fork(ctx)
		argCh := arg.Fork(ctx)

		fn := <-fnCh
		a := <-argCh

		if fn.Err != nil {
			return *new(Out), fn.Err
		}
		if a.Err != nil {
			return *new(Out), a.Err
		}
		return fn.Value(a.Value), nil
	})
}

// Zip runs both tasks concurrently and resolves to the ordered pair of their
// values.
func Zip[A, B any](first Task[A], second Task[B]) Task[fx.Pair[A, B]] {
	curried := Map(first, func(a A) func(B) fx.Pair[A, B] {
		return func(b B) fx.Pair[A, B] {
			return fx.Pair[A, B]{First: a, Second: b}
		}
	})
	return Ap(curried, second)
}

func Flatten[T any](t Task[Task[T]]) Task[T] {
	return FlatMap(t, func(inner Task[T]) Task[T] {
		return inner
	})
}

// All forks every task before awaiting any of them, with no concurrency
// bound, and resolves with the values in input order regardless of which run
// finished first. Every fork is awaited even after a failure; the reported
// error is the first one in input order. An empty input resolves immediately.
func All[T any](tasks []Task[T]) Task[[]T] {
	return From(func(ctx context.Context) ([]T, error) {
		forks := make([]<-chan Outcome[T], len(tasks))
		for i, t := range tasks {
			forks[i] = t.Fork(ctx)
		}

		outcomes := make([]Outcome[T], len(tasks))
		for i, ch := range forks {
			outcomes[i] = <-ch
		}

		values := make([]T, 0, len(tasks))
		for _, o := range outcomes {
			if o.Err != nil {
				return nil, o.Err
			}
			values = append(values, o.Value)
		}
		return values, nil
	})
}

func Traverse[In, Out any](items []In,
	onItem func(item In) Task[Out]) Task[[]Out] {

	tasks := make([]Task[Out], 0, len(items))
	for _, item := range items {
		tasks = append(tasks, onItem(item))
	}
	return All(tasks)
}

func Sequence[T any](tasks []Task[T]) Task[[]T] {
	return All(tasks)
}
