package taskeither

import (
	"context"

	"github.com/ib-77/fx3/pkg/fx"
	"github.com/ib-77/fx3/pkg/fx/either"
	"github.com/ib-77/fx3/pkg/fx/task"
)

// TaskEither is a lazy computation that resolves to an fx.Either. It keeps
// task.Task's re-runnable, non-memoized contract and adds either's
// short-circuit rule to composition. The error return of Run stays reserved
// for unexpected failure; expected failure travels in the left branch.
type TaskEither[E, T any] struct {
	t task.Task[fx.Either[E, T]]
}

func From[E, T any](run func(ctx context.Context) (fx.Either[E, T], error)) TaskEither[E, T] {
	return TaskEither[E, T]{t: task.From(run)}
}

func FromTask[E, T any](t task.Task[fx.Either[E, T]]) TaskEither[E, T] {
	return TaskEither[E, T]{t: t}
}

// Right wraps an already-available success value.
func Right[E, T any](value T) TaskEither[E, T] {
	return From(func(ctx context.Context) (fx.Either[E, T], error) {
		return fx.Right[E](value), nil
	})
}

// Left wraps an already-known expected failure.
func Left[T, E any](err E) TaskEither[E, T] {
	return From(func(ctx context.Context) (fx.Either[E, T], error) {
		return fx.Left[T](err), nil
	})
}

func FromEither[E, T any](e fx.Either[E, T]) TaskEither[E, T] {
	return From(func(ctx context.Context) (fx.Either[E, T], error) {
		return e, nil
	})
}

// Try lifts a (value, error) call into the expected-failure world: a non-nil
// error resolves as the left branch instead of failing the run.
func Try[T any](run func(ctx context.Context) (T, error)) TaskEither[error, T] {
	return From(func(ctx context.Context) (fx.Either[error, T], error) {
		v, err := run(ctx)
		if err != nil {
			return fx.Left[T](err), nil
		}
		return fx.Right[error](v), nil
	})
}

// Task exposes the underlying task.Task[fx.Either].
func (te TaskEither[E, T]) Task() task.Task[fx.Either[E, T]] {
	return te.t
}

// Run invokes the underlying function and awaits the resolved Either. Same
// non-memoization contract as task.Task.Run.
func (te TaskEither[E, T]) Run(ctx context.Context) (fx.Either[E, T], error) {
	return te.t.Run(ctx)
}

// Tap runs a side effect on the success value, passing the resolved Either
// through unchanged.
func (te TaskEither[E, T]) Tap(onRight func(r T)) TaskEither[E, T] {
	return From(func(ctx context.Context) (fx.Either[E, T], error) {
		res, err := te.t.Run(ctx)
		if err != nil {
			return res, err
		}
		return either.Tap(res, onRight), nil
	})
}

// TapLeft runs a side effect on the expected error, passing the resolved
// Either through unchanged.
func (te TaskEither[E, T]) TapLeft(onLeft func(err E)) TaskEither[E, T] {
	return From(func(ctx context.Context) (fx.Either[E, T], error) {
		res, err := te.t.Run(ctx)
		if err != nil {
			return res, err
		}
		return either.TapLeft(res, onLeft), nil
	})
}

// GetOrElse reduces to a plain task resolving to the success value or to
// fallback of the expected error.
func (te TaskEither[E, T]) GetOrElse(fallback func(err E) T) task.Task[T] {
	return task.From(func(ctx context.Context) (T, error) {
		res, err := te.t.Run(ctx)
		if err != nil {
			return *new(T), err
		}
		return either.GetOrElse(res, fallback), nil
	})
}

// OrElse recovers from an expected failure by running the alternative
// produced by fallback. On the success path fallback is never invoked and
// the alternative's function never runs.
func (te TaskEither[E, T]) OrElse(fallback func(err E) TaskEither[E, T]) TaskEither[E, T] {
	return From(func(ctx context.Context) (fx.Either[E, T], error) {
		res, err := te.t.Run(ctx)
		if err != nil {
			return res, err
		}
		if res.IsRight() {
			return res, nil
		}
		return fallback(res.Err()).Run(ctx)
	})
}

// FlatMap is sequential, short-circuiting composition: when the first
// computation resolves to a left, onRight and the second computation's
// function are never invoked.
func FlatMap[E, In, Out any](te TaskEither[E, In],
	onRight func(r In) TaskEither[E, Out]) TaskEither[E, Out] {

	return From(func(ctx context.Context) (fx.Either[E, Out], error) {
		res, err := te.t.Run(ctx)
		if err != nil {
			return *new(fx.Either[E, Out]), err
		}
		if res.IsLeft() {
			return fx.LeftFrom[In, Out](res), nil
		}
		return onRight(res.Value()).Run(ctx)
	})
}

func Map[E, In, Out any](te TaskEither[E, In],
	onRight func(r In) Out) TaskEither[E, Out] {

	return FlatMap(te, func(r In) TaskEither[E, Out] {
		return Right[E](onRight(r))
	})
}

func MapLeft[T, In, Out any](te TaskEither[In, T],
	onLeft func(err In) Out) TaskEither[Out, T] {

	return From(func(ctx context.Context) (fx.Either[Out, T], error) {
		res, err := te.t.Run(ctx)
		if err != nil {
			return *new(fx.Either[Out, T]), err
		}
		return either.MapLeft(res, onLeft), nil
	})
}

// Ap forks both computations before awaiting either, then combines the
// resolved Eithers with either.Ap, so two lefts keep only the receiver's
// error. This is the async analogue of Either, not of Validation.
func Ap[E, In, Out any](onRight TaskEither[E, func(In) Out],
	arg TaskEither[E, In]) TaskEither[E, Out] {

	return From(func(ctx context.Context) (fx.Either[E, Out], error) {
		fnCh := onRight.t.Fork(ctx)
		argCh := arg.t.Fork(ctx)

		fn := <-fnCh
		a := <-argCh

		if fn.Err != nil {
			return *new(fx.Either[E, Out]), fn.Err
		}
		if a.Err != nil {
			return *new(fx.Either[E, Out]), a.Err
		}
		return either.Ap(fn.Value, a.Value), nil
	})
}

// Zip runs both computations concurrently and resolves to the ordered pair
// (receiver, other), short-circuiting on the first error in that order.
func Zip[E, A, B any](first TaskEither[E, A], second TaskEither[E, B]) TaskEither[E, fx.Pair[A, B]] {
	curried := Map(first, func(a A) func(B) fx.Pair[A, B] {
		return func(b B) fx.Pair[A, B] {
			return fx.Pair[A, B]{First: a, Second: b}
		}
	})
	return Ap(curried, second)
}

func Flatten[E, T any](te TaskEither[E, TaskEither[E, T]]) TaskEither[E, T] {
	return FlatMap(te, func(inner TaskEither[E, T]) TaskEither[E, T] {
		return inner
	})
}

// Match reduces to a plain task that, when run, resolves the computation and
// dispatches to whichever branch applies.
func Match[E, In, Out any](te TaskEither[E, In],
	onLeft func(err E) Out,
	onRight func(r In) Out) task.Task[Out] {

	return task.From(func(ctx context.Context) (Out, error) {
		res, err := te.t.Run(ctx)
		if err != nil {
			return *new(Out), err
		}
		return either.Match(res, onLeft, onRight), nil
	})
}

// All forks every computation before awaiting any, then awaits them all and
// scans the resolved outcomes in input order: the first unexpected failure,
// or else the first left, wins. The scan happens only after all concurrent
// work has finished, so error selection never depends on completion timing.
// All successes resolve to the values in input order; empty input resolves
// immediately.
func All[E, T any](list []TaskEither[E, T]) TaskEither[E, []T] {
	return From(func(ctx context.Context) (fx.Either[E, []T], error) {
		forks := make([]<-chan task.Outcome[fx.Either[E, T]], len(list))
		for i, te := range list {
			forks[i] = te.t.Fork(ctx)
		}

		outcomes := make([]task.Outcome[fx.Either[E, T]], len(list))
		for i, ch := range forks {
			outcomes[i] = <-ch
		}

		values := make([]T, 0, len(list))
		for _, o := range outcomes {
			if o.Err != nil {
				return *new(fx.Either[E, []T]), o.Err
			}
			if o.Value.IsLeft() {
				return fx.LeftFrom[T, []T](o.Value), nil
			}
			values = append(values, o.Value.Value())
		}
		return fx.Right[E](values), nil
	})
}

func Traverse[E, In, Out any](items []In,
	onItem func(item In) TaskEither[E, Out]) TaskEither[E, []Out] {

	list := make([]TaskEither[E, Out], 0, len(items))
	for _, item := range items {
		list = append(list, onItem(item))
	}
	return All(list)
}

func Sequence[E, T any](list []TaskEither[E, T]) TaskEither[E, []T] {
	return All(list)
}
