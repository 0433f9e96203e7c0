package validation

import (
	"github.com/ib-77/fx3/pkg/fx"
)

func Map[E, In, Out any](input fx.Validation[E, In],
	onValid func(r In) Out) fx.Validation[E, Out] {

	if input.IsValid() {
		return fx.Valid[E](onValid(input.Value()))
	}
	return fx.InvalidFrom[In, Out](input)
}

// Ap applies a wrapped function to a wrapped argument. Unlike either.Ap it
// never short-circuits: when both sides are invalid the result carries the
// receiver's errors followed by the argument's errors.
func Ap[E, In, Out any](onValid fx.Validation[E, func(In) Out],
	arg fx.Validation[E, In]) fx.Validation[E, Out] {

	switch {
	case onValid.IsValid() && arg.IsValid():
		return fx.Valid[E](onValid.Value()(arg.Value()))
	case onValid.IsInvalid() && arg.IsValid():
		return fx.InvalidFrom[func(In) Out, Out](onValid)
	case onValid.IsValid():
		return fx.InvalidFrom[In, Out](arg)
	default:
		errs := append(onValid.Errs(), arg.Errs()...)
		return fx.Invalid[Out](errs[0], errs[1:]...)
	}
}

func Match[E, In, Out any](input fx.Validation[E, In],
	onInvalid func(errs []E) Out,
	onValid func(r In) Out) Out {

	if input.IsValid() {
		return onValid(input.Value())
	}
	return onInvalid(input.Errs())
}

func GetOrElse[E, T any](input fx.Validation[E, T],
	fallback func(errs []E) T) T {

	if input.IsValid() {
		return input.Value()
	}
	return fallback(input.Errs())
}

func Tap[E, T any](input fx.Validation[E, T],
	onValid func(r T)) fx.Validation[E, T] {

	if input.IsValid() {
		onValid(input.Value())
	}
	return input
}

// Map2 combines two independent validations. Invalid inputs accumulate:
// with both invalid, the first operand's errors precede the second's.
func Map2[E, A, B, Out any](va fx.Validation[E, A], vb fx.Validation[E, B],
	combine func(a A, b B) Out) fx.Validation[E, Out] {

	curried := Map(va, func(a A) func(B) Out {
		return func(b B) Out { return combine(a, b) }
	})
	return Ap(curried, vb)
}

// Map3 combines three independent validations, accumulating errors in
// operand order.
func Map3[E, A, B, C, Out any](va fx.Validation[E, A], vb fx.Validation[E, B],
	vc fx.Validation[E, C], combine func(a A, b B, c C) Out) fx.Validation[E, Out] {

	curried := Map(va, func(a A) func(B) func(C) Out {
		return func(b B) func(C) Out {
			return func(c C) Out { return combine(a, b, c) }
		}
	})
	return Ap(Ap(curried, vb), vc)
}

// Traverse validates every item, never stopping at the first failure. All
// valid yields the values in item order; any failure yields every invalid
// item's errors concatenated in item order.
func Traverse[E, In, Out any](items []In,
	onItem func(item In) fx.Validation[E, Out]) fx.Validation[E, []Out] {

	values := make([]Out, 0, len(items))
	var errs []E

	for _, item := range items {
		res := onItem(item)

		if res.IsInvalid() {
			errs = append(errs, res.Errs()...)
			continue
		}
		if len(errs) == 0 {
			values = append(values, res.Value())
		}
	}

	if len(errs) > 0 {
		return fx.Invalid[[]Out](errs[0], errs[1:]...)
	}
	return fx.Valid[E](values)
}

func Sequence[E, T any](list []fx.Validation[E, T]) fx.Validation[E, []T] {
	return Traverse(list, func(v fx.Validation[E, T]) fx.Validation[E, T] {
		return v
	})
}

// FromError bridges from the stdlib error world: a combined error (joined
// via fx.JoinErrors or multierr) unpacks into one invalid entry per part.
// A nil error yields valid with the zero value.
func FromError[T any](err error) fx.Validation[error, T] {
	errs := fx.SplitErrors(err)
	if len(errs) == 0 {
		return fx.Valid[error](*new(T))
	}
	return fx.Invalid[T](errs[0], errs[1:]...)
}

// ErrOf collapses an invalid branch back into one combined error, nil when
// valid.
func ErrOf[T any](input fx.Validation[error, T]) error {
	if input.IsValid() {
		return nil
	}
	return fx.JoinErrors(input.Errs())
}
