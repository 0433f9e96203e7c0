package either

import (
	"github.com/ib-77/fx3/pkg/fx"
)

func Map[E, In, Out any](input fx.Either[E, In],
	onRight func(r In) Out) fx.Either[E, Out] {

	if input.IsRight() {
		return fx.Right[E](onRight(input.Value()))
	}
	return fx.LeftFrom[In, Out](input)
}

func MapLeft[T, In, Out any](input fx.Either[In, T],
	onLeft func(err In) Out) fx.Either[Out, T] {

	if input.IsRight() {
		return fx.Right[Out](input.Value())
	}
	return fx.Left[T](onLeft(input.Err()))
}

func FlatMap[E, In, Out any](input fx.Either[E, In],
	onRight func(r In) fx.Either[E, Out]) fx.Either[E, Out] {

	if input.IsRight() {
		return onRight(input.Value())
	}
	return fx.LeftFrom[In, Out](input)
}

// Ap applies a wrapped function to a wrapped argument. First error wins:
// when both sides are left, only the receiver's error survives. This is the
// deliberate asymmetry versus validation.Ap, which accumulates.
func Ap[E, In, Out any](onRight fx.Either[E, func(In) Out],
	arg fx.Either[E, In]) fx.Either[E, Out] {

	if onRight.IsLeft() {
		return fx.LeftFrom[func(In) Out, Out](onRight)
	}
	if arg.IsLeft() {
		return fx.LeftFrom[In, Out](arg)
	}
	return fx.Right[E](onRight.Value()(arg.Value()))
}

func Match[E, In, Out any](input fx.Either[E, In],
	onLeft func(err E) Out,
	onRight func(r In) Out) Out {

	if input.IsRight() {
		return onRight(input.Value())
	}
	return onLeft(input.Err())
}

func GetOrElse[E, T any](input fx.Either[E, T],
	fallback func(err E) T) T {

	if input.IsRight() {
		return input.Value()
	}
	return fallback(input.Err())
}

func Tap[E, T any](input fx.Either[E, T],
	onRight func(r T)) fx.Either[E, T] {

	if input.IsRight() {
		onRight(input.Value())
	}
	return input
}

func TapLeft[E, T any](input fx.Either[E, T],
	onLeft func(err E)) fx.Either[E, T] {

	if input.IsLeft() {
		onLeft(input.Err())
	}
	return input
}
