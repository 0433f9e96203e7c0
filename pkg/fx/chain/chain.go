package chain

import (
	"github.com/ib-77/fx3/pkg/fx"
)

type Chain[E, T any] struct {
	res fx.Either[E, T]
}

func Start[E, T any](r fx.Either[E, T]) Chain[E, T] {
	return Chain[E, T]{res: r}
}

func FromValue[E, T any](v T) Chain[E, T] {
	return Start(fx.Right[E](v))
}

func (c Chain[E, T]) Result() fx.Either[E, T] {
	return c.res
}

// Then composes functions that already return fx.Either[E, T]
func (c Chain[E, T]) Then(onRight func(t T) fx.Either[E, T]) Chain[E, T] {
	if c.res.IsLeft() {
		return c
	}
	return Chain[E, T]{res: onRight(c.res.Value())}
}

// Map transforms the successful value to a new value
func (c Chain[E, T]) Map(onRight func(t T) T) Chain[E, T] {
	if c.res.IsLeft() {
		return c
	}
	return Chain[E, T]{res: fx.Right[E](onRight(c.res.Value()))}
}

// While keeps applying onRight as long as the predicate holds and the chain
// stays on the right branch
func (c Chain[E, T]) While(onRight func(t T) fx.Either[E, T],
	while func(t T) bool) Chain[E, T] {

	for c.res.IsRight() && while(c.res.Value()) {
		c = c.Then(onRight)
	}
	return c
}

func (c Chain[E, T]) Or(alternative Chain[E, T]) Chain[E, T] {
	if c.res.IsRight() {
		return c
	}
	return alternative
}

func (c Chain[E, T]) And(required Chain[E, T]) Chain[E, T] {
	if c.res.IsLeft() {
		return c
	}
	return required
}

// Ensure triggers side effects for either branch without changing the result
func (c Chain[E, T]) Ensure(onRight func(t T), onLeft func(err E)) Chain[E, T] {
	if c.res.IsLeft() {
		if onLeft != nil {
			onLeft(c.res.Err())
		}
		return c
	}

	if onRight != nil {
		onRight(c.res.Value())
	}
	return c
}

// Switch moves the chain from Chain[E, In] to Chain[E, Out]
func Switch[E, In, Out any](c Chain[E, In],
	onRight func(t In) fx.Either[E, Out]) Chain[E, Out] {

	if c.res.IsLeft() {
		return Chain[E, Out]{res: fx.LeftFrom[In, Out](c.res)}
	}
	return Chain[E, Out]{res: onRight(c.res.Value())}
}

// MapTo transforms the successful value to a new type
func MapTo[E, In, Out any](c Chain[E, In],
	onRight func(t In) Out) Chain[E, Out] {

	if c.res.IsLeft() {
		return Chain[E, Out]{res: fx.LeftFrom[In, Out](c.res)}
	}
	return Chain[E, Out]{res: fx.Right[E](onRight(c.res.Value()))}
}

// Try composes functions that return (Out, error) - like repo calls
func Try[In, Out any](c Chain[error, In],
	try func(t In) (Out, error)) Chain[error, Out] {

	if c.res.IsLeft() {
		return Chain[error, Out]{res: fx.LeftFrom[In, Out](c.res)}
	}

	out, err := try(c.res.Value())
	if err != nil {
		return Chain[error, Out]{res: fx.Left[Out](err)}
	}
	return Chain[error, Out]{res: fx.Right[error](out)}
}

// Finally collapses the chain to a final value
func Finally[E, In, Out any](c Chain[E, In],
	onRight func(t In) Out,
	onLeft func(err E) Out) Out {

	if c.res.IsRight() {
		return onRight(c.res.Value())
	}
	return onLeft(c.res.Err())
}
