package fx

import (
	"time"

	"github.com/google/uuid"
)

// Either is a disjoint result: exactly one of the right (value) or left
// (error) branch is populated. Values are immutable; combinators build new
// instances instead of mutating.
type Either[E, T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isRight   bool
}

func Right[E, T any](value T) Either[E, T] {
	return Either[E, T]{
		value:     value,
		isRight:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Left[T, E any](err E) Either[E, T] {
	return Either[E, T]{
		err:       err,
		isRight:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// LeftFrom rebuilds a left branch at a new value type, keeping the error,
// id and creation time of the source.
func LeftFrom[In, Out, E any](from Either[E, In]) Either[E, Out] {
	return Either[E, Out]{
		err:       from.err,
		isRight:   false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (e Either[E, T]) Value() T {
	return e.value
}

func (e Either[E, T]) Err() E {
	return e.err
}

func (e Either[E, T]) IsRight() bool {
	return e.isRight
}

func (e Either[E, T]) IsLeft() bool {
	return !e.isRight
}

func (e Either[E, T]) CreatedAt() time.Time {
	return e.createdAt
}

func (e Either[E, T]) Id() uuid.UUID {
	return e.id
}
