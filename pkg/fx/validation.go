package fx

import (
	"time"

	"github.com/google/uuid"
)

// Validation is an error-accumulating result: either valid with a value or
// invalid with one or more errors in discovery order. The invalid branch is
// never empty; the Invalid constructor enforces that.
type Validation[E, T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	errs      []E
	isValid   bool
}

func Valid[E, T any](value T) Validation[E, T] {
	return Validation[E, T]{
		value:     value,
		isValid:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Invalid[T, E any](err E, more ...E) Validation[E, T] {
	errs := make([]E, 0, 1+len(more))
	errs = append(errs, err)
	errs = append(errs, more...)
	return Validation[E, T]{
		errs:      errs,
		isValid:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// InvalidFrom rebuilds an invalid branch at a new value type, keeping the
// errors, id and creation time of the source.
func InvalidFrom[In, Out, E any](from Validation[E, In]) Validation[E, Out] {
	return Validation[E, Out]{
		errs:      from.errs,
		isValid:   false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (v Validation[E, T]) Value() T {
	return v.value
}

// Errs returns a copy of the accumulated errors, in discovery order.
// It is empty on the valid branch.
func (v Validation[E, T]) Errs() []E {
	out := make([]E, len(v.errs))
	copy(out, v.errs)
	return out
}

func (v Validation[E, T]) IsValid() bool {
	return v.isValid
}

func (v Validation[E, T]) IsInvalid() bool {
	return !v.isValid
}

func (v Validation[E, T]) CreatedAt() time.Time {
	return v.createdAt
}

func (v Validation[E, T]) Id() uuid.UUID {
	return v.id
}
