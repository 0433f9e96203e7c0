package fx

// EitherToValidation lifts an Either into the accumulating world: a right
// becomes valid, a left becomes invalid with a single-element error list.
// Id and creation time carry over.
func EitherToValidation[E, T any](e Either[E, T]) Validation[E, T] {
	if e.isRight {
		return Validation[E, T]{
			value:     e.value,
			isValid:   true,
			createdAt: e.createdAt,
			id:        e.id,
		}
	}
	return Validation[E, T]{
		errs:      []E{e.err},
		isValid:   false,
		createdAt: e.createdAt,
		id:        e.id,
	}
}

// ValidationToEither collapses a Validation into an Either whose left carries
// the full error list, so no accumulated error is lost in the conversion.
func ValidationToEither[E, T any](v Validation[E, T]) Either[[]E, T] {
	if v.isValid {
		return Either[[]E, T]{
			value:     v.value,
			isRight:   true,
			createdAt: v.createdAt,
			id:        v.id,
		}
	}
	errs := make([]E, len(v.errs))
	copy(errs, v.errs)
	return Either[[]E, T]{
		err:       errs,
		isRight:   false,
		createdAt: v.createdAt,
		id:        v.id,
	}
}
