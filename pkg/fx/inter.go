package fx

import "time"

type ValueProvider[T any] interface {
	// Value returns the success payload
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Disjoint defines the contract of a short-circuiting two-branch result
type Disjoint[T, E any] interface {
	ValueProvider[T]
	// Err returns the error branch payload
	Err() E
	// IsRight returns true if the value branch is populated
	IsRight() bool
}

// Accumulating defines the contract of an error-accumulating result
type Accumulating[T, E any] interface {
	ValueProvider[T]
	// Errs returns every accumulated error in discovery order
	Errs() []E
	// IsValid returns true if the value branch is populated
	IsValid() bool
}
