package fx

// Pair is the ordered product of two values, produced by the Zip combinators.
type Pair[A, B any] struct {
	First  A
	Second B
}
