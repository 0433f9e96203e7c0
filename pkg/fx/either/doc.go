// Package either contains combinators over fx.Either, the short-circuiting
// disjoint result. The left branch stops composition at the first error.
//
// Highlights:
// - Map/MapLeft: transform the value or error branch
// - FlatMap: compose functions that already return fx.Either
// - Ap: apply a wrapped function, first error wins (no accumulation)
// - Match/GetOrElse: reduce to a concrete value
// - Tap/TapLeft: side-effect helpers that leave the result untouched
//
// For error accumulation across independent branches, see package validation.
package either
