// Package validation contains combinators over fx.Validation, the
// error-accumulating result. Independent branches are always inspected and
// their failures merged in operand order, never short-circuited.
//
// Highlights:
// - Map/Match/GetOrElse/Tap: mirror the either package on the valid branch
// - Ap: apply a wrapped function, concatenating errors receiver-then-argument
// - Map2/Map3: combine independent validations, accumulating all failures
// - Traverse/Sequence: validate a whole list, collecting every error
// - FromError/ErrOf: bridge to combined stdlib errors via multierr
package validation
