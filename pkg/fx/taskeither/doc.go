// Package taskeither combines task's laziness and concurrency with either's
// short-circuit rule: a lazy computation resolving to fx.Either.
//
// Expected failure travels in the left branch; the error return of Run is
// reserved for unexpected failure and is never translated. Composition
// short-circuits on the left branch (FlatMap skips the mapper, Ap keeps only
// the first error), while All/Traverse still start every computation
// concurrently and pick errors deterministically by input order.
//
// Highlights:
// - From/Right/Left/FromEither/FromTask/Try: construct a TaskEither
// - Map/MapLeft/FlatMap/Flatten: sequential, short-circuiting composition
// - Ap/Zip: concurrent composition, first error wins
// - Tap/TapLeft, Match/GetOrElse/OrElse: side effects, reduction, recovery
// - All/Traverse/Sequence: concurrent lists with input-order results
package taskeither
