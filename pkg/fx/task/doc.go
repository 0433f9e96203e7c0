// Package task implements a lazy, re-runnable asynchronous computation.
// Nothing runs at construction time and no run is ever memoized: two calls
// to Run invoke the wrapped function twice.
//
// Highlights:
// - From/Of/Fail: construct a Task
// - Run: invoke the wrapped function and await it
// - Fork: start the computation on a goroutine, receive the outcome later
// - Map/FlatMap/Flatten: sequential composition
// - Ap/Zip: concurrent composition of two tasks
// - All/Traverse/Sequence: run a whole list concurrently, results in input
//   order
//
// There is no cancellation or timeout layered on the context: once started,
// a computation runs to completion or failure.
package task
