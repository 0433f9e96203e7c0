// Package chain provides a minimal fluent Chain[E, T] for synchronous
// composition of fx.Either values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/Try: compose either-returning or error-returning functions
// - Map/MapTo/Switch: transform or switch value to a new type
// - While/Or/And: looping and branch composition
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Chain is ideal for small services or tests where lightweight synchronous
// chaining improves readability.
package chain
