// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of result.Result[T, error] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the successful value
// - Ensure: trigger side effects without changing the result
// - Or/And: pick between chains by outcome
// - Finally: reduce to a concrete value via handlers
//
// Chain is ideal for small services or tests where lightweight synchronous
// chaining improves readability over repeated branching.
package chain
