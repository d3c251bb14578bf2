// Package result provides a two-channel Result[T, E] sum type for explicit,
// exception-free error propagation.
//
// Common usage:
// - Ok/Err: construct the success or failure arm
// - IsOk/IsErr/IsOkAnd/IsErrAnd: branch without consuming
// - Unwrap/Expect and the _Or family: extract the payload
// - Map/MapErr/MapOr/MapOrElse: transform one arm or collapse to a value
// - Both/BothAnd/Either/EitherOr/Flatten: compose fallible steps
// - Inspect/InspectErr: side-effect hooks that leave the result unchanged
// - Iter/ErrIter, Values/Errors: zero-or-one element views for range loops
//
// Modeled failures travel in the E channel and are ordinary values callers
// branch on. Misuse — unwrapping the wrong arm or dereferencing a stale
// iterator — raises a fault.Fault instead of returning a sentinel.
//
// For fluent synchronous composition with context, see package chain.
package result
