// Package fault defines the fatal signal raised on result misuse.
//
// A Fault carries a Kind and a message and is delivered by panic:
// - Raise: panic with a structured *Fault
// - As: recognize a recovered panic value as a *Fault
//
// Faults mark programming errors (wrong-arm unwraps, stale iterator
// dereferences). They are deliberately separate from the error channel of
// result.Result, which models recoverable failures.
package fault
