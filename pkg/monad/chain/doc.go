// Package chain provides a fluent Chain[T] wrapper around try.Try[T]
// for building synchronous pipelines without branching on the result at
// each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Try[T] or a value
// - Then: compose functions that already return a Try
// - ThenTry: call a fallible function and capture its error
// - Map: apply a pure transformation
// - Ensure: trigger side effects without changing the result
// - Or: fall back to an alternative chain when failed
// - Recover: derive a replacement value from the failure
// - Finally: collapse to a concrete value via handlers
//
// Methods keep the value type; the package-level Then, ThenTry, Map and
// Finally move from one value type to another.
package chain
