// Package try provides Try[T], an immutable capture of the outcome of a
// fallible computation: either a success value or the error it failed
// with. Every combinator returns a new Try, so values can be shared
// across goroutines freely.
//
// Key operations:
// - Of/OfRunnable: run an operation now and capture its outcome
// - Success/SuccessVoid/Failure/Failuref: direct constructors
// - Lift/LiftFn/LiftFn2 (+ Void variants): wrap a function so its
//   result comes back as a Try
// - Map/FlatMap: transform the success value, short-circuiting failures
// - Recover/FlatRecover (+ As variants): turn a failure back into a success
// - OnSuccess/OnFailure: side effects without changing the outcome
// - Filter: drop a success that fails a predicate
// - Get/MustGet/OrElse/OrElseGet/OrElseErr/OrElseTry: extraction
// - ContraOptional/ContraMap/FlatContraMap: project the failure side
// - Flatten2..Flatten8: collapse nested Try values
//
// Fallible callbacks use the fn shapes and fail by returning a non-nil
// error, which Try captures. Observer callbacks (OnSuccess, OnFailure)
// and Filter predicates are plain functions: anything that goes wrong
// inside them is not captured and surfaces at the call site.
package try
