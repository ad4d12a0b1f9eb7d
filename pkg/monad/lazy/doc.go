// Package lazy provides Lazy[T], a memoizing deferred value: the
// generating function runs at most once, on first Get, and the result
// is cached for the lifetime of the instance. Get is safe to call from
// any number of goroutines; concurrent callers during the first
// evaluation wait for it and all observe the single resulting value.
//
// Key operations:
// - New: defer a generating function
// - Of/Empty: construct a pre-evaluated Lazy
// - Get: evaluate once and return the cached value
// - Map/FlatMap: compose without forcing evaluation
// - Optional: eager present/absent view
// - Seq: deferred zero-or-one element sequence
// - Flatten2..Flatten8: collapse nested Lazy values, still deferred
//
// A generator that panics poisons nothing: the panic surfaces at the
// Get that ran it and the instance stays unevaluated, so a later Get
// runs the generator again.
package lazy
