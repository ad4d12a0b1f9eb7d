// Package fn declares the function shapes used to describe fallible
// operations passed into try and chain. A shape fails by returning a
// non-nil error; panics are deliberately outside the contract.
package fn

// Supplier produces a value or fails.
type Supplier[T any] func() (T, error)

// Runnable performs a side effect or fails.
type Runnable func() error

// Function maps In to Out or fails.
type Function[In, Out any] func(In) (Out, error)

// BiFunction maps a pair of inputs to Out or fails.
type BiFunction[In1, In2, Out any] func(In1, In2) (Out, error)

// Consumer accepts a value for its side effect or fails.
type Consumer[T any] func(T) error

// BiConsumer accepts a pair of values for its side effect or fails.
type BiConsumer[In1, In2 any] func(In1, In2) error

// Predicate tests a value. Predicates cannot fail; an error inside one
// is the caller's own bug and should panic.
type Predicate[T any] func(T) bool
