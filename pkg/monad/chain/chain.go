package chain

import (
	"github.com/ib-77/monads/pkg/monad/fn"
	"github.com/ib-77/monads/pkg/monad/try"
)

// Chain wraps a try.Try to enable fluent chaining.
type Chain[T any] struct {
	res try.Try[T]
}

// Start creates a chain from an existing Try.
func Start[T any](t try.Try[T]) Chain[T] {
	return Chain[T]{res: t}
}

// FromValue creates a chain from a successful value.
func FromValue[T any](v T) Chain[T] {
	return Start(try.Success(v))
}

// Unwrap returns the underlying Try.
func (c Chain[T]) Unwrap() try.Try[T] {
	return c.res
}

// Then composes a function that already returns a Try. A failed chain
// short-circuits: the function is not invoked.
func (c Chain[T]) Then(onSuccess func(T) try.Try[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: c.res.FlatMap(onSuccess)}
}

// ThenTry composes a fallible function, capturing a returned error into
// the chain as a failure.
func (c Chain[T]) ThenTry(f fn.Function[T, T]) Chain[T] {
	return Chain[T]{res: c.res.Map(f)}
}

// Map applies a pure transformation to the successful value.
func (c Chain[T]) Map(onSuccess func(T) T) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: try.Success(onSuccess(c.res.MustGet()))}
}

// Ensure triggers side effects for the current outcome without changing
// it. Either handler may be nil.
func (c Chain[T]) Ensure(onSuccess func(T), onFailure func(error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.res.Err())
		}
		return c
	}
	if onSuccess != nil {
		c.res.OnSuccess(onSuccess)
	}
	return c
}

// Or returns this chain if it succeeded, otherwise the alternative.
// When both failed, the first failure wins.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	if alternative.res.IsSuccess() {
		return alternative
	}
	return c
}

// Recover derives a replacement value from the failure, capturing any
// new error. A successful chain passes through unchanged.
func (c Chain[T]) Recover(f fn.Function[error, T]) Chain[T] {
	return Chain[T]{res: c.res.Recover(f)}
}

// Then moves the chain to a new value type via a Try-returning function.
func Then[In, Out any](c Chain[In], onSuccess func(In) try.Try[Out]) Chain[Out] {
	return Chain[Out]{res: try.FlatMap(c.res, onSuccess)}
}

// ThenTry moves the chain to a new value type via a fallible function.
func ThenTry[In, Out any](c Chain[In], f fn.Function[In, Out]) Chain[Out] {
	return Chain[Out]{res: try.Map(c.res, f)}
}

// Map moves the chain to a new value type via a pure transformation.
func Map[In, Out any](c Chain[In], onSuccess func(In) Out) Chain[Out] {
	return Chain[Out]{res: try.Map(c.res, func(in In) (Out, error) {
		return onSuccess(in), nil
	})}
}

// Finally collapses the chain to a final value via the outcome handlers.
func Finally[In, Out any](c Chain[In], onSuccess func(In) Out, onFailure func(error) Out) Out {
	if c.res.IsSuccess() {
		return onSuccess(c.res.MustGet())
	}
	return onFailure(c.res.Err())
}
