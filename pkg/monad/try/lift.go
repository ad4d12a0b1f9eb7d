package try

import (
	"github.com/ib-77/monads/pkg/monad/fn"
)

// Lift adapts a fallible supplier into one whose result comes back as a
// Try. Nothing runs until the lifted function is invoked.
func Lift[Out any](supply fn.Supplier[Out]) func() Try[Out] {
	return func() Try[Out] {
		return Of(supply)
	}
}

// LiftFn adapts a fallible single-argument function.
func LiftFn[In, Out any](f fn.Function[In, Out]) func(In) Try[Out] {
	return func(in In) Try[Out] {
		return Of(func() (Out, error) {
			return f(in)
		})
	}
}

// LiftFn2 adapts a fallible two-argument function.
func LiftFn2[In1, In2, Out any](f fn.BiFunction[In1, In2, Out]) func(In1, In2) Try[Out] {
	return func(in1 In1, in2 In2) Try[Out] {
		return Of(func() (Out, error) {
			return f(in1, in2)
		})
	}
}

// LiftVoid adapts a fallible side-effecting operation.
func LiftVoid(run fn.Runnable) func() Try[Void] {
	return func() Try[Void] {
		return OfRunnable(run)
	}
}

// LiftVoidFn adapts a fallible single-argument consumer.
func LiftVoidFn[In any](consume fn.Consumer[In]) func(In) Try[Void] {
	return func(in In) Try[Void] {
		return OfRunnable(func() error {
			return consume(in)
		})
	}
}

// LiftVoidFn2 adapts a fallible two-argument consumer.
func LiftVoidFn2[In1, In2 any](consume fn.BiConsumer[In1, In2]) func(In1, In2) Try[Void] {
	return func(in1 In1, in2 In2) Try[Void] {
		return OfRunnable(func() error {
			return consume(in1, in2)
		})
	}
}
