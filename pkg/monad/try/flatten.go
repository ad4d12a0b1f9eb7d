package try

// flatten unwraps one nesting level: the next collapser runs on the
// inner Try of a Success, while a Failure is re-typed as the final
// outcome without looking any deeper.
func flatten[In, Out any](nested Try[In], next func(In) Try[Out]) Try[Out] {
	if nested.IsFailure() {
		return FailureFrom[In, Out](nested)
	}
	return next(nested.value)
}

// Flatten2 collapses a Try of a Try into one Try.
func Flatten2[S any](nested Try[Try[S]]) Try[S] {
	return flatten(nested, func(inner Try[S]) Try[S] { return inner })
}

// Flatten3 collapses three nesting levels.
func Flatten3[S any](nested Try[Try[Try[S]]]) Try[S] {
	return flatten(nested, Flatten2[S])
}

// Flatten4 collapses four nesting levels.
func Flatten4[S any](nested Try[Try[Try[Try[S]]]]) Try[S] {
	return flatten(nested, Flatten3[S])
}

// Flatten5 collapses five nesting levels.
func Flatten5[S any](nested Try[Try[Try[Try[Try[S]]]]]) Try[S] {
	return flatten(nested, Flatten4[S])
}

// Flatten6 collapses six nesting levels.
func Flatten6[S any](nested Try[Try[Try[Try[Try[Try[S]]]]]]) Try[S] {
	return flatten(nested, Flatten5[S])
}

// Flatten7 collapses seven nesting levels.
func Flatten7[S any](nested Try[Try[Try[Try[Try[Try[Try[S]]]]]]]) Try[S] {
	return flatten(nested, Flatten6[S])
}

// Flatten8 collapses eight nesting levels.
func Flatten8[S any](nested Try[Try[Try[Try[Try[Try[Try[Try[S]]]]]]]]) Try[S] {
	return flatten(nested, Flatten7[S])
}
