package lazy

// Flatten2 collapses a Lazy of a Lazy into one Lazy. Forcing the result
// forces each level in turn; nothing runs before the final Get.
func Flatten2[S any](nested *Lazy[*Lazy[S]]) *Lazy[S] {
	return FlatMap(nested, func(inner *Lazy[S]) *Lazy[S] { return inner })
}

// Flatten3 collapses three nesting levels.
func Flatten3[S any](nested *Lazy[*Lazy[*Lazy[S]]]) *Lazy[S] {
	return FlatMap(nested, Flatten2[S])
}

// Flatten4 collapses four nesting levels.
func Flatten4[S any](nested *Lazy[*Lazy[*Lazy[*Lazy[S]]]]) *Lazy[S] {
	return FlatMap(nested, Flatten3[S])
}

// Flatten5 collapses five nesting levels.
func Flatten5[S any](nested *Lazy[*Lazy[*Lazy[*Lazy[*Lazy[S]]]]]) *Lazy[S] {
	return FlatMap(nested, Flatten4[S])
}

// Flatten6 collapses six nesting levels.
func Flatten6[S any](nested *Lazy[*Lazy[*Lazy[*Lazy[*Lazy[*Lazy[S]]]]]]) *Lazy[S] {
	return FlatMap(nested, Flatten5[S])
}

// Flatten7 collapses seven nesting levels.
func Flatten7[S any](nested *Lazy[*Lazy[*Lazy[*Lazy[*Lazy[*Lazy[*Lazy[S]]]]]]]) *Lazy[S] {
	return FlatMap(nested, Flatten6[S])
}

// Flatten8 collapses eight nesting levels.
func Flatten8[S any](nested *Lazy[*Lazy[*Lazy[*Lazy[*Lazy[*Lazy[*Lazy[*Lazy[S]]]]]]]]) *Lazy[S] {
	return FlatMap(nested, Flatten7[S])
}
