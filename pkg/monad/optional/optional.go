// Package optional provides a minimal present/absent container used by
// the failure-projection and view operations of try and lazy.
//
// Key operations:
// - Of/Empty: construct a present or absent Option
// - IsPresent/IsEmpty: inspect
// - Get/MustGet/OrElse/OrElseGet: extract
// - Map/FlatMap/Filter: derive a new Option
package optional

// Option holds either a value or nothing.
type Option[T any] struct {
	value   T
	present bool
}

// Of returns a present Option holding v.
func Of[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// Empty returns an absent Option.
func Empty[T any]() Option[T] {
	return Option[T]{}
}

// IsPresent reports whether a value is held.
func (o Option[T]) IsPresent() bool {
	return o.present
}

// IsEmpty reports whether the Option is absent.
func (o Option[T]) IsEmpty() bool {
	return !o.present
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the value. It panics on an absent Option.
func (o Option[T]) MustGet() T {
	if !o.present {
		panic("optional: MustGet on empty Option")
	}
	return o.value
}

// OrElse returns the value if present, otherwise def.
func (o Option[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// OrElseGet returns the value if present, otherwise supply's result.
func (o Option[T]) OrElseGet(supply func() T) T {
	if o.present {
		return o.value
	}
	return supply()
}

// Filter keeps a present value only if pred holds for it.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.present && pred(o.value) {
		return o
	}
	return Empty[T]()
}

// Map applies f to a present value.
func Map[In, Out any](o Option[In], f func(In) Out) Option[Out] {
	if o.present {
		return Of(f(o.value))
	}
	return Empty[Out]()
}

// FlatMap applies f to a present value, where f itself returns an Option.
func FlatMap[In, Out any](o Option[In], f func(In) Option[Out]) Option[Out] {
	if o.present {
		return f(o.value)
	}
	return Empty[Out]()
}
