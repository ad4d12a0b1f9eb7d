package lazy

import (
	"iter"
	"sync"
	"sync/atomic"

	"github.com/ib-77/monads/pkg/monad"
	"github.com/ib-77/monads/pkg/monad/optional"
)

// Lazy is a single-slot cache over a zero-argument generating function.
// The zero value is not usable; construct with New, Of or Empty.
type Lazy[T any] struct {
	mu        sync.Mutex
	evaluated atomic.Bool
	gen       func() T
	val       T
}

// New returns a deferred Lazy wrapping gen. The function runs at most
// once and is dereferenced after its first execution, releasing
// anything it captured.
func New[T any](gen func() T) *Lazy[T] {
	return &Lazy[T]{gen: gen}
}

// Of returns a pre-evaluated Lazy holding v.
func Of[T any](v T) *Lazy[T] {
	l := &Lazy[T]{val: v}
	l.evaluated.Store(true)
	return l
}

// Empty returns a pre-evaluated Lazy holding T's zero value.
func Empty[T any]() *Lazy[T] {
	l := &Lazy[T]{}
	l.evaluated.Store(true)
	return l
}

// Get returns the value, running the generator on the first call.
// Concurrent first calls run the generator exactly once; every caller
// observes the same cached value. The evaluated flag is only set after
// the generator returns, so a panicking generator leaves the instance
// unevaluated and a later Get retries it.
func (l *Lazy[T]) Get() T {
	if l.evaluated.Load() {
		return l.val
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.evaluated.Load() {
		l.val = l.gen()
		l.gen = nil
		l.evaluated.Store(true)
	}
	return l.val
}

// Evaluated reports whether the generator has already run.
func (l *Lazy[T]) Evaluated() bool {
	return l.evaluated.Load()
}

// Optional forces evaluation and returns a present option, or an empty
// one if the value is nil-like (nil pointer, interface, slice, map,
// func or channel).
func (l *Lazy[T]) Optional() optional.Option[T] {
	v := l.Get()
	if monad.IsNil(v) {
		return optional.Empty[T]()
	}
	return optional.Of(v)
}

// Seq returns a sequence over the value: empty if it is nil-like,
// single-element otherwise. The generator does not run until the
// sequence is actually iterated.
func (l *Lazy[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		v := l.Get()
		if monad.IsNil(v) {
			return
		}
		yield(v)
	}
}

// Map returns a Lazy that, when forced, evaluates l and applies f.
// Calling Map forces nothing.
func Map[In, Out any](l *Lazy[In], f func(In) Out) *Lazy[Out] {
	return New(func() Out {
		return f(l.Get())
	})
}

// FlatMap is Map for an f that returns another Lazy; the result is
// unwrapped on forcing, still fully deferred until then.
func FlatMap[In, Out any](l *Lazy[In], f func(In) *Lazy[Out]) *Lazy[Out] {
	return New(func() Out {
		return f(l.Get()).Get()
	})
}

// Map is the same-type method form of the package-level Map.
func (l *Lazy[T]) Map(f func(T) T) *Lazy[T] {
	return Map(l, f)
}

// FlatMap is the same-type method form of the package-level FlatMap.
func (l *Lazy[T]) FlatMap(f func(T) *Lazy[T]) *Lazy[T] {
	return FlatMap(l, f)
}
