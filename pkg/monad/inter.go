package monad

import (
	"iter"

	"github.com/ib-77/monads/pkg/monad/optional"
)

// Getter is satisfied by containers whose value can always be produced,
// such as lazy.Lazy.
type Getter[T any] interface {
	// Get returns the contained value, computing it if necessary.
	Get() T
}

// CheckedGetter is satisfied by containers whose value may be missing
// because a failure was captured, such as try.Try.
type CheckedGetter[T any] interface {
	// Get returns the contained value or the captured error.
	Get() (T, error)
}

// OptionalProvider is satisfied by containers that project into an
// optional view of their value.
type OptionalProvider[T any] interface {
	Optional() optional.Option[T]
}

// SeqProvider is satisfied by containers that project into a deferred
// zero-or-one element sequence.
type SeqProvider[T any] interface {
	Seq() iter.Seq[T]
}
