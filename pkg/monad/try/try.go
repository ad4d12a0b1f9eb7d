package try

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/monads/pkg/monad/fn"
	"github.com/ib-77/monads/pkg/monad/optional"
)

// ErrPredicateDropped is the failure carried by a Try whose success
// value was dropped by Filter.
var ErrPredicateDropped = errors.New("Predicate filter resulted in the successful result being dropped.")

// Void is the value type of a Try produced from a side-effecting
// operation that yields no result.
type Void struct{}

// Try holds exactly one of a success value or a captured error.
type Try[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	success   bool
}

// Success returns a successful Try holding v.
func Success[T any](v T) Try[T] {
	return Try[T]{
		value:     v,
		success:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// SuccessVoid returns a successful Try carrying no value.
func SuccessVoid() Try[Void] {
	return Success(Void{})
}

// Failure returns a failed Try capturing err.
func Failure[T any](err error) Try[T] {
	return Try[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failuref returns a failed Try capturing a new error built from the
// format and arguments.
func Failuref[T any](format string, a ...any) Try[T] {
	return Failure[T](fmt.Errorf(format, a...))
}

// FailureFrom re-types a failed Try, keeping its error and provenance.
func FailureFrom[In, Out any](from Try[In]) Try[Out] {
	return Try[Out]{
		err:       from.err,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Of runs supply immediately and captures its outcome: the returned
// value as a Success, or the returned error as a Failure.
func Of[T any](supply fn.Supplier[T]) Try[T] {
	v, err := supply()
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// OfRunnable runs a side-effecting operation immediately and captures
// its outcome as a Try[Void].
func OfRunnable(run fn.Runnable) Try[Void] {
	return Of(func() (Void, error) {
		return Void{}, run()
	})
}

// IsSuccess reports whether the Try holds a value.
func (t Try[T]) IsSuccess() bool {
	return t.success
}

// IsFailure reports whether the Try holds a captured error.
func (t Try[T]) IsFailure() bool {
	return !t.success
}

// Err returns the captured error, or nil for a Success.
func (t Try[T]) Err() error {
	return t.err
}

// Id returns the instance id assigned at construction. Short-circuited
// failures keep the id of the Try they were derived from.
func (t Try[T]) Id() uuid.UUID {
	return t.id
}

// CreatedAt returns the construction time (UTC).
func (t Try[T]) CreatedAt() time.Time {
	return t.createdAt
}

// OnSuccess invokes action with the value iff the Try is a Success and
// returns the Try unchanged.
func (t Try[T]) OnSuccess(action func(T)) Try[T] {
	if t.success {
		action(t.value)
	}
	return t
}

// OnFailure invokes action with the captured error iff the Try is a
// Failure and returns the Try unchanged.
func (t Try[T]) OnFailure(action func(error)) Try[T] {
	if !t.success {
		action(t.err)
	}
	return t
}

// OnFailureAs invokes action iff the Try is a Failure and its error
// matches E as errors.As does. Returns the Try unchanged.
func OnFailureAs[E error, T any](t Try[T], action func(E)) Try[T] {
	var target E
	if t.IsFailure() && errors.As(t.err, &target) {
		action(target)
	}
	return t
}

// ContraOptional projects the failure side: the captured error if the
// Try is a Failure, otherwise empty.
func (t Try[T]) ContraOptional() optional.Option[error] {
	if t.success {
		return optional.Empty[error]()
	}
	return optional.Of(t.err)
}

// ContraOptionalAs projects the failure side filtered by error type:
// present only if the Try is a Failure and its error matches E.
func ContraOptionalAs[E error, T any](t Try[T]) optional.Option[E] {
	var target E
	if t.IsFailure() && errors.As(t.err, &target) {
		return optional.Of(target)
	}
	return optional.Empty[E]()
}

// ContraMap applies f to the captured error of a Failure and returns
// the result as a present option; empty for a Success. The Try itself
// is never rewrapped.
func ContraMap[In, Out any](t Try[In], f func(error) Out) optional.Option[Out] {
	if t.IsSuccess() {
		return optional.Empty[Out]()
	}
	return optional.Of(f(t.err))
}

// FlatContraMap is ContraMap for an f that itself returns an option.
func FlatContraMap[In, Out any](t Try[In], f func(error) optional.Option[Out]) optional.Option[Out] {
	if t.IsSuccess() {
		return optional.Empty[Out]()
	}
	return f(t.err)
}

// Filter drops a success value that fails pred, converting the Try into
// a Failure carrying ErrPredicateDropped. Failures pass through
// unchanged regardless of pred.
func (t Try[T]) Filter(pred fn.Predicate[T]) Try[T] {
	if !t.success || pred(t.value) {
		return t
	}
	return Failure[T](ErrPredicateDropped)
}

// Get returns the value, or the captured error for a Failure.
func (t Try[T]) Get() (T, error) {
	if t.success {
		return t.value, nil
	}
	var zero T
	return zero, t.err
}

// MustGet returns the value. It panics with the captured error for a
// Failure; a failure never silently disappears.
func (t Try[T]) MustGet() T {
	if !t.success {
		panic(t.err)
	}
	return t.value
}

// OrElse returns the value, or def for a Failure.
func (t Try[T]) OrElse(def T) T {
	if t.success {
		return t.value
	}
	return def
}

// OrElseGet returns the value, or supply's result for a Failure.
func (t Try[T]) OrElseGet(supply func() T) T {
	if t.success {
		return t.value
	}
	return supply()
}

// OrElseErr returns the value, or for a Failure the error produced by
// makeErr in place of the captured one.
func (t Try[T]) OrElseErr(makeErr func() error) (T, error) {
	if t.success {
		return t.value, nil
	}
	var zero T
	return zero, makeErr()
}

// OrElseTry returns the Try unchanged for a Success; for a Failure it
// re-attempts via supply under the same capture policy as Of.
func (t Try[T]) OrElseTry(supply fn.Supplier[T]) Try[T] {
	if t.success {
		return t
	}
	return Of(supply)
}

// Map applies f to the success value, capturing a returned error into a
// new Failure. A Failure short-circuits: f is never invoked and the
// same error is carried forward.
func Map[In, Out any](t Try[In], f fn.Function[In, Out]) Try[Out] {
	if t.IsFailure() {
		return FailureFrom[In, Out](t)
	}
	v, err := f(t.value)
	if err != nil {
		return Failure[Out](err)
	}
	return Success(v)
}

// FlatMap applies f to the success value, where f returns a Try
// directly. A Failure short-circuits as in Map.
func FlatMap[In, Out any](t Try[In], f func(In) Try[Out]) Try[Out] {
	if t.IsFailure() {
		return FailureFrom[In, Out](t)
	}
	return f(t.value)
}

// Map is the same-type method form of the package-level Map.
func (t Try[T]) Map(f fn.Function[T, T]) Try[T] {
	return Map(t, f)
}

// FlatMap is the same-type method form of the package-level FlatMap.
func (t Try[T]) FlatMap(f func(T) Try[T]) Try[T] {
	return FlatMap(t, f)
}

// Recover derives a replacement success value from the captured error.
// An error returned by f is captured into a new Failure. A Success
// passes through unchanged.
func (t Try[T]) Recover(f fn.Function[error, T]) Try[T] {
	if t.success {
		return t
	}
	v, err := f(t.err)
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// FlatRecover is Recover for an f that returns a full Try.
func (t Try[T]) FlatRecover(f func(error) Try[T]) Try[T] {
	if t.success {
		return t
	}
	return f(t.err)
}

// RecoverAs recovers only if the captured error matches E as errors.As
// does; otherwise the Try passes through unchanged.
func RecoverAs[E error, T any](t Try[T], f fn.Function[E, T]) Try[T] {
	var target E
	if t.success || !errors.As(t.err, &target) {
		return t
	}
	v, err := f(target)
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// FlatRecoverAs is RecoverAs for an f that returns a full Try.
func FlatRecoverAs[E error, T any](t Try[T], f func(E) Try[T]) Try[T] {
	var target E
	if t.success || !errors.As(t.err, &target) {
		return t
	}
	return f(target)
}

// Optional projects the success side: the value if the Try is a
// Success, otherwise empty.
func (t Try[T]) Optional() optional.Option[T] {
	if t.success {
		return optional.Of(t.value)
	}
	return optional.Empty[T]()
}

// Seq returns a sequence yielding the value iff the Try is a Success.
func (t Try[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.success {
			yield(t.value)
		}
	}
}

// Equal reports whether two Try values represent the same outcome: the
// same variant holding an equal value, or the same captured error.
// Instance ids and timestamps do not participate.
func Equal[T comparable](a, b Try[T]) bool {
	if a.success != b.success {
		return false
	}
	if a.success {
		return a.value == b.value
	}
	return a.err == b.err
}
