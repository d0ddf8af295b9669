package service

// Kind discriminates the three possible outcomes of a service operation.
type Kind int

const (
	// KindValue means the operation succeeded and carries a value.
	KindValue Kind = iota

	// KindAbsent means the requested resource does not exist. Absence is
	// not an error: handlers translate it to a 404 envelope.
	KindAbsent

	// KindFailure means the operation failed for a tagged reason
	// (unauthorized, conflict, missing dependency, or an internal error).
	KindFailure
)

// Result is the three-way outcome returned by every resource service
// operation: a success value, an absence signal, or a tagged failure.
//
// Handlers are expected to switch exhaustively on [Result.Kind]; no service
// outcome is ever delivered by panic or by a bare error return crossing the
// transport boundary. A Result is consumed once by the handler that
// requested it and never persisted.
type Result[T any] struct {
	kind   Kind
	value  T
	reason error
}

// Value wraps a successful outcome.
func Value[T any](v T) Result[T] {
	return Result[T]{kind: KindValue, value: v}
}

// Absent marks the requested resource as nonexistent.
func Absent[T any]() Result[T] {
	return Result[T]{kind: KindAbsent}
}

// Failure wraps a tagged failure reason. The reason should be (or wrap) one
// of the package sentinel errors so that handlers can match it with
// [errors.Is]; unrecognized reasons are treated as internal errors.
func Failure[T any](reason error) Result[T] {
	return Result[T]{kind: KindFailure, reason: reason}
}

// Kind reports which of the three variants the result holds.
func (r Result[T]) Kind() Kind {
	return r.kind
}

// Value returns the success value. Meaningful only when Kind is [KindValue];
// otherwise the zero value of T is returned.
func (r Result[T]) Value() T {
	return r.value
}

// Reason returns the failure reason. Meaningful only when Kind is
// [KindFailure]; otherwise nil.
func (r Result[T]) Reason() error {
	return r.reason
}
