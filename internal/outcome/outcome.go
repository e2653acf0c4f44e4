// Package outcome models the state of a single request slot as a tagged union.
package outcome

// Status is the tag of an Outcome.
type Status int

const (
	Idle Status = iota
	Loading
	Success
	Failure
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Outcome is exactly one of Idle, Loading, Success(Value) or Failure(Message).
// Value is only meaningful when Status is Success, Message only when Failure.
type Outcome[T any] struct {
	Status  Status
	Value   T
	Message string
}

// IdleOutcome returns the zero outcome.
func IdleOutcome[T any]() Outcome[T] {
	return Outcome[T]{Status: Idle}
}

// LoadingOutcome returns an in-flight outcome.
func LoadingOutcome[T any]() Outcome[T] {
	return Outcome[T]{Status: Loading}
}

// SuccessOutcome wraps a resolved value.
func SuccessOutcome[T any](v T) Outcome[T] {
	return Outcome[T]{Status: Success, Value: v}
}

// FailureOutcome wraps a user-facing failure message.
func FailureOutcome[T any](msg string) Outcome[T] {
	return Outcome[T]{Status: Failure, Message: msg}
}

// IsLoading reports whether a request is in flight.
func (o Outcome[T]) IsLoading() bool { return o.Status == Loading }

// Get returns the value and true when the outcome is Success.
func (o Outcome[T]) Get() (T, bool) {
	if o.Status != Success {
		var zero T
		return zero, false
	}
	return o.Value, true
}

// Err returns the failure message and true when the outcome is Failure.
func (o Outcome[T]) Err() (string, bool) {
	if o.Status != Failure {
		return "", false
	}
	return o.Message, true
}
