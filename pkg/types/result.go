package types

import "fmt"

// Outcome is the three-way classification of a pipeline stage result.
type Outcome string

// Outcome values. Failure is a recoverable set of business-rule
// violations; Fault is an unexpected condition (malformed snapshot,
// missing board) that makes the run unusable.
const (
	OutcomeSuccess Outcome = "SUCCESS"
	OutcomeFailure Outcome = "FAILURE"
	OutcomeFault   Outcome = "FAULT"
)

// FieldError is one aggregated business-rule violation, keyed by the
// entity (item) it was found on.
type FieldError struct {
	Entity  string `json:"entity"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Entity, e.Message)
	}
	return fmt.Sprintf("%s.%s: %s", e.Entity, e.Field, e.Message)
}

// Result is a tagged three-way outcome: Success carries data, Failure
// carries aggregated violations, Fault carries a message. A Result is
// propagated, never silently dropped.
type Result[T any] struct {
	Outcome Outcome      `json:"outcome"`
	Data    T            `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Fault   string       `json:"fault,omitempty"`
}

// Success wraps data in a successful Result.
func Success[T any](data T) Result[T] {
	return Result[T]{Outcome: OutcomeSuccess, Data: data}
}

// Failure wraps aggregated violations in a failed Result.
func Failure[T any](errs []FieldError) Result[T] {
	return Result[T]{Outcome: OutcomeFailure, Errors: errs}
}

// Faultf builds a Fault Result from a format string.
func Faultf[T any](format string, args ...any) Result[T] {
	return Result[T]{Outcome: OutcomeFault, Fault: fmt.Sprintf(format, args...)}
}

// IsSuccess reports whether the Result carries data.
func (r Result[T]) IsSuccess() bool { return r.Outcome == OutcomeSuccess }

// IsFailure reports whether the Result carries business violations.
func (r Result[T]) IsFailure() bool { return r.Outcome == OutcomeFailure }

// IsFault reports whether the Result is a fault.
func (r Result[T]) IsFault() bool { return r.Outcome == OutcomeFault }

// Recast transfers a non-success Result to a different payload type.
// It panics on a success Result, which has nothing to recast.
func Recast[T, U any](r Result[T]) Result[U] {
	switch r.Outcome {
	case OutcomeFailure:
		return Failure[U](r.Errors)
	case OutcomeFault:
		return Result[U]{Outcome: OutcomeFault, Fault: r.Fault}
	}
	panic("recast of a success result")
}
