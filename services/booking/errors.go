package booking

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSessionNotFound is returned when a booking session has expired or
// never existed.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// ErrInvalidTransition is returned when an operation is not legal in the
// session's current state.
var ErrInvalidTransition = errors.New("operation not allowed in current booking state")

// ValidationError reports exactly which required fields are missing.
// Nothing is submitted while any are absent.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("please fill in the following required fields: %s", strings.Join(e.Missing, ", "))
}

// ConflictError means the chosen slot was taken between computation and
// submission. The flow refreshes availability before another attempt is
// allowed.
type ConflictError struct {
	Time24 string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot %s is no longer available, please pick another time", e.Time24)
}

// SubmitError wraps a create-appointment failure that is not a conflict.
// The form's field values are retained so the customer can retry.
type SubmitError struct {
	Err error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("failed to book appointment: %v", e.Err)
}

func (e *SubmitError) Unwrap() error { return e.Err }
