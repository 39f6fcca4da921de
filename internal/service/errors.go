package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNoQuestions is returned when a session is started for an interview
	// with an empty question list. Entry must be refused, not papered over.
	ErrNoQuestions = errors.New("interview has no questions")

	// ErrDeviceUnavailable is returned when capture is started while the
	// client has reported that the speech device or permission is missing.
	ErrDeviceUnavailable = errors.New("speech capture device unavailable")

	// ErrInvalidTransition is returned for capture actions that are not
	// legal in the current state, such as appending while paused.
	ErrInvalidTransition = errors.New("invalid capture state transition")

	// ErrSessionNotFound is returned when no active session exists for the
	// given access key.
	ErrSessionNotFound = errors.New("no active session for this applicant")
)

// SchemaValidationError rejects model output that does not match the expected
// suggestion-list shape. The raw output is never propagated past it.
type SchemaValidationError struct {
	Reason string
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("suggestion list failed schema validation: %s", e.Reason)
}

// PersistenceError wraps a failed write to the store. The session walker
// treats it as a hard stop: the question index must not advance past an
// answer that was never durably written.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
