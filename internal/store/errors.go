package store

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that a referenced record no longer exists. Callers
// treat it as "nothing to do" rather than a failure.
var ErrNotFound = errors.New("record not found")

// Entity names a persisted collection for error reporting.
type Entity string

const (
	EntitySettings   Entity = "settings"
	EntityJob        Entity = "job"
	EntitySchedule   Entity = "schedule"
	EntitySession    Entity = "session"
	EntityVacation   Entity = "vacation"
	EntityPausedJobs Entity = "paused-jobs"
)

// OpError wraps a failed storage operation with its context.
type OpError struct {
	Op     string
	Entity Entity
	ID     string
	Err    error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(entity Entity, op, id string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Entity: entity, ID: id, Err: err}
}

// ValidationError reports user input that fails a precondition. It is
// raised before any state is touched, so a rejected command never
// partially applies.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
