// Package apperr defines the error taxonomy shared by services and handlers.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrRemote     = errors.New("remote service failed")
	// ErrPartialFailure marks an upload-with-replace that deleted the old
	// remote file but failed to create its replacement. Operators must
	// recover manually; retrying the upload is safe.
	ErrPartialFailure = errors.New("partial failure: deleted but not replaced")
)

// Validation returns a validation error for a missing or malformed field.
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound returns a not-found error naming the missing entity.
func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// RemoteError wraps a failure from an external store with the identity of the
// operation that failed.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote service failed: %s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

func (e *RemoteError) Is(target error) bool { return target == ErrRemote }

// Remote wraps err as a RemoteError for the named operation.
func Remote(op string, err error) error {
	return &RemoteError{Op: op, Err: err}
}

// PartialFailure marks an interrupted replace sequence: the first half (the
// delete) completed but the second half did not.
type PartialFailure struct {
	Op  string
	Err error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("partial failure: %s: old file deleted but replacement not created: %v", e.Op, e.Err)
}

func (e *PartialFailure) Unwrap() error { return e.Err }

func (e *PartialFailure) Is(target error) bool { return target == ErrPartialFailure }
