package domain

import "errors"

// ErrNotFound is returned when an operation targets a post id that does not
// exist in storage.
var ErrNotFound = errors.New("not found")

// ValidationError signals a rejected post payload. It maps to a 400 at the
// request boundary.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ErrHeadlineRequired is the only validation failure in the system.
var ErrHeadlineRequired = &ValidationError{Reason: "Headline required"}
