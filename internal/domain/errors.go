package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a file or directory does not exist
	ErrNotFound = errors.New("not found")
	// ErrIO is returned when a filesystem operation fails for another reason
	ErrIO = errors.New("io error")
)

// ParseError means the document text is not well-formed or has the wrong shape
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse YAML test case: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError means the document parsed but violates a schema rule
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NotFoundError wraps ErrNotFound with the missing path
func NotFoundError(kind, path string) error {
	return fmt.Errorf("%s %w: %s", kind, ErrNotFound, path)
}

// IOError wraps ErrIO and the underlying cause
func IOError(op, path string, err error) error {
	return fmt.Errorf("%s %s: %w: %w", op, path, ErrIO, err)
}
