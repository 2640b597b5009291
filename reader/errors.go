package reader

import (
	"errors"
	"fmt"
)

var (
	// ErrProtocolViolation means the chunk stream broke an invariant the
	// server is contractually required to uphold. Never retried.
	ErrProtocolViolation = errors.New("protocol violation")
	// ErrTruncatedStream means the stream ended while a row was still open.
	// The coordinator retries it from the last safe resume point.
	ErrTruncatedStream = errors.New("truncated stream")
	// ErrRetriesExhausted wraps the last attempt error once the retry budget
	// is spent.
	ErrRetriesExhausted = errors.New("retries exhausted")
)

// Error wraps a sentinel error with additional context
type Error struct {
	Err     error  // The underlying sentinel error
	Context string // Additional error context
}

// Error satisfies the error interface
func (e *Error) Error() string {
	if e.Context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Context)
}

// Unwrap implements the errors.Unwrap interface for compatibility with errors.Is/As
func (e *Error) Unwrap() error {
	return e.Err
}

// newError creates a new reader error with context
func newError(err error, format string, args ...interface{}) *Error {
	return &Error{
		Err:     err,
		Context: fmt.Sprintf(format, args...),
	}
}
