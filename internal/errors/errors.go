package errors

import (
	"errors"
	"fmt"
)

// Exit codes for the ifccheck CLI.
const (
	// ExitSuccess indicates validation completed with zero errors.
	ExitSuccess = 0

	// ExitFailure indicates a failed run: missing argument, unreadable
	// file, unparseable IFC, or one or more conformance errors.
	ExitFailure = 1
)

// Sentinel errors for common failure conditions.
var (
	// ErrValidationFailed indicates the file was checked and at least one
	// conformance error was found.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFileNotFound indicates the IFC file path does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidProfile indicates a rule profile file failed to load.
	ErrInvalidProfile = errors.New("invalid rule profile")
)

// ExitError wraps an error with an exit code and optional suggestion.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string

	// Reported is true when the failure was already printed to the user,
	// so the top-level handler only needs to set the exit status.
	Reported bool
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitFailure code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitFailure,
		Suggestion: suggestion,
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
