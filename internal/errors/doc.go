// Package errors provides error handling conventions for the ifccheck CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, and exit code constants.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [errors.Is]:
//
//	if errors.Is(err, ifcerrors.ErrFileNotFound) {
//	    // handle not found case
//	}
//
// # Exit Codes
//
// Validation is binary at the process level: ExitSuccess (0) for a run
// with zero conformance errors (warnings do not affect the code), and
// ExitFailure (1) for everything else: missing argument, unreadable or
// unparseable file, or a run that produced conformance errors.
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports error unwrapping via [errors.Unwrap] and
// [errors.As]:
//
//	var exitErr *ifcerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
