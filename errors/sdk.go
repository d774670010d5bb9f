// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"errors"
	"fmt"
)

// SDKError represents a structured error in the paperback core. It provides
// error codes for programmatic handling, human-readable messages, and
// support for error wrapping to maintain error chains.
//
// Usage patterns:
//  1. Every error this module returns is an SDKError.
//  2. All comparisons are done with errors.Is().
//  3. Context information goes in the Msg field.
//  4. Prefer wrapping predefined errors over constructing one from a code.
//
// Example:
//
//	// Use predefined errors
//	return pbErrors.ErrInsufficientQuorum
//
//	// Or wrap with additional context
//	return pbErrors.ErrInsufficientQuorum.Wrap(cause)
//
//	// Check error types
//	if errors.Is(err, pbErrors.ErrInsufficientQuorum) {
//	    // Handle an insufficient quorum
//	}
type SDKError struct {
	// Code is the error code for programmatic error handling
	Code ErrorCode

	// Msg is the human-readable error message
	Msg string

	// Wrapped is the underlying error, if any
	Wrapped error
}

// New creates a new SDKError with the specified error code, message, and
// optional wrapped error.
//
// Note: In most cases, you should use predefined errors
// (e.g., ErrInsufficientQuorum) and wrap them with .Wrap() instead of creating new
// errors from codes directly.
//
// Parameters:
//   - code: the error code identifying the error type
//   - msg: human-readable error message providing context
//   - wrapped: optional underlying error to wrap (can be nil)
//
// Returns:
//   - *SDKError: a new SDK error instance
//
// Example:
//
//	// Creating a custom error (rare, prefer using predefined errors)
//	err := pbErrors.New(
//	    pbErrors.ErrInsufficientQuorum.Code,
//	    "quorum has 1 shard, needs 2",
//	    cause,
//	)
func New(code ErrorCode, msg string, wrapped error) *SDKError {
	return &SDKError{
		Code:    code,
		Msg:     msg,
		Wrapped: wrapped,
	}
}

// Error implements the error interface, returning a formatted error message
// that includes the error code, message, and recursively includes wrapped
// error messages.
//
// Returns:
//   - string: formatted error message with error code and full error chain
func (e *SDKError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Msg, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Msg)
}

// Unwrap returns the wrapped error, enabling error chain traversal with
// errors.Is() and errors.As() from the standard library.
//
// Returns:
//   - error: the wrapped error, or nil if no error was wrapped
func (e *SDKError) Unwrap() error {
	return e.Wrapped
}

// Wrap creates a new SDKError that wraps the provided error, preserving
// the current error's code and message while adding the new error to the
// error chain.
//
// Parameters:
//   - err: the error to wrap in the error chain
//
// Returns:
//   - *SDKError: a new SDK error with the same code and message but with
//     the provided error wrapped
//
// Example:
//
//	// Wrap a decode error with quorum context
//	return pbErrors.ErrInsufficientQuorum.Wrap(cause)
func (e *SDKError) Wrap(err error) *SDKError {
	return &SDKError{
		Code:    e.Code,
		Msg:     e.Msg,
		Wrapped: err,
	}
}

// Is enables error comparison by error code using errors.Is() from the
// standard library. Two SDKErrors are considered equal if they have the
// same error code.
//
// Parameters:
//   - target: the error to compare against
//
// Returns:
//   - bool: true if target is an SDKError with the same error code
//
// Example:
//
//	if errors.Is(err, pbErrors.ErrInsufficientQuorum) {
//	    // Handle an insufficient quorum
//	}
func (e *SDKError) Is(target error) bool {
	var t *SDKError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Clone creates a shallow copy of the SDKError. This is useful when you need
// to modify the Msg field of a sentinel error without mutating the original.
//
// Returns:
//   - *SDKError: a new SDK error with the same code, message, and wrapped
//     error as the original
//
// Example:
//
//	// Copy a sentinel error to customize the message
//	failErr := pbErrors.ErrInsufficientQuorum.Clone()
//	failErr.Msg = "need 2 shards, got 1"
//	return failErr
func (e *SDKError) Clone() *SDKError {
	return &SDKError{
		Code:    e.Code,
		Msg:     e.Msg,
		Wrapped: e.Wrapped,
	}
}
