// Package errors provides structured error handling for the paperback core.
//
// This package defines SDKError, a structured error type with error codes for
// programmatic handling, and provides predefined sentinel errors for every
// failure kind the wire codec, Shamir adapter, document model, backup
// pipeline and quorum recovery can surface.
//
// # Sentinel Errors and Cloning
//
// All predefined errors (e.g., ErrInsufficientQuorum, ErrBadMnemonic) are
// pointer types (*SDKError) pointing to shared global instances. This design
// enables efficient error comparison using errors.Is().
//
// IMPORTANT: Because sentinel errors are shared pointers, you must NEVER
// mutate them directly. If you need to customize the error message, always
// use Clone() first:
//
//	// WRONG - mutates the shared global sentinel:
//	failErr := pbErrors.ErrBadMnemonic
//	failErr.Msg = "custom message"  // BUG: corrupts the sentinel!
//
//	// CORRECT - clone before mutating:
//	failErr := pbErrors.ErrBadMnemonic.Clone()
//	failErr.Msg = "custom message"  // Safe: only affects the clone
//
// The Wrap() method is safe because it creates a new instance:
//
//	failErr := pbErrors.ErrAeadDecryption.Wrap(aeadErr)
//
// # Error Comparison
//
// Always use errors.Is() for error comparison. Two SDKErrors are considered
// equal if they have the same error code, regardless of message or wrapped
// error:
//
//	if errors.Is(err, pbErrors.ErrInsufficientQuorum) {
//	    // not enough shards were supplied
//	}
//
// # Usage Patterns
//
//  1. Every error this module returns is an *SDKError.
//  2. All comparisons are done with errors.Is().
//  3. Context goes in the Msg field, added via Clone() or Wrap(), never by
//     constructing an SDKError from a bare code.
package errors
