// SPDX-License-Identifier: Apache-2.0

//go:build windows

// Package mem provides utilities for secure mem operations.
package mem

import (
	pbErrors "github.com/cyphervault/paperback/errors"
)

// Lock attempts to lock the process memory to prevent swapping. mlockall
// is only available on Unix-like systems, so this always reports failure
// on Windows rather than silently doing nothing.
func Lock() *pbErrors.SDKError {
	return pbErrors.ErrSystemMemLockFailed.Clone()
}
