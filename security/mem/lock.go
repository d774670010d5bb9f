// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package mem

import (
	"syscall"

	pbErrors "github.com/cyphervault/paperback/errors"
)

// Lock attempts to lock all current and future process memory to prevent
// swapping to disk. This protects sensitive data (ShardSecrets, Ed25519
// private keys, AEAD keys) from being written to swap space where it could
// later be recovered.
//
// The function uses syscall.Mlockall with MCL_CURRENT | MCL_FUTURE flags
// to lock both existing memory pages and any pages allocated in the future.
//
// Note: on Linux, the process typically needs CAP_IPC_LOCK capability or
// sufficient RLIMIT_MEMLOCK; callers should treat a failure as advisory,
// not fatal.
func Lock() *pbErrors.SDKError {
	if err := syscall.Mlockall(
		syscall.MCL_CURRENT | syscall.MCL_FUTURE); err != nil {
		return pbErrors.ErrSystemMemLockFailed.Wrap(err)
	}
	return nil
}
