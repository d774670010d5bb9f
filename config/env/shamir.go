// SPDX-License-Identifier: Apache-2.0

package env

import (
	"os"
	"strconv"
)

// ShamirSharesVal returns the configured default number of shards to issue
// for a fresh backup. It reads the value from the PAPERBACK_SHAMIR_SHARES
// environment variable. The shamir dealer does not read this value: it
// always prepares shamir.MaxShares shares and refuses NextShard only after
// all of them are issued.
//
// Returns the default of 5 if the environment variable is unset, empty, or
// not a valid positive integer.
func ShamirSharesVal() int {
	p := os.Getenv(ShamirShares)
	if p != "" {
		mv, err := strconv.Atoi(p)
		if err == nil && mv > 0 {
			return mv
		}
	}
	return 5
}

// ShamirThresholdVal returns the default quorum size: the minimum number of
// shards required to reconstruct a backup's secret. It reads the value from
// the PAPERBACK_SHAMIR_THRESHOLD environment variable.
//
// Returns the default of 3 if the environment variable is unset, empty, or
// not a valid positive integer. Callers still clamp this against
// shamir.MaxShares themselves — this function has no opinion on the ceiling.
func ShamirThresholdVal() int {
	p := os.Getenv(ShamirThreshold)
	if p != "" {
		mv, err := strconv.Atoi(p)
		if err == nil && mv > 0 {
			return mv
		}
	}
	return 3
}
