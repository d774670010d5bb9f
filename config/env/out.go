// SPDX-License-Identifier: Apache-2.0

package env

import (
	"os"
	"strings"
)

// BannerEnabledVal returns whether to show the startup banner, based on the
// PAPERBACK_BANNER_ENABLED environment variable.
//
// Returns true if unset (default), true if set to "true" (case-insensitive),
// false otherwise.
func BannerEnabledVal() bool {
	s := os.Getenv(BannerEnabled)
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return true
	}
	return s == "true"
}

// ShowMemoryWarningVal returns whether to warn the operator when
// security/mem.Lock fails, based on the PAPERBACK_SHOW_MEMORY_WARNING
// environment variable.
//
// Returns false if unset (default), true if set to "true"
// (case-insensitive), false otherwise. A failed memory lock means
// ShardSecrets and private keys can be swapped to disk during recovery.
func ShowMemoryWarningVal() bool {
	s := os.Getenv(ShowMemoryWarning)
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return false
	}
	return s == "true"
}
