// SPDX-License-Identifier: Apache-2.0

// Package env provides environment variable configuration for the paperback
// CLI and core library.
//
// The package covers:
//   - Shamir secret sharing (default share count, default quorum size)
//   - Crypto payload bounds (maximum ciphertext/plaintext size)
//   - Logging level
//   - Startup banner and memory-lock warning display
//
// All configuration values can be customized via environment variables with
// sensible defaults provided when variables are not set.
package env
