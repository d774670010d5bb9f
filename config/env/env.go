// SPDX-License-Identifier: Apache-2.0

package env

// Sort alphabetically.

const BannerEnabled = "PAPERBACK_BANNER_ENABLED"
const CryptoMaxCiphertextSize = "PAPERBACK_CRYPTO_MAX_CIPHERTEXT_SIZE"
const LogLevel = "PAPERBACK_LOG_LEVEL"
const ShamirShares = "PAPERBACK_SHAMIR_SHARES"
const ShamirThreshold = "PAPERBACK_SHAMIR_THRESHOLD"
const ShowMemoryWarning = "PAPERBACK_SHOW_MEMORY_WARNING"
