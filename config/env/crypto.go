// SPDX-License-Identifier: Apache-2.0

package env

import (
	"os"
	"strconv"
)

// CryptoMaxCiphertextSizeVal returns the maximum allowed ciphertext size in
// bytes for the secret a MainDocument encrypts. It reads the value from the
// PAPERBACK_CRYPTO_MAX_CIPHERTEXT_SIZE environment variable, defaulting to
// 65,536 bytes (64 KB) if unset or invalid — generous for the BIP-39
// entropy and small structured secrets this format is meant to carry, while
// still bounding how much a single paper backup can be asked to hold.
func CryptoMaxCiphertextSizeVal() int {
	p := os.Getenv(CryptoMaxCiphertextSize)
	if p != "" {
		mv, err := strconv.Atoi(p)
		if err == nil && mv > 0 {
			return mv
		}
	}
	return 65536
}

// CryptoMaxPlaintextSizeVal is CryptoMaxCiphertextSizeVal minus the
// 16-byte Poly1305 tag overhead.
func CryptoMaxPlaintextSizeVal() int {
	return CryptoMaxCiphertextSizeVal() - 16
}
