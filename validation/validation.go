// SPDX-License-Identifier: Apache-2.0

package validation

import (
	"github.com/cyphervault/paperback/config/env"
	pbErrors "github.com/cyphervault/paperback/errors"
	"github.com/cyphervault/paperback/shamir"
)

// ValidateQuorumSize checks that a requested quorum size is within the
// range the shamir package can actually issue shares for: at least 2 (a
// threshold of 1 is not secret sharing), at most shamir.MaxShares.
func ValidateQuorumSize(quorumSize int) *pbErrors.SDKError {
	if quorumSize < 2 || quorumSize > shamir.MaxShares {
		return pbErrors.ErrInvariantViolation.Clone()
	}
	return nil
}

// ValidateSecret checks that a raw secret is non-empty and fits within the
// configured ciphertext size budget (see env.CryptoMaxPlaintextSizeVal).
func ValidateSecret(secret []byte) *pbErrors.SDKError {
	if len(secret) == 0 {
		return pbErrors.ErrDataInvalidInput.Clone()
	}
	if len(secret) > env.CryptoMaxPlaintextSizeVal() {
		failErr := pbErrors.ErrDataInvalidInput.Clone()
		failErr.Msg = "secret exceeds the configured maximum plaintext size"
		return failErr
	}
	return nil
}

// ValidateCodewords checks that a BIP-39 codeword list has exactly the
// length this module's EncryptedKeyShard scheme expects (24 words) and that
// none of them are empty.
func ValidateCodewords(words []string, want int) *pbErrors.SDKError {
	if len(words) != want {
		return pbErrors.ErrBadMnemonic.Clone()
	}
	for _, w := range words {
		if w == "" {
			return pbErrors.ErrBadMnemonic.Clone()
		}
	}
	return nil
}
