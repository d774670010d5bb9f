// SPDX-License-Identifier: Apache-2.0

// Package validation provides input validation for the backup and recovery
// workflows: quorum sizes, raw secrets, and codeword counts.
//
// All validation functions return errors.ErrDataInvalidInput (or a more
// specific sentinel) on failure, following the same predefined-error,
// Clone()-to-customize pattern as the rest of this module.
//
// Quorum size validation:
//
//	if err := validation.ValidateQuorumSize(qs); err != nil {
//	    return err
//	}
//
// Secret validation:
//
//	if err := validation.ValidateSecret(secret); err != nil {
//	    return err
//	}
package validation
