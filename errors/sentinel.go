// SPDX-License-Identifier: Apache-2.0

package errors

//
// General error codes
//

var ErrGeneralFailure = register("gen_general_failure", "general failure", nil)
var ErrNilContext = register("gen_nil_context", "nil context", nil)

//
// Wire codec (C1)
//

var ErrDecodeUnknownTag = register("wire_unknown_tag", "unexpected wire tag", nil)
var ErrDecodeTruncated = register("wire_truncated", "truncated wire input", nil)
var ErrDecodeTrailingBytes = register("wire_trailing_bytes", "trailing bytes after decode", nil)
var ErrDecodeVersionMismatch = register("wire_version_mismatch", "unsupported wire version", nil)
var ErrDecodeVarintOverflow = register("wire_varint_overflow", "varint overflow", nil)

//
// Shamir adapter (C2)
//

var ErrShamirDuplicateIndex = register("shamir_duplicate_index", "shamir duplicate share index", nil)
var ErrShamirEmptyShard = register("shamir_empty_shard", "shamir empty shard", nil)
var ErrShamirInvalidIndex = register("shamir_invalid_index", "shamir invalid share index", nil)
var ErrShamirNilShard = register("shamir_nil_shard", "shamir nil shard", nil)
var ErrShamirNotEnoughShards = register("shamir_not_enough_shards", "shamir not enough shards", nil)
var ErrShamirReconstructionFailed = register("shamir_reconstruction_failed", "shamir reconstruction failed", nil)
var ErrShamirDealerExhausted = register("shamir_dealer_exhausted", "shamir dealer has no shares left to issue", nil)

//
// Document model (C3) / invariants
//

var ErrInvariantViolation = register("invariant_violation", "security-critical invariant violated", nil)
var ErrSignatureInvalid = register("signature_invalid", "signature does not verify", nil)
var ErrMissingCapability = register("missing_capability", "operation requires a capability that was not reconstructed", nil)
var ErrShardSecretDecode = register("shard_secret_decode", "recombined shard secret did not parse", nil)

//
// AEAD operations (C4/C5)
//

var ErrAeadEncryption = register("aead_encryption_failed", "authenticated encryption failed", nil)
var ErrAeadDecryption = register("aead_decryption_failed", "authenticated decryption failed", nil)
var ErrCryptoNonceGenerationFailed = register("crypto_nonce_generation_failed", "nonce generation failed", nil)
var ErrCryptoRandomGenerationFailed = register("crypto_random_generation_failed", "random generation failed", nil)

//
// Mnemonic / codewords (C5)
//

var ErrBadMnemonic = register("bad_mnemonic", "BIP-39 phrase is invalid", nil)

//
// Quorum recovery (C6)
//

var ErrGroupingMismatch = register("grouping_mismatch", "shard does not belong to this backup", nil)
var ErrInsufficientQuorum = register("insufficient_quorum", "fewer shards than the quorum size were supplied", nil)
var ErrQuorumInconsistent = register("quorum_inconsistent", "disjoint shard subsets reconstructed different secrets", nil)
var ErrNoMainDocument = register("no_main_document", "no main document has been supplied to the quorum", nil)
var ErrDuplicateShardID = register("duplicate_shard_id", "two shards share the same shard ID", nil)

//
// Data processing
//

var ErrDataInvalidInput = register("data_invalid_input", "invalid input", nil)
var ErrDataMarshalFailure = register("data_marshal_failure", "failed to marshal value", nil)

//
// System / memory hygiene
//

var ErrSystemMemLockFailed = register("system_mem_lock_failed", "failed to lock process memory", nil)
