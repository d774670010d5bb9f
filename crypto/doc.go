// Package crypto provides the cryptographic primitives shared by the
// document, backup and recovery packages.
//
// It includes:
//   - Key and nonce generation for ChaCha20-Poly1305, drawn from an
//     injectable CSPRNG.
//   - An AEAD constructor wrapping golang.org/x/crypto/chacha20poly1305.
//   - A self-describing BLAKE2b-256 multihash encoder, used for
//     MainDocument checksums.
//   - A z-base-32 document ID derivation.
//   - A deterministic reader for reproducible tests.
//
// Keys, nonces, random bytes and the backup identity keypair draw from the
// package-level reader variable, so a single substitution makes them
// reproducible under test. The shamir package's dealer does not use this
// reader: its polynomial comes from the vault library's own randomness.
package crypto
