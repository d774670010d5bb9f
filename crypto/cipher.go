package crypto

import (
	"crypto/cipher"

	"golang.org/x/crypto/chacha20poly1305"
)

// NewAEAD builds a ChaCha20-Poly1305 AEAD cipher from a 32-byte key.
//
// Unlike the teacher's CreateCipher, this never terminates the process on
// failure: the core is a library, not a long-running service, so every
// failure path returns an error to the caller.
func NewAEAD(key [KeySize]byte) (cipher.AEAD, error) {
	return chacha20poly1305.New(key[:])
}

// Seal encrypts plaintext under key/nonce with the given associated data,
// appending the 16-byte Poly1305 tag to the returned ciphertext.
func Seal(key [KeySize]byte, nonce [NonceSize]byte, plaintext, aad []byte) ([]byte, error) {
	aead, err := NewAEAD(key)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce[:], plaintext, aad), nil
}

// Open authenticates and decrypts ciphertext produced by Seal. A nil error
// with non-nil plaintext means the tag verified; any error means the
// ciphertext was tampered with or the wrong key/nonce/aad was supplied.
func Open(key [KeySize]byte, nonce [NonceSize]byte, ciphertext, aad []byte) ([]byte, error) {
	aead, err := NewAEAD(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, nonce[:], ciphertext, aad)
}
