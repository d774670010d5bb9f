package document

import (
	"strings"

	"github.com/tyler-smith/go-bip39"

	"github.com/cyphervault/paperback/crypto"
	pbErrors "github.com/cyphervault/paperback/errors"
	"github.com/cyphervault/paperback/validation"
	"github.com/cyphervault/paperback/wire"
)

// codewordCount is the number of BIP-39 words a shard's encryption key
// expands to. 256 bits of entropy (the ChaCha20-Poly1305 key size) encodes
// to exactly 24 words at the standard 11-bits-per-word, 1-checksum-bit-per-
// 32-entropy-bits ratio.
const codewordCount = 24

// EncryptedKeyShard is a KeyShard sealed under a key derived from a BIP-39
// mnemonic, for when a shard needs to be memorized or transcribed as words
// rather than kept as a printed page. The mnemonic doubles as a checksum:
// a mistyped word is caught by IsMnemonicValid before it ever reaches the
// AEAD, instead of surfacing as an opaque decryption failure.
type EncryptedKeyShard struct {
	Nonce      [crypto.NonceSize]byte
	Ciphertext []byte
}

// EncryptKeyShard generates a fresh 24-word mnemonic, derives a key from it,
// and seals shard under that key. It returns the encrypted shard and the
// codewords the caller must record to ever decrypt it again — paperback
// makes no attempt to recover a shard whose words are lost.
func EncryptKeyShard(shard KeyShard) (EncryptedKeyShard, [codewordCount]string, error) {
	var words [codewordCount]string

	entropy, err := crypto.RandomBytes(crypto.KeySize)
	if err != nil {
		return EncryptedKeyShard{}, words, pbErrors.ErrCryptoRandomGenerationFailed.Wrap(err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return EncryptedKeyShard{}, words, pbErrors.ErrBadMnemonic.Wrap(err)
	}

	nonce, err := crypto.GenerateNonce()
	if err != nil {
		return EncryptedKeyShard{}, words, pbErrors.ErrCryptoNonceGenerationFailed.Wrap(err)
	}

	var key [crypto.KeySize]byte
	copy(key[:], entropy)

	ciphertext, err := crypto.Seal(key, nonce, shard.ToWire(), nil)
	if err != nil {
		return EncryptedKeyShard{}, words, pbErrors.ErrAeadEncryption.Wrap(err)
	}

	copy(words[:], strings.Fields(mnemonic))
	return EncryptedKeyShard{Nonce: nonce, Ciphertext: ciphertext}, words, nil
}

// Decrypt reconstructs the KeyShard sealed by EncryptKeyShard from its
// codewords. An invalid or mistyped mnemonic is rejected before decryption
// is attempted. Words are normalized to lowercase before validation, since
// a phrase transcribed with stray capitals is still correct.
func (e EncryptedKeyShard) Decrypt(words [codewordCount]string) (KeyShard, error) {
	if err := validation.ValidateCodewords(words[:], codewordCount); err != nil {
		return KeyShard{}, err
	}

	normalized := make([]string, codewordCount)
	for i, w := range words {
		normalized[i] = strings.ToLower(w)
	}
	mnemonic := strings.Join(normalized, " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return KeyShard{}, pbErrors.ErrBadMnemonic.Clone()
	}

	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return KeyShard{}, pbErrors.ErrBadMnemonic.Wrap(err)
	}
	if len(entropy) != crypto.KeySize {
		return KeyShard{}, pbErrors.ErrBadMnemonic.Clone()
	}

	var key [crypto.KeySize]byte
	copy(key[:], entropy)

	plaintext, err := crypto.Open(key, e.Nonce, e.Ciphertext, nil)
	if err != nil {
		return KeyShard{}, pbErrors.ErrAeadDecryption.Wrap(err)
	}

	return KeyShardFromWire(plaintext)
}

// ToWire encodes the nonce as a fixed field followed by the ciphertext as a
// length-prefixed blob.
func (e EncryptedKeyShard) ToWire() []byte {
	buf := wire.AppendFixed(nil, wire.TagChaCha20Poly1305Nonce, e.Nonce[:])
	return wire.AppendBlob(buf, wire.TagChaCha20Poly1305Ciphertext, e.Ciphertext)
}

// EncryptedKeyShardFromWirePartial decodes an EncryptedKeyShard from the
// front of b, returning the unconsumed suffix.
func EncryptedKeyShardFromWirePartial(b []byte) (EncryptedKeyShard, []byte, error) {
	nonce, rest, err := wire.ReadFixed(b, wire.TagChaCha20Poly1305Nonce, crypto.NonceSize)
	if err != nil {
		return EncryptedKeyShard{}, nil, err
	}
	ciphertext, rest, err := wire.ReadBlob(rest, wire.TagChaCha20Poly1305Ciphertext)
	if err != nil {
		return EncryptedKeyShard{}, nil, err
	}

	var e EncryptedKeyShard
	copy(e.Nonce[:], nonce)
	e.Ciphertext = append([]byte(nil), ciphertext...)
	return e, rest, nil
}

// EncryptedKeyShardFromWire decodes an EncryptedKeyShard and requires the
// input be fully consumed.
func EncryptedKeyShardFromWire(b []byte) (EncryptedKeyShard, error) {
	e, rest, err := EncryptedKeyShardFromWirePartial(b)
	if err != nil {
		return EncryptedKeyShard{}, err
	}
	if err := wire.RequireExhausted(rest); err != nil {
		return EncryptedKeyShard{}, err
	}
	return e, nil
}
