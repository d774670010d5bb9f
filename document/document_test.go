package document

import (
	"crypto/ed25519"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyphervault/paperback/crypto"
	"github.com/cyphervault/paperback/shamir"
)

func testKeypair(t *testing.T) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(crypto.Reader())
	require.NoError(t, err)
	return pub, priv
}

func TestIdentitySignVerifyRoundTrip(t *testing.T) {
	_, priv := testKeypair(t)
	signable := []byte("some signable bytes")

	id := SignIdentity(priv, signable)
	require.NoError(t, id.Verify(signable))

	encoded := id.ToWire()
	decoded, rest, err := IdentityFromWirePartial(encoded)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.NoError(t, decoded.Verify(signable))
}

func TestIdentityVerifyRejectsTamperedSignable(t *testing.T) {
	_, priv := testKeypair(t)
	id := SignIdentity(priv, []byte("original"))
	assert.Error(t, id.Verify([]byte("tampered")))
}

func TestMainDocumentMetaRoundTrip(t *testing.T) {
	meta := MainDocumentMeta{Version: 0, QuorumSize: 5}
	encoded := meta.ToWire()
	decoded, rest, err := MainDocumentMetaFromWirePartial(encoded)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, meta, decoded)
}

func TestMainDocumentMetaRejectsBadQuorumSize(t *testing.T) {
	meta := MainDocumentMeta{Version: 0, QuorumSize: 1}
	_, _, err := MainDocumentMetaFromWirePartial(meta.ToWire())
	assert.Error(t, err)

	meta = MainDocumentMeta{Version: 0, QuorumSize: 256}
	_, _, err = MainDocumentMetaFromWirePartial(meta.ToWire())
	assert.Error(t, err)
}

func buildMainDocument(t *testing.T, priv ed25519.PrivateKey, quorumSize uint32) MainDocument {
	t.Helper()
	nonce, err := crypto.GenerateNonce()
	require.NoError(t, err)

	builder := MainDocumentBuilder{
		Meta:       MainDocumentMeta{Version: 0, QuorumSize: quorumSize},
		Nonce:      nonce,
		Ciphertext: []byte("pretend aead ciphertext"),
	}
	return builder.Sign(priv)
}

func TestMainDocumentSignVerifyRoundTrip(t *testing.T) {
	_, priv := testKeypair(t)
	doc := buildMainDocument(t, priv, 3)
	require.NoError(t, doc.Verify())

	encoded := doc.ToWire()
	decoded, err := MainDocumentFromWire(encoded)
	require.NoError(t, err)
	assert.NoError(t, decoded.Verify())
	assert.Equal(t, uint32(3), decoded.QuorumSize())
}

func TestMainDocumentFromWireRejectsTrailingBytes(t *testing.T) {
	_, priv := testKeypair(t)
	doc := buildMainDocument(t, priv, 3)
	encoded := append(doc.ToWire(), 0xff)
	_, err := MainDocumentFromWire(encoded)
	assert.Error(t, err)
}

func TestMainDocumentChecksumAndIDStable(t *testing.T) {
	_, priv := testKeypair(t)
	doc := buildMainDocument(t, priv, 2)

	id1, err := doc.ID()
	require.NoError(t, err)
	id2, err := doc.ID()
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
	assert.Len(t, id1, 8)
}

func TestShardSecretEncodeDecodeRoundTrip(t *testing.T) {
	var docKey [32]byte
	copy(docKey[:], []byte("0123456789abcdef0123456789abcdef"))

	secret := ShardSecret{DocKey: docKey, HasPrivateKey: false}
	decoded, err := DecodeShardSecret(secret.Encode())
	require.NoError(t, err)
	assert.Equal(t, secret, decoded)
}

func TestShardSecretWithDealerEncodeDecodeRoundTrip(t *testing.T) {
	var docKey [32]byte
	copy(docKey[:], []byte("fedcba9876543210fedcba9876543210"))
	_, priv := testKeypair(t)

	secret := ShardSecret{DocKey: docKey, IDPrivateKey: priv, HasPrivateKey: true}
	decoded, err := DecodeShardSecret(secret.Encode())
	require.NoError(t, err)
	assert.Equal(t, secret, decoded)
}

func TestDecodeShardSecretRejectsTruncated(t *testing.T) {
	_, err := DecodeShardSecret([]byte{0})
	assert.Error(t, err)
}

func TestDecodeShardSecretRejectsUnknownTag(t *testing.T) {
	buf := make([]byte, 1+32)
	buf[0] = 0x7f
	_, err := DecodeShardSecret(buf)
	assert.Error(t, err)
}

func buildKeyShard(t *testing.T, priv ed25519.PrivateKey) KeyShard {
	t.Helper()
	dealer, err := shamir.NewDealer([]byte("a secret that gets split into shards"), 2)
	require.NoError(t, err)
	share, err := dealer.NextShare()
	require.NoError(t, err)

	checksum, err := crypto.Blake2b256Multihash([]byte("pretend main document bytes"))
	require.NoError(t, err)

	builder := KeyShardBuilder{Version: 0, DocChecksum: checksum, Shard: share}
	return builder.Sign(priv)
}

func TestKeyShardSignVerifyRoundTrip(t *testing.T) {
	_, priv := testKeypair(t)
	shard := buildKeyShard(t, priv)
	require.NoError(t, shard.Verify())

	encoded := shard.ToWire()
	decoded, err := KeyShardFromWire(encoded)
	require.NoError(t, err)
	assert.NoError(t, decoded.Verify())

	id1, err := shard.ID()
	require.NoError(t, err)
	id2, err := decoded.ID()
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
}

func TestKeyShardFromWireRejectsTrailingBytes(t *testing.T) {
	_, priv := testKeypair(t)
	shard := buildKeyShard(t, priv)
	encoded := append(shard.ToWire(), 0xaa)
	_, err := KeyShardFromWire(encoded)
	assert.Error(t, err)
}

func TestEncryptedKeyShardRoundTrip(t *testing.T) {
	_, priv := testKeypair(t)
	shard := buildKeyShard(t, priv)

	encrypted, words, err := EncryptKeyShard(shard)
	require.NoError(t, err)
	for _, w := range words {
		assert.NotEmpty(t, w)
	}

	decrypted, err := encrypted.Decrypt(words)
	require.NoError(t, err)
	assert.Equal(t, shard.ToWire(), decrypted.ToWire())
}

func TestEncryptedKeyShardRejectsBadMnemonic(t *testing.T) {
	_, priv := testKeypair(t)
	shard := buildKeyShard(t, priv)

	encrypted, words, err := EncryptKeyShard(shard)
	require.NoError(t, err)

	words[0] = "not-a-real-bip39-word"
	_, err = encrypted.Decrypt(words)
	assert.Error(t, err)
}

func TestEncryptedKeyShardRejectsWrongMnemonic(t *testing.T) {
	_, priv := testKeypair(t)
	shard := buildKeyShard(t, priv)

	encrypted, _, err := EncryptKeyShard(shard)
	require.NoError(t, err)

	_, otherWords, err := EncryptKeyShard(shard)
	require.NoError(t, err)

	_, err = encrypted.Decrypt(otherWords)
	assert.Error(t, err)
}

func TestEncryptedKeyShardAcceptsUppercaseWords(t *testing.T) {
	_, priv := testKeypair(t)
	shard := buildKeyShard(t, priv)

	encrypted, words, err := EncryptKeyShard(shard)
	require.NoError(t, err)

	shouted := words
	shouted[0] = strings.ToUpper(shouted[0])
	decrypted, err := encrypted.Decrypt(shouted)
	require.NoError(t, err)
	assert.Equal(t, shard.ToWire(), decrypted.ToWire())
}

func TestEncryptedKeyShardWireRoundTrip(t *testing.T) {
	_, priv := testKeypair(t)
	shard := buildKeyShard(t, priv)

	encrypted, _, err := EncryptKeyShard(shard)
	require.NoError(t, err)

	encoded := encrypted.ToWire()
	decoded, err := EncryptedKeyShardFromWire(encoded)
	require.NoError(t, err)
	assert.Equal(t, encrypted, decoded)
}

func TestEncryptedKeyShardFromWireRejectsTrailingBytes(t *testing.T) {
	_, priv := testKeypair(t)
	shard := buildKeyShard(t, priv)

	encrypted, _, err := EncryptKeyShard(shard)
	require.NoError(t, err)

	encoded := append(encrypted.ToWire(), 0x01)
	_, err = EncryptedKeyShardFromWire(encoded)
	assert.Error(t, err)
}
