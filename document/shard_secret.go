package document

import (
	"crypto/ed25519"

	pbErrors "github.com/cyphervault/paperback/errors"
)

// shardSecretRecoverOnly and shardSecretWithDealer tag the two ShardSecret
// variants on the wire. ShardSecret is not reached through the wire
// package's Tag/blob scheme because it is the plaintext handed to the
// Shamir dealer, not a field concatenated alongside other fields — its own
// leading byte is enough to disambiguate the two shapes.
const (
	shardSecretRecoverOnly = 0
	shardSecretWithDealer  = 1
)

// ShardSecret is the payload split across a backup's KeyShards by the Shamir
// dealer. DocKey is always present: it is the ChaCha20-Poly1305 key used to
// seal the backup's actual secret payload inside the MainDocument. IDPrivateKey is present only when the document was
// built with dealer capability, granting whoever reconstructs this secret
// the power to mint additional shards via the recovery package's
// Quorum.MintShard.
type ShardSecret struct {
	DocKey        [32]byte
	IDPrivateKey  ed25519.PrivateKey
	HasPrivateKey bool
}

// Encode serializes the shard secret to its plaintext wire form.
func (s ShardSecret) Encode() []byte {
	tag := byte(shardSecretRecoverOnly)
	if s.HasPrivateKey {
		tag = shardSecretWithDealer
	}

	buf := make([]byte, 0, 1+32+ed25519.PrivateKeySize)
	buf = append(buf, tag)
	buf = append(buf, s.DocKey[:]...)
	if s.HasPrivateKey {
		buf = append(buf, s.IDPrivateKey...)
	}
	return buf
}

// DecodeShardSecret parses the plaintext produced by Encode.
func DecodeShardSecret(b []byte) (ShardSecret, error) {
	if len(b) < 1+32 {
		return ShardSecret{}, pbErrors.ErrShardSecretDecode.Clone()
	}

	tag := b[0]
	b = b[1:]

	var secret ShardSecret
	copy(secret.DocKey[:], b[:32])
	b = b[32:]

	switch tag {
	case shardSecretRecoverOnly:
		if len(b) != 0 {
			return ShardSecret{}, pbErrors.ErrShardSecretDecode.Clone()
		}
	case shardSecretWithDealer:
		if len(b) != ed25519.PrivateKeySize {
			return ShardSecret{}, pbErrors.ErrShardSecretDecode.Clone()
		}
		priv := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
		copy(priv, b)
		secret.IDPrivateKey = priv
		secret.HasPrivateKey = true
	default:
		return ShardSecret{}, pbErrors.ErrShardSecretDecode.Clone()
	}

	return secret, nil
}
