package document

import (
	"crypto/ed25519"

	"github.com/cyphervault/paperback/crypto"
	pbErrors "github.com/cyphervault/paperback/errors"
	"github.com/cyphervault/paperback/shamir"
	"github.com/cyphervault/paperback/wire"
)

// keyShardVersion is the only wire version this package knows how to
// decode.
const keyShardVersion = 0

// KeyShardBuilder holds the fields signed into a KeyShard: the format
// version, the checksum of the MainDocument this shard belongs to, and the
// Shamir share itself.
type KeyShardBuilder struct {
	Version     uint32
	DocChecksum crypto.Multihash
	Shard       shamir.Share
}

// ToWire encodes Version, then the checksum (already self-delimiting, so no
// extra tag or length wrapper is needed), then the share.
func (b KeyShardBuilder) ToWire() []byte {
	buf := wire.PutUvarint(nil, uint64(b.Version))
	buf = append(buf, []byte(b.DocChecksum)...)
	return append(buf, b.Shard.ToWire()...)
}

// SignableBytes is what Sign signs: the builder's wire encoding followed by
// the signer's public key, mirroring MainDocumentBuilder.SignableBytes.
func (b KeyShardBuilder) SignableBytes(pub ed25519.PublicKey) []byte {
	buf := b.ToWire()
	return wire.AppendFixed(buf, wire.TagEd25519Pub, pub)
}

// Sign signs the builder with priv and returns the finished KeyShard.
func (b KeyShardBuilder) Sign(priv ed25519.PrivateKey) KeyShard {
	pub, _ := priv.Public().(ed25519.PublicKey)
	identity := SignIdentity(priv, b.SignableBytes(pub))
	return KeyShard{Inner: b, Identity: identity}
}

// KeyShardBuilderFromWirePartial decodes a KeyShardBuilder from the front
// of b, returning the unconsumed suffix.
func KeyShardBuilderFromWirePartial(b []byte) (KeyShardBuilder, []byte, error) {
	version, n, err := wire.Uvarint(b)
	if err != nil {
		return KeyShardBuilder{}, nil, err
	}
	if version != keyShardVersion {
		return KeyShardBuilder{}, nil, pbErrors.ErrDecodeVersionMismatch.Clone()
	}
	rest := b[n:]

	checksum, rest, err := crypto.ConsumeMultihash(rest)
	if err != nil {
		return KeyShardBuilder{}, nil, err
	}

	share, rest, err := shamir.ShareFromWirePartial(rest)
	if err != nil {
		return KeyShardBuilder{}, nil, err
	}

	return KeyShardBuilder{Version: uint32(version), DocChecksum: checksum, Shard: share}, rest, nil
}

// KeyShard is a signed Shamir share, ready to print on one numbered shard
// page of the paper backup.
type KeyShard struct {
	Inner    KeyShardBuilder
	Identity Identity
}

// ToWire encodes the inner builder followed by the identity.
func (s KeyShard) ToWire() []byte {
	buf := s.Inner.ToWire()
	return append(buf, s.Identity.ToWire()...)
}

// KeyShardFromWirePartial decodes a KeyShard from the front of b, returning
// the unconsumed suffix.
func KeyShardFromWirePartial(b []byte) (KeyShard, []byte, error) {
	builder, rest, err := KeyShardBuilderFromWirePartial(b)
	if err != nil {
		return KeyShard{}, nil, err
	}
	identity, rest, err := IdentityFromWirePartial(rest)
	if err != nil {
		return KeyShard{}, nil, err
	}
	return KeyShard{Inner: builder, Identity: identity}, rest, nil
}

// KeyShardFromWire decodes a KeyShard and requires the input be fully
// consumed.
func KeyShardFromWire(b []byte) (KeyShard, error) {
	shard, rest, err := KeyShardFromWirePartial(b)
	if err != nil {
		return KeyShard{}, err
	}
	if err := wire.RequireExhausted(rest); err != nil {
		return KeyShard{}, err
	}
	return shard, nil
}

// Verify checks that Identity is a valid signature over the inner builder's
// signable bytes.
func (s KeyShard) Verify() error {
	return s.Identity.Verify(s.Inner.SignableBytes(s.Identity.PubKey))
}

// ID returns the shard's stable identifier, derived from the underlying
// Shamir share.
func (s KeyShard) ID() (string, error) {
	return s.Inner.Shard.ID()
}
