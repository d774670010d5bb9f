package document

import (
	"crypto/ed25519"

	"github.com/cyphervault/paperback/crypto"
	pbErrors "github.com/cyphervault/paperback/errors"
	"github.com/cyphervault/paperback/shamir"
	"github.com/cyphervault/paperback/wire"
)

// mainDocumentVersion is the only wire version this package knows how to
// decode. A MainDocument encoding any other version is rejected outright
// rather than guessed at.
const mainDocumentVersion = 0

// MainDocumentMeta carries the fields a MainDocument signs but that live
// outside the encrypted payload: the format version and the number of
// shards required to reconstruct the backup.
type MainDocumentMeta struct {
	Version    uint32
	QuorumSize uint32
}

// ToWire encodes Version then QuorumSize as varints.
func (m MainDocumentMeta) ToWire() []byte {
	buf := wire.PutUvarint(nil, uint64(m.Version))
	return wire.PutUvarint(buf, uint64(m.QuorumSize))
}

// MainDocumentMetaFromWirePartial decodes a MainDocumentMeta from the front
// of b, returning the unconsumed suffix.
func MainDocumentMetaFromWirePartial(b []byte) (MainDocumentMeta, []byte, error) {
	version, n, err := wire.Uvarint(b)
	if err != nil {
		return MainDocumentMeta{}, nil, err
	}
	if version != mainDocumentVersion {
		return MainDocumentMeta{}, nil, pbErrors.ErrDecodeVersionMismatch.Clone()
	}
	b = b[n:]

	quorumSize, n, err := wire.Uvarint(b)
	if err != nil {
		return MainDocumentMeta{}, nil, err
	}
	if quorumSize < 2 || quorumSize > shamir.MaxShares {
		return MainDocumentMeta{}, nil, pbErrors.ErrInvariantViolation.Clone()
	}
	b = b[n:]

	return MainDocumentMeta{Version: uint32(version), QuorumSize: uint32(quorumSize)}, b, nil
}

// AAD derives the associated data bound into the main document's AEAD seal:
// the metadata bytes followed by the literal 'k' marker and the shard
// dealer's public key. Binding the dealer key here, rather than leaving it
// to be checked after decryption, makes substituting a different dealer's
// key an authentication failure instead of a silent acceptance.
func (m MainDocumentMeta) AAD(idPub ed25519.PublicKey) []byte {
	buf := m.ToWire()
	buf = append(buf, 'k')
	return append(buf, idPub...)
}

// MainDocumentBuilder holds the fields that get signed into a MainDocument:
// the metadata, the AEAD nonce, and the ciphertext of the backed-up secret,
// sealed under the document key.
type MainDocumentBuilder struct {
	Meta       MainDocumentMeta
	Nonce      [crypto.NonceSize]byte
	Ciphertext []byte
}

// ToWire encodes Meta, then the nonce as a fixed field, then the ciphertext
// as a length-prefixed blob.
func (b MainDocumentBuilder) ToWire() []byte {
	buf := b.Meta.ToWire()
	buf = wire.AppendFixed(buf, wire.TagChaCha20Poly1305Nonce, b.Nonce[:])
	return wire.AppendBlob(buf, wire.TagChaCha20Poly1305Ciphertext, b.Ciphertext)
}

// SignableBytes is what Sign actually signs: the builder's wire encoding
// followed by the signer's public key. Appending the public key here, not
// inside ToWire, means the signed document's bytes never get re-derived
// from the Identity at decode time — Verify always recomputes SignableBytes
// from the already-decoded Inner and PubKey, so a decoder can never be
// tricked into verifying against bytes it didn't actually receive.
func (b MainDocumentBuilder) SignableBytes(pub ed25519.PublicKey) []byte {
	buf := b.ToWire()
	return wire.AppendFixed(buf, wire.TagEd25519Pub, pub)
}

// Sign signs the builder with priv and returns the finished MainDocument.
func (b MainDocumentBuilder) Sign(priv ed25519.PrivateKey) MainDocument {
	pub, _ := priv.Public().(ed25519.PublicKey)
	identity := SignIdentity(priv, b.SignableBytes(pub))
	return MainDocument{Inner: b, Identity: identity}
}

// MainDocument is the signed first page of a paper backup: it carries the
// quorum size, the AEAD-encrypted secret, and the dealer's identity. The
// document key needed to open it is not stored here; it travels inside the
// ShardSecret that the KeyShards split.
type MainDocument struct {
	Inner    MainDocumentBuilder
	Identity Identity
}

// ToWire encodes the inner builder followed by the identity.
func (d MainDocument) ToWire() []byte {
	buf := d.Inner.ToWire()
	return append(buf, d.Identity.ToWire()...)
}

// MainDocumentFromWirePartial decodes a MainDocument from the front of b,
// returning the unconsumed suffix. It does not verify the signature —
// callers must call Verify separately, since decoding and trusting are
// distinct operations in this package's model.
func MainDocumentFromWirePartial(b []byte) (MainDocument, []byte, error) {
	meta, rest, err := MainDocumentMetaFromWirePartial(b)
	if err != nil {
		return MainDocument{}, nil, err
	}

	nonce, rest, err := wire.ReadFixed(rest, wire.TagChaCha20Poly1305Nonce, crypto.NonceSize)
	if err != nil {
		return MainDocument{}, nil, err
	}

	ciphertext, rest, err := wire.ReadBlob(rest, wire.TagChaCha20Poly1305Ciphertext)
	if err != nil {
		return MainDocument{}, nil, err
	}

	identity, rest, err := IdentityFromWirePartial(rest)
	if err != nil {
		return MainDocument{}, nil, err
	}

	var nonceArr [crypto.NonceSize]byte
	copy(nonceArr[:], nonce)

	ct := make([]byte, len(ciphertext))
	copy(ct, ciphertext)

	builder := MainDocumentBuilder{Meta: meta, Nonce: nonceArr, Ciphertext: ct}
	return MainDocument{Inner: builder, Identity: identity}, rest, nil
}

// MainDocumentFromWire decodes a MainDocument and requires the input be
// fully consumed.
func MainDocumentFromWire(b []byte) (MainDocument, error) {
	doc, rest, err := MainDocumentFromWirePartial(b)
	if err != nil {
		return MainDocument{}, err
	}
	if err := wire.RequireExhausted(rest); err != nil {
		return MainDocument{}, err
	}
	return doc, nil
}

// Verify checks that Identity is a valid signature over the inner builder's
// signable bytes.
func (d MainDocument) Verify() error {
	return d.Identity.Verify(d.Inner.SignableBytes(d.Identity.PubKey))
}

// Checksum returns the BLAKE2b-256 multihash of the document's full wire
// encoding. KeyShards reference a MainDocument by this checksum so a shard
// can be matched to its document without trusting anything about the
// document's content first.
func (d MainDocument) Checksum() (crypto.Multihash, error) {
	return crypto.Blake2b256Multihash(d.ToWire())
}

// ID derives the short document identifier printed on every page of the
// backup, so a holder can tell at a glance which backup a loose shard page
// belongs to.
func (d MainDocument) ID() (string, error) {
	checksum, err := d.Checksum()
	if err != nil {
		return "", err
	}
	return crypto.DocumentID(checksum), nil
}

// QuorumSize returns the number of shards required to reconstruct this
// backup's secret.
func (d MainDocument) QuorumSize() uint32 {
	return d.Inner.Meta.QuorumSize
}
