package document

import (
	"crypto/ed25519"

	pbErrors "github.com/cyphervault/paperback/errors"
	"github.com/cyphervault/paperback/wire"
)

// Identity binds a signature to the Ed25519 public key that produced it.
// Every signed entity (MainDocument, KeyShard) embeds one: the key identifies
// who built the entity, and the signature lets any holder verify it hasn't
// been altered since signing.
type Identity struct {
	PubKey ed25519.PublicKey
	Sig    []byte
}

// SignIdentity signs signable with priv and wraps the result as an Identity.
func SignIdentity(priv ed25519.PrivateKey, signable []byte) Identity {
	pub, _ := priv.Public().(ed25519.PublicKey)
	return Identity{
		PubKey: pub,
		Sig:    ed25519.Sign(priv, signable),
	}
}

// Verify reports whether Sig is a valid Ed25519 signature over signable
// under PubKey.
func (id Identity) Verify(signable []byte) error {
	if len(id.PubKey) != ed25519.PublicKeySize || len(id.Sig) != ed25519.SignatureSize {
		return pbErrors.ErrSignatureInvalid.Clone()
	}
	if !ed25519.Verify(id.PubKey, signable, id.Sig) {
		return pbErrors.ErrSignatureInvalid.Clone()
	}
	return nil
}

// ToWire encodes the identity as a fixed public key field followed by a
// fixed signature field.
func (id Identity) ToWire() []byte {
	buf := wire.AppendFixed(nil, wire.TagEd25519Pub, id.PubKey)
	return wire.AppendFixed(buf, wire.TagEd25519Sig, id.Sig)
}

// IdentityFromWirePartial decodes an Identity from the front of b, returning
// the unconsumed suffix.
func IdentityFromWirePartial(b []byte) (Identity, []byte, error) {
	pub, rest, err := wire.ReadFixed(b, wire.TagEd25519Pub, ed25519.PublicKeySize)
	if err != nil {
		return Identity{}, nil, err
	}
	sig, rest, err := wire.ReadFixed(rest, wire.TagEd25519Sig, ed25519.SignatureSize)
	if err != nil {
		return Identity{}, nil, err
	}

	pubKey := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(pubKey, pub)
	sigBytes := make([]byte, ed25519.SignatureSize)
	copy(sigBytes, sig)

	return Identity{PubKey: pubKey, Sig: sigBytes}, rest, nil
}
