// Package shamir adapts github.com/hashicorp/vault/sdk/helper/shamir's
// byte-wise GF(256) secret sharing to the Dealer/Shard/combine contract the
// document and backup packages are built against. It is the one place in
// this module that treats Shamir itself as an external, trusted primitive
// (per the quorum-recovery contract): everything here is a thin wrapper,
// never a reimplementation of the sharing math.
package shamir

import (
	vaultshamir "github.com/hashicorp/vault/sdk/helper/shamir"

	"github.com/cyphervault/paperback/crypto"
	pbErrors "github.com/cyphervault/paperback/errors"
	"github.com/cyphervault/paperback/wire"
)

// MaxShares is the largest number of shares a single dealer issues. The
// underlying scheme encodes each share's x-coordinate in a single byte
// (1..255; 0 is reserved), so 255 is a hard ceiling, not a policy choice.
const MaxShares = 255

// Share is an opaque Shamir share: the secret, the threshold, and all
// shares are generated together by a Dealer, and any threshold-sized subset
// of shares recombines to the original secret.
type Share struct {
	bytes []byte
}

// ID derives a stable identifier for the share from its content: the last
// 8 z-base-32 characters of the share's BLAKE2b-256 multihash (see
// crypto.DocumentID). Two distinct shares get the same ID only when those
// 8 characters match, which is far likelier than a full BLAKE2b-256
// collision.
func (s Share) ID() (string, error) {
	mh, err := crypto.Blake2b256Multihash(s.bytes)
	if err != nil {
		return "", err
	}
	return crypto.DocumentID(mh), nil
}

// ToWire encodes the share as a length-prefixed blob.
func (s Share) ToWire() []byte {
	return wire.AppendBlob(nil, wire.TagShamirShare, s.bytes)
}

// ShareFromWirePartial decodes a Share from the front of b, returning the
// unconsumed suffix.
func ShareFromWirePartial(b []byte) (Share, []byte, error) {
	data, rest, err := wire.ReadBlob(b, wire.TagShamirShare)
	if err != nil {
		return Share{}, nil, err
	}
	if len(data) == 0 {
		return Share{}, nil, pbErrors.ErrShamirEmptyShard.Clone()
	}
	return Share{bytes: data}, rest, nil
}

// ShareFromWire decodes a Share and requires the input be fully consumed.
func ShareFromWire(b []byte) (Share, error) {
	s, rest, err := ShareFromWirePartial(b)
	if err != nil {
		return Share{}, err
	}
	if err := wire.RequireExhausted(rest); err != nil {
		return Share{}, err
	}
	return s, nil
}

// Dealer owns a secret and the full set of shares generated for it. It
// hands shares out one at a time via NextShare and is otherwise immutable:
// MaxShares shares are always generated up front so every share after the
// first comes from the same polynomial, satisfying the adapter contract
// that any threshold-sized subset reconstructs identically regardless of
// which shares were drawn.
type Dealer struct {
	shares []Share
	next   int
}

// NewDealer builds a dealer for secret with the given reconstruction
// threshold. threshold must be in [2, MaxShares].
func NewDealer(secret []byte, threshold int) (*Dealer, error) {
	if threshold < 2 || threshold > MaxShares {
		return nil, pbErrors.ErrInvariantViolation.Clone()
	}
	if len(secret) == 0 {
		return nil, pbErrors.ErrShamirEmptyShard.Clone()
	}

	parts, err := vaultshamir.Split(secret, MaxShares, threshold)
	if err != nil {
		return nil, pbErrors.ErrShamirReconstructionFailed.Wrap(err)
	}

	shares := make([]Share, len(parts))
	for i, p := range parts {
		shares[i] = Share{bytes: p}
	}
	return &Dealer{shares: shares}, nil
}

// NextShare returns the next undrawn share. It fails with
// ErrShamirDealerExhausted once MaxShares shares have been issued.
func (d *Dealer) NextShare() (Share, error) {
	if d.next >= len(d.shares) {
		return Share{}, pbErrors.ErrShamirDealerExhausted.Clone()
	}
	s := d.shares[d.next]
	d.next++
	return s, nil
}

// Remaining reports how many shares this dealer can still issue.
func (d *Dealer) Remaining() int {
	return len(d.shares) - d.next
}

// Combine reconstructs the secret from threshold-or-more shares drawn from
// the same dealer. Passing fewer than the original threshold either fails
// outright or silently returns a wrong secret (indistinguishable from each
// other by design, matching the wider AEAD-based tamper model) — callers
// that need an explicit insufficient-quorum error must check share counts
// against the MainDocument's quorum size themselves (see the recovery
// package), since this adapter has no independent way to learn the
// original threshold from a wire-decoded share.
func Combine(shares []Share) ([]byte, error) {
	if len(shares) == 0 {
		return nil, pbErrors.ErrShamirNotEnoughShards.Clone()
	}

	seen := make(map[string]struct{}, len(shares))
	parts := make([][]byte, 0, len(shares))
	for _, s := range shares {
		if len(s.bytes) == 0 {
			return nil, pbErrors.ErrShamirNilShard.Clone()
		}
		key := string(s.bytes)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		parts = append(parts, s.bytes)
	}

	secret, err := vaultshamir.Combine(parts)
	if err != nil {
		return nil, pbErrors.ErrShamirReconstructionFailed.Wrap(err)
	}
	return secret, nil
}
