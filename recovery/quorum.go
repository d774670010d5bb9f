// Package recovery turns a pile of untrusted KeyShards plus a claimed
// MainDocument into a validated Quorum capable of recovering the original
// secret — or, if the document grants dealer capability, minting fresh
// shards.
//
// UntrustedQuorum accepts shards and a document in any order and defers all
// checking to Validate, which runs every rule before returning a Quorum:
// nothing past Validate trusts anything it didn't itself verify.
package recovery

import (
	"github.com/cyphervault/paperback/crypto"
	"github.com/cyphervault/paperback/document"
	pbErrors "github.com/cyphervault/paperback/errors"
	"github.com/cyphervault/paperback/journal"
	"github.com/cyphervault/paperback/security/mem"
	"github.com/cyphervault/paperback/shamir"
)

// UntrustedQuorum accumulates a claimed MainDocument and a set of claimed
// KeyShards before any of it has been checked for consistency.
type UntrustedQuorum struct {
	mainDoc *document.MainDocument
	shards  []document.KeyShard
}

// NewUntrustedQuorum returns an empty UntrustedQuorum.
func NewUntrustedQuorum() *UntrustedQuorum {
	return &UntrustedQuorum{}
}

// SetMainDocument records the claimed MainDocument. Calling it more than
// once replaces the previous value.
func (q *UntrustedQuorum) SetMainDocument(doc document.MainDocument) {
	d := doc
	q.mainDoc = &d
}

// PushShard adds a claimed KeyShard to the set considered by Validate.
func (q *UntrustedQuorum) PushShard(shard document.KeyShard) {
	q.shards = append(q.shards, shard)
}

// Validate runs every consistency rule over the accumulated document and
// shards, in order, failing fast on the first violation:
//
//  1. A MainDocument must have been supplied.
//  2. The MainDocument's signature must verify.
//  3. Every shard's signature must verify.
//  4. Every shard's signer must be the MainDocument's identity.
//  5. Every shard must reference the MainDocument's checksum.
//  6. No two shards may share a shard ID.
//  7. At least QuorumSize shards must have been supplied.
//  8. If more than QuorumSize shards were supplied, every consecutive
//     QuorumSize-sized window (the last one aligned to the end of the
//     list) must reconstruct to the same secret —
//     disagreement means at least one shard is forged or corrupted in a
//     way individual signatures didn't catch (e.g. a valid signature over
//     a share from a different, incompatible dealer run).
//  9. The QuorumSize shards must combine to a ShardSecret that decodes.
//
// On success it returns a Quorum ready to recover the document or mint new
// shards.
func (q *UntrustedQuorum) Validate() (*Quorum, error) {
	if q.mainDoc == nil {
		return nil, pbErrors.ErrNoMainDocument.Clone()
	}
	if err := q.mainDoc.Verify(); err != nil {
		return nil, err
	}

	quorumSize := int(q.mainDoc.QuorumSize())

	docChecksum, err := q.mainDoc.Checksum()
	if err != nil {
		return nil, err
	}

	seenIDs := make(map[string]struct{}, len(q.shards))
	shares := make([]shamir.Share, 0, len(q.shards))
	for _, shard := range q.shards {
		if err := shard.Verify(); err != nil {
			return nil, err
		}
		if string(shard.Identity.PubKey) != string(q.mainDoc.Identity.PubKey) {
			return nil, pbErrors.ErrGroupingMismatch.Clone()
		}
		if string(shard.Inner.DocChecksum) != string(docChecksum) {
			return nil, pbErrors.ErrGroupingMismatch.Clone()
		}

		id, err := shard.ID()
		if err != nil {
			return nil, err
		}
		if _, dup := seenIDs[id]; dup {
			return nil, pbErrors.ErrDuplicateShardID.Clone()
		}
		seenIDs[id] = struct{}{}

		shares = append(shares, shard.Inner.Shard)
	}

	if len(q.shards) < quorumSize {
		return nil, pbErrors.ErrInsufficientQuorum.Clone()
	}

	if len(shares) > quorumSize {
		if err := checkWindowsAgree(shares, quorumSize); err != nil {
			return nil, err
		}
	}

	secretBytes, err := shamir.Combine(shares[:quorumSize])
	if err != nil {
		return nil, err
	}
	defer mem.ClearBytes(secretBytes)

	secret, err := document.DecodeShardSecret(secretBytes)
	if err != nil {
		return nil, err
	}

	if id, idErr := q.mainDoc.ID(); idErr == nil {
		journal.Audit(journal.AuditEntry{
			Component: "recovery.Validate",
			TrailID:   id,
			Action:    journal.AuditQuorumValidated,
			State:     journal.AuditSuccess,
		})
	}

	return &Quorum{mainDoc: *q.mainDoc, secret: secret}, nil
}

// checkWindowsAgree splits shares into consecutive quorumSize-sized
// windows and requires every window to reconstruct identically to the
// first. When len(shares) is not a multiple of quorumSize the last window
// is aligned to the end of the list and overlaps its neighbour, so every
// share takes part in at least one compared window.
func checkWindowsAgree(shares []shamir.Share, quorumSize int) error {
	first, err := shamir.Combine(shares[:quorumSize])
	if err != nil {
		return pbErrors.ErrQuorumInconsistent.Wrap(err)
	}
	defer mem.ClearBytes(first)

	for start := quorumSize; start < len(shares); start += quorumSize {
		if start+quorumSize > len(shares) {
			start = len(shares) - quorumSize
		}
		other, err := shamir.Combine(shares[start : start+quorumSize])
		if err != nil {
			return pbErrors.ErrQuorumInconsistent.Wrap(err)
		}
		same := string(first) == string(other)
		mem.ClearBytes(other)
		if !same {
			return pbErrors.ErrQuorumInconsistent.Clone()
		}
	}
	return nil
}

// Quorum is a validated set of shards: the secret has already been
// recombined and parsed, so no method here re-checks the shards.
// RecoverDocument fails only if decryption fails; MintShard also fails when
// the secret carries no dealer capability or its dealer is exhausted.
type Quorum struct {
	mainDoc    document.MainDocument
	secret     document.ShardSecret
	mintDealer *shamir.Dealer
}

// RecoverDocument decrypts and returns the original secret sealed in the
// MainDocument.
func (q *Quorum) RecoverDocument() ([]byte, error) {
	aad := q.mainDoc.Inner.Meta.AAD(q.mainDoc.Identity.PubKey)
	plaintext, err := crypto.Open(q.secret.DocKey, q.mainDoc.Inner.Nonce, q.mainDoc.Inner.Ciphertext, aad)
	if err != nil {
		return nil, pbErrors.ErrAeadDecryption.Wrap(err)
	}

	if id, idErr := q.mainDoc.ID(); idErr == nil {
		journal.Audit(journal.AuditEntry{
			Component: "recovery.RecoverDocument",
			TrailID:   id,
			Action:    journal.AuditDocumentRecovered,
			State:     journal.AuditSuccess,
		})
	}

	return plaintext, nil
}

// MintShard issues a fresh KeyShard for this document, provided the
// reconstructed secret carried dealer capability (ShardSecret.HasPrivateKey).
//
// Because the underlying Shamir adapter has no polynomial-preserving
// extension operation, this runs an entirely new dealer over the same
// ShardSecret rather than interpolating the original polynomial. Shards
// minted this way combine correctly with each other, but not with shards
// issued by the document's original dealer — they come from a different,
// independently-random polynomial over the same secret. Callers that need
// new shards to coexist with the originals must collect and redistribute a
// fresh full set, not mix old and new.
func (q *Quorum) MintShard() (document.KeyShard, error) {
	if !q.secret.HasPrivateKey {
		return document.KeyShard{}, pbErrors.ErrMissingCapability.Clone()
	}

	if q.mintDealer == nil {
		secretBytes := q.secret.Encode()
		dealer, err := shamir.NewDealer(secretBytes, int(q.mainDoc.QuorumSize()))
		mem.ClearBytes(secretBytes)
		if err != nil {
			return document.KeyShard{}, err
		}
		q.mintDealer = dealer
	}

	share, err := q.mintDealer.NextShare()
	if err != nil {
		return document.KeyShard{}, err
	}

	checksum, err := q.mainDoc.Checksum()
	if err != nil {
		return document.KeyShard{}, err
	}

	builder := document.KeyShardBuilder{Version: 0, DocChecksum: checksum, Shard: share}
	shard := builder.Sign(q.secret.IDPrivateKey)

	if id, idErr := shard.ID(); idErr == nil {
		journal.Audit(journal.AuditEntry{
			Component: "recovery.MintShard",
			Action:    journal.AuditShardMinted,
			Resource:  id,
			State:     journal.AuditSuccess,
		})
	}

	return shard, nil
}
