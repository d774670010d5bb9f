// Package backup builds a fresh paper backup: it seals a secret into a
// MainDocument and hands out KeyShards one at a time from a single Shamir
// dealer, so every shard issued for a given Backup reconstructs against the
// same quorum.
package backup

import (
	"crypto/ed25519"

	"github.com/cyphervault/paperback/crypto"
	"github.com/cyphervault/paperback/document"
	pbErrors "github.com/cyphervault/paperback/errors"
	"github.com/cyphervault/paperback/journal"
	"github.com/cyphervault/paperback/security/mem"
	"github.com/cyphervault/paperback/shamir"
	"github.com/cyphervault/paperback/validation"
)

// Backup owns the state needed to build a MainDocument once and issue its
// KeyShards over time: the signed document, the checksum shards reference
// it by, the dealer that splits the reconstruction secret, and the identity
// key every shard is signed with.
type Backup struct {
	mainDocument document.MainDocument
	docChecksum  crypto.Multihash
	dealer       *shamir.Dealer
	idPriv       ed25519.PrivateKey
	idPub        ed25519.PublicKey
}

// New builds a MainDocument sealing secret under a fresh key, with the
// given quorum size, and prepares a dealer ready to issue matching
// KeyShards. The document is signed immediately; there is no unsigned
// intermediate state exposed to callers.
func New(quorumSize uint32, secret []byte) (*Backup, error) {
	if err := validation.ValidateQuorumSize(int(quorumSize)); err != nil {
		return nil, err
	}
	if err := validation.ValidateSecret(secret); err != nil {
		return nil, err
	}

	idPub, idPriv, err := ed25519.GenerateKey(crypto.Reader())
	if err != nil {
		return nil, pbErrors.ErrCryptoRandomGenerationFailed.Wrap(err)
	}

	docKey, err := crypto.GenerateKey()
	if err != nil {
		return nil, pbErrors.ErrCryptoRandomGenerationFailed.Wrap(err)
	}
	nonce, err := crypto.GenerateNonce()
	if err != nil {
		return nil, pbErrors.ErrCryptoNonceGenerationFailed.Wrap(err)
	}

	meta := document.MainDocumentMeta{Version: 0, QuorumSize: quorumSize}
	ciphertext, err := crypto.Seal(docKey, nonce, secret, meta.AAD(idPub))
	if err != nil {
		return nil, pbErrors.ErrAeadEncryption.Wrap(err)
	}

	builder := document.MainDocumentBuilder{Meta: meta, Nonce: nonce, Ciphertext: ciphertext}
	mainDoc := builder.Sign(idPriv)

	checksum, err := mainDoc.Checksum()
	if err != nil {
		return nil, err
	}

	shardSecret := document.ShardSecret{DocKey: docKey, IDPrivateKey: idPriv, HasPrivateKey: true}
	secretBytes := shardSecret.Encode()
	dealer, err := shamir.NewDealer(secretBytes, int(quorumSize))
	mem.ClearBytes(secretBytes)
	mem.ClearRawBytes(&docKey)
	if err != nil {
		return nil, err
	}

	docID, err := mainDoc.ID()
	if err == nil {
		journal.Audit(journal.AuditEntry{
			Component: "backup.New",
			TrailID:   docID,
			Action:    journal.AuditDocumentBuilt,
			State:     journal.AuditSuccess,
		})
	}

	return &Backup{
		mainDocument: mainDoc,
		docChecksum:  checksum,
		dealer:       dealer,
		idPriv:       idPriv,
		idPub:        idPub,
	}, nil
}

// MainDocument returns the signed MainDocument for this backup. It is safe
// to call repeatedly; the document never changes after New.
func (b *Backup) MainDocument() document.MainDocument {
	return b.mainDocument
}

// RemainingShards reports how many more shards this backup's dealer can
// still issue.
func (b *Backup) RemainingShards() int {
	return b.dealer.Remaining()
}

// NextShard draws and signs the next Shamir share as a KeyShard. Shards
// drawn from the same Backup always reconstruct against the same quorum,
// since they all come from the one dealer created in New.
func (b *Backup) NextShard() (document.KeyShard, error) {
	share, err := b.dealer.NextShare()
	if err != nil {
		return document.KeyShard{}, err
	}

	builder := document.KeyShardBuilder{
		Version:     0,
		DocChecksum: b.docChecksum,
		Shard:       share,
	}
	shard := builder.Sign(b.idPriv)

	if id, idErr := shard.ID(); idErr == nil {
		journal.Audit(journal.AuditEntry{
			Component: "backup.NextShard",
			Action:    journal.AuditShardIssued,
			Resource:  id,
			State:     journal.AuditSuccess,
		})
	}

	return shard, nil
}

// Destroy wipes the backup's private key material from memory. It does not
// invalidate the MainDocument or any already-issued KeyShards, which remain
// valid independent of this in-memory state.
func (b *Backup) Destroy() {
	mem.ClearBytes(b.idPriv)
	b.idPriv = nil
}
