package recovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyphervault/paperback/backup"
)

func TestValidateRejectsMissingDocument(t *testing.T) {
	q := NewUntrustedQuorum()
	_, err := q.Validate()
	assert.Error(t, err)
}

func TestValidateRejectsTooFewShards(t *testing.T) {
	b, err := backup.New(3, []byte("protect me"))
	require.NoError(t, err)

	q := NewUntrustedQuorum()
	q.SetMainDocument(b.MainDocument())

	shard1, err := b.NextShard()
	require.NoError(t, err)
	q.PushShard(shard1)

	_, err = q.Validate()
	assert.Error(t, err)
}

func TestValidateAndRecoverRoundTrip(t *testing.T) {
	secret := []byte("a secret worth protecting across shards")
	b, err := backup.New(3, secret)
	require.NoError(t, err)

	q := NewUntrustedQuorum()
	q.SetMainDocument(b.MainDocument())
	for i := 0; i < 3; i++ {
		shard, err := b.NextShard()
		require.NoError(t, err)
		q.PushShard(shard)
	}

	quorum, err := q.Validate()
	require.NoError(t, err)

	recovered, err := quorum.RecoverDocument()
	require.NoError(t, err)
	assert.Equal(t, secret, recovered)
}

func TestValidateRejectsGroupingMismatch(t *testing.T) {
	secret := []byte("secret one")
	b1, err := backup.New(2, secret)
	require.NoError(t, err)
	b2, err := backup.New(2, []byte("secret two"))
	require.NoError(t, err)

	q := NewUntrustedQuorum()
	q.SetMainDocument(b1.MainDocument())

	shard1, err := b1.NextShard()
	require.NoError(t, err)
	q.PushShard(shard1)

	foreignShard, err := b2.NextShard()
	require.NoError(t, err)
	q.PushShard(foreignShard)

	_, err = q.Validate()
	assert.Error(t, err)
}

func TestValidateRejectsDuplicateShardID(t *testing.T) {
	b, err := backup.New(2, []byte("secret"))
	require.NoError(t, err)

	q := NewUntrustedQuorum()
	q.SetMainDocument(b.MainDocument())

	shard, err := b.NextShard()
	require.NoError(t, err)
	q.PushShard(shard)
	q.PushShard(shard)

	_, err = q.Validate()
	assert.Error(t, err)
}

func TestValidateAcceptsExtraConsistentShards(t *testing.T) {
	secret := []byte("a secret with extra shards available")
	b, err := backup.New(2, secret)
	require.NoError(t, err)

	q := NewUntrustedQuorum()
	q.SetMainDocument(b.MainDocument())
	for i := 0; i < 4; i++ {
		shard, err := b.NextShard()
		require.NoError(t, err)
		q.PushShard(shard)
	}

	quorum, err := q.Validate()
	require.NoError(t, err)

	recovered, err := quorum.RecoverDocument()
	require.NoError(t, err)
	assert.Equal(t, secret, recovered)
}

func TestMintShardWithDealerCapability(t *testing.T) {
	secret := []byte("secret")
	b, err := backup.New(2, secret)
	require.NoError(t, err)

	q := NewUntrustedQuorum()
	q.SetMainDocument(b.MainDocument())
	for i := 0; i < 2; i++ {
		shard, err := b.NextShard()
		require.NoError(t, err)
		q.PushShard(shard)
	}

	quorum, err := q.Validate()
	require.NoError(t, err)

	minted, err := quorum.MintShard()
	require.NoError(t, err)
	assert.NoError(t, minted.Verify())

	minted2, err := quorum.MintShard()
	require.NoError(t, err)

	id1, err := minted.ID()
	require.NoError(t, err)
	id2, err := minted2.ID()
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
}
