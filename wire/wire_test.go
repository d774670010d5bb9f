package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUvarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16384, 1 << 32, ^uint64(0)}
	for _, v := range values {
		buf := PutUvarint(nil, v)
		got, n, err := Uvarint(buf)
		require.NoError(t, err)
		assert.Equal(t, len(buf), n)
		assert.Equal(t, v, got)
	}
}

func TestUvarintTruncated(t *testing.T) {
	_, _, err := Uvarint(nil)
	assert.Error(t, err)
}

func TestFixedRoundTrip(t *testing.T) {
	data := []byte("0123456789ab") // 12 bytes, like a nonce
	buf := AppendFixed(nil, TagChaCha20Poly1305Nonce, data)

	got, rest, err := ReadFixed(buf, TagChaCha20Poly1305Nonce, len(data))
	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.Empty(t, rest)
}

func TestFixedWrongTag(t *testing.T) {
	data := make([]byte, 12)
	buf := AppendFixed(nil, TagChaCha20Poly1305Nonce, data)

	_, _, err := ReadFixed(buf, TagEd25519Sig, 12)
	assert.Error(t, err)
}

func TestBlobRoundTrip(t *testing.T) {
	data := []byte("a variable length ciphertext blob")
	buf := AppendBlob(nil, TagChaCha20Poly1305Ciphertext, data)

	got, rest, err := ReadBlob(buf, TagChaCha20Poly1305Ciphertext)
	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.Empty(t, rest)
}

func TestBlobTruncated(t *testing.T) {
	buf := AppendBlob(nil, TagChaCha20Poly1305Ciphertext, []byte("hello"))
	truncated := buf[:len(buf)-2]

	_, _, err := ReadBlob(truncated, TagChaCha20Poly1305Ciphertext)
	assert.Error(t, err)
}

func TestRequireExhausted(t *testing.T) {
	assert.NoError(t, RequireExhausted(nil))
	assert.Error(t, RequireExhausted([]byte{1}))
}

func TestMultipleFieldsConcatenate(t *testing.T) {
	var buf []byte
	buf = PutUvarint(buf, 0)   // version
	buf = PutUvarint(buf, 5)   // quorum size
	buf = AppendFixed(buf, TagChaCha20Poly1305Nonce, make([]byte, 12))
	buf = AppendBlob(buf, TagChaCha20Poly1305Ciphertext, []byte("ct"))

	version, n, err := Uvarint(buf)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), version)
	buf = buf[n:]

	quorum, n, err := Uvarint(buf)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), quorum)
	buf = buf[n:]

	nonce, buf, err := ReadFixed(buf, TagChaCha20Poly1305Nonce, 12)
	require.NoError(t, err)
	assert.Len(t, nonce, 12)

	ct, buf, err := ReadBlob(buf, TagChaCha20Poly1305Ciphertext)
	require.NoError(t, err)
	assert.Equal(t, []byte("ct"), ct)
	assert.Empty(t, buf)
}
