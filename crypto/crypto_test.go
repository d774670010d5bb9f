package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateKey_Success tests successful key generation.
func TestGenerateKey_Success(t *testing.T) {
	previous := SetReader(func(b []byte) (int, error) {
		for i := range b {
			b[i] = byte(i)
		}
		return len(b), nil
	})
	defer SetReader(previous)

	key, err := GenerateKey()

	assert.NoError(t, err)
	assert.Equal(t, KeySize, len(key))
}

// TestGenerateKey_Error tests GenerateKey when random generation fails.
func TestGenerateKey_Error(t *testing.T) {
	previous := SetReader(func(_ []byte) (int, error) {
		return 0, errors.New("mock random generation failure")
	})
	defer SetReader(previous)

	_, err := GenerateKey()
	assert.Error(t, err)
}

// TestGenerateKey_Uniqueness tests that multiple calls generate different keys.
func TestGenerateKey_Uniqueness(t *testing.T) {
	counter := 0
	previous := SetReader(func(b []byte) (int, error) {
		for i := range b {
			b[i] = byte(counter + i)
		}
		counter++
		return len(b), nil
	})
	defer SetReader(previous)

	key1, err1 := GenerateKey()
	key2, err2 := GenerateKey()

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.NotEqual(t, key1, key2, "keys should be unique")
}

// TestGenerateNonce_Size tests that GenerateNonce returns the right length.
func TestGenerateNonce_Size(t *testing.T) {
	previous := SetReader(func(b []byte) (int, error) {
		for i := range b {
			b[i] = byte(i)
		}
		return len(b), nil
	})
	defer SetReader(previous)

	nonce, err := GenerateNonce()
	assert.NoError(t, err)
	assert.Equal(t, NonceSize, len(nonce))
}

// TestRandomBytes_Length tests RandomBytes for several requested lengths.
func TestRandomBytes_Length(t *testing.T) {
	previous := SetReader(func(b []byte) (int, error) {
		for i := range b {
			b[i] = byte(i % 62)
		}
		return len(b), nil
	})
	defer SetReader(previous)

	for _, n := range []int{0, 1, 8, 32, 64} {
		b, err := RandomBytes(n)
		assert.NoError(t, err)
		assert.Equal(t, n, len(b))
	}
}

// TestSealOpen_RoundTrip tests that Seal/Open round-trip with matching AAD.
func TestSealOpen_RoundTrip(t *testing.T) {
	var key [KeySize]byte
	var nonce [NonceSize]byte
	for i := range key {
		key[i] = byte(i)
	}
	for i := range nonce {
		nonce[i] = byte(i + 1)
	}

	aad := []byte("associated data")
	plaintext := []byte("hello, paper backup")

	ciphertext, err := Seal(key, nonce, plaintext, aad)
	require.NoError(t, err)

	recovered, err := Open(key, nonce, ciphertext, aad)
	require.NoError(t, err)
	assert.Equal(t, plaintext, recovered)
}

// TestOpen_WrongAAD tests that tampering with the AAD breaks decryption.
func TestOpen_WrongAAD(t *testing.T) {
	var key [KeySize]byte
	var nonce [NonceSize]byte

	ciphertext, err := Seal(key, nonce, []byte("secret"), []byte("aad-a"))
	require.NoError(t, err)

	_, err = Open(key, nonce, ciphertext, []byte("aad-b"))
	assert.Error(t, err)
}

// TestOpen_TamperedCiphertext tests that a single flipped byte is detected.
func TestOpen_TamperedCiphertext(t *testing.T) {
	var key [KeySize]byte
	var nonce [NonceSize]byte

	ciphertext, err := Seal(key, nonce, []byte("secret"), nil)
	require.NoError(t, err)

	ciphertext[0] ^= 0xFF

	_, err = Open(key, nonce, ciphertext, nil)
	assert.Error(t, err)
}

// TestBlake2b256Multihash_Stable tests that hashing the same input twice
// yields the same multihash, and the digest can be recovered.
func TestBlake2b256Multihash_Stable(t *testing.T) {
	data := []byte("main document bytes")

	mh1, err := Blake2b256Multihash(data)
	require.NoError(t, err)
	mh2, err := Blake2b256Multihash(data)
	require.NoError(t, err)

	assert.Equal(t, mh1, mh2)
	assert.Equal(t, 32, len(mh1.Digest()))
}

// TestDocumentID_Length tests that DocumentID always returns 8 characters
// for non-trivial multihashes.
func TestDocumentID_Length(t *testing.T) {
	mh, err := Blake2b256Multihash([]byte("some document"))
	require.NoError(t, err)

	id := DocumentID(mh)
	assert.Equal(t, 8, len(id))
}

// TestConsumeMultihash_EmbeddedInLargerBuffer tests that ConsumeMultihash
// reads exactly the multihash bytes off the front of a larger buffer,
// leaving the rest untouched.
func TestConsumeMultihash_EmbeddedInLargerBuffer(t *testing.T) {
	mh, err := Blake2b256Multihash([]byte("doc bytes"))
	require.NoError(t, err)

	trailer := []byte("trailing field bytes")
	buf := append(append([]byte{}, mh...), trailer...)

	got, rest, err := ConsumeMultihash(buf)
	require.NoError(t, err)
	assert.Equal(t, mh, got)
	assert.Equal(t, trailer, rest)
}

// TestConsumeMultihash_Truncated tests that a truncated multihash is
// rejected rather than silently accepted.
func TestConsumeMultihash_Truncated(t *testing.T) {
	mh, err := Blake2b256Multihash([]byte("doc bytes"))
	require.NoError(t, err)

	_, _, err = ConsumeMultihash(mh[:len(mh)-1])
	assert.Error(t, err)
}

// TestDeterministicReader_Read tests the Read method.
func TestDeterministicReader_Read(t *testing.T) {
	seed := []byte("test seed")
	r := NewDeterministicReader(seed)

	buffer := make([]byte, 16)
	n, err := r.Read(buffer)

	assert.NoError(t, err)
	assert.Equal(t, 16, n)
	assert.NotEmpty(t, buffer)
}

// TestDeterministicReader_Consistency tests that same seed produces same output.
func TestDeterministicReader_Consistency(t *testing.T) {
	seed := []byte("test seed")

	reader1 := NewDeterministicReader(seed)
	reader2 := NewDeterministicReader(seed)

	buffer1 := make([]byte, 32)
	buffer2 := make([]byte, 32)

	n1, err1 := reader1.Read(buffer1)
	n2, err2 := reader2.Read(buffer2)

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, 32, n1)
	assert.Equal(t, 32, n2)
	assert.Equal(t, buffer1, buffer2, "same seed should produce same output")
}

// TestDeterministicReader_DifferentSeeds tests that different seeds produce
// different output.
func TestDeterministicReader_DifferentSeeds(t *testing.T) {
	seed1 := []byte("seed one")
	seed2 := []byte("seed two")

	reader1 := NewDeterministicReader(seed1)
	reader2 := NewDeterministicReader(seed2)

	buffer1 := make([]byte, 32)
	buffer2 := make([]byte, 32)

	_, err1 := reader1.Read(buffer1)
	_, err2 := reader2.Read(buffer2)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotEqual(t, buffer1, buffer2, "different seeds should produce different output")
}

// TestDeterministicReader_MultipleReads tests multiple consecutive reads.
func TestDeterministicReader_MultipleReads(t *testing.T) {
	seed := []byte("test seed")
	r := NewDeterministicReader(seed)

	buffer1 := make([]byte, 16)
	buffer2 := make([]byte, 16)
	buffer3 := make([]byte, 16)

	n1, err1 := r.Read(buffer1)
	n2, err2 := r.Read(buffer2)
	n3, err3 := r.Read(buffer3)

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.NoError(t, err3)
	assert.Equal(t, 16, n1)
	assert.Equal(t, 16, n2)
	assert.Equal(t, 16, n3)

	assert.NotEqual(t, buffer1, buffer2)
	assert.NotEqual(t, buffer2, buffer3)
}

// TestDeterministicReader_ReproducibleStream tests that a stream is
// reproducible across independent reader instances.
func TestDeterministicReader_ReproducibleStream(t *testing.T) {
	seed := []byte("reproducible seed")

	reader1 := NewDeterministicReader(seed)
	stream1 := make([]byte, 200)
	_, err1 := reader1.Read(stream1)

	reader2 := NewDeterministicReader(seed)
	stream2 := make([]byte, 200)
	_, err2 := reader2.Read(stream2)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, stream1, stream2, "stream should be reproducible with same seed")
}

// TestDeterministicReader_EmptyBuffer tests reading into an empty buffer.
func TestDeterministicReader_EmptyBuffer(t *testing.T) {
	seed := []byte("test seed")
	r := NewDeterministicReader(seed)

	buffer := make([]byte, 0)
	n, err := r.Read(buffer)

	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}

// TestNewDeterministicReader_NilSeed tests creating a reader with a nil seed.
func TestNewDeterministicReader_NilSeed(t *testing.T) {
	r := NewDeterministicReader(nil)
	require.NotNil(t, r)

	buffer := make([]byte, 32)
	n, err := r.Read(buffer)

	assert.NoError(t, err)
	assert.Equal(t, 32, n)
	assert.NotEmpty(t, buffer)
}
