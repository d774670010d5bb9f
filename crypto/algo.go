package crypto

import (
	"crypto/rand"
	"errors"
	"io"
)

// reader is the package-level CSPRNG hook. Every secret-generating function
// in this package draws from it, so substituting it in a test (see
// DeterministicReader) makes document keys, nonces and shard keys
// reproducible without touching call sites.
var reader = rand.Read

// GenerateKey returns a fresh 32-byte ChaCha20-Poly1305 key.
func GenerateKey() ([KeySize]byte, error) {
	var key [KeySize]byte
	if _, err := reader(key[:]); err != nil {
		return key, errors.Join(err, errors.New("GenerateKey: failed to generate random key"))
	}
	return key, nil
}

// GenerateNonce returns a fresh 12-byte ChaCha20-Poly1305 nonce.
func GenerateNonce() ([NonceSize]byte, error) {
	var nonce [NonceSize]byte
	if _, err := reader(nonce[:]); err != nil {
		return nonce, errors.Join(err, errors.New("GenerateNonce: failed to generate random nonce"))
	}
	return nonce, nil
}

// RandomBytes returns n cryptographically random bytes.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := reader(b); err != nil {
		return nil, errors.Join(err, errors.New("RandomBytes: failed to generate random bytes"))
	}
	return b, nil
}

// SetReader overrides the package-level CSPRNG hook. Tests use this to
// install a DeterministicReader; production code never calls it.
func SetReader(r func([]byte) (int, error)) (previous func([]byte) (int, error)) {
	previous = reader
	reader = r
	return previous
}

// readerFunc adapts the func([]byte) (int, error) hook to io.Reader, for
// APIs like ed25519.GenerateKey that insist on the interface.
type readerFunc func([]byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) {
	return f(p)
}

// Reader returns the package-level CSPRNG hook wrapped as an io.Reader.
func Reader() io.Reader {
	return readerFunc(reader)
}
