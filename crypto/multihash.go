package crypto

import (
	"golang.org/x/crypto/blake2b"

	pbErrors "github.com/cyphervault/paperback/errors"
)

var errTruncatedMultihash = pbErrors.ErrDecodeTruncated.Clone()

// Multihash is a self-describing hash: a varint algorithm code, a varint
// digest length, then the raw digest bytes. It lets a future format
// revision change hash algorithms without breaking decoders that only
// understand the prefix.
type Multihash []byte

// uvarintAppend appends x LEB128-encoded (low 7 bits per byte, high bit set
// while more bytes follow) to buf. Multihash uses the same varint scheme as
// the wire codec, but multihash.go intentionally does not import the wire
// package: a checksum must remain decodable even if the wire tag space is
// later renumbered.
func uvarintAppend(buf []byte, x uint64) []byte {
	for x >= 0x80 {
		buf = append(buf, byte(x)|0x80)
		x >>= 7
	}
	return append(buf, byte(x))
}

func uvarintConsume(b []byte) (uint64, int) {
	var x uint64
	var shift uint
	for i, c := range b {
		if c < 0x80 {
			return x | uint64(c)<<shift, i + 1
		}
		x |= uint64(c&0x7f) << shift
		shift += 7
	}
	return 0, 0
}

// Blake2b256Multihash hashes data with BLAKE2b-256 and wraps the digest in a
// multihash with Blake2b256Code.
func Blake2b256Multihash(data []byte) (Multihash, error) {
	digest := blake2b.Sum256(data)

	buf := make([]byte, 0, 2+len(digest))
	buf = uvarintAppend(buf, Blake2b256Code)
	buf = uvarintAppend(buf, uint64(len(digest)))
	buf = append(buf, digest[:]...)

	return Multihash(buf), nil
}

// Digest returns the raw hash bytes, stripping the multihash header.
func (m Multihash) Digest() []byte {
	_, n := uvarintConsume(m)
	if n == 0 {
		return nil
	}
	_, n2 := uvarintConsume(m[n:])
	if n2 == 0 {
		return nil
	}
	return m[n+n2:]
}

// ConsumeMultihash reads a self-describing multihash off the front of b
// and returns it along with the unconsumed suffix. Multihashes are
// self-delimiting (code, length, digest), so they never need an outer
// wire tag or length prefix when embedded in a larger structure.
func ConsumeMultihash(b []byte) (Multihash, []byte, error) {
	_, n := uvarintConsume(b)
	if n == 0 {
		return nil, nil, errTruncatedMultihash
	}
	length, n2 := uvarintConsume(b[n:])
	if n2 == 0 {
		return nil, nil, errTruncatedMultihash
	}
	total := n + n2 + int(length)
	if len(b) < total {
		return nil, nil, errTruncatedMultihash
	}
	return Multihash(b[:total]), b[total:], nil
}
