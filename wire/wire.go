// Package wire implements the bit-exact encoding used to persist every
// paper-backup structure: unsigned varints, type-tagged fields, and
// length-prefixed blobs. The scheme is deliberately simple and stable —
// these bytes are meant to still decode correctly decades from now.
//
// Every entity in the document package follows the same two-function
// convention: ToWire() []byte encodes, and a pair of FromWirePartial /
// FromWire functions decode (the former returns the unconsumed suffix so
// callers can stitch several entities together; the latter requires the
// suffix be empty).
package wire

import (
	"encoding/binary"

	pbErrors "github.com/cyphervault/paperback/errors"
)

// Tag is a stable, explicitly-assigned prefix identifying the field that
// follows it on the wire. Comparing tags exactly on decode is what lets a
// future format revision introduce new field types without breaking old
// decoders: an unrecognized tag is always a decode error, never silently
// skipped.
type Tag uint64

const (
	// TagEd25519Pub prefixes a raw 32-byte Ed25519 public key.
	TagEd25519Pub Tag = 0xed
	// TagEd25519Sig prefixes a raw 64-byte Ed25519 signature.
	TagEd25519Sig Tag = 0xf3
	// TagChaCha20Poly1305Nonce prefixes a raw 12-byte AEAD nonce.
	TagChaCha20Poly1305Nonce Tag = 0x90
	// TagChaCha20Poly1305Ciphertext prefixes a varint length then that many
	// ciphertext bytes (tag appended by AEAD).
	TagChaCha20Poly1305Ciphertext Tag = 0x91
	// TagShamirShare prefixes a varint length then that many Shamir share
	// bytes (see the shamir package's wire encoding).
	TagShamirShare Tag = 0x53
)

// PutUvarint encodes x as an unsigned LEB128 varint (7 payload bits per
// byte, continuation signaled by the high bit) and appends it to buf.
func PutUvarint(buf []byte, x uint64) []byte {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], x)
	return append(buf, tmp[:n]...)
}

// Uvarint decodes an unsigned varint from the front of b, returning the
// value, the number of bytes consumed, and an error if b is truncated or
// the varint overflows a uint64.
func Uvarint(b []byte) (uint64, int, error) {
	x, n := binary.Uvarint(b)
	if n == 0 {
		return 0, 0, pbErrors.ErrDecodeTruncated.Clone()
	}
	if n < 0 {
		return 0, 0, pbErrors.ErrDecodeVarintOverflow.Clone()
	}
	return x, n, nil
}

// AppendTag appends t as a varint.
func AppendTag(buf []byte, t Tag) []byte {
	return PutUvarint(buf, uint64(t))
}

// ExpectTag consumes a varint from the front of b and requires it equal
// want, returning the remainder.
func ExpectTag(b []byte, want Tag) ([]byte, error) {
	got, n, err := Uvarint(b)
	if err != nil {
		return nil, err
	}
	if Tag(got) != want {
		e := pbErrors.ErrDecodeUnknownTag.Clone()
		e.Msg = "expected wire tag"
		return nil, e
	}
	return b[n:], nil
}

// AppendFixed appends tag(t) followed by exactly the bytes in data. Used
// for fixed-size fields (keys, nonces, signatures) where the length never
// needs to travel on the wire.
func AppendFixed(buf []byte, t Tag, data []byte) []byte {
	buf = AppendTag(buf, t)
	return append(buf, data...)
}

// ReadFixed consumes tag(t) then exactly n raw bytes from the front of b,
// returning those bytes and the remainder.
func ReadFixed(b []byte, t Tag, n int) (data []byte, rest []byte, err error) {
	rest, err = ExpectTag(b, t)
	if err != nil {
		return nil, nil, err
	}
	if len(rest) < n {
		return nil, nil, pbErrors.ErrDecodeTruncated.Clone()
	}
	return rest[:n], rest[n:], nil
}

// AppendBlob appends tag(t), then varint(len(data)), then data. Used for
// variable-length fields (ciphertexts, Shamir shares).
func AppendBlob(buf []byte, t Tag, data []byte) []byte {
	buf = AppendTag(buf, t)
	buf = PutUvarint(buf, uint64(len(data)))
	return append(buf, data...)
}

// ReadBlob consumes tag(t), a varint length, then that many bytes from the
// front of b, returning those bytes and the remainder.
func ReadBlob(b []byte, t Tag) (data []byte, rest []byte, err error) {
	rest, err = ExpectTag(b, t)
	if err != nil {
		return nil, nil, err
	}
	length, n, err := Uvarint(rest)
	if err != nil {
		return nil, nil, err
	}
	rest = rest[n:]
	if uint64(len(rest)) < length {
		return nil, nil, pbErrors.ErrDecodeTruncated.Clone()
	}
	return rest[:length], rest[length:], nil
}

// RequireExhausted returns ErrDecodeTrailingBytes if rest is non-empty.
// FromWire wrappers call this after FromWirePartial to enforce that a
// full decode consumes every byte.
func RequireExhausted(rest []byte) error {
	if len(rest) != 0 {
		return pbErrors.ErrDecodeTrailingBytes.Clone()
	}
	return nil
}
