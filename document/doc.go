// Package document implements the signed, wire-encoded entities that make
// up a paper backup: the MainDocument (the encrypted secret plus its
// metadata, stored on the first page) and the KeyShard (one Shamir share,
// stored on one numbered shard page), along with the codeword-protected
// EncryptedKeyShard used when a shard itself needs to travel off paper.
//
// The two signed entities follow the same pattern: a Builder type holds the
// fields that get signed, Sign(priv) produces the signed entity, and
// ToWire/FromWirePartial/FromWire round-trip it to bytes. Builders and the
// signed types are exported with exported fields, so other packages can
// assemble them directly; the backup package builds them, signs them
// immediately, and only ever hands callers the signed form. A value
// assembled without Sign is caught by Verify, not by the type system.
package document
