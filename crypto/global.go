package crypto

// NonceSize is the ChaCha20-Poly1305 nonce size in bytes.
const NonceSize = 12

// KeySize is the ChaCha20-Poly1305 key size in bytes.
const KeySize = 32

// Blake2b256Code is the multihash algorithm code for BLAKE2b-256.
const Blake2b256Code = 0xb220
