package crypto

import (
	"github.com/tv42/zbase32"
)

// DocumentID z-base-32 encodes a MainDocument's multihash checksum and
// returns the last 8 characters, per the wire contract's ID derivation.
func DocumentID(checksum Multihash) string {
	encoded := zbase32.EncodeToString(checksum)
	if len(encoded) <= 8 {
		return encoded
	}
	return encoded[len(encoded)-8:]
}
