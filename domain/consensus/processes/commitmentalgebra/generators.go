package commitmentalgebra

import (
	"crypto/sha256"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// hDomainTag seeds the try-and-increment hash-to-curve search for H, the
// value generator independent of G. Any party can reproduce H from this
// tag; nobody can reproduce the discrete log of H with respect to G,
// which is the property Pedersen commitments require of their second
// generator. This is the same nothing-up-my-sleeve construction
// secp256k1-zkp-based Mimblewimble implementations use to derive their
// H point.
var hDomainTag = []byte("GrinPlusPlus/commitment-generator/H")

// hGenerator is computed once at package init.
var hGenerator = deriveGenerator(hDomainTag)

// deriveGenerator performs try-and-increment hash-to-curve: it hashes
// the tag with an incrementing counter and attempts to decompress the
// result as a compressed secp256k1 point (0x02 prefix, i.e. even y),
// retrying on failure until a valid point is found.
func deriveGenerator(tag []byte) *secp256k1.PublicKey {
	for counter := uint32(0); ; counter++ {
		h := sha256.New()
		h.Write(tag)
		h.Write([]byte{byte(counter), byte(counter >> 8), byte(counter >> 16), byte(counter >> 24)})
		digest := h.Sum(nil)

		candidate := make([]byte, 33)
		candidate[0] = 0x02
		copy(candidate[1:], digest)

		point, err := secp256k1.ParsePubKey(candidate)
		if err == nil {
			return point
		}
	}
}
