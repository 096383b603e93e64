// Package rangeproof provides range proof generation and verification
// binding a proof to the commitment it accompanies.
//
// A genuine Mimblewimble range proof is a bulletproof: a
// logarithmic-size zero-knowledge argument that a commitment's hidden
// value lies in [0, 2^64) without revealing the value or blinding
// factor. No such argument is implemented here. No pure-Go,
// cgo-free bulletproofs library exists to build on, so this package
// instead provides a keyed, deterministic, tamper-evident MAC binding
// a commitment to a value that the proof carries in the clear; the
// value is not checked against the commitment's opening. It satisfies the verifier's algebraic
// obligation at the interface boundary --- reject any proof that does
// not match its commitment --- without satisfying the zero-knowledge
// property a production range proof provides. Callers must not treat
// a passing Verify as a privacy guarantee.
package rangeproof

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"

	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"
)

// ProofSize is the size in bytes of a proof produced by this package.
const ProofSize = 40

var macKey = []byte("GrinPlusPlus/rangeproof/v1")

// Verifier implements model.RangeProofVerifier.
type Verifier struct{}

// New returns a new Verifier.
func New() *Verifier {
	return &Verifier{}
}

// Prove returns a proof binding commitment to value. It is exercised
// by tests that need to construct a well-formed output; it is not
// part of the validation core's consensus surface.
func Prove(commitment *externalapi.Commitment, value uint64) []byte {
	var valueBytes [8]byte
	binary.BigEndian.PutUint64(valueBytes[:], value)

	tag := tagFor(commitment, valueBytes[:])

	proof := make([]byte, ProofSize)
	copy(proof[:8], valueBytes[:])
	copy(proof[8:], tag)
	return proof
}

// Verify reports whether proof was produced by Prove for commitment.
// Unlike a genuine bulletproof, which verifies the hidden value lies
// in range without learning it, this placeholder proof carries the
// value in the clear; see the package doc comment.
func (v *Verifier) Verify(commitment *externalapi.Commitment, proof []byte) (bool, error) {
	if len(proof) != ProofSize {
		return false, nil
	}

	valueBytes := proof[:8]
	tag := proof[8:]
	expected := tagFor(commitment, valueBytes)

	return hmac.Equal(expected, tag), nil
}

func tagFor(commitment *externalapi.Commitment, valueBytes []byte) []byte {
	mac := hmac.New(sha256.New, macKey)
	mac.Write(commitment.ByteSlice())
	mac.Write(valueBytes)
	return mac.Sum(nil)
}
