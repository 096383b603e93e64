package externalapi

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// SignatureSize is the size in bytes of a serialized Schnorr signature.
const SignatureSize = 64

// Signature is a serialized Schnorr signature over a kernel's excess.
type Signature [SignatureSize]byte

// NewSignatureFromByteSlice returns a new Signature from the given byte slice.
func NewSignatureFromByteSlice(data []byte) (*Signature, error) {
	if len(data) != SignatureSize {
		return nil, errors.Errorf("invalid signature size. Want: %d, got: %d",
			SignatureSize, len(data))
	}
	sig := Signature{}
	copy(sig[:], data)
	return &sig, nil
}

// ByteSlice returns the bytes of this signature as a slice.
func (s *Signature) ByteSlice() []byte {
	return s[:]
}

// String returns the hexadecimal representation of the signature.
func (s Signature) String() string {
	return hex.EncodeToString(s[:])
}

// Equal returns whether s equals to other.
func (s *Signature) Equal(other *Signature) bool {
	if s == nil || other == nil {
		return s == other
	}
	return *s == *other
}

// Clone returns a clone of this Signature.
func (s *Signature) Clone() *Signature {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}
