package externalapi

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// BlindingFactorSize is the size in bytes of a BlindingFactor.
const BlindingFactorSize = 32

// BlindingFactor is a 32-byte scalar in the curve's scalar field.
// The zero value is a legal, representable blinding factor.
type BlindingFactor [BlindingFactorSize]byte

// NewBlindingFactorFromByteSlice returns a new BlindingFactor from the given byte slice.
func NewBlindingFactorFromByteSlice(data []byte) (*BlindingFactor, error) {
	if len(data) != BlindingFactorSize {
		return nil, errors.Errorf("invalid blinding factor size. Want: %d, got: %d",
			BlindingFactorSize, len(data))
	}
	bf := BlindingFactor{}
	copy(bf[:], data)
	return &bf, nil
}

// ByteSlice returns the bytes of this blinding factor as a slice.
func (bf *BlindingFactor) ByteSlice() []byte {
	return bf[:]
}

// String returns the hexadecimal representation of the blinding factor.
func (bf BlindingFactor) String() string {
	return hex.EncodeToString(bf[:])
}

// IsZero returns whether this blinding factor is the zero scalar.
func (bf *BlindingFactor) IsZero() bool {
	for _, b := range bf {
		if b != 0 {
			return false
		}
	}
	return true
}

// Equal returns whether bf equals to other.
func (bf *BlindingFactor) Equal(other *BlindingFactor) bool {
	if bf == nil || other == nil {
		return bf == other
	}
	return *bf == *other
}

// Clone returns a clone of this BlindingFactor.
func (bf *BlindingFactor) Clone() *BlindingFactor {
	if bf == nil {
		return nil
	}
	clone := *bf
	return &clone
}
