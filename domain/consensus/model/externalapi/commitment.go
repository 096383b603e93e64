package externalapi

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// CommitmentSize is the size in bytes of a compressed Pedersen commitment.
const CommitmentSize = 33

// Commitment is a 33-byte compressed curve point representing r*G + v*H
// for blinding factor r and value v.
type Commitment [CommitmentSize]byte

// NewCommitmentFromByteSlice returns a new Commitment from the given byte slice.
func NewCommitmentFromByteSlice(data []byte) (*Commitment, error) {
	if len(data) != CommitmentSize {
		return nil, errors.Errorf("invalid commitment size. Want: %d, got: %d",
			CommitmentSize, len(data))
	}
	commitment := Commitment{}
	copy(commitment[:], data)
	return &commitment, nil
}

// ByteSlice returns the bytes of this commitment as a slice.
func (c *Commitment) ByteSlice() []byte {
	return c[:]
}

// String returns the hexadecimal representation of the commitment.
func (c Commitment) String() string {
	return hex.EncodeToString(c[:])
}

// Equal returns whether c equals to other. Commitment equality is
// compressed-point equality: two curve points are equal iff their
// 33-byte compressions match.
func (c *Commitment) Equal(other *Commitment) bool {
	if c == nil || other == nil {
		return c == other
	}
	return *c == *other
}

// Clone returns a clone of this Commitment.
func (c *Commitment) Clone() *Commitment {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
