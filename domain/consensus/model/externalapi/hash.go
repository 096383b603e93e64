package externalapi

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// DomainHashSize is the size in bytes of a DomainHash.
const DomainHashSize = 32

// DomainHash is the domain representation of a block hash.
type DomainHash [DomainHashSize]byte

// NewDomainHashFromByteSlice returns a new DomainHash from the given byte slice.
func NewDomainHashFromByteSlice(hashBytes []byte) (*DomainHash, error) {
	if len(hashBytes) != DomainHashSize {
		return nil, errors.Errorf("invalid hash size. Want: %d, got: %d",
			DomainHashSize, len(hashBytes))
	}
	hash := DomainHash{}
	copy(hash[:], hashBytes)
	return &hash, nil
}

// NewDomainHashFromByteArray returns a new DomainHash from the given byte array.
func NewDomainHashFromByteArray(hashBytes *[DomainHashSize]byte) *DomainHash {
	hash := DomainHash(*hashBytes)
	return &hash
}

// String returns the hexadecimal representation of the hash.
func (hash DomainHash) String() string {
	return hex.EncodeToString(hash[:])
}

// ByteSlice returns the bytes in this hash as a slice.
func (hash *DomainHash) ByteSlice() []byte {
	return hash[:]
}

// Equal returns whether hash equals to other.
func (hash *DomainHash) Equal(other *DomainHash) bool {
	if hash == nil || other == nil {
		return hash == other
	}
	return *hash == *other
}

// Clone returns a clone of DomainHash.
func (hash *DomainHash) Clone() *DomainHash {
	if hash == nil {
		return nil
	}
	clone := *hash
	return &clone
}
