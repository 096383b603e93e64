// Package hashes implements the domain-separated blake2b hash writers
// this core uses to derive block header hashes and kernel signing
// digests. Domain separation is achieved by keying blake2b with a
// distinct personalization string per use, so a hash computed as a
// block header can never collide, by construction, with a hash
// computed over a kernel signing message.
package hashes

import (
	"hash"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"

	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"
)

// HashWriter incrementally hashes data without concatenating
// everything into one buffer first. It exposes an io.Writer and a
// Finalize method to retrieve the resulting hash. It can only be
// created via one of the domain-separated constructors below.
type HashWriter struct {
	hash.Hash
}

// InfallibleWrite is just like Write but doesn't return anything.
func (h HashWriter) InfallibleWrite(p []byte) {
	// This write can never return an error; it is part of the
	// hash.Hash interface contract.
	_, err := h.Write(p)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. hash.Hash interface promises to not return errors."))
	}
}

// Finalize returns the resulting hash.
func (h HashWriter) Finalize() *externalapi.DomainHash {
	var sum externalapi.DomainHash
	copy(sum[:], h.Sum(sum[:0]))
	return &sum
}

func newHashWriter(personalization string) HashWriter {
	var key [16]byte
	copy(key[:], personalization)

	h, err := blake2b.New256(key[:])
	if err != nil {
		panic(errors.Wrap(err, "blake2b.New256 with a 16-byte key should never fail"))
	}
	return HashWriter{h}
}

// NewBlockHeaderHashWriter returns a HashWriter domain-separated for
// block header hashing.
func NewBlockHeaderHashWriter() HashWriter {
	return newHashWriter("GrinPlusPlus/header")
}

// NewKernelSigningHashWriter returns a HashWriter domain-separated for
// hashing a kernel's signing message down to the 32-byte digest its
// ExcessSig is computed over.
func NewKernelSigningHashWriter() HashWriter {
	return newHashWriter("GrinPlusPlus/kernelsig")
}
