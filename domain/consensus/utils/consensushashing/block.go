// Package consensushashing computes the hashes the core needs to
// identify headers and to derive the digest a kernel's excess
// signature is verified against.
package consensushashing

import (
	"github.com/pkg/errors"

	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/utils/hashes"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/utils/serialization"
)

// HeaderHash returns the given header's hash.
func HeaderHash(header *externalapi.BlockHeader) *externalapi.DomainHash {
	writer := hashes.NewBlockHeaderHashWriter()
	err := serialization.SerializeBlockHeader(writer, header)
	if err != nil {
		// HashWriter.Write never fails; the only error path in
		// SerializeBlockHeader is an unsupported type, which cannot
		// occur here.
		panic(errors.Wrap(err, "this should never happen. Hash digest should never return an error"))
	}
	return writer.Finalize()
}

// KernelSigningHash returns the 32-byte digest kernel's ExcessSig is
// verified against: the blake2b hash, domain-separated for kernel
// signing, of the kernel's features, fee, and lock height.
func KernelSigningHash(kernel *externalapi.TransactionKernel) *externalapi.DomainHash {
	writer := hashes.NewKernelSigningHashWriter()
	writer.InfallibleWrite(serialization.KernelSigningMessage(kernel))
	return writer.Finalize()
}
