package model

import "github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"

// BlockValidator exposes the set of validation phases after which it's
// possible to determine whether a FullBlock is admissible to the chain.
type BlockValidator interface {
	// VerifySelfConsistent runs every check that depends only on the
	// block itself: body validation, kernel lock heights, and coinbase
	// soundness. It is idempotent: if block.IsValidated() already holds,
	// it returns success without doing any work.
	VerifySelfConsistent(block *externalapi.FullBlock) error

	// VerifyKernelSums checks the Mimblewimble balance identity for this
	// block against a signed overage and the block's own per-block
	// kernel offset.
	VerifyKernelSums(block *externalapi.FullBlock, overage int64, kernelOffset *externalapi.BlindingFactor) error

	// IsBlockValid is the top-level entry point: optionally runs
	// VerifySelfConsistent, then verifies the kernel sums against the
	// previous block's total kernel offset.
	IsBlockValid(block *externalapi.FullBlock, prevKernelOffset *externalapi.BlindingFactor, validateSelfConsistent bool) error
}
