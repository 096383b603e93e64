// Package blockvalidator implements the checks that determine whether
// a FullBlock is admissible: self-consistency (the transaction body,
// lock heights, and coinbase soundness) and the Mimblewimble balance
// identity against the chain state accumulated up to the block's
// predecessor.
package blockvalidator

import (
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/utils/constants"
	"github.com/gn0uchat/GrinPlusPlus/infrastructure/logger"
)

var log = logger.RegisterSubSystem("VALD")

type blockValidator struct {
	commitmentAlgebra model.CommitmentAlgebra
	bodyValidator     model.TransactionBodyValidator
}

// New instantiates a new BlockValidator.
func New(commitmentAlgebra model.CommitmentAlgebra, bodyValidator model.TransactionBodyValidator) model.BlockValidator {
	return &blockValidator{
		commitmentAlgebra: commitmentAlgebra,
		bodyValidator:     bodyValidator,
	}
}

// VerifySelfConsistent runs every check that depends only on the block
// itself. It is idempotent: a block that has already passed this check
// once is accepted without repeating the work.
func (v *blockValidator) VerifySelfConsistent(block *externalapi.FullBlock) error {
	if block.IsValidated() {
		return nil
	}

	onEnd := logger.LogAndMeasureExecutionTime(log, "VerifySelfConsistent")
	defer onEnd()

	if err := v.bodyValidator.Validate(block.Body, true); err != nil {
		return err
	}

	if err := v.checkKernelLockHeights(block); err != nil {
		return err
	}

	if err := v.checkCoinbase(block); err != nil {
		return err
	}

	block.MarkValidated()
	return nil
}

// IsBlockValid is the top-level entry point. It optionally runs
// VerifySelfConsistent, then computes this block's own per-block
// kernel offset as the difference between its cumulative total offset
// and its predecessor's, and verifies the balance identity against
// that per-block offset with overage fixed at the negative of the
// base reward.
//
// The per-block offset is computed unconditionally, by subtracting
// prevKernelOffset from the block's TotalKernelOffset regardless of
// whether the two happen to be equal; a block whose miner contributed
// no new kernel offset of its own has a per-block offset of zero, and
// computing it unconditionally still produces that zero correctly.
func (v *blockValidator) IsBlockValid(block *externalapi.FullBlock, prevKernelOffset *externalapi.BlindingFactor, validateSelfConsistent bool) error {
	if validateSelfConsistent {
		if err := v.VerifySelfConsistent(block); err != nil {
			return err
		}
	}

	blockKernelOffset := v.commitmentAlgebra.AddBlindingFactors(
		[]externalapi.BlindingFactor{block.Header.TotalKernelOffset},
		[]externalapi.BlindingFactor{*prevKernelOffset},
	)

	overage := -int64(constants.BaseReward)

	return v.VerifyKernelSums(block, overage, blockKernelOffset)
}
