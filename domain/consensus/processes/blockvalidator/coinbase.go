package blockvalidator

import (
	"github.com/pkg/errors"

	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/ruleerrors"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/utils/constants"
)

// checkCoinbase verifies the sum of coinbase-marked outputs matches
// the sum of coinbase-marked kernel excesses, accounting for the base
// reward and every kernel's fee. This is an isolated soundness check
// of the coinbase subset alone; it does not involve the block's
// non-coinbase inputs or outputs, nor the previous chain state.
func (v *blockValidator) checkCoinbase(block *externalapi.FullBlock) error {
	var coinbaseOutputs []externalapi.Commitment
	for _, output := range block.Body.Outputs {
		if output.Features.IsCoinbase() {
			coinbaseOutputs = append(coinbaseOutputs, output.Commitment)
		}
	}

	var coinbaseKernels []externalapi.Commitment
	var reward uint64 = constants.BaseReward
	for _, kernel := range block.Body.Kernels {
		// Every kernel's fee is credited toward the reward the
		// coinbase output set must sum to, not only coinbase-marked
		// kernels': fees are paid by ordinary transactions and
		// collected by the block's single coinbase output.
		reward += kernel.Fee
		if kernel.Features.IsCoinbase() {
			coinbaseKernels = append(coinbaseKernels, kernel.Excess)
		}
	}

	rewardCommitment := v.commitmentAlgebra.CommitTransparent(reward)

	outputAdjustedSum, err := v.commitmentAlgebra.AddCommitments(coinbaseOutputs, []externalapi.Commitment{*rewardCommitment})
	if err != nil {
		return errors.Wrapf(ruleerrors.Wrap(ruleerrors.ErrCryptoFailure, err), "failed to sum coinbase outputs")
	}

	// A block with no coinbase-marked kernel at all sums to the point
	// at infinity here, which AddCommitments reports as an error
	// rather than a degenerate commitment; a positive reward can never
	// legitimately be claimed without one, so the block is rejected,
	// with the error reported as ErrCryptoFailure rather than
	// ErrCoinbaseSum.
	kernelSum, err := v.commitmentAlgebra.AddCommitments(coinbaseKernels, nil)
	if err != nil {
		return errors.Wrapf(ruleerrors.Wrap(ruleerrors.ErrCryptoFailure, err), "failed to sum coinbase kernel excesses")
	}

	if !kernelSum.Equal(outputAdjustedSum) {
		return errors.Wrapf(ruleerrors.ErrCoinbaseSum,
			"coinbase kernel excess sum %s does not match reward-adjusted coinbase output sum %s",
			kernelSum, outputAdjustedSum)
	}
	return nil
}
