package blockvalidator

import (
	"github.com/pkg/errors"

	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/ruleerrors"
)

// VerifyKernelSums checks the Mimblewimble balance identity:
//
//	sum(outputs) == sum(inputs) + sum(kernel excesses) + kernelOffset*G - overage*H
//
// overage is signed: negative when the block is a net source of new
// value (the block reward), positive when it is a net sink.
func (v *blockValidator) VerifyKernelSums(block *externalapi.FullBlock, overage int64, kernelOffset *externalapi.BlindingFactor) error {
	outputSum, err := v.commitmentAlgebra.AddCommitments(block.Body.OutputCommitments(), nil)
	if err != nil {
		return errors.Wrapf(ruleerrors.Wrap(ruleerrors.ErrCryptoFailure, err), "failed to sum outputs")
	}

	// The right-hand side is accumulated into a single positive/negative
	// pair and summed once, rather than folding kernel excesses into
	// their own intermediate commitment first: an intermediate sum over
	// zero kernels (a kernel-less block) is the point at infinity and
	// has no compressed encoding of its own, even though it is a
	// perfectly valid term to carry into the final sum below.
	rhsPositive := append([]externalapi.Commitment{}, block.Body.InputCommitments()...)
	var rhsNegative []externalapi.Commitment

	for _, kernel := range block.Body.Kernels {
		rhsPositive = append(rhsPositive, kernel.Excess)
	}

	// A zero kernel offset contributes the identity element, 0*G,
	// which is the point at infinity and has no finite compressed
	// encoding; omitting it from the sum when it is zero is
	// mathematically equivalent to including it.
	if !kernelOffset.IsZero() {
		offsetCommitment := v.commitmentAlgebra.Commit(0, kernelOffset)
		rhsPositive = append(rhsPositive, *offsetCommitment)
	}

	// rhs must equal inputs + kernelSum + offset*G - overage*H: a
	// negative overage (the block is a net source of value, as with
	// the block reward) subtracts from the right-hand side, which is
	// the same as adding its absolute value to the left-hand side's
	// sign, i.e. contributing +|overage|*H to rhsPositive.
	if overage < 0 {
		rhsPositive = append(rhsPositive, *v.commitmentAlgebra.CommitTransparent(uint64(-overage)))
	} else if overage > 0 {
		rhsNegative = append(rhsNegative, *v.commitmentAlgebra.CommitTransparent(uint64(overage)))
	}

	rhs, err := v.commitmentAlgebra.AddCommitments(rhsPositive, rhsNegative)
	if err != nil {
		return errors.Wrapf(ruleerrors.Wrap(ruleerrors.ErrCryptoFailure, err), "failed to sum balance equation right-hand side")
	}

	if !outputSum.Equal(rhs) {
		return errors.Wrapf(ruleerrors.ErrKernelSumMismatch,
			"output sum %s does not balance against inputs, kernel excesses, offset, and overage %d", outputSum, overage)
	}
	return nil
}
