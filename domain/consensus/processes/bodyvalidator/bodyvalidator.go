// Package bodyvalidator implements the checks a transaction body must
// pass independent of any chain state: weight, sortedness, cut-through,
// and the cryptographic checks on every output and kernel.
package bodyvalidator

import (
	"bytes"
	"runtime"
	"sync"

	"github.com/pkg/errors"

	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/ruleerrors"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/utils/consensushashing"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/utils/constants"
)

type bodyValidator struct {
	commitmentAlgebra model.CommitmentAlgebra
}

// New instantiates a new TransactionBodyValidator.
func New(commitmentAlgebra model.CommitmentAlgebra) model.TransactionBodyValidator {
	return &bodyValidator{commitmentAlgebra: commitmentAlgebra}
}

// Validate runs every self-contained check against body. withCutThrough
// controls whether the cut-through invariant is enforced: it does not
// hold for an unaggregated single transaction whose own inputs and
// outputs are permitted to reference distinct commitments that happen
// to coincide with another transaction's, but it must hold for an
// aggregated block body, where cut-through is exactly what removed the
// matching pairs.
func (v *bodyValidator) Validate(body *externalapi.TransactionBody, withCutThrough bool) error {
	if err := v.checkWeight(body); err != nil {
		return err
	}

	if err := v.checkSorted(body); err != nil {
		return err
	}

	if withCutThrough {
		if err := v.checkCutThrough(body); err != nil {
			return err
		}
	}

	if err := v.checkRangeProofs(body); err != nil {
		return err
	}

	if err := v.checkKernelSignatures(body); err != nil {
		return err
	}

	return nil
}

func (v *bodyValidator) checkWeight(body *externalapi.TransactionBody) error {
	weight := constants.InputWeight*uint64(len(body.Inputs)) +
		constants.OutputWeight*uint64(len(body.Outputs)) +
		constants.KernelWeight*uint64(len(body.Kernels))

	if weight > constants.MaxBlockWeight {
		return errors.Wrapf(ruleerrors.ErrWeightTooHigh, "body weight %d exceeds maximum %d",
			weight, constants.MaxBlockWeight)
	}
	return nil
}

func (v *bodyValidator) checkSorted(body *externalapi.TransactionBody) error {
	for i := 1; i < len(body.Inputs); i++ {
		if bytes.Compare(body.Inputs[i-1].Commitment.ByteSlice(), body.Inputs[i].Commitment.ByteSlice()) >= 0 {
			return errors.Wrapf(ruleerrors.ErrNotSorted, "inputs are not strictly sorted at index %d", i)
		}
	}
	for i := 1; i < len(body.Outputs); i++ {
		if bytes.Compare(body.Outputs[i-1].Commitment.ByteSlice(), body.Outputs[i].Commitment.ByteSlice()) >= 0 {
			return errors.Wrapf(ruleerrors.ErrNotSorted, "outputs are not strictly sorted at index %d", i)
		}
	}
	for i := 1; i < len(body.Kernels); i++ {
		if bytes.Compare(body.Kernels[i-1].Excess.ByteSlice(), body.Kernels[i].Excess.ByteSlice()) >= 0 {
			return errors.Wrapf(ruleerrors.ErrNotSorted, "kernels are not strictly sorted at index %d", i)
		}
	}
	return nil
}

func (v *bodyValidator) checkCutThrough(body *externalapi.TransactionBody) error {
	outputCommitments := make(map[externalapi.Commitment]struct{}, len(body.Outputs))
	for _, output := range body.Outputs {
		outputCommitments[output.Commitment] = struct{}{}
	}

	for _, input := range body.Inputs {
		if _, exists := outputCommitments[input.Commitment]; exists {
			return errors.Wrapf(ruleerrors.ErrCutThrough,
				"input commitment %s also appears among this body's outputs", input.Commitment)
		}
	}
	return nil
}

func (v *bodyValidator) checkRangeProofs(body *externalapi.TransactionBody) error {
	return runBatched(len(body.Outputs), func(i int) error {
		output := body.Outputs[i]
		ok, err := v.commitmentAlgebra.VerifyRangeProof(&output.Commitment, output.RangeProof)
		if err != nil {
			return errors.Wrapf(ruleerrors.Wrap(ruleerrors.ErrCryptoFailure, err),
				"range proof verification errored for output %d", i)
		}
		if !ok {
			return errors.Wrapf(ruleerrors.ErrInvalidRangeProof, "range proof invalid for output %d", i)
		}
		return nil
	})
}

func (v *bodyValidator) checkKernelSignatures(body *externalapi.TransactionBody) error {
	return runBatched(len(body.Kernels), func(i int) error {
		kernel := body.Kernels[i]
		message := consensushashing.KernelSigningHash(kernel)
		ok, err := v.commitmentAlgebra.VerifySchnorr(&kernel.ExcessSig, &kernel.Excess, message.ByteSlice())
		if err != nil {
			return errors.Wrapf(ruleerrors.Wrap(ruleerrors.ErrCryptoFailure, err),
				"kernel signature verification errored for kernel %d", i)
		}
		if !ok {
			return errors.Wrapf(ruleerrors.ErrInvalidKernelSig, "kernel signature invalid for kernel %d", i)
		}
		return nil
	})
}

// runBatched fans check out across GOMAXPROCS workers and returns the
// first error encountered, by index order, once every worker has
// finished. There is no early cancellation: every item is checked
// even after a failure is found, since range proof and signature
// verification have no side effects worth short-circuiting and a
// fixed-size worker pool keeps the fan-out bounded regardless of body
// size.
func runBatched(count int, check func(i int) error) error {
	if count == 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > count {
		workers = count
	}

	errs := make([]error, count)
	nextIndex := 0
	var wg sync.WaitGroup
	var mu sync.Mutex

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				mu.Lock()
				i := nextIndex
				if i >= count {
					mu.Unlock()
					return
				}
				nextIndex++
				mu.Unlock()

				errs[i] = check(i)
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
