package blockvalidator

import (
	"errors"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/schnorr"

	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/processes/bodyvalidator"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/processes/commitmentalgebra"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/ruleerrors"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/utils/consensushashing"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/utils/constants"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/utils/rangeproof"
)

func newValidators() (model.CommitmentAlgebra, model.BlockValidator) {
	ca := commitmentalgebra.New(rangeproof.New())
	bv := bodyvalidator.New(ca)
	return ca, New(ca, bv)
}

func coinbaseOutput(t *testing.T, ca model.CommitmentAlgebra, blinding *externalapi.BlindingFactor, reward uint64) *externalapi.TransactionOutput {
	t.Helper()
	commitment := ca.Commit(reward, blinding)
	return &externalapi.TransactionOutput{
		Features:   externalapi.OutputFeatureCoinbase,
		Commitment: *commitment,
		RangeProof: rangeproof.Prove(commitment, reward),
	}
}

func coinbaseKernel(t *testing.T, blinding *externalapi.BlindingFactor, lockHeight uint64) *externalapi.TransactionKernel {
	t.Helper()

	var scalar secp256k1.ModNScalar
	scalar.SetByteSlice(blinding.ByteSlice())
	privKey := secp256k1.NewPrivateKey(&scalar)

	kernel := &externalapi.TransactionKernel{Features: externalapi.KernelFeatureCoinbase, LockHeight: lockHeight}
	copy(kernel.Excess[:], privKey.PubKey().SerializeCompressed())

	message := consensushashing.KernelSigningHash(kernel)
	sig, err := schnorr.Sign(privKey, message.ByteSlice())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	copy(kernel.ExcessSig[:], sig.Serialize())

	return kernel
}

// buildCoinbaseOnlyBlock constructs a block containing only a coinbase
// output and coinbase kernel, with a zero total kernel offset, so that
// both VerifySelfConsistent's coinbase check and IsBlockValid's full
// balance identity hold against a genesis-style predecessor.
func buildCoinbaseOnlyBlock(t *testing.T, ca model.CommitmentAlgebra, height uint64) *externalapi.FullBlock {
	t.Helper()

	var blinding externalapi.BlindingFactor
	blinding[31] = 7

	output := coinbaseOutput(t, ca, &blinding, constants.BaseReward)
	kernel := coinbaseKernel(t, &blinding, 0)

	header := &externalapi.BlockHeader{Height: height}
	body := &externalapi.TransactionBody{
		Outputs: []*externalapi.TransactionOutput{output},
		Kernels: []*externalapi.TransactionKernel{kernel},
	}
	return externalapi.NewFullBlock(header, body)
}

func TestVerifySelfConsistentAcceptsCoinbaseOnlyBlock(t *testing.T) {
	ca, bv := newValidators()
	block := buildCoinbaseOnlyBlock(t, ca, 1)

	if err := bv.VerifySelfConsistent(block); err != nil {
		t.Fatalf("expected valid block, got: %v", err)
	}
	if !block.IsValidated() {
		t.Fatalf("expected block to be marked validated")
	}
}

func TestVerifySelfConsistentIsIdempotent(t *testing.T) {
	ca, bv := newValidators()
	block := buildCoinbaseOnlyBlock(t, ca, 1)

	if err := bv.VerifySelfConsistent(block); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Corrupt the block's body after the first, successful pass. A
	// second call must short-circuit on the cache and not notice.
	block.Body.Kernels[0].Fee = 999

	if err := bv.VerifySelfConsistent(block); err != nil {
		t.Fatalf("expected cached validation to short-circuit, got: %v", err)
	}
}

func TestVerifySelfConsistentRejectsLockHeightAboveBlockHeight(t *testing.T) {
	ca, bv := newValidators()
	block := buildCoinbaseOnlyBlock(t, ca, 1)
	// The kernel is signed over its lock height of 100, so the body's
	// signature check passes and only the lock-height rule rejects it.
	block.Body.Kernels[0] = coinbaseKernel(t, &externalapi.BlindingFactor{31: 7}, 100)

	err := bv.VerifySelfConsistent(block)
	if !errors.Is(err, ruleerrors.ErrLockHeight) {
		t.Fatalf("expected ErrLockHeight, got: %v", err)
	}
}

func TestIsBlockValidAcceptsGenesisStyleCoinbaseBlock(t *testing.T) {
	ca, bv := newValidators()
	block := buildCoinbaseOnlyBlock(t, ca, 1)

	var prevOffset externalapi.BlindingFactor
	if err := bv.IsBlockValid(block, &prevOffset, true); err != nil {
		t.Fatalf("expected valid block, got: %v", err)
	}
}

func TestIsBlockValidRejectsTamperedReward(t *testing.T) {
	ca, bv := newValidators()
	block := buildCoinbaseOnlyBlock(t, ca, 1)
	block.Body.Outputs[0] = coinbaseOutput(t, ca, &externalapi.BlindingFactor{31: 7}, constants.BaseReward+1)

	var prevOffset externalapi.BlindingFactor
	err := bv.IsBlockValid(block, &prevOffset, false)
	if err == nil {
		t.Fatalf("expected an error")
	}
}

func TestVerifyKernelSumsDirect(t *testing.T) {
	ca, bv := newValidators()

	var blinding externalapi.BlindingFactor
	blinding[31] = 3
	commitment := ca.Commit(50, &blinding)

	block := externalapi.NewFullBlock(
		&externalapi.BlockHeader{Height: 1},
		&externalapi.TransactionBody{
			Outputs: []*externalapi.TransactionOutput{{
				Features:   externalapi.OutputFeaturePlain,
				Commitment: *commitment,
			}},
		},
	)

	err := bv.VerifyKernelSums(block, -50, &blinding)
	if err != nil {
		t.Fatalf("expected balanced equation to verify, got: %v", err)
	}

	err = bv.VerifyKernelSums(block, -49, &blinding)
	if !errors.Is(err, ruleerrors.ErrKernelSumMismatch) {
		t.Fatalf("expected ErrKernelSumMismatch for wrong overage, got: %v", err)
	}
}
