package bodyvalidator

import (
	"errors"
	"testing"

	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/processes/commitmentalgebra"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/ruleerrors"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/utils/consensushashing"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/utils/rangeproof"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/schnorr"
)

func plainOutput(t *testing.T, ca interface {
	CommitTransparent(uint64) *externalapi.Commitment
}, value uint64, tag byte) *externalapi.TransactionOutput {
	t.Helper()

	commitment := ca.CommitTransparent(value)
	commitment[32] ^= tag // perturb while keeping it a recognizable test fixture

	return &externalapi.TransactionOutput{
		Features:   externalapi.OutputFeaturePlain,
		Commitment: *commitment,
		RangeProof: rangeproof.Prove(commitment, value),
	}
}

func signedKernel(t *testing.T, fee uint64) *externalapi.TransactionKernel {
	t.Helper()

	privKey, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kernel := &externalapi.TransactionKernel{
		Features:   externalapi.KernelFeaturePlain,
		Fee:        fee,
		LockHeight: 0,
	}
	copy(kernel.Excess[:], privKey.PubKey().SerializeCompressed())

	message := consensushashing.KernelSigningHash(kernel)
	sig, err := schnorr.Sign(privKey, message.ByteSlice())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	copy(kernel.ExcessSig[:], sig.Serialize())

	return kernel
}

func TestValidateAcceptsWellFormedBody(t *testing.T) {
	ca := commitmentalgebra.New(rangeproof.New())
	v := New(ca)

	output := plainOutput(t, ca, 10, 0)
	kernel := signedKernel(t, 1)

	body := &externalapi.TransactionBody{
		Outputs: []*externalapi.TransactionOutput{output},
		Kernels: []*externalapi.TransactionKernel{kernel},
	}

	if err := v.Validate(body, true); err != nil {
		t.Fatalf("expected valid body to pass, got: %v", err)
	}
}

func TestValidateRejectsExcessWeight(t *testing.T) {
	ca := commitmentalgebra.New(rangeproof.New())
	v := New(ca)

	body := &externalapi.TransactionBody{
		Outputs: make([]*externalapi.TransactionOutput, 2000),
	}
	for i := range body.Outputs {
		body.Outputs[i] = plainOutput(t, ca, uint64(i+1), 0)
	}

	err := v.Validate(body, true)
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !errors.Is(err, ruleerrors.ErrWeightTooHigh) {
		t.Fatalf("expected ErrWeightTooHigh, got: %v", err)
	}
}

func TestValidateRejectsUnsortedOutputs(t *testing.T) {
	ca := commitmentalgebra.New(rangeproof.New())
	v := New(ca)

	a := plainOutput(t, ca, 1, 0)
	b := plainOutput(t, ca, 2, 0)

	body := &externalapi.TransactionBody{
		Outputs: []*externalapi.TransactionOutput{b, a},
	}
	if bodyOutputsAreSorted(body) {
		body.Outputs[0], body.Outputs[1] = body.Outputs[1], body.Outputs[0]
	}

	err := v.Validate(body, true)
	if err == nil {
		t.Fatalf("expected an error")
	}
}

func bodyOutputsAreSorted(body *externalapi.TransactionBody) bool {
	for i := 1; i < len(body.Outputs); i++ {
		if string(body.Outputs[i-1].Commitment.ByteSlice()) >= string(body.Outputs[i].Commitment.ByteSlice()) {
			return false
		}
	}
	return true
}

func TestValidateRejectsCutThrough(t *testing.T) {
	ca := commitmentalgebra.New(rangeproof.New())
	v := New(ca)

	output := plainOutput(t, ca, 5, 0)
	input := &externalapi.TransactionInput{
		Features:   externalapi.InputFeaturePlain,
		Commitment: output.Commitment,
	}

	body := &externalapi.TransactionBody{
		Inputs:  []*externalapi.TransactionInput{input},
		Outputs: []*externalapi.TransactionOutput{output},
	}

	err := v.Validate(body, true)
	if !errors.Is(err, ruleerrors.ErrCutThrough) {
		t.Fatalf("expected ErrCutThrough, got: %v", err)
	}
}

func TestValidateRejectsBadKernelSignature(t *testing.T) {
	ca := commitmentalgebra.New(rangeproof.New())
	v := New(ca)

	kernel := signedKernel(t, 1)
	kernel.Fee = 2 // mutate the signed message after signing

	body := &externalapi.TransactionBody{
		Kernels: []*externalapi.TransactionKernel{kernel},
	}

	err := v.Validate(body, true)
	if !errors.Is(err, ruleerrors.ErrInvalidKernelSig) {
		t.Fatalf("expected ErrInvalidKernelSig, got: %v", err)
	}
}
