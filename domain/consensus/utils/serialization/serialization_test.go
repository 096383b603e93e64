package serialization

import (
	"bytes"
	"testing"

	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"
)

func sampleBody() *externalapi.TransactionBody {
	var commitment externalapi.Commitment
	commitment[0] = 0x08
	var sig externalapi.Signature
	sig[0] = 0xAB

	return &externalapi.TransactionBody{
		Inputs: []*externalapi.TransactionInput{
			{Features: externalapi.InputFeaturePlain, Commitment: commitment},
		},
		Outputs: []*externalapi.TransactionOutput{
			{Features: externalapi.OutputFeaturePlain, Commitment: commitment, RangeProof: []byte{1, 2, 3}},
		},
		Kernels: []*externalapi.TransactionKernel{
			{Features: externalapi.KernelFeaturePlain, Fee: 100, LockHeight: 0, Excess: commitment, ExcessSig: sig},
		},
	}
}

func TestTransactionBodyRoundTrip(t *testing.T) {
	body := sampleBody()

	var buf bytes.Buffer
	if err := SerializeTransactionBody(&buf, body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := DeserializeTransactionBody(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !decoded.Equal(body) {
		t.Fatalf("round trip mismatch:\ngot:  %+v\nwant: %+v", decoded, body)
	}
}

func TestBlockHeaderRoundTrip(t *testing.T) {
	header := &externalapi.BlockHeader{
		Height:          5,
		TotalDifficulty: 1000,
	}
	header.PreviousHash[0] = 1
	header.OutputRoot[0] = 2
	header.RangeProofRoot[0] = 3
	header.KernelRoot[0] = 4

	var buf bytes.Buffer
	if err := SerializeBlockHeader(&buf, header); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := DeserializeBlockHeader(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !decoded.Equal(header) {
		t.Fatalf("round trip mismatch:\ngot:  %+v\nwant: %+v", decoded, header)
	}
}

func TestFullBlockRoundTripStartsUnvalidated(t *testing.T) {
	block := externalapi.NewFullBlock(&externalapi.BlockHeader{Height: 1}, sampleBody())
	block.MarkValidated()

	var buf bytes.Buffer
	if err := SerializeFullBlock(&buf, block); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := DeserializeFullBlock(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !decoded.Equal(block) {
		t.Fatalf("round trip mismatch")
	}
	if decoded.IsValidated() {
		t.Fatalf("expected deserialized block to start unvalidated")
	}
}
