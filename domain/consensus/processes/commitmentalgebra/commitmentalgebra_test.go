package commitmentalgebra

import (
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/schnorr"

	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/utils/rangeproof"
)

func commitFromScalar(t *testing.T, r [32]byte, value uint64) externalapi.Commitment {
	t.Helper()

	var rScalar secp256k1.ModNScalar
	rScalar.SetByteSlice(r[:])

	var rG secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&rScalar, &rG)

	ca := &commitmentAlgebra{}
	vH := ca.CommitTransparent(value)
	vHPoint, err := commitmentToJacobian(vH)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sum secp256k1.JacobianPoint
	secp256k1.AddNonConst(&rG, vHPoint, &sum)

	commitment, err := jacobianToCommitment(&sum)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return *commitment
}

func TestAddCommitmentsBalances(t *testing.T) {
	ca := New(rangeproof.New())

	r1 := [32]byte{1}
	r2 := [32]byte{2}

	input := commitFromScalar(t, r1, 100)
	output := commitFromScalar(t, r2, 100)

	// input - output should equal (r1 - r2)*G, a commitment to value 0
	// under blinding factor r1-r2.
	diff, err := ca.AddCommitments([]externalapi.Commitment{input}, []externalapi.Commitment{output})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var s1, s2 secp256k1.ModNScalar
	s1.SetByteSlice(r1[:])
	s2.SetByteSlice(r2[:])
	s2.Negate()
	s1.Add(&s2)

	var expectedPoint secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&s1, &expectedPoint)
	expected, err := jacobianToCommitment(&expectedPoint)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !diff.Equal(expected) {
		t.Fatalf("commitment mismatch:\ngot:  %s\nwant: %s", diff, expected)
	}
}

func TestAddCommitmentsRejectsIdentity(t *testing.T) {
	ca := New(rangeproof.New())

	if _, err := ca.AddCommitments(nil, nil); err == nil {
		t.Fatalf("expected an error summing no commitments at all")
	}

	c := ca.CommitTransparent(9)
	if _, err := ca.AddCommitments([]externalapi.Commitment{*c}, []externalapi.Commitment{*c}); err == nil {
		t.Fatalf("expected an error for a commitment cancelled by its own negation")
	}
}

func TestCommitTransparentIsDeterministic(t *testing.T) {
	ca := New(rangeproof.New())

	a := ca.CommitTransparent(42)
	b := ca.CommitTransparent(42)
	if !a.Equal(b) {
		t.Fatalf("expected deterministic commitment, got %s and %s", a, b)
	}

	c := ca.CommitTransparent(43)
	if a.Equal(c) {
		t.Fatalf("expected distinct commitments for distinct values")
	}
}

func TestAddBlindingFactorsLinear(t *testing.T) {
	ca := New(rangeproof.New())

	a, _ := externalapi.NewBlindingFactorFromByteSlice(make([]byte, 32))
	a[31] = 10
	b, _ := externalapi.NewBlindingFactorFromByteSlice(make([]byte, 32))
	b[31] = 3

	sum := ca.AddBlindingFactors([]externalapi.BlindingFactor{*a}, nil)
	sum = ca.AddBlindingFactors([]externalapi.BlindingFactor{*sum}, []externalapi.BlindingFactor{*b})

	expected, _ := externalapi.NewBlindingFactorFromByteSlice(make([]byte, 32))
	expected[31] = 7

	if !sum.Equal(expected) {
		t.Fatalf("expected %s, got %s", expected, sum)
	}
}

func TestVerifySchnorrRoundTrip(t *testing.T) {
	ca := New(rangeproof.New())

	privKey, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	message := [32]byte{1, 2, 3}
	sig, err := schnorr.Sign(privKey, message[:])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sigBytes externalapi.Signature
	copy(sigBytes[:], sig.Serialize())

	var pubKeyBytes externalapi.Commitment
	copy(pubKeyBytes[:], privKey.PubKey().SerializeCompressed())

	ok, err := ca.VerifySchnorr(&sigBytes, &pubKeyBytes, message[:])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected signature to verify")
	}

	tamperedMessage := [32]byte{1, 2, 4}
	ok, err = ca.VerifySchnorr(&sigBytes, &pubKeyBytes, tamperedMessage[:])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected tampered message to fail verification")
	}
}

func TestVerifyRangeProofDelegates(t *testing.T) {
	ca := New(rangeproof.New())

	commitment := ca.CommitTransparent(7)
	proof := rangeproof.Prove(commitment, 7)

	ok, err := ca.VerifyRangeProof(commitment, proof)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected proof to verify")
	}

	_, err = ca.VerifyRangeProof(commitment, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
