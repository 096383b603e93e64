package commitmentalgebra

import (
	"encoding/binary"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/schnorr"
	"github.com/pkg/errors"

	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"
)

// commitmentAlgebra implements model.CommitmentAlgebra over
// github.com/decred/dcrd/dcrec/secp256k1/v4.
type commitmentAlgebra struct {
	rangeProofVerifier model.RangeProofVerifier
}

// New instantiates a new CommitmentAlgebra.
func New(rangeProofVerifier model.RangeProofVerifier) model.CommitmentAlgebra {
	return &commitmentAlgebra{rangeProofVerifier: rangeProofVerifier}
}

// AddCommitments returns the commitment equal to sum(positive) -
// sum(negative) on the curve. An empty pair of inputs, or inputs that
// cancel out exactly, sum to the point at infinity; since the point at
// infinity has no compressed encoding, that case is reported as an
// error rather than silently serialized as a bogus fixed commitment.
func (ca *commitmentAlgebra) AddCommitments(positive, negative []externalapi.Commitment) (*externalapi.Commitment, error) {
	var sum secp256k1.JacobianPoint
	sum.X.SetInt(0)
	sum.Y.SetInt(0)
	sum.Z.SetInt(0)

	for _, c := range positive {
		point, err := commitmentToJacobian(&c)
		if err != nil {
			return nil, err
		}
		var next secp256k1.JacobianPoint
		secp256k1.AddNonConst(&sum, point, &next)
		sum = next
	}

	for _, c := range negative {
		point, err := commitmentToJacobian(&c)
		if err != nil {
			return nil, err
		}
		negated := negateJacobian(point)
		var next secp256k1.JacobianPoint
		secp256k1.AddNonConst(&sum, &negated, &next)
		sum = next
	}

	return jacobianToCommitment(&sum)
}

// Commit returns the Pedersen commitment blindingFactor*G + value*H.
func (ca *commitmentAlgebra) Commit(value uint64, blindingFactor *externalapi.BlindingFactor) *externalapi.Commitment {
	rScalar := scalarFromBlindingFactor(blindingFactor)
	var rG secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&rScalar, &rG)

	vScalar := scalarFromUint64(value)
	var hJacobian secp256k1.JacobianPoint
	hGenerator.AsJacobian(&hJacobian)
	var vH secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&vScalar, &hJacobian, &vH)

	var sum secp256k1.JacobianPoint
	secp256k1.AddNonConst(&rG, &vH, &sum)

	// Commit is only ever called with a caller-chosen value and
	// blinding factor, never with both simultaneously zero by
	// construction of its callers, so the result is never the point
	// at infinity; the error return of jacobianToCommitment cannot
	// trigger here.
	commitment, _ := jacobianToCommitment(&sum)
	return commitment
}

// CommitTransparent returns the commitment v*H, i.e. a commitment with
// a zero blinding factor.
func (ca *commitmentAlgebra) CommitTransparent(value uint64) *externalapi.Commitment {
	var zero externalapi.BlindingFactor
	return ca.Commit(value, &zero)
}

// AddBlindingFactors returns sum(positive) - sum(negative), reduced
// modulo the curve order.
func (ca *commitmentAlgebra) AddBlindingFactors(positive, negative []externalapi.BlindingFactor) *externalapi.BlindingFactor {
	var sum secp256k1.ModNScalar

	for _, bf := range positive {
		scalar := scalarFromBlindingFactor(&bf)
		sum.Add(&scalar)
	}

	for _, bf := range negative {
		scalar := scalarFromBlindingFactor(&bf)
		scalar.Negate()
		sum.Add(&scalar)
	}

	bytes := sum.Bytes()
	result, _ := externalapi.NewBlindingFactorFromByteSlice(bytes[:])
	return result
}

// VerifySchnorr verifies a Schnorr signature over message by the
// private key corresponding to pubKey, treating pubKey as an ordinary
// secp256k1 public key (a kernel's excess commitment, viewed as a
// public key once its blinding-factor-as-value-zero interpretation is
// taken).
func (ca *commitmentAlgebra) VerifySchnorr(sig *externalapi.Signature, pubKey *externalapi.Commitment, message []byte) (bool, error) {
	parsedPubKey, err := secp256k1.ParsePubKey(pubKey[:])
	if err != nil {
		return false, errors.Wrap(err, "pubkey is not a valid curve point")
	}

	parsedSig, err := schnorr.ParseSignature(sig[:])
	if err != nil {
		return false, errors.Wrap(err, "malformed schnorr signature")
	}

	return parsedSig.Verify(message, parsedPubKey), nil
}

// VerifyRangeProof verifies that proof binds to commitment, delegating
// to the injected range-proof backend.
func (ca *commitmentAlgebra) VerifyRangeProof(commitment *externalapi.Commitment, proof []byte) (bool, error) {
	return ca.rangeProofVerifier.Verify(commitment, proof)
}

func commitmentToJacobian(c *externalapi.Commitment) (*secp256k1.JacobianPoint, error) {
	pubKey, err := secp256k1.ParsePubKey(c[:])
	if err != nil {
		return nil, errors.Wrap(err, "commitment is not a valid curve point")
	}
	var point secp256k1.JacobianPoint
	pubKey.AsJacobian(&point)
	return &point, nil
}

// jacobianToCommitment serializes point as a compressed commitment.
// point at infinity (Z == 0) has no point on the curve to serialize:
// ToAffine's zero-inverse convention would otherwise silently map it
// to the fixed, bogus coordinates (0,0), so that case is rejected here
// rather than passed through.
func jacobianToCommitment(point *secp256k1.JacobianPoint) (*externalapi.Commitment, error) {
	if point.Z.IsZero() {
		return nil, errors.New("cannot serialize the point at infinity as a commitment")
	}

	affine := *point
	affine.ToAffine()
	pubKey := secp256k1.NewPublicKey(&affine.X, &affine.Y)
	commitment, err := externalapi.NewCommitmentFromByteSlice(pubKey.SerializeCompressed())
	if err != nil {
		return nil, errors.Wrap(err, "failed to construct commitment from curve point")
	}
	return commitment, nil
}

func negateJacobian(point *secp256k1.JacobianPoint) secp256k1.JacobianPoint {
	negated := *point
	negated.Y.Negate(1).Normalize()
	return negated
}

func scalarFromUint64(v uint64) secp256k1.ModNScalar {
	var buf [32]byte
	binary.BigEndian.PutUint64(buf[24:], v)
	var scalar secp256k1.ModNScalar
	scalar.SetByteSlice(buf[:])
	return scalar
}

func scalarFromBlindingFactor(bf *externalapi.BlindingFactor) secp256k1.ModNScalar {
	var scalar secp256k1.ModNScalar
	scalar.SetByteSlice(bf[:])
	return scalar
}
