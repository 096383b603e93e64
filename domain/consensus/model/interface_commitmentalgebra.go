package model

import "github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"

// CommitmentAlgebra exposes the Pedersen commitment and blinding-factor
// arithmetic the rest of the core is built on.
type CommitmentAlgebra interface {
	AddCommitments(positive, negative []externalapi.Commitment) (*externalapi.Commitment, error)
	Commit(value uint64, blindingFactor *externalapi.BlindingFactor) *externalapi.Commitment
	CommitTransparent(value uint64) *externalapi.Commitment
	AddBlindingFactors(positive, negative []externalapi.BlindingFactor) *externalapi.BlindingFactor
	VerifySchnorr(sig *externalapi.Signature, pubKey *externalapi.Commitment, message []byte) (bool, error)
	VerifyRangeProof(commitment *externalapi.Commitment, proof []byte) (bool, error)
}
