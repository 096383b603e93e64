package model

import "github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"

// RangeProofVerifier is the collaborator CommitmentAlgebra delegates
// range proof verification to. It is factored out as its own interface
// because a real range proof backend (bulletproofs) is a substantial
// piece of machinery in its own right, independent of the curve
// arithmetic the rest of CommitmentAlgebra performs.
type RangeProofVerifier interface {
	Verify(commitment *externalapi.Commitment, proof []byte) (bool, error)
}
