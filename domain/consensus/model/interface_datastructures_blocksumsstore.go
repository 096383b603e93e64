package model

import "github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"

// BlockSumsStore is the contract the core requires of the TxHashSet/MMR
// accumulator collaborator: read-only access to the prior chain state a
// validation call needs, plus a write path for committing the result of
// a successful validation. It carries no ordering or transactional
// guarantee beyond: the sums returned for a block hash are the sums
// accumulated up to and including that block.
type BlockSumsStore interface {
	GetBlockSums(blockHash *externalapi.DomainHash) (*externalapi.BlockSums, error)
	GetTotalKernelOffset(blockHash *externalapi.DomainHash) (*externalapi.BlindingFactor, error)
	PutBlockSums(blockHash *externalapi.DomainHash, sums *externalapi.BlockSums) error
}
