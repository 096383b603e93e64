package externalapi

import "sync/atomic"

// BlockHeader carries the fields that identify a block's place in the
// chain and the running accumulator state up to and including it.
type BlockHeader struct {
	Height            uint64
	PreviousHash      DomainHash
	TotalDifficulty   uint64
	TotalKernelOffset BlindingFactor
	OutputRoot        DomainHash
	RangeProofRoot    DomainHash
	KernelRoot        DomainHash
}

var _ = BlockHeader{0, DomainHash{}, 0, BlindingFactor{}, DomainHash{}, DomainHash{}, DomainHash{}}

// Clone returns a clone of this BlockHeader.
func (header *BlockHeader) Clone() *BlockHeader {
	if header == nil {
		return nil
	}
	clone := *header
	return &clone
}

// Equal returns whether header equals to other.
func (header *BlockHeader) Equal(other *BlockHeader) bool {
	if header == nil || other == nil {
		return header == other
	}
	return *header == *other
}

// FullBlock is a header plus its aggregated transaction body. validated
// is a monotonic, write-once-on-success cache of a prior call to
// VerifySelfConsistent: it is mutated through a shared reference even
// though the rest of the block is immutable after construction.
type FullBlock struct {
	Header *BlockHeader
	Body   *TransactionBody

	validated atomic.Bool
}

// NewFullBlock constructs a FullBlock that has not yet been validated.
func NewFullBlock(header *BlockHeader, body *TransactionBody) *FullBlock {
	return &FullBlock{Header: header, Body: body}
}

// IsValidated returns whether this block has already passed a full
// self-consistency check. A false result may be a false negative under
// concurrent access, but a true result is never a false positive.
func (block *FullBlock) IsValidated() bool {
	return block.validated.Load()
}

// MarkValidated marks this block as having passed a full
// self-consistency check. It is idempotent and safe to call from
// multiple goroutines.
func (block *FullBlock) MarkValidated() {
	block.validated.Store(true)
}

// Clone returns a clone of this FullBlock. The validated flag is not
// copied: clones start out unvalidated, since they are logically
// distinct shared references.
func (block *FullBlock) Clone() *FullBlock {
	if block == nil {
		return nil
	}
	return NewFullBlock(block.Header.Clone(), block.Body.Clone())
}

// Equal returns whether block equals to other, ignoring validation state.
func (block *FullBlock) Equal(other *FullBlock) bool {
	if block == nil || other == nil {
		return block == other
	}
	return block.Header.Equal(other.Header) && block.Body.Equal(other.Body)
}
