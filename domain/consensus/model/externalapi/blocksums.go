package externalapi

// BlockSums is the full chain's running output and kernel commitment
// sums up to and including a given block.
type BlockSums struct {
	OutputSum Commitment
	KernelSum Commitment
}

var _ = BlockSums{Commitment{}, Commitment{}}

// Clone returns a clone of this BlockSums.
func (sums *BlockSums) Clone() *BlockSums {
	if sums == nil {
		return nil
	}
	clone := *sums
	return &clone
}

// Equal returns whether sums equals to other.
func (sums *BlockSums) Equal(other *BlockSums) bool {
	if sums == nil || other == nil {
		return sums == other
	}
	return *sums == *other
}
