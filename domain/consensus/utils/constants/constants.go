package constants

// BaseReward is the fixed per-block coinbase amount, in nanounits.
// Bit-exact with Grin mainnet's 60 grin block reward
// (60 * 1_000_000_000 nanogrin), per spec.md §6 and
// original_source's Consensus::REWARD.
const BaseReward uint64 = 60_000_000_000

// Weight multipliers for MAX_BLOCK_WEIGHT accounting, per spec.md
// §4.2 step 1: weight = InputWeight*inputs + OutputWeight*outputs +
// KernelWeight*kernels. These are Grin's real consensus constants.
const (
	InputWeight  uint64 = 1
	OutputWeight uint64 = 21
	KernelWeight uint64 = 3
)

// MaxBlockWeight is the maximum weight, computed per the multipliers
// above, a transaction body may carry.
const MaxBlockWeight uint64 = 40_000
