package ruleerrors

import "github.com/pkg/errors"

// These are the tagged BadData violations a caller can match on to
// decide whether to disconnect a peer, discard a block, or retry.
var (
	// ErrWeightTooHigh indicates a transaction body's weight exceeds
	// MAX_BLOCK_WEIGHT.
	ErrWeightTooHigh = newRuleError("ErrWeightTooHigh")

	// ErrNotSorted indicates one of a body's three sequences is not
	// strictly ascending under its canonical byte order.
	ErrNotSorted = newRuleError("ErrNotSorted")

	// ErrDuplicateCommitment indicates the same commitment appears twice
	// within a single sequence.
	ErrDuplicateCommitment = newRuleError("ErrDuplicateCommitment")

	// ErrCutThrough indicates an input's commitment also appears among
	// the outputs of the same body, violating the cut-through invariant.
	ErrCutThrough = newRuleError("ErrCutThrough")

	// ErrInvalidRangeProof indicates an output's range proof does not
	// bind to its commitment.
	ErrInvalidRangeProof = newRuleError("ErrInvalidRangeProof")

	// ErrInvalidKernelSig indicates a kernel's Schnorr signature does
	// not verify against its excess and message.
	ErrInvalidKernelSig = newRuleError("ErrInvalidKernelSig")

	// ErrLockHeight indicates a kernel's lock height exceeds the block's
	// height.
	ErrLockHeight = newRuleError("ErrLockHeight")

	// ErrCoinbaseSum indicates the coinbase balance identity of
	// spec.md §4.3.2 does not hold.
	ErrCoinbaseSum = newRuleError("ErrCoinbaseSum")

	// ErrKernelSumMismatch indicates the Mimblewimble balance identity
	// of spec.md §4.3.3 does not hold.
	ErrKernelSumMismatch = newRuleError("ErrKernelSumMismatch")
)

// ErrCryptoFailure wraps an error reported by an underlying curve
// primitive (e.g. a point not on the curve, or a malformed signature).
// It is treated as BadData for admission purposes but logged distinctly.
var ErrCryptoFailure = newRuleError("ErrCryptoFailure")

// ErrNotFound is raised by a BlockSumsStore when asked for the sums of
// an unknown predecessor. The validator propagates it unchanged.
var ErrNotFound = newRuleError("ErrNotFound")

// RuleError identifies a rule violation. The caller can use errors.Is
// to determine if a failure was due to a specific tagged rule.
type RuleError struct {
	message string
	inner   error
}

// Error satisfies the error interface.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface.
func (e RuleError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface.
func (e RuleError) Cause() error {
	return e.inner
}

func newRuleError(message string) RuleError {
	return RuleError{message: message}
}

// Wrap annotates err with the given diagnostic tag naming the offending
// rule, producing a RuleError that still unwraps to err.
func Wrap(ruleErr RuleError, err error) error {
	return errors.WithStack(RuleError{message: ruleErr.message, inner: err})
}
