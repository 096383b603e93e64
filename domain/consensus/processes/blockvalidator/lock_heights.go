package blockvalidator

import (
	"github.com/pkg/errors"

	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/ruleerrors"
)

// checkKernelLockHeights rejects any kernel whose lock height exceeds
// the block's own height: no transaction may be included earlier than
// the height it was locked to.
func (v *blockValidator) checkKernelLockHeights(block *externalapi.FullBlock) error {
	height := block.Header.Height
	for i, kernel := range block.Body.Kernels {
		if kernel.LockHeight > height {
			return errors.Wrapf(ruleerrors.ErrLockHeight,
				"kernel %d has lock height %d, exceeding block height %d", i, kernel.LockHeight, height)
		}
	}
	return nil
}
