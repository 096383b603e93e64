// Package blocksumsstore provides a reference, in-memory
// implementation of model.BlockSumsStore. It is the accumulator
// collaborator a caller plugs in to run the block validator against;
// it carries none of a real backing store's durability guarantees.
package blocksumsstore

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/ruleerrors"
)

type entry struct {
	sums              *externalapi.BlockSums
	totalKernelOffset *externalapi.BlindingFactor
}

// Store is an in-memory model.BlockSumsStore, with an additional
// PutTotalKernelOffset method for seeding the reference store in tests
// and tools, outside the three methods model.BlockSumsStore requires.
type Store struct {
	mutex   sync.RWMutex
	entries map[externalapi.DomainHash]entry
}

var _ model.BlockSumsStore = (*Store)(nil)

// New returns an empty, in-memory BlockSumsStore.
func New() *Store {
	return &Store{entries: make(map[externalapi.DomainHash]entry)}
}

func (s *Store) GetBlockSums(blockHash *externalapi.DomainHash) (*externalapi.BlockSums, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	e, exists := s.entries[*blockHash]
	if !exists {
		return nil, errors.Wrapf(ruleerrors.ErrNotFound, "no block sums stored for block %s", blockHash)
	}
	return e.sums.Clone(), nil
}

func (s *Store) GetTotalKernelOffset(blockHash *externalapi.DomainHash) (*externalapi.BlindingFactor, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	e, exists := s.entries[*blockHash]
	if !exists {
		return nil, errors.Wrapf(ruleerrors.ErrNotFound, "no total kernel offset stored for block %s", blockHash)
	}
	return e.totalKernelOffset.Clone(), nil
}

// PutBlockSums records sums as the accumulated state up to and
// including blockHash. totalKernelOffset is computed and stored
// alongside it by the caller via PutTotalKernelOffset before or after
// this call; BlockSumsStore keeps the two independent because a caller
// may know one before the other.
func (s *Store) PutBlockSums(blockHash *externalapi.DomainHash, sums *externalapi.BlockSums) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	e := s.entries[*blockHash]
	e.sums = sums.Clone()
	s.entries[*blockHash] = e
	return nil
}

// PutTotalKernelOffset records offset as the running total kernel
// offset accumulated up to and including blockHash. It is exposed
// alongside model.BlockSumsStore's three methods as a concrete
// convenience for seeding this reference store in tests.
func (s *Store) PutTotalKernelOffset(blockHash *externalapi.DomainHash, offset *externalapi.BlindingFactor) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	e := s.entries[*blockHash]
	e.totalKernelOffset = offset.Clone()
	s.entries[*blockHash] = e
}
