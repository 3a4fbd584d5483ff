package state

import (
	"strings"
	"time"

	"github.com/aielonchain/ledger/foundation/ledger/database"
	"github.com/aielonchain/ledger/foundation/ledger/digest"
)

// Seal performs the one-way terminal transition of the chain. It cancels
// any in-flight mining, re-validates the whole chain, computes the seal
// digest over every block hash and flips the sealed flag. After a
// successful seal every append fails with ErrChainSealed; reads remain
// available. A second call fails with ErrAlreadySealed.
func (s *State) Seal() (database.SealData, error) {
	s.evHandler("state: Seal: started")
	defer s.evHandler("state: Seal: completed")

	// An in-flight mining operation must be abandoned, never appended
	// after the seal. The mining G can't start another operation until
	// done is called, which happens after the seal is in place.
	if s.Worker != nil {
		done := s.Worker.SignalCancelMining()
		defer done()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seal.Sealed {
		return database.SealData{}, ErrAlreadySealed
	}

	if err := s.validateChain(); err != nil {
		return database.SealData{}, err
	}

	seal := database.SealData{
		Sealed:   true,
		SealHash: s.chainSealHash(),
		SealedAt: uint64(time.Now().UTC().Unix()),
	}

	if err := s.db.WriteSeal(seal); err != nil {
		return database.SealData{}, err
	}
	s.seal = seal

	s.evHandler("state: Seal: SEALED: hash[%s]", seal.SealHash)

	return seal, nil
}

// RetrieveSeal returns a copy of the current seal record.
func (s *State) RetrieveSeal() database.SealData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.seal
}

// =============================================================================

// chainSealHash computes the seal digest: the hash over the concatenation
// of every block hash in chain order, genesis included.
func (s *State) chainSealHash() string {
	hashes := []string{s.db.GenesisBlock().Hash()}

	iter := s.db.ForEach()
	for block, err := iter.Next(); !iter.Done(); block, err = iter.Next() {
		if err != nil {
			continue
		}
		hashes = append(hashes, block.Hash())
	}

	return digest.Hash(strings.Join(hashes, ""))
}
