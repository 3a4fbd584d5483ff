package state

import (
	"github.com/aielonchain/ledger/foundation/ledger/database"
)

// ChainStatus reports the observable condition of the ledger.
type ChainStatus struct {
	BlockHeight uint64 `json:"block_height"`
	LatestHash  string `json:"latest_hash"`
	IsValid     bool   `json:"is_valid"`
	IsSealed    bool   `json:"is_sealed"`
	SealHash    string `json:"seal_hash,omitempty"`
	Uncommitted int    `json:"uncommitted"`
}

// Validate walks the chain from genesis, recomputing each block's hash and
// re-checking linkage. It returns nil for an intact chain, including the
// trivially valid genesis-only chain, or a ChainIntegrityError naming the
// first block that fails.
func (s *State) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.validateChain()
}

// BalanceOf returns the balance for the specified account: the genesis
// seed plus every credit, minus every debit, over the whole chain.
func (s *State) BalanceOf(accountID database.AccountID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.db.Balance(accountID)
}

// Accounts returns a copy of every account balance in the ledger.
func (s *State) Accounts() map[database.AccountID]database.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.db.CopyAccounts()
}

// HistoryOf returns every mined transaction touching the specified
// account, in chain order.
func (s *State) HistoryOf(accountID database.AccountID) ([]database.Tx, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var history []database.Tx

	iter := s.db.ForEach()
	for block, err := iter.Next(); !iter.Done(); block, err = iter.Next() {
		if err != nil {
			return nil, err
		}

		for _, tx := range block.Trans {
			if tx.FromID == accountID || tx.ToID == accountID {
				history = append(history, tx)
			}
		}
	}

	return history, nil
}

// QueryBlocksByAccount returns the set of blocks containing transactions
// that touch the specified account. An empty account returns all blocks.
func (s *State) QueryBlocksByAccount(accountID database.AccountID) ([]database.Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []database.Block

	iter := s.db.ForEach()
	for block, err := iter.Next(); !iter.Done(); block, err = iter.Next() {
		if err != nil {
			return nil, err
		}

		if accountID == "" {
			out = append(out, block)
			continue
		}

		for _, tx := range block.Trans {
			if tx.FromID == accountID || tx.ToID == accountID {
				out = append(out, block)
				break
			}
		}
	}

	return out, nil
}

// Status reports the chain height, validity and seal condition.
func (s *State) Status() ChainStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	isValid := true
	if err := s.validateChain(); err != nil {
		s.evHandler("state: Status: validate: ERROR: %s", err)
		isValid = false
	}

	return ChainStatus{
		BlockHeight: s.db.Height(),
		LatestHash:  s.db.LatestBlock().Hash(),
		IsValid:     isValid,
		IsSealed:    s.seal.Sealed,
		SealHash:    s.seal.SealHash,
		Uncommitted: s.mempool.Count(),
	}
}

// =============================================================================

// validateChain performs the full chain walk. Callers must hold the lock.
func (s *State) validateChain() error {
	prevBlock := s.db.GenesisBlock()

	iter := s.db.ForEach()
	for block, err := iter.Next(); !iter.Done(); block, err = iter.Next() {
		if err != nil {
			return err
		}

		if err := block.ValidateBlock(prevBlock, s.evHandler); err != nil {
			return err
		}

		prevBlock = block
	}

	return nil
}
