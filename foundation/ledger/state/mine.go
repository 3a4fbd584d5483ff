package state

import (
	"context"

	"github.com/aielonchain/ledger/foundation/ledger/database"
)

// SubmitTransaction accepts a transaction into the mempool for inclusion
// in a future block. The pool keeps accepting transactions after a seal,
// they just can never be mined into the chain again.
func (s *State) SubmitTransaction(from database.AccountID, to database.AccountID, value uint) (string, error) {
	tx := database.NewTx(from, to, value)

	if err := s.mempool.Submit(tx); err != nil {
		return "", err
	}

	s.evHandler("state: SubmitTransaction: tx[%s] added to mempool", tx)

	if s.Worker != nil {
		s.Worker.SignalStartMining()
	}

	return tx.ID, nil
}

// MineNewBlock drains the mempool into a candidate block, performs the
// proof of work and appends the result to the chain. An empty pool still
// produces a valid reward-only block. If anything fails after the drain,
// the drained transactions are returned to the pool so the operation is
// all or nothing.
func (s *State) MineNewBlock(ctx context.Context) (database.Block, error) {
	s.evHandler("state: MineNewBlock: MINING: drain mempool")

	trans := s.mempool.Drain(int(s.genesis.TransPerBlock))

	s.evHandler("state: MineNewBlock: MINING: perform POW: txs[%d]", len(trans))

	block, err := database.POW(ctx, s.beneficiaryID, s.genesis, s.db.LatestBlock(), trans, s.evHandler)
	if err != nil {
		s.mempool.Restore(trans)
		return database.Block{}, err
	}

	// Just check one more time we were not cancelled.
	if ctx.Err() != nil {
		s.mempool.Restore(trans)
		return database.Block{}, ctx.Err()
	}

	s.evHandler("state: MineNewBlock: MINING: append block to chain")

	if err := s.Append(block); err != nil {
		s.mempool.Restore(trans)
		return database.Block{}, err
	}

	return block, nil
}

// Append validates the specified block against the current tail of the
// chain and stores it. Appends are serialized with each other and with the
// seal through the chain-level write lock.
func (s *State) Append(block database.Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seal.Sealed {
		return ErrChainSealed
	}

	if err := block.ValidateBlock(s.db.LatestBlock(), s.evHandler); err != nil {
		return err
	}

	if err := s.db.Write(block); err != nil {
		return err
	}
	s.db.UpdateLatestBlock(block)

	for _, tx := range block.Trans {
		s.evHandler("state: Append: apply tx[%s]", tx)
		s.db.ApplyTransaction(tx)
	}

	return nil
}
