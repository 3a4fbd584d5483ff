// Package mempool maintains the pool of transactions waiting to be mined
// into a block. Transactions leave the pool in the order they arrived.
package mempool

import (
	"fmt"
	"sync"

	"github.com/aielonchain/ledger/foundation/ledger/database"
)

// ValidationError is returned when a submitted transaction fails the
// basic input checks.
type ValidationError struct {
	Reason string
}

// NewValidationError constructs a validation error with a formatted reason.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{
		Reason: fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (ve *ValidationError) Error() string {
	return ve.Reason
}

// =============================================================================

// Mempool represents a cache of transactions waiting to be included in
// a block, in FIFO order.
type Mempool struct {
	mu   sync.RWMutex
	pool []database.Tx
}

// New constructs a new mempool.
func New() *Mempool {
	return &Mempool{}
}

// Count returns the current number of transactions in the pool.
func (mp *Mempool) Count() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	return len(mp.pool)
}

// Submit validates the specified transaction and adds it to the pool.
func (mp *Mempool) Submit(tx database.Tx) error {
	if tx.FromID == "" {
		return NewValidationError("transaction is missing a from account")
	}
	if tx.ToID == "" {
		return NewValidationError("transaction is missing a to account")
	}
	if tx.FromID == tx.ToID {
		return NewValidationError("transaction from and to accounts are the same, %s", tx.FromID)
	}
	if tx.Value == 0 {
		return NewValidationError("transaction value must be greater than zero")
	}

	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = append(mp.pool, tx)

	return nil
}

// Drain removes and returns up to maxCount transactions from the pool in
// the order they were submitted. A maxCount less than 1 drains everything.
func (mp *Mempool) Drain(maxCount int) []database.Tx {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if maxCount < 1 || maxCount > len(mp.pool) {
		maxCount = len(mp.pool)
	}

	txs := make([]database.Tx, maxCount)
	copy(txs, mp.pool[:maxCount])
	mp.pool = mp.pool[maxCount:]

	return txs
}

// Restore returns drained transactions to the front of the pool. It exists
// so a failed block append leaves the pool exactly as it was.
func (mp *Mempool) Restore(txs []database.Tx) {
	if len(txs) == 0 {
		return
	}

	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = append(txs, mp.pool...)
}

// Peek returns a read-only snapshot of the pending transactions.
func (mp *Mempool) Peek() []database.Tx {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	txs := make([]database.Tx, len(mp.pool))
	copy(txs, mp.pool)

	return txs
}

// Truncate clears all the transactions from the pool.
func (mp *Mempool) Truncate() {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = nil
}
