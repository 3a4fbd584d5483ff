// Package database handles all the lower level support for maintaining the
// ledger on storage and maintaining an in-memory view of account balances.
package database

import (
	"sync"

	"github.com/aielonchain/ledger/foundation/ledger/genesis"
)

// Storage interface represents the behavior required to be implemented by
// any package providing support for storing and reading the ledger.
type Storage interface {
	Write(blockData BlockData) error
	GetBlock(num uint64) (BlockData, error)
	ForEach() Iterator
	WriteSeal(seal SealData) error
	GetSeal() (SealData, error)
	Close() error
	Reset() error
}

// Iterator interface represents the behavior required to be implemented by
// any package providing support to iterate over the blocks.
type Iterator interface {
	Next() (BlockData, error)
	Done() bool
}

// =============================================================================

// DatabaseIterator provides support for walking through the blocks in
// chain order, converting each storage record back into a block.
type DatabaseIterator struct {
	iterator Iterator
}

// Next retrieves the next block from storage.
func (di *DatabaseIterator) Next() (Block, error) {
	blockData, err := di.iterator.Next()
	if err != nil {
		return Block{}, err
	}

	return ToBlock(blockData)
}

// Done returns the end of chain value.
func (di *DatabaseIterator) Done() bool {
	return di.iterator.Done()
}

// =============================================================================

// Account represents information stored for an individual account. Balances
// are signed, the ledger allows overdraft.
type Account struct {
	Balance int
}

// Database manages data related to blocks and accounts who have transacted
// on the ledger.
type Database struct {
	mu sync.RWMutex

	genesis      genesis.Genesis
	genesisBlock Block
	latestBlock  Block
	accounts     map[AccountID]Account

	storage Storage
}

// New constructs a new database, applies the genesis balances and replays
// any blocks found in storage, validating each one against its parent.
func New(gen genesis.Genesis, storage Storage, evHandler func(v string, args ...any)) (*Database, error) {
	db := Database{
		genesis:      gen,
		genesisBlock: GenesisBlock(gen),
		accounts:     make(map[AccountID]Account),
		storage:      storage,
	}
	db.latestBlock = db.genesisBlock

	for accountStr, balance := range gen.Balances {
		accountID, err := ToAccountID(accountStr)
		if err != nil {
			return nil, err
		}
		db.accounts[accountID] = Account{Balance: balance}
	}

	// Replay the chain from storage. Each block must validate against the
	// one before it or the database refuses to start.
	iter := db.storage.ForEach()
	for blockData, err := iter.Next(); !iter.Done(); blockData, err = iter.Next() {
		if err != nil {
			return nil, err
		}

		block, err := ToBlock(blockData)
		if err != nil {
			return nil, err
		}

		if err := block.ValidateBlock(db.latestBlock, evHandler); err != nil {
			return nil, err
		}

		for _, tx := range block.Trans {
			db.ApplyTransaction(tx)
		}

		db.latestBlock = block
	}

	return &db, nil
}

// Close closes the underlying storage.
func (db *Database) Close() {
	db.storage.Close()
}

// GenesisBlock returns the implicit first block of the chain.
func (db *Database) GenesisBlock() Block {
	return db.genesisBlock
}

// LatestBlock returns the latest block added to the chain.
func (db *Database) LatestBlock() Block {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.latestBlock
}

// UpdateLatestBlock provides safe access to update the latest block.
func (db *Database) UpdateLatestBlock(block Block) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.latestBlock = block
}

// Height returns the number of blocks in the chain, genesis included.
func (db *Database) Height() uint64 {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.latestBlock.Header.Number + 1
}

// Balance returns the current balance for the specified account.
func (db *Database) Balance(accountID AccountID) int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.accounts[accountID].Balance
}

// CopyAccounts makes a copy of the current accounts in the database.
func (db *Database) CopyAccounts() map[AccountID]Account {
	db.mu.RLock()
	defer db.mu.RUnlock()

	accounts := make(map[AccountID]Account, len(db.accounts))
	for accountID, account := range db.accounts {
		accounts[accountID] = account
	}
	return accounts
}

// ApplyTransaction applies a mined transaction to the account balances. A
// reward transaction only credits the beneficiary; the sentinel reward
// account is not debited.
func (db *Database) ApplyTransaction(tx Tx) {
	db.mu.Lock()
	defer db.mu.Unlock()

	to := db.accounts[tx.ToID]
	to.Balance += int(tx.Value)
	db.accounts[tx.ToID] = to

	if tx.IsReward() {
		return
	}

	from := db.accounts[tx.FromID]
	from.Balance -= int(tx.Value)
	db.accounts[tx.FromID] = from
}

// Write adds a new block to storage.
func (db *Database) Write(block Block) error {
	return db.storage.Write(NewBlockData(block))
}

// WriteSeal records the terminal seal in storage.
func (db *Database) WriteSeal(seal SealData) error {
	return db.storage.WriteSeal(seal)
}

// GetSeal reads the seal record from storage. An unsealed chain returns
// the zero value.
func (db *Database) GetSeal() (SealData, error) {
	return db.storage.GetSeal()
}

// ForEach returns an iterator to walk through all the blocks starting
// with block number 1.
func (db *Database) ForEach() DatabaseIterator {
	return DatabaseIterator{iterator: db.storage.ForEach()}
}

// GetBlock searches storage to locate and return the specified block
// by number.
func (db *Database) GetBlock(num uint64) (Block, error) {
	blockData, err := db.storage.GetBlock(num)
	if err != nil {
		return Block{}, err
	}
	return ToBlock(blockData)
}
