// Package state is the core API for the ledger and implements all the
// business rules and processing.
package state

import (
	"sync"

	"github.com/aielonchain/ledger/foundation/ledger/database"
	"github.com/aielonchain/ledger/foundation/ledger/genesis"
	"github.com/aielonchain/ledger/foundation/ledger/mempool"
)

// EventHandler defines a function that is called when events
// occur in the processing of mining and persisting blocks.
type EventHandler func(v string, args ...any)

// Worker interface represents the behavior required to be implemented by
// any package providing support for mining.
type Worker interface {
	Shutdown()
	SignalStartMining()
	SignalCancelMining() (done func())
}

// =============================================================================

// Config represents the configuration required to start the ledger.
type Config struct {
	BeneficiaryID database.AccountID
	Genesis       genesis.Genesis
	Storage       database.Storage
	EvHandler     EventHandler
}

// State manages the ledger: the chain of blocks, the mempool and the
// terminal seal. The mutex is the single chain-level write lock, appends
// and the seal are mutually exclusive with each other and with reads.
type State struct {
	mu sync.RWMutex

	beneficiaryID database.AccountID
	evHandler     EventHandler

	genesis genesis.Genesis
	mempool *mempool.Mempool
	db      *database.Database
	seal    database.SealData

	// The Worker is not set here. The call to worker.Run will assign itself
	// and start the mining goroutine for the node. A State without a worker
	// mines synchronously through MineNewBlock.
	Worker Worker
}

// New constructs a new ledger state for data management.
func New(cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	// Open the database and replay any blocks found in storage. A chain
	// that fails validation refuses to start.
	db, err := database.New(cfg.Genesis, cfg.Storage, ev)
	if err != nil {
		return nil, err
	}

	state := State{
		beneficiaryID: cfg.BeneficiaryID,
		evHandler:     ev,
		genesis:       cfg.Genesis,
		mempool:       mempool.New(),
		db:            db,
	}

	// Restore the seal if this chain was locked in a previous run. A seal
	// whose digest no longer matches the chain means the seal itself is
	// compromised and must be surfaced, not absorbed.
	seal, err := db.GetSeal()
	if err != nil {
		return nil, err
	}
	if seal.Sealed {
		if sealHash := state.chainSealHash(); sealHash != seal.SealHash {
			return nil, database.NewChainIntegrityError(db.LatestBlock().Header.Number, ErrSealCompromised)
		}
	}
	state.seal = seal

	return &state, nil
}

// Shutdown cleanly brings the ledger down.
func (s *State) Shutdown() error {
	defer func() {
		s.db.Close()
	}()

	// Stop all mining activity.
	if s.Worker != nil {
		s.Worker.Shutdown()
	}

	return nil
}
