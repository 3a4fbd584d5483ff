package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RewardAccountID is the sentinel account used as the source of mining
// rewards. It is allowed to hold a negative balance by definition.
const RewardAccountID = AccountID("system")

// AccountID represents an account address in the ledger. Addresses are
// opaque strings, there is no key material behind them.
type AccountID string

// ToAccountID validates and converts the specified string to an AccountID.
func ToAccountID(value string) (AccountID, error) {
	if value == "" {
		return "", errors.New("account id is empty")
	}

	return AccountID(value), nil
}

// =============================================================================

// Tx represents a transfer between two accounts.
type Tx struct {
	ID        string    `json:"id"`
	FromID    AccountID `json:"from"`
	ToID      AccountID `json:"to"`
	Value     uint      `json:"value"`
	TimeStamp uint64    `json:"timestamp"`
}

// NewTx constructs a new transaction with a unique id.
func NewTx(from AccountID, to AccountID, value uint) Tx {
	return Tx{
		ID:        uuid.NewString(),
		FromID:    from,
		ToID:      to,
		Value:     value,
		TimeStamp: uint64(time.Now().UTC().Unix()),
	}
}

// IsReward tests if the transaction is a mining reward.
func (tx Tx) IsReward() bool {
	return tx.FromID == RewardAccountID
}

// String implements the fmt.Stringer interface for event logging.
func (tx Tx) String() string {
	return fmt.Sprintf("%s:%s->%s:%d", tx.ID[:8], tx.FromID, tx.ToID, tx.Value)
}
