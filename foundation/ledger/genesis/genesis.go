// Package genesis maintains access to the genesis file.
package genesis

import (
	"encoding/json"
	"os"
	"time"
)

// Genesis represents the genesis file.
type Genesis struct {
	Date          time.Time      `json:"date"`
	ChainID       uint16         `json:"chain_id"`        // An unique id for this running instance.
	TransPerBlock uint16         `json:"trans_per_block"` // The maximum number of transactions that can be in a block.
	Difficulty    uint           `json:"difficulty"`      // Number of leading zero hex digits a block hash must carry.
	MiningReward  uint           `json:"mining_reward"`   // Reward for mining a block.
	Balances      map[string]int `json:"balances"`        // Starting balances for founding accounts.
}

// =============================================================================

// Load opens and consumes the genesis file.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, err
	}

	var genesis Genesis
	err = json.Unmarshal(content, &genesis)
	if err != nil {
		return Genesis{}, err
	}

	return genesis, nil
}
