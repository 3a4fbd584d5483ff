package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aielonchain/ledger/foundation/ledger/database"
	"github.com/aielonchain/ledger/foundation/ledger/database/storage/memory"
	"github.com/aielonchain/ledger/foundation/ledger/digest"
	"github.com/aielonchain/ledger/foundation/ledger/genesis"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

// =============================================================================

func Test_Transactions(t *testing.T) {
	type table struct {
		name     string
		balances map[string]int
		txs      []database.Tx
		final    map[database.AccountID]int
	}

	tt := []table{
		{
			name: "transfers",
			balances: map[string]int{
				"alice": 1000,
				"bob":   0,
			},
			txs: []database.Tx{
				{FromID: "alice", ToID: "bob", Value: 100},
				{FromID: "alice", ToID: "bob", Value: 200},
			},
			final: map[database.AccountID]int{
				"alice": 700,
				"bob":   300,
			},
		},
		{
			name:     "overdraft",
			balances: map[string]int{},
			txs: []database.Tx{
				{FromID: "alice", ToID: "bob", Value: 50},
			},
			final: map[database.AccountID]int{
				"alice": -50,
				"bob":   50,
			},
		},
		{
			name:     "reward",
			balances: map[string]int{},
			txs: []database.Tx{
				{FromID: database.RewardAccountID, ToID: "miner1", Value: 25},
			},
			final: map[database.AccountID]int{
				"miner1": 25,
			},
		},
	}

	t.Log("Given the need to apply transactions to account balances.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling %s.", testID, tst.name)
			{
				f := func(t *testing.T) {
					storage, err := memory.New()
					if err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould be able to open storage: %v", failed, testID, err)
					}

					db, err := database.New(genesis.Genesis{Balances: tst.balances}, storage, nil)
					if err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould be able to open database: %v", failed, testID, err)
					}
					t.Logf("\t%s\tTest %d:\tShould be able to open database.", success, testID)

					for _, tx := range tst.txs {
						db.ApplyTransaction(tx)
					}

					for accountID, want := range tst.final {
						got := db.Balance(accountID)
						if got != want {
							t.Errorf("\t%s\tTest %d:\tShould have the correct balance for %s.", failed, testID, accountID)
							t.Logf("\t\tTest %d:\tgot: %d", testID, got)
							t.Logf("\t\tTest %d:\texp: %d", testID, want)
							continue
						}
						t.Logf("\t%s\tTest %d:\tShould have the correct balance for %s.", success, testID, accountID)
					}
				}

				t.Run(tst.name, f)
			}
		}
	}
}

func Test_POW(t *testing.T) {
	t.Log("Given the need to mine a block with proof of work.")
	{
		t.Logf("\tTest 0:\tWhen mining a block at difficulty 1.")
		{
			gen := genesis.Genesis{
				Difficulty:    1,
				MiningReward:  25,
				TransPerBlock: 10,
			}

			genesisBlock := database.GenesisBlock(gen)
			trans := []database.Tx{database.NewTx("alice", "bob", 10)}

			block, err := database.POW(context.Background(), "miner1", gen, genesisBlock, trans, func(v string, args ...any) {})
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to mine a block: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to mine a block.", success)

			if block.Header.Number != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould have block number 1: got %d", failed, block.Header.Number)
			}
			t.Logf("\t%s\tTest 0:\tShould have block number 1.", success)

			if block.Header.PrevBlockHash != digest.ZeroHash {
				t.Fatalf("\t%s\tTest 0:\tShould link to the genesis sentinel hash.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould link to the genesis sentinel hash.", success)

			hash := block.Hash()
			if hash[2:3] != "0" {
				t.Fatalf("\t%s\tTest 0:\tShould have a hash with 1 leading zero digit: %s", failed, hash)
			}
			t.Logf("\t%s\tTest 0:\tShould have a hash with 1 leading zero digit.", success)

			if len(block.Trans) != 2 {
				t.Fatalf("\t%s\tTest 0:\tShould carry the transfer and the reward: got %d transactions", failed, len(block.Trans))
			}
			last := block.Trans[len(block.Trans)-1]
			if !last.IsReward() || last.ToID != "miner1" || last.Value != 25 {
				t.Fatalf("\t%s\tTest 0:\tShould carry the reward for the miner: %v", failed, last)
			}
			t.Logf("\t%s\tTest 0:\tShould carry the transfer and the reward.", success)

			if err := block.ValidateBlock(genesisBlock, func(v string, args ...any) {}); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould validate against its parent: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould validate against its parent.", success)
		}

		t.Logf("\tTest 1:\tWhen the mining context is cancelled.")
		{
			gen := genesis.Genesis{Difficulty: 6, MiningReward: 25}
			genesisBlock := database.GenesisBlock(gen)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := database.POW(ctx, "miner1", gen, genesisBlock, []database.Tx{database.NewTx("alice", "bob", 10)}, func(v string, args ...any) {})
			if !errors.Is(err, context.Canceled) {
				t.Fatalf("\t%s\tTest 1:\tShould abandon the search with a cancel error: %v", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould abandon the search with a cancel error.", success)
		}
	}
}

func Test_BlockData(t *testing.T) {
	t.Log("Given the need to persist and restore blocks.")
	{
		t.Logf("\tTest 0:\tWhen converting a block to block data and back.")
		{
			gen := genesis.Genesis{Difficulty: 1, MiningReward: 25}
			genesisBlock := database.GenesisBlock(gen)

			block, err := database.POW(context.Background(), "miner1", gen, genesisBlock, []database.Tx{database.NewTx("alice", "bob", 10)}, func(v string, args ...any) {})
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to mine a block: %v", failed, err)
			}

			blockData := database.NewBlockData(block)
			back, err := database.ToBlock(blockData)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to restore the block: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to restore the block.", success)

			if back.Hash() != block.Hash() {
				t.Fatalf("\t%s\tTest 0:\tShould restore to the identical hash.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould restore to the identical hash.", success)
		}

		t.Logf("\tTest 1:\tWhen the stored block data was tampered with.")
		{
			gen := genesis.Genesis{Difficulty: 1, MiningReward: 25}
			genesisBlock := database.GenesisBlock(gen)

			block, err := database.POW(context.Background(), "miner1", gen, genesisBlock, []database.Tx{database.NewTx("alice", "bob", 10)}, func(v string, args ...any) {})
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to mine a block: %v", failed, err)
			}

			blockData := database.NewBlockData(block)
			blockData.Trans[0].Value = 10000

			if _, err := database.ToBlock(blockData); err == nil {
				t.Fatalf("\t%s\tTest 1:\tShould detect the tampered transaction.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould detect the tampered transaction.", success)
		}
	}
}
