package genesis_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aielonchain/ledger/foundation/ledger/genesis"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// =============================================================================

func Test_Load(t *testing.T) {
	t.Log("Given the need to load the genesis file.")
	{
		t.Logf("\tTest 0:\tWhen loading a well formed file.")
		{
			doc := `{
				"date": "2026-01-01T00:00:00.000000000Z",
				"chain_id": 338,
				"trans_per_block": 10,
				"difficulty": 2,
				"mining_reward": 25,
				"balances": {
					"alice": 1000
				}
			}`

			path := filepath.Join(t.TempDir(), "genesis.json")
			if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to write the file: %v", failed, err)
			}

			gen, err := genesis.Load(path)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to load the file: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to load the file.", success)

			if gen.ChainID != 338 || gen.Difficulty != 2 || gen.MiningReward != 25 {
				t.Fatalf("\t%s\tTest 0:\tShould carry the chain configuration: %+v", failed, gen)
			}
			t.Logf("\t%s\tTest 0:\tShould carry the chain configuration.", success)

			if gen.Balances["alice"] != 1000 {
				t.Fatalf("\t%s\tTest 0:\tShould carry the founding balances.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould carry the founding balances.", success)
		}

		t.Logf("\tTest 1:\tWhen the file does not exist.")
		{
			if _, err := genesis.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
				t.Fatalf("\t%s\tTest 1:\tShould fail for a missing file.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould fail for a missing file.", success)
		}
	}
}
