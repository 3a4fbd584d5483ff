package disk_test

import (
	"context"
	"testing"

	"github.com/aielonchain/ledger/foundation/ledger/database"
	"github.com/aielonchain/ledger/foundation/ledger/database/storage/disk"
	"github.com/aielonchain/ledger/foundation/ledger/genesis"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// =============================================================================

func Test_ReadWrite(t *testing.T) {
	t.Log("Given the need to store and retrieve blocks on disk.")
	{
		t.Logf("\tTest 0:\tWhen writing two blocks and iterating them back.")
		{
			storage, err := disk.New(t.TempDir())
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to create storage: %v", failed, err)
			}
			defer storage.Close()
			t.Logf("\t%s\tTest 0:\tShould be able to create storage.", success)

			gen := genesis.Genesis{Difficulty: 1, MiningReward: 25}
			prevBlock := database.GenesisBlock(gen)

			var written []database.BlockData
			for i := 0; i < 2; i++ {
				block, err := database.POW(context.Background(), "miner1", gen, prevBlock, []database.Tx{database.NewTx("alice", "bob", uint(i+1))}, func(v string, args ...any) {})
				if err != nil {
					t.Fatalf("\t%s\tTest 0:\tShould be able to mine block %d: %v", failed, i+1, err)
				}

				blockData := database.NewBlockData(block)
				if err := storage.Write(blockData); err != nil {
					t.Fatalf("\t%s\tTest 0:\tShould be able to write block %d: %v", failed, i+1, err)
				}

				written = append(written, blockData)
				prevBlock = block
			}
			t.Logf("\t%s\tTest 0:\tShould be able to write two blocks.", success)

			var count int
			iter := storage.ForEach()
			for blockData, err := iter.Next(); !iter.Done(); blockData, err = iter.Next() {
				if err != nil {
					t.Fatalf("\t%s\tTest 0:\tShould be able to read block: %v", failed, err)
				}
				if blockData.Hash != written[count].Hash {
					t.Fatalf("\t%s\tTest 0:\tShould read back the identical block %d.", failed, count+1)
				}
				count++
			}

			if count != 2 {
				t.Fatalf("\t%s\tTest 0:\tShould iterate exactly two blocks: got %d", failed, count)
			}
			t.Logf("\t%s\tTest 0:\tShould iterate exactly two blocks in order.", success)

			blockData, err := storage.GetBlock(2)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to read block 2 directly: %v", failed, err)
			}
			if blockData.Header.Number != 2 {
				t.Fatalf("\t%s\tTest 0:\tShould read the requested block number: got %d", failed, blockData.Header.Number)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to read block 2 directly.", success)
		}
	}
}

func Test_Seal(t *testing.T) {
	t.Log("Given the need to persist the seal record.")
	{
		t.Logf("\tTest 0:\tWhen no seal was ever written.")
		{
			storage, err := disk.New(t.TempDir())
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to create storage: %v", failed, err)
			}
			defer storage.Close()

			seal, err := storage.GetSeal()
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to read the seal: %v", failed, err)
			}
			if seal.Sealed {
				t.Fatalf("\t%s\tTest 0:\tShould report the chain as not sealed.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould report the chain as not sealed.", success)
		}

		t.Logf("\tTest 1:\tWhen writing and reading back a seal.")
		{
			storage, err := disk.New(t.TempDir())
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to create storage: %v", failed, err)
			}
			defer storage.Close()

			want := database.SealData{Sealed: true, SealHash: "0xdeadbeef", SealedAt: 1767225600}
			if err := storage.WriteSeal(want); err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to write the seal: %v", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould be able to write the seal.", success)

			got, err := storage.GetSeal()
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to read the seal: %v", failed, err)
			}
			if got != want {
				t.Fatalf("\t%s\tTest 1:\tShould read back the identical seal: %+v", failed, got)
			}
			t.Logf("\t%s\tTest 1:\tShould read back the identical seal.", success)
		}
	}
}
