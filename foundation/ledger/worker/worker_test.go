package worker_test

import (
	"testing"
	"time"

	"github.com/aielonchain/ledger/foundation/ledger/database/storage/memory"
	"github.com/aielonchain/ledger/foundation/ledger/genesis"
	"github.com/aielonchain/ledger/foundation/ledger/state"
	"github.com/aielonchain/ledger/foundation/ledger/worker"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// =============================================================================

func Test_BackgroundMining(t *testing.T) {
	t.Log("Given the need to mine submitted transactions in the background.")
	{
		t.Logf("\tTest 0:\tWhen submitting a transaction with a worker running.")
		{
			storage, err := memory.New()
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to open storage: %v", failed, err)
			}

			gen := genesis.Genesis{
				TransPerBlock: 10,
				Difficulty:    1,
				MiningReward:  25,
			}

			st, err := state.New(state.Config{
				BeneficiaryID: "miner1",
				Genesis:       gen,
				Storage:       storage,
			})
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to construct the state: %v", failed, err)
			}
			defer st.Shutdown()

			worker.Run(st, func(v string, args ...any) {})
			t.Logf("\t%s\tTest 0:\tShould be able to start the worker.", success)

			if _, err := st.SubmitTransaction("alice", "bob", 50); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to submit the transaction: %v", failed, err)
			}

			// The submit signals the worker, so a block should show up
			// without any explicit mine call.
			deadline := time.Now().Add(10 * time.Second)
			for st.Status().BlockHeight < 2 {
				if time.Now().After(deadline) {
					t.Fatalf("\t%s\tTest 0:\tShould mine a block in the background.", failed)
				}
				time.Sleep(50 * time.Millisecond)
			}
			t.Logf("\t%s\tTest 0:\tShould mine a block in the background.", success)

			if bal := st.BalanceOf("bob"); bal != 50 {
				t.Fatalf("\t%s\tTest 0:\tShould credit the receiver: got %d", failed, bal)
			}
			t.Logf("\t%s\tTest 0:\tShould credit the receiver.", success)
		}
	}
}

func Test_SealStopsWorker(t *testing.T) {
	t.Log("Given the need to stop background mining at a seal.")
	{
		t.Logf("\tTest 0:\tWhen sealing while a worker is registered.")
		{
			storage, err := memory.New()
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to open storage: %v", failed, err)
			}

			gen := genesis.Genesis{
				TransPerBlock: 10,
				Difficulty:    1,
				MiningReward:  25,
			}

			st, err := state.New(state.Config{
				BeneficiaryID: "miner1",
				Genesis:       gen,
				Storage:       storage,
			})
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to construct the state: %v", failed, err)
			}
			defer st.Shutdown()

			worker.Run(st, func(v string, args ...any) {})

			if _, err := st.Seal(); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to seal with a live worker: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to seal with a live worker.", success)

			heightBefore := st.Status().BlockHeight

			// Submissions still signal the worker, but nothing can be
			// appended to a sealed chain.
			if _, err := st.SubmitTransaction("alice", "bob", 50); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould still accept submissions: %v", failed, err)
			}

			time.Sleep(500 * time.Millisecond)

			if st.Status().BlockHeight != heightBefore {
				t.Fatalf("\t%s\tTest 0:\tShould not grow a sealed chain.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould not grow a sealed chain.", success)
		}
	}
}
