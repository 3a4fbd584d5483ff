package mempool_test

import (
	"errors"
	"testing"

	"github.com/aielonchain/ledger/foundation/ledger/database"
	"github.com/aielonchain/ledger/foundation/ledger/mempool"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

// =============================================================================

func Test_SubmitValidation(t *testing.T) {
	type table struct {
		name string
		tx   database.Tx
		ok   bool
	}

	tt := []table{
		{name: "valid", tx: database.Tx{FromID: "alice", ToID: "bob", Value: 10}, ok: true},
		{name: "missing from", tx: database.Tx{ToID: "bob", Value: 10}, ok: false},
		{name: "missing to", tx: database.Tx{FromID: "alice", Value: 10}, ok: false},
		{name: "self transfer", tx: database.Tx{FromID: "alice", ToID: "alice", Value: 10}, ok: false},
		{name: "zero value", tx: database.Tx{FromID: "alice", ToID: "bob", Value: 0}, ok: false},
	}

	t.Log("Given the need to validate transactions on submit.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen submitting a %s transaction.", testID, tst.name)
			{
				mp := mempool.New()
				err := mp.Submit(tst.tx)

				switch {
				case tst.ok && err != nil:
					t.Fatalf("\t%s\tTest %d:\tShould accept the transaction: %v", failed, testID, err)

				case !tst.ok && err == nil:
					t.Fatalf("\t%s\tTest %d:\tShould reject the transaction.", failed, testID)

				case !tst.ok:
					var ve *mempool.ValidationError
					if !errors.As(err, &ve) {
						t.Fatalf("\t%s\tTest %d:\tShould return a validation error: %v", failed, testID, err)
					}
				}
				t.Logf("\t%s\tTest %d:\tShould get the expected result.", success, testID)

				want := 0
				if tst.ok {
					want = 1
				}
				if mp.Count() != want {
					t.Fatalf("\t%s\tTest %d:\tShould have %d transactions in the pool: got %d", failed, testID, want, mp.Count())
				}
				t.Logf("\t%s\tTest %d:\tShould have %d transactions in the pool.", success, testID, want)
			}
		}
	}
}

func Test_DrainOrder(t *testing.T) {
	t.Log("Given the need to drain transactions in arrival order.")
	{
		t.Logf("\tTest 0:\tWhen draining a pool of five transactions.")
		{
			mp := mempool.New()
			for i := 0; i < 5; i++ {
				tx := database.NewTx("alice", "bob", uint(i+1))
				if err := mp.Submit(tx); err != nil {
					t.Fatalf("\t%s\tTest 0:\tShould be able to submit transaction: %v", failed, err)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould be able to submit five transactions.", success)

			txs := mp.Drain(3)
			if len(txs) != 3 {
				t.Fatalf("\t%s\tTest 0:\tShould drain three transactions: got %d", failed, len(txs))
			}
			t.Logf("\t%s\tTest 0:\tShould drain three transactions.", success)

			for i, tx := range txs {
				if tx.Value != uint(i+1) {
					t.Fatalf("\t%s\tTest 0:\tShould drain in arrival order: position %d has value %d", failed, i, tx.Value)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould drain in arrival order.", success)

			if mp.Count() != 2 {
				t.Fatalf("\t%s\tTest 0:\tShould leave two transactions behind: got %d", failed, mp.Count())
			}
			t.Logf("\t%s\tTest 0:\tShould leave two transactions behind.", success)
		}

		t.Logf("\tTest 1:\tWhen draining with no limit.")
		{
			mp := mempool.New()
			for i := 0; i < 4; i++ {
				mp.Submit(database.NewTx("alice", "bob", uint(i+1)))
			}

			txs := mp.Drain(0)
			if len(txs) != 4 || mp.Count() != 0 {
				t.Fatalf("\t%s\tTest 1:\tShould drain the entire pool: got %d drained, %d left", failed, len(txs), mp.Count())
			}
			t.Logf("\t%s\tTest 1:\tShould drain the entire pool.", success)
		}
	}
}

func Test_Restore(t *testing.T) {
	t.Log("Given the need to return drained transactions after a failure.")
	{
		t.Logf("\tTest 0:\tWhen restoring drained transactions.")
		{
			mp := mempool.New()
			for i := 0; i < 3; i++ {
				mp.Submit(database.NewTx("alice", "bob", uint(i+1)))
			}
			mp.Submit(database.NewTx("alice", "bob", 100))

			drained := mp.Drain(3)
			mp.Restore(drained)

			if mp.Count() != 4 {
				t.Fatalf("\t%s\tTest 0:\tShould have all four transactions back: got %d", failed, mp.Count())
			}
			t.Logf("\t%s\tTest 0:\tShould have all four transactions back.", success)

			txs := mp.Peek()
			for i := 0; i < 3; i++ {
				if txs[i].Value != uint(i+1) {
					t.Fatalf("\t%s\tTest 0:\tShould restore to the front of the pool: position %d has value %d", failed, i, txs[i].Value)
				}
			}
			if txs[3].Value != 100 {
				t.Fatalf("\t%s\tTest 0:\tShould keep later submissions behind restored ones.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould restore to the front of the pool.", success)
		}
	}
}
