package digest_test

import (
	"strings"
	"testing"

	"github.com/aielonchain/ledger/foundation/ledger/digest"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// =============================================================================

func Test_Hash(t *testing.T) {
	type record struct {
		Name  string
		Value int
	}

	t.Log("Given the need to hash arbitrary values.")
	{
		t.Logf("\tTest 0:\tWhen hashing the same value twice.")
		{
			h1 := digest.Hash(record{Name: "kennedy", Value: 10})
			h2 := digest.Hash(record{Name: "kennedy", Value: 10})

			if h1 != h2 {
				t.Fatalf("\t%s\tTest 0:\tShould produce the same hash for the same value: %s != %s", failed, h1, h2)
			}
			t.Logf("\t%s\tTest 0:\tShould produce the same hash for the same value.", success)

			if !strings.HasPrefix(h1, "0x") || len(h1) != 66 {
				t.Fatalf("\t%s\tTest 0:\tShould produce a 0x prefixed 64 digit hash: %s", failed, h1)
			}
			t.Logf("\t%s\tTest 0:\tShould produce a 0x prefixed 64 digit hash.", success)
		}

		t.Logf("\tTest 1:\tWhen hashing two different values.")
		{
			h1 := digest.Hash(record{Name: "kennedy", Value: 10})
			h2 := digest.Hash(record{Name: "kennedy", Value: 11})

			if h1 == h2 {
				t.Fatalf("\t%s\tTest 1:\tShould produce different hashes for different values.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould produce different hashes for different values.", success)
		}
	}
}

func Test_ZeroHash(t *testing.T) {
	t.Log("Given the need to validate the zero hash sentinel.")
	{
		t.Logf("\tTest 0:\tWhen checking the sentinel format.")
		{
			if len(digest.ZeroHash) != 66 {
				t.Fatalf("\t%s\tTest 0:\tShould be 66 characters long: got %d", failed, len(digest.ZeroHash))
			}
			t.Logf("\t%s\tTest 0:\tShould be 66 characters long.", success)

			if digest.ZeroHash != "0x"+strings.Repeat("0", 64) {
				t.Fatalf("\t%s\tTest 0:\tShould be 0x followed by 64 zeros.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould be 0x followed by 64 zeros.", success)
		}
	}
}
