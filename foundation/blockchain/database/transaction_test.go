package database_test

import (
	"errors"
	"testing"

	"github.com/chainlabs/chainsim/foundation/blockchain/database"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Fees(t *testing.T) {
	type table struct {
		name string
		tx   database.Tx
		fee  float64
	}

	tt := []table{
		{
			name: "transfer",
			tx:   database.NewTx("alice", "bob", 50),
			fee:  0.05,
		},
		{
			name: "contract",
			tx:   database.NewContractTx("alice", "contract_1", 10, "function transfer() {}"),
			fee:  0.6,
		},
		{
			name: "data",
			tx:   database.NewDataTx("bob", database.DataAccountID, 0.1, make([]byte, 100)),
			fee:  0.005*0.1 + 0.01,
		},
	}

	t.Log("Given the need to derive fees at construction time.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen constructing a %s transaction.", testID, tst.name)
			{
				f := func(t *testing.T) {
					if tst.tx.Fee != tst.fee {
						t.Logf("\t%s\tTest %d:\tgot: %v", failed, testID, tst.tx.Fee)
						t.Logf("\t%s\tTest %d:\texp: %v", failed, testID, tst.fee)
						t.Fatalf("\t%s\tTest %d:\tShould derive the fee from the schedule.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould derive the fee from the schedule.", success, testID)

					if tst.tx.Cost() != tst.tx.Value+tst.fee {
						t.Fatalf("\t%s\tTest %d:\tShould report amount plus fee as the cost.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould report amount plus fee as the cost.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}
}

func Test_Validate(t *testing.T) {
	type table struct {
		name string
		tx   database.Tx
		ok   bool
	}

	tt := []table{
		{name: "valid", tx: database.NewTx("alice", "bob", 50), ok: true},
		{name: "empty-sender", tx: database.NewTx("", "bob", 50)},
		{name: "empty-receiver", tx: database.NewTx("alice", "", 50)},
		{name: "zero-amount", tx: database.NewTx("alice", "bob", 0)},
		{name: "negative-amount", tx: database.NewTx("alice", "bob", -5)},
	}

	t.Log("Given the need to validate transactions before admission.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen checking a %s transaction.", testID, tst.name)
			{
				f := func(t *testing.T) {
					err := tst.tx.Validate()

					if tst.ok && err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould accept a well formed transaction: %v", failed, testID, err)
					}

					if !tst.ok {
						var itErr *database.InvalidTransactionError
						if !errors.As(err, &itErr) {
							t.Fatalf("\t%s\tTest %d:\tShould reject with an invalid transaction error: %v", failed, testID, err)
						}
					}
					t.Logf("\t%s\tTest %d:\tShould apply the validity predicate correctly.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}
}

func Test_LeafHash(t *testing.T) {
	t.Log("Given the need to commit transactions by their identifying fields.")
	{
		t.Logf("\tTest 0:\tWhen two transfers share sender, receiver and amount.")
		{
			tx1 := database.NewTx("alice", "bob", 50)
			tx2 := database.NewTx("alice", "bob", 50)

			// The id, fee and timestamp differ but the leaf digest must not.
			if tx1.LeafHash() != tx2.LeafHash() {
				t.Fatalf("\t%s\tTest 0:\tShould produce identical leaf digests.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould produce identical leaf digests.", success)
		}

		t.Logf("\tTest 1:\tWhen the amount differs.")
		{
			tx1 := database.NewTx("alice", "bob", 50)
			tx2 := database.NewTx("alice", "bob", 51)

			if tx1.LeafHash() == tx2.LeafHash() {
				t.Fatalf("\t%s\tTest 1:\tShould produce distinct leaf digests.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould produce distinct leaf digests.", success)
		}
	}
}
