package database_test

import (
	"errors"
	"testing"

	"github.com/chainlabs/chainsim/foundation/blockchain/database"
)

func Test_Ledger(t *testing.T) {
	t.Log("Given the need to keep wallet balances consistent.")
	{
		t.Logf("\tTest 0:\tWhen seeding, debiting and crediting wallets.")
		{
			db := database.New(map[string]float64{"alice": 1000})

			if db.Balance("alice") != 1000 {
				t.Fatalf("\t%s\tTest 0:\tShould seed the starting balance.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould seed the starting balance.", success)

			if err := db.Debit("alice", 50.05, "tx1"); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to debit a funded wallet: %v", failed, err)
			}
			if db.Balance("alice") != 949.95 {
				t.Fatalf("\t%s\tTest 0:\tShould reserve exactly the debited amount: got %v.", failed, db.Balance("alice"))
			}
			t.Logf("\t%s\tTest 0:\tShould reserve exactly the debited amount.", success)

			// Crediting an unseen address creates the wallet implicitly.
			db.Credit("bob", 50, "tx1")
			if db.Balance("bob") != 50 {
				t.Fatalf("\t%s\tTest 0:\tShould create the receiver wallet implicitly.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould create the receiver wallet implicitly.", success)

			account, err := db.Query("bob")
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to query the new wallet: %v", failed, err)
			}
			if len(account.History) != 1 || account.History[0] != "tx1" {
				t.Fatalf("\t%s\tTest 0:\tShould log the transaction id into the history.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould log the transaction id into the history.", success)
		}

		t.Logf("\tTest 1:\tWhen a wallet cannot cover a debit.")
		{
			db := database.New(map[string]float64{"alice": 10})

			err := db.Debit("alice", 50, "tx1")
			var ibErr *database.InsufficientBalanceError
			if !errors.As(err, &ibErr) {
				t.Fatalf("\t%s\tTest 1:\tShould fail with an insufficient balance error: %v", failed, err)
			}
			if ibErr.Required != 50 || ibErr.Available != 10 {
				t.Fatalf("\t%s\tTest 1:\tShould report required and available amounts.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould report required and available amounts.", success)

			if db.Balance("alice") != 10 {
				t.Fatalf("\t%s\tTest 1:\tShould leave the wallet untouched on failure.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould leave the wallet untouched on failure.", success)
		}

		t.Logf("\tTest 2:\tWhen debiting an unknown wallet.")
		{
			db := database.New(nil)

			err := db.Debit("ghost", 1, "tx1")
			var itErr *database.InvalidTransactionError
			if !errors.As(err, &itErr) {
				t.Fatalf("\t%s\tTest 2:\tShould fail with an invalid transaction error: %v", failed, err)
			}
			t.Logf("\t%s\tTest 2:\tShould fail with an invalid transaction error.", success)
		}
	}
}

func Test_Staking(t *testing.T) {
	t.Log("Given the need to lock and release staked funds.")
	{
		t.Logf("\tTest 0:\tWhen staking part of a balance.")
		{
			db := database.New(map[string]float64{"validator1": 1000})

			if err := db.Stake("validator1", 800); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to stake a covered amount: %v", failed, err)
			}

			account, _ := db.Query("validator1")
			if account.Balance != 200 || account.StakeBalance != 800 {
				t.Fatalf("\t%s\tTest 0:\tShould move funds from balance to stake: got %v/%v.", failed, account.Balance, account.StakeBalance)
			}
			t.Logf("\t%s\tTest 0:\tShould move funds from balance to stake.", success)

			if err := db.Unstake("validator1", 300); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to unstake a covered amount: %v", failed, err)
			}

			account, _ = db.Query("validator1")
			if account.Balance != 500 || account.StakeBalance != 500 {
				t.Fatalf("\t%s\tTest 0:\tShould move funds back on unstake.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould move funds back on unstake.", success)
		}

		t.Logf("\tTest 1:\tWhen staking more than the balance.")
		{
			db := database.New(map[string]float64{"validator1": 100})

			var ibErr *database.InsufficientBalanceError
			if err := db.Stake("validator1", 800); !errors.As(err, &ibErr) {
				t.Fatalf("\t%s\tTest 1:\tShould fail with an insufficient balance error: %v", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould fail with an insufficient balance error.", success)
		}
	}
}

func Test_CopySemantics(t *testing.T) {
	t.Log("Given the need to hand out ledger state without aliasing.")
	{
		t.Logf("\tTest 0:\tWhen mutating a queried account copy.")
		{
			db := database.New(map[string]float64{"alice": 100})
			db.Credit("alice", 1, "tx1")

			account, _ := db.Query("alice")
			account.History[0] = "tampered"
			account.Balance = 0

			fresh, _ := db.Query("alice")
			if fresh.History[0] != "tx1" || fresh.Balance != 101 {
				t.Fatalf("\t%s\tTest 0:\tShould not leak mutations back into the ledger.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould not leak mutations back into the ledger.", success)
		}
	}
}
