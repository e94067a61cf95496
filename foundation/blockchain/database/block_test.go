package database_test

import (
	"errors"
	"testing"

	"github.com/chainlabs/chainsim/foundation/blockchain/database"
	"github.com/chainlabs/chainsim/foundation/blockchain/merkle"
	"github.com/chainlabs/chainsim/foundation/blockchain/signature"
)

func Test_BlockHash(t *testing.T) {
	t.Log("Given the need for the block hash to be a pure function of its fields.")
	{
		t.Logf("\tTest 0:\tWhen constructing a block.")
		{
			trans := []database.Tx{database.NewTx("alice", "bob", 50)}
			b := database.NewBlock(1, trans, signature.ZeroHash, 2)

			if b.Hash != b.CalculateHash() {
				t.Fatalf("\t%s\tTest 0:\tShould hold hash == CalculateHash after construction.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould hold hash == CalculateHash after construction.", success)

			if b.Header.MerkleRoot != merkle.Root(trans) {
				t.Fatalf("\t%s\tTest 0:\tShould commit the transactions in the merkle root.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould commit the transactions in the merkle root.", success)
		}

		t.Logf("\tTest 1:\tWhen the nonce changes.")
		{
			b := database.NewBlock(1, nil, signature.ZeroHash, 2)
			prev := b.Hash

			b.Header.Nonce++
			if b.CalculateHash() == prev {
				t.Fatalf("\t%s\tTest 1:\tShould derive a different hash for a different nonce.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould derive a different hash for a different nonce.", success)
		}

		t.Logf("\tTest 2:\tWhen the validator is set.")
		{
			b := database.NewBlock(1, nil, signature.ZeroHash, 2)
			prev := b.Hash

			// Validator identity is not part of the hash input.
			b.Header.Validator = "validator1"
			if b.CalculateHash() != prev {
				t.Fatalf("\t%s\tTest 2:\tShould not change the hash when the validator is set.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould not change the hash when the validator is set.", success)
		}
	}
}

func Test_GenesisBlock(t *testing.T) {
	t.Log("Given the need to seed a chain with a genesis block.")
	{
		t.Logf("\tTest 0:\tWhen constructing the genesis block.")
		{
			b := database.GenesisBlock(2)

			if b.Header.Number != 0 || len(b.Trans) != 0 {
				t.Fatalf("\t%s\tTest 0:\tShould be block zero with no transactions.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould be block zero with no transactions.", success)

			if b.Header.PrevBlockHash != signature.ZeroHash {
				t.Fatalf("\t%s\tTest 0:\tShould link to the zero-hash sentinel.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould link to the zero-hash sentinel.", success)

			if b.Header.MerkleRoot != signature.ZeroHash {
				t.Fatalf("\t%s\tTest 0:\tShould carry the empty merkle sentinel.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould carry the empty merkle sentinel.", success)
		}
	}
}

func Test_ValidateBlock(t *testing.T) {
	newPair := func() (database.Block, database.Block) {
		genesis := database.GenesisBlock(1)
		trans := []database.Tx{database.NewTx("alice", "bob", 50)}
		return genesis, database.NewBlock(1, trans, genesis.Hash, 1)
	}

	t.Log("Given the need to detect tampering on finalized blocks.")
	{
		t.Logf("\tTest 0:\tWhen the block is untouched.")
		{
			genesis, b := newPair()
			if err := b.ValidateBlock(genesis); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould pass the structural checks: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould pass the structural checks.", success)
		}

		t.Logf("\tTest 1:\tWhen a header field is rewritten post-hoc.")
		{
			genesis, b := newPair()
			b.Header.TimeStamp++

			var ibErr *database.InvalidBlockError
			if err := b.ValidateBlock(genesis); !errors.As(err, &ibErr) {
				t.Fatalf("\t%s\tTest 1:\tShould fail with an invalid block error: %v", failed, err)
			}
			if ibErr.Number != 1 {
				t.Fatalf("\t%s\tTest 1:\tShould report the offending block number: got %d.", failed, ibErr.Number)
			}
			t.Logf("\t%s\tTest 1:\tShould report the offending block number.", success)
		}

		t.Logf("\tTest 2:\tWhen a transaction is altered post-hoc.")
		{
			genesis, b := newPair()
			b.Trans[0].Value = 5000

			// The stored hash still matches the header, so the merkle
			// re-derivation is what must catch this.
			if err := b.ValidateBlock(genesis); err == nil {
				t.Fatalf("\t%s\tTest 2:\tShould fail the merkle root check.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould fail the merkle root check.", success)
		}

		t.Logf("\tTest 3:\tWhen the parent linkage is broken.")
		{
			genesis, b := newPair()
			genesis.Hash = signature.Hash("tampered")

			if err := b.ValidateBlock(genesis); err == nil {
				t.Fatalf("\t%s\tTest 3:\tShould fail the parent hash check.", failed)
			}
			t.Logf("\t%s\tTest 3:\tShould fail the parent hash check.", success)
		}
	}
}
