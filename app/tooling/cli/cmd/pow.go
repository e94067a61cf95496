package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/chainlabs/chainsim/foundation/blockchain/consensus"
	"github.com/chainlabs/chainsim/foundation/blockchain/database"
	"github.com/chainlabs/chainsim/foundation/blockchain/state"
	"github.com/spf13/cobra"
)

var (
	powDifficulty uint
	powReward     float64
)

// powCmd walks a proof of work chain through transfers, a contract
// deployment and a data payload.
var powCmd = &cobra.Command{
	Use:   "pow",
	Short: "Run the proof of work scenario",
	Run:   powRun,
}

func init() {
	rootCmd.AddCommand(powCmd)
	powCmd.Flags().UintVarP(&powDifficulty, "difficulty", "d", 2, "Leading zero digits required of a block hash.")
	powCmd.Flags().Float64VarP(&powReward, "reward", "r", 100, "Reward for producing a block.")
}

func powRun(cmd *cobra.Command, args []string) {
	chain, err := newChain(consensus.StrategyPoW, powDifficulty, powReward)
	if err != nil {
		log.Fatal(err)
	}

	chain.CreateWallet("alice")
	chain.CreateWallet("bob")
	chain.CreateWallet("miner")

	fmt.Println("--Initial balances:")

	if err := chain.AddFunds("alice", 1000); err != nil {
		log.Fatal(err)
	}
	if err := chain.AddFunds("bob", 500); err != nil {
		log.Fatal(err)
	}

	printBalances(chain, "alice", "bob", "miner")

	fmt.Println("\n--Adding test transaction...")
	if err := chain.SubmitTransaction(database.NewTx("alice", "bob", 50)); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Transaction added to pendings")

	mine(chain, "miner")
	fmt.Println("\n--Balances after transaction:")
	printBalances(chain, "alice", "bob", "miner")

	fmt.Println("\n--Another transaction...")
	if err := chain.SubmitTransaction(database.NewTx("bob", "alice", 20)); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Transaction added to pendings")

	mine(chain, "miner")
	fmt.Println("\n--Balances after transaction:")
	printBalances(chain, "alice", "bob", "miner")

	fmt.Println("\n--Creating smart contract...")
	code := "function transfer() { return 'transfer executed'; }"
	contractID, err := chain.CreateSmartContract("alice", code, 10)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Smart contract created. Its address:", contractID)

	mine(chain, "miner")

	fmt.Println("\nRunning smart contract...")
	result, err := chain.ExecuteSmartContract(contractID, "transfer")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Result is:", result)

	fmt.Println("\n--Bob saves some data in blockchain as a transaction...")
	dataID, err := chain.StoreData("bob", []byte("Some important data"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Data stored with ID:", dataID)

	mine(chain, "miner")

	fmt.Println("\nChecking chain validity:")
	if err := chain.ValidateChain(); err != nil {
		fmt.Println("PoW chain:", err)
	} else {
		fmt.Println("PoW chain: true")
	}

	fmt.Println("\nChecking difficulty:")
	before := chain.RetrieveDifficulty()
	chain.AdjustDifficulty()
	fmt.Printf("Difficulty: %d -> %d\n", before, chain.RetrieveDifficulty())

	fmt.Println("\nAll blocks in PoW chain:")
	for _, b := range chain.RetrieveBlocks() {
		fmt.Printf("%+v\n", b)
	}
}

// mine produces the next block with the pending pool.
func mine(chain *state.State, producerID string) {
	fmt.Println("\n--Mining block...")
	if _, err := chain.MinePendingTransactions(context.Background(), producerID); err != nil {
		fmt.Println("Mining error:", err)
		return
	}
	fmt.Println("Block added to chain")
}

// printBalances writes the spendable balance of each account.
func printBalances(chain *state.State, accounts ...string) {
	for _, accountID := range accounts {
		fmt.Printf("%s: %v\n", accountID, chain.Balance(accountID))
	}
}
