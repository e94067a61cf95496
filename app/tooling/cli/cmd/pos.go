package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/chainlabs/chainsim/foundation/blockchain/consensus"
	"github.com/chainlabs/chainsim/foundation/blockchain/database"
	"github.com/spf13/cobra"
)

var posReward float64

// posCmd walks a proof of stake chain: validators lock stake and one of
// them wins the right to finalize the pending pool.
var posCmd = &cobra.Command{
	Use:   "pos",
	Short: "Run the proof of stake scenario",
	Run:   posRun,
}

func init() {
	rootCmd.AddCommand(posCmd)
	posCmd.Flags().Float64VarP(&posReward, "reward", "r", 50, "Reward for producing a block.")
}

func posRun(cmd *cobra.Command, args []string) {
	chain, err := newChain(consensus.StrategyPoS, 1, posReward)
	if err != nil {
		log.Fatal(err)
	}

	chain.CreateWallet("validator1")
	chain.CreateWallet("validator2")
	chain.CreateWallet("justuser")

	if err := chain.AddFunds("validator1", 1000); err != nil {
		log.Fatal(err)
	}
	if err := chain.AddFunds("validator2", 2000); err != nil {
		log.Fatal(err)
	}
	if err := chain.AddFunds("justuser", 500); err != nil {
		log.Fatal(err)
	}

	fmt.Println("--Registering validators...")
	if err := chain.RegisterValidator("validator1", 800); err != nil {
		log.Fatal(err)
	}
	fmt.Println("validator1 registered with stake 800")

	if err := chain.RegisterValidator("validator2", 1500); err != nil {
		log.Fatal(err)
	}
	fmt.Println("validator2 registered with stake 1500")

	fmt.Println("\n--Adding transaction in PoS...")
	if err := chain.SubmitTransaction(database.NewTx("justuser", "validator1", 25)); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Transaction added")

	fmt.Println("\n--Validating block in PoS...")
	if _, err := chain.MinePendingTransactions(context.Background(), "validator2"); err != nil {
		fmt.Println("Error:", err)
	} else {
		fmt.Println("Block validated and added into chain")
	}

	fmt.Println("\n--Balances in PoS blockchain:")
	printBalances(chain, "validator1", "validator2", "justuser")

	wallet, err := chain.QueryWallet("validator2")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nvalidator2 wallet:")
	fmt.Println("Address:", wallet.AccountID)
	fmt.Println("Balance:", wallet.Balance)
	fmt.Println("Staking balance:", wallet.StakeBalance)
	fmt.Println("Transaction count:", len(wallet.History))

	fmt.Println("\nChecking chain validity:")
	if err := chain.ValidateChain(); err != nil {
		fmt.Println("PoS chain:", err)
	} else {
		fmt.Println("PoS chain: true")
	}

	fmt.Println("\nAll blocks in PoS chain:")
	for _, b := range chain.RetrieveBlocks() {
		fmt.Printf("%+v\n", b)
	}
}
