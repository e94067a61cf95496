package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/chainlabs/chainsim/foundation/blockchain/consensus"
	"github.com/chainlabs/chainsim/foundation/blockchain/database"
	"github.com/spf13/cobra"
)

var dposRounds int

// dposCmd walks a delegated proof of stake chain: the delegate keeps
// attempting rounds until the selection draw picks it.
var dposCmd = &cobra.Command{
	Use:   "dpos",
	Short: "Run the delegated proof of stake scenario",
	Run:   dposRun,
}

func init() {
	rootCmd.AddCommand(dposCmd)
	dposCmd.Flags().IntVarP(&dposRounds, "rounds", "n", 10, "Maximum production attempts before giving up.")
}

func dposRun(cmd *cobra.Command, args []string) {
	chain, err := newChain(consensus.StrategyDPoS, 1, 50)
	if err != nil {
		log.Fatal(err)
	}

	chain.CreateWallet("delegate")
	chain.CreateWallet("justuser")

	if err := chain.AddFunds("justuser", 500); err != nil {
		log.Fatal(err)
	}

	fmt.Println("--Adding transaction in DPoS...")
	if err := chain.SubmitTransaction(database.NewTx("justuser", "delegate", 25)); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Transaction added")

	// Selection is a coin flip per round, so retry until it lands.
	fmt.Println("\n--Producing block in DPoS...")
	for round := 1; round <= dposRounds; round++ {
		b, err := chain.MinePendingTransactions(context.Background(), "delegate")
		if err != nil {
			fmt.Printf("Round %d: %v\n", round, err)
			continue
		}

		fmt.Printf("Round %d: block %d produced by %s\n", round, b.Header.Number, b.Header.Validator)
		break
	}

	fmt.Println("\n--Balances in DPoS blockchain:")
	printBalances(chain, "delegate", "justuser")

	fmt.Println("\nChecking chain validity:")
	if err := chain.ValidateChain(); err != nil {
		fmt.Println("DPoS chain:", err)
	} else {
		fmt.Println("DPoS chain: true")
	}
}
