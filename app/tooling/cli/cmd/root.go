// Package cmd contains the chain demo commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/chainlabs/chainsim/foundation/blockchain/genesis"
	"github.com/chainlabs/chainsim/foundation/blockchain/state"
	"github.com/spf13/cobra"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print chain events while running.")
}

var rootCmd = &cobra.Command{
	Use:   "chainsim",
	Short: "Run chain scenarios against the different consensus strategies",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newChain constructs a chain for the demos, wiring the event stream to
// stdout when verbose is set.
func newChain(consensusName string, difficulty uint, reward float64) (*state.State, error) {
	var ev state.EventHandler
	if verbose {
		ev = func(v string, args ...any) {
			fmt.Printf(v+"\n", args...)
		}
	}

	return state.New(state.Config{
		Genesis: genesis.Genesis{
			Date:         time.Now(),
			Consensus:    consensusName,
			Difficulty:   difficulty,
			MiningReward: reward,
		},
		EvHandler: ev,
	})
}
