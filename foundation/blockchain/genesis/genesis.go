// Package genesis maintains access to the genesis file that seeds a chain.
package genesis

import (
	"encoding/json"
	"os"
	"time"
)

// Genesis represents the chain seed: the consensus strategy to run, the
// starting difficulty and reward, and the founding balances.
type Genesis struct {
	Date         time.Time          `json:"date"`
	Consensus    string             `json:"consensus"`     // POW, POS or DPOS.
	Difficulty   uint               `json:"difficulty"`    // Leading zero hex digits required by POW.
	MiningReward float64            `json:"mining_reward"` // Reward for producing a block.
	Balances     map[string]float64 `json:"balances"`
}

// Load opens and consumes the genesis file.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, err
	}

	var genesis Genesis
	if err := json.Unmarshal(content, &genesis); err != nil {
		return Genesis{}, err
	}

	return genesis, nil
}
