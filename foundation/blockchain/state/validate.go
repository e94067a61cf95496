package state

import (
	"github.com/chainlabs/chainsim/foundation/blockchain/database"
)

// Difficulty retarget parameters. The thresholds form a dead band around
// the target so small drifts leave the difficulty alone.
const (
	retargetWindow    = 10
	targetBlockTime   = 60.0
	retargetLowBand   = 0.9
	retargetHighBand  = 1.1
	minimumDifficulty = 1
)

// ValidateChain walks the chain in order, re-deriving every block's hash
// and merkle root and checking the parent linkage. The walk is a read-only
// audit: the first mismatch is reported with the offending block number
// and nothing is mutated.
func (s *State) ValidateChain() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 1; i < len(s.chain); i++ {
		if err := s.chain[i].ValidateBlock(s.chain[i-1]); err != nil {
			s.evHandler("state: validate: %s", err)
			return err
		}
	}

	return nil
}

// AdjustDifficulty applies the retarget rule against the current chain.
// It only acts when the chain length is a positive multiple of the window.
func (s *State) AdjustDifficulty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.adjustDifficulty()
}

// adjustDifficulty implements the retarget under the state lock.
func (s *State) adjustDifficulty() {
	s.difficulty = retarget(s.chain, s.difficulty, s.evHandler)
}

// retarget compares the average production interval over the last window
// of blocks against the target and nudges the difficulty one step. The
// window's timestamp span is divided by the window size, not the interval
// count.
func retarget(chain []database.Block, difficulty uint, ev EventHandler) uint {
	if len(chain)%retargetWindow != 0 || len(chain) <= 1 {
		return difficulty
	}

	first := chain[len(chain)-retargetWindow]
	latest := chain[len(chain)-1]

	span := latest.Header.TimeStamp - first.Header.TimeStamp
	avgBlockTime := float64(span) / retargetWindow

	switch {
	case avgBlockTime < targetBlockTime*retargetLowBand:
		difficulty++
		ev("state: retarget: avg[%v] below band: difficulty increased to %d", avgBlockTime, difficulty)

	case avgBlockTime > targetBlockTime*retargetHighBand && difficulty > minimumDifficulty:
		difficulty--
		ev("state: retarget: avg[%v] above band: difficulty decreased to %d", avgBlockTime, difficulty)
	}

	return difficulty
}
