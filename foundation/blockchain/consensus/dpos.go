package consensus

import (
	"context"

	"github.com/chainlabs/chainsim/foundation/blockchain/database"
)

// DelegatedProofOfStake finalizes a block when a fair coin selects the
// proposer as an eligible delegate for the round.
type DelegatedProofOfStake struct {
	src Source
	ev  func(v string, args ...any)
}

// Finalize flips the delegate coin. On success the validator is recorded
// directly; the block keeps its original hash.
func (dpos *DelegatedProofOfStake) Finalize(_ context.Context, b *database.Block, round Round) error {
	isDelegate := dpos.src.Float64() < 0.5
	dpos.ev("consensus: dpos: block[%d]: producer[%s] delegate[%t]", b.Header.Number, round.ProducerID, isDelegate)

	if !isDelegate {
		return newError("address %s is not a delegate for this block", round.ProducerID)
	}

	b.Header.Validator = round.ProducerID

	return nil
}
