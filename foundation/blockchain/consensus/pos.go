package consensus

import (
	"context"

	"github.com/chainlabs/chainsim/foundation/blockchain/database"
)

// stakeDivisor scales a validator's stake into a success probability. A
// stake of 1000 guarantees selection; a stake of zero can never win a draw.
const stakeDivisor = 1000

// ProofOfStake finalizes a block when the producer wins a uniform draw
// against their registered stake.
type ProofOfStake struct {
	src Source
	ev  func(v string, args ...any)
}

// Finalize draws once against the producer's stake. On success the block's
// validator is recorded and the hash recomputed; validator identity is not
// part of the hash input, so the content does not change.
func (pos *ProofOfStake) Finalize(_ context.Context, b *database.Block, round Round) error {
	if !round.Registered {
		return newError("address %s is not a registered validator", round.ProducerID)
	}

	threshold := round.Stake / stakeDivisor
	draw := pos.src.Float64()
	pos.ev("consensus: pos: block[%d]: draw[%v] threshold[%v]", b.Header.Number, draw, threshold)

	if draw > threshold {
		return newError("stake draw failed for validator %s", round.ProducerID)
	}

	b.Header.Validator = round.ProducerID
	b.Hash = b.CalculateHash()

	return nil
}
