package consensus

import (
	"context"

	"github.com/chainlabs/chainsim/foundation/blockchain/database"
)

// ProofOfWork finalizes a block by searching for a nonce whose hash carries
// the number of leading zero hex digits the block's difficulty requires.
// The search is blocking and CPU bound; expected attempts grow as
// 16^difficulty, so callers budget for large difficulties with the context
// deadline or the attempt ceiling.
type ProofOfWork struct {
	maxAttempts uint64
	ev          func(v string, args ...any)
}

// Finalize performs the nonce search on the candidate block.
func (pow *ProofOfWork) Finalize(ctx context.Context, b *database.Block, _ Round) error {
	pow.ev("consensus: pow: mining: started: block[%d] difficulty[%d]", b.Header.Number, b.Header.Difficulty)

	var attempts uint64
	for !b.HashSolved() {
		if err := ctx.Err(); err != nil {
			pow.ev("consensus: pow: mining: cancelled: attempts[%d]", attempts)
			return err
		}

		attempts++
		if pow.maxAttempts > 0 && attempts > pow.maxAttempts {
			return newError("no hash solution within %d attempts at difficulty %d", pow.maxAttempts, b.Header.Difficulty)
		}

		b.Header.Nonce++
		b.Hash = b.CalculateHash()
	}

	pow.ev("consensus: pow: mining: solved: nonce[%d] hash[%s]", b.Header.Nonce, b.Hash)
	return nil
}
