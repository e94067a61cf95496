package state

import (
	"context"
	"fmt"

	"github.com/chainlabs/chainsim/foundation/blockchain/consensus"
	"github.com/chainlabs/chainsim/foundation/blockchain/database"
)

// MinePendingTransactions drains the pending pool into a candidate block,
// hands it to the configured consensus strategy and, on success, settles
// every included transaction and appends the block to the chain.
//
// On a consensus failure the pool and the ledger are left untouched: the
// queued transactions, including the synthesized reward transaction, stay
// in place for the next production attempt rather than being dropped.
func (s *State) MinePendingTransactions(ctx context.Context, producerID string) (database.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.db.Exists(producerID) {
		return database.Block{}, &database.InvalidTransactionError{Reason: fmt.Sprintf("producer wallet %s not found", producerID)}
	}

	// The producer collects the pooled fees on top of the mining reward.
	totalFees := s.mempool.Fees()
	s.transFees = totalFees

	rewardTx := database.NewTx(database.RewardAccountID, producerID, s.miningReward+totalFees)
	s.mempool.Append(rewardTx)

	latestBlock := s.chain[len(s.chain)-1]
	b := database.NewBlock(uint64(len(s.chain)), s.mempool.Copy(), latestBlock.Hash, s.difficulty)

	round := consensus.Round{ProducerID: producerID}
	if stake, exists := s.validators[producerID]; exists {
		round.Stake = stake
		round.Registered = true
	}

	if err := s.finalizer.Finalize(ctx, &b, round); err != nil {
		s.evHandler("state: mine: block[%d] finalization failed: %s", b.Header.Number, err)
		return database.Block{}, err
	}

	s.settle(b)
	s.chain = append(s.chain, b)
	s.mempool.Truncate()
	s.transFees = 0

	s.evHandler("state: mine: block[%d] appended: hash[%s] trans[%d]", b.Header.Number, b.Hash, len(b.Trans))

	s.adjustDifficulty()

	return b, nil
}

// settle credits the receiver of every included transaction, creating
// wallets for unseen addresses. Transactions paid to the reward address
// are skipped; fees are not credited separately, they were folded into the
// producer's reward transaction.
func (s *State) settle(b database.Block) {
	for _, tx := range b.Trans {
		if tx.ToID == database.RewardAccountID {
			continue
		}

		s.db.Credit(tx.ToID, tx.Value, tx.ID)
	}
}
