package state

import (
	"fmt"

	"github.com/chainlabs/chainsim/foundation/blockchain/database"
	"github.com/chainlabs/chainsim/foundation/blockchain/genesis"
)

// Balance returns the spendable balance for the specified account. Unknown
// accounts report zero.
func (s *State) Balance(accountID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.db.Balance(accountID)
}

// QueryWallet returns a copy of the account record for the specified
// account.
func (s *State) QueryWallet(accountID string) (database.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.db.Query(accountID)
}

// QueryTransactionHistory scans the chain for every confirmed transaction
// where the specified account is the sender or the receiver. Pending
// transactions still in the mempool are not included.
func (s *State) QueryTransactionHistory(accountID string) []database.Tx {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var history []database.Tx
	for _, block := range s.chain {
		for _, tx := range block.Trans {
			if tx.FromID == accountID || tx.ToID == accountID {
				history = append(history, tx)
			}
		}
	}

	return history
}

// FindTransaction locates a confirmed transaction by id. Transactions
// still pending in the mempool are not visible to this lookup.
func (s *State) FindTransaction(txID string) (database.Tx, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, block := range s.chain {
		for _, tx := range block.Trans {
			if tx.ID == txID {
				return tx, nil
			}
		}
	}

	return database.Tx{}, fmt.Errorf("transaction with id %q not found in the chain", txID)
}

// RetrieveLatestBlock returns a copy of the current head of the chain.
func (s *State) RetrieveLatestBlock() database.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.chain[len(s.chain)-1]
}

// RetrieveBlocks returns a copy of the full chain in order from genesis.
func (s *State) RetrieveBlocks() []database.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blocks := make([]database.Block, len(s.chain))
	copy(blocks, s.chain)

	return blocks
}

// RetrieveMempool returns a copy of the pending transactions in admission
// order.
func (s *State) RetrieveMempool() []database.Tx {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.mempool.Copy()
}

// RetrieveGenesis returns a copy of the genesis information.
func (s *State) RetrieveGenesis() genesis.Genesis {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.genesis
}

// RetrieveAccruedFees returns the fees reserved for the production round
// in flight. Non-zero after a failed round, where the pool and its fee
// total carry forward to the next attempt; zero once a block settles.
func (s *State) RetrieveAccruedFees() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.transFees
}

// RetrieveDifficulty returns the difficulty the next block will be mined
// at.
func (s *State) RetrieveDifficulty() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.difficulty
}

// RetrieveValidators returns a copy of the registered validator set and
// their stakes.
func (s *State) RetrieveValidators() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	validators := make(map[string]float64, len(s.validators))
	for id, stake := range s.validators {
		validators[id] = stake
	}

	return validators
}

// CopyAccounts returns a copy of the full set of account records.
func (s *State) CopyAccounts() map[string]database.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.db.CopyAccounts()
}
