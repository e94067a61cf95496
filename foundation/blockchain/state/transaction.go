package state

import (
	"fmt"

	"github.com/chainlabs/chainsim/foundation/blockchain/database"
)

// SubmitTransaction performs admission control on the transaction and
// queues it in the pending pool. Funds are reserved from the sender at
// admission time, not at block inclusion time: the amount plus fee is
// debited immediately so a later transaction cannot double-spend them.
func (s *State) SubmitTransaction(tx database.Tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.submitTransaction(tx)
}

// submitTransaction implements admission under the state lock.
func (s *State) submitTransaction(tx database.Tx) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	// Reward transactions synthesize funds and bypass the balance check.
	if tx.FromID != database.RewardAccountID {
		if err := s.db.Debit(tx.FromID, tx.Cost(), tx.ID); err != nil {
			return err
		}
	}

	s.mempool.Append(tx)
	s.evHandler("state: submit: tx[%s] accepted: pool size[%d]", tx.ID, s.mempool.Count())

	return nil
}

// =============================================================================

// CreateWallet adds a wallet for the specified address with zero balances.
func (s *State) CreateWallet(accountID string) database.Account {
	return s.db.Create(accountID)
}

// AddFunds credits the specified wallet outside of any transaction flow.
// Used to seed balances before transacting.
func (s *State) AddFunds(accountID string, amount float64) error {
	return s.db.AddFunds(accountID, amount)
}

// RegisterValidator locks stake for the address and records it in the
// validator registry consulted by proof of stake rounds.
func (s *State) RegisterValidator(accountID string, stake float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Stake(accountID, stake); err != nil {
		return err
	}

	s.validators[accountID] = stake
	s.evHandler("state: validator registered: %s stake[%v]", accountID, stake)

	return nil
}

// UnregisterValidator removes the address from the validator registry and
// returns its locked stake to the spendable balance.
func (s *State) UnregisterValidator(accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stake, exists := s.validators[accountID]
	if !exists {
		return &database.InvalidTransactionError{Reason: fmt.Sprintf("address %s is not a registered validator", accountID)}
	}

	if err := s.db.Unstake(accountID, stake); err != nil {
		return err
	}

	delete(s.validators, accountID)
	s.evHandler("state: validator unregistered: %s", accountID)

	return nil
}
