// Package database maintains the in-memory wallet ledger and the block and
// transaction types the chain is built from.
package database

import (
	"fmt"
	"sync"
)

// Database manages the wallets that transact on the blockchain. It is the
// source of truth for fund availability; only the chain orchestrator is
// permitted to mutate it.
type Database struct {
	mu       sync.RWMutex
	accounts map[string]Account
}

// New constructs the ledger and applies starting balances, creating a
// wallet for every funded address.
func New(balances map[string]float64) *Database {
	db := Database{
		accounts: make(map[string]Account),
	}

	for accountID, balance := range balances {
		account := newAccount(accountID)
		account.Balance = balance
		db.accounts[accountID] = account
	}

	return &db
}

// Create adds a wallet for the specified address with zero balances. If the
// wallet already exists it is left untouched.
func (db *Database) Create(accountID string) Account {
	db.mu.Lock()
	defer db.mu.Unlock()

	if account, exists := db.accounts[accountID]; exists {
		return copyAccount(account)
	}

	account := newAccount(accountID)
	db.accounts[accountID] = account

	return account
}

// Exists reports whether a wallet is present for the specified address.
func (db *Database) Exists(accountID string) bool {
	db.mu.RLock()
	defer db.mu.RUnlock()

	_, exists := db.accounts[accountID]
	return exists
}

// AddFunds credits the specified wallet outside of any transaction flow.
// Used to seed balances before transacting.
func (db *Database) AddFunds(accountID string, amount float64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	account, exists := db.accounts[accountID]
	if !exists {
		return &InvalidTransactionError{Reason: fmt.Sprintf("wallet %s not found", accountID)}
	}

	account.Balance += amount
	db.accounts[accountID] = account

	return nil
}

// Balance returns the spendable balance for the specified address, or zero
// when the wallet is unknown.
func (db *Database) Balance(accountID string) float64 {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.accounts[accountID].Balance
}

// Query returns a copy of the wallet for the specified address.
func (db *Database) Query(accountID string) (Account, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	account, exists := db.accounts[accountID]
	if !exists {
		return Account{}, &InvalidTransactionError{Reason: fmt.Sprintf("wallet %s not found", accountID)}
	}

	return copyAccount(account), nil
}

// CopyAccounts makes a copy of the current wallets in the ledger.
func (db *Database) CopyAccounts() map[string]Account {
	db.mu.RLock()
	defer db.mu.RUnlock()

	accounts := make(map[string]Account, len(db.accounts))
	for accountID, account := range db.accounts {
		accounts[accountID] = copyAccount(account)
	}

	return accounts
}

// Debit reserves the specified amount from a wallet and logs the
// transaction id into its history. The wallet must exist and hold enough
// balance; otherwise the ledger is left untouched.
func (db *Database) Debit(accountID string, amount float64, txID string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	account, exists := db.accounts[accountID]
	if !exists {
		return &InvalidTransactionError{Reason: fmt.Sprintf("wallet %s not found", accountID)}
	}

	if account.Balance < amount {
		return &InsufficientBalanceError{Required: amount, Available: account.Balance}
	}

	account.Balance -= amount
	account.History = append(account.History, txID)
	db.accounts[accountID] = account

	return nil
}

// Credit settles the specified amount into a wallet and logs the
// transaction id into its history. The wallet is created implicitly when
// the address has not been seen before.
func (db *Database) Credit(accountID string, amount float64, txID string) {
	db.mu.Lock()
	defer db.mu.Unlock()

	account, exists := db.accounts[accountID]
	if !exists {
		account = newAccount(accountID)
	}

	account.Balance += amount
	account.History = append(account.History, txID)
	db.accounts[accountID] = account
}

// Stake moves the specified amount from a wallet's spendable balance into
// its staking balance.
func (db *Database) Stake(accountID string, amount float64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	account, exists := db.accounts[accountID]
	if !exists {
		return &InvalidTransactionError{Reason: fmt.Sprintf("wallet %s not found", accountID)}
	}

	if account.Balance < amount {
		return &InsufficientBalanceError{Required: amount, Available: account.Balance}
	}

	account.Balance -= amount
	account.StakeBalance += amount
	db.accounts[accountID] = account

	return nil
}

// Unstake returns the specified amount from a wallet's staking balance to
// its spendable balance.
func (db *Database) Unstake(accountID string, amount float64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	account, exists := db.accounts[accountID]
	if !exists {
		return &InvalidTransactionError{Reason: fmt.Sprintf("wallet %s not found", accountID)}
	}

	if account.StakeBalance < amount {
		return &InsufficientBalanceError{Required: amount, Available: account.StakeBalance}
	}

	account.StakeBalance -= amount
	account.Balance += amount
	db.accounts[accountID] = account

	return nil
}
