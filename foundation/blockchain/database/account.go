package database

// Account represents the information stored in the ledger for an individual
// wallet. Addresses are free-form strings; there is no key material behind
// them in this simulation.
type Account struct {
	AccountID    string   `json:"account_id"`
	Balance      float64  `json:"balance"`
	StakeBalance float64  `json:"stake_balance"`
	History      []string `json:"history"`
}

// newAccount constructs a new account value with zero balances.
func newAccount(accountID string) Account {
	return Account{
		AccountID: accountID,
	}
}

// copyAccount clones an account so callers never alias the ledger's
// history slice.
func copyAccount(account Account) Account {
	history := make([]string, len(account.History))
	copy(history, account.History)
	account.History = history

	return account
}
