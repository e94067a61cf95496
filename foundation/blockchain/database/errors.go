package database

import (
	"errors"
	"fmt"
)

// InsufficientBalanceError is returned when a wallet cannot cover the total
// cost of an operation. It carries the amounts so the caller can report
// required versus available funds.
type InsufficientBalanceError struct {
	Required  float64
	Available float64
}

// Error implements the error interface.
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient funds: %v required, %v available", e.Required, e.Available)
}

// =============================================================================

// InvalidTransactionError is returned when a transaction fails admission,
// carrying a descriptive reason such as an empty party or an unknown wallet.
type InvalidTransactionError struct {
	Reason string
}

// Error implements the error interface.
func (e *InvalidTransactionError) Error() string {
	return fmt.Sprintf("invalid transaction: %s", e.Reason)
}

// =============================================================================

// InvalidBlockError is returned by the chain audit when a block fails a
// structural check. Number identifies the offending block.
type InvalidBlockError struct {
	Number uint64
	Reason string
}

// Error implements the error interface.
func (e *InvalidBlockError) Error() string {
	return fmt.Sprintf("invalid block %d: %s", e.Number, e.Reason)
}

// =============================================================================

// IsLedgerError checks if the error is one of the ledger error types. These
// are expected errors callers can act on, not integrity failures.
func IsLedgerError(err error) bool {
	var ibe *InsufficientBalanceError
	var ite *InvalidTransactionError
	var ible *InvalidBlockError

	switch {
	case errors.As(err, &ibe), errors.As(err, &ite), errors.As(err, &ible):
		return true
	}

	return false
}
