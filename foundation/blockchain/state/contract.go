package state

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/chainlabs/chainsim/foundation/blockchain/database"
	"github.com/chainlabs/chainsim/foundation/blockchain/signature"
)

// dataStorageValue is the flat amount charged into the data storage
// account for every stored payload, on top of the size-based fee.
const dataStorageValue = 0.1

// CreateSmartContract deploys the specified code as a contract owned by
// the creator. The deployment is a pending transaction carrying the code;
// it charges the creator the contract fee schedule and opens a ledger
// account under the derived contract id.
func (s *State) CreateSmartContract(creatorID string, code string, initialValue float64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().Unix()
	contractID := "contract_" + signature.Hash(fmt.Sprintf("%s%s%d", creatorID, code, now))

	tx := database.NewContractTx(creatorID, contractID, initialValue, code)
	if err := s.submitTransaction(tx); err != nil {
		return "", err
	}

	s.db.Create(contractID)

	s.evHandler("state: createsmartcontract: contract[%s] creator[%s]", contractID, creatorID)

	return contractID, nil
}

// ExecuteSmartContract looks up the deployed contract code on the chain
// and simulates a call against it. The contract must already be confirmed
// in a block; pending deployments are not callable.
func (s *State) ExecuteSmartContract(contractID string, function string, args ...any) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, block := range s.chain {
		for _, tx := range block.Trans {
			if tx.Kind == database.KindSmartContract && tx.ToID == contractID {
				result := fmt.Sprintf("Called function %s in smart contract %s: %v", function, contractID, args)
				s.evHandler("state: executesmartcontract: contract[%s] function[%s]", contractID, function)
				return result, nil
			}
		}
	}

	return "", &database.InvalidTransactionError{
		Reason: fmt.Sprintf("smart contract %q not found in the chain", contractID),
	}
}

// StoreData records the specified payload on the chain under the sender's
// account. The payload rides a pending transaction addressed to the data
// storage account and is charged the size-based fee schedule.
func (s *State) StoreData(senderID string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dataID := "data_" + signature.Hash(senderID+hex.EncodeToString(data))

	tx := database.NewDataTx(senderID, database.DataAccountID, dataStorageValue, data)
	if err := s.submitTransaction(tx); err != nil {
		return "", err
	}

	s.evHandler("state: storedata: id[%s] sender[%s] bytes[%d]", dataID, senderID, len(data))

	return dataID, nil
}
