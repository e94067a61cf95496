package database

import (
	"fmt"
	"time"

	"github.com/chainlabs/chainsim/foundation/blockchain/signature"
)

// RewardAccountID is the distinguished sender of synthesized reward
// transactions. Funds sent from this account are minted, not debited.
const RewardAccountID = "BLOCKCHAIN_REWARD"

// DataAccountID is the distinguished receiver of data storage transactions.
const DataAccountID = "BLOCKCHAIN_DATA"

// TxKind identifies the variant of a transaction.
type TxKind string

// Set of transaction kinds.
const (
	KindTransfer      TxKind = "transfer"
	KindSmartContract TxKind = "contract"
	KindDataStorage   TxKind = "data"
)

// Fee schedule by transaction kind.
const (
	transferFeeRate = 0.001
	contractFeeRate = 0.01
	contractFeeFlat = 0.5
	dataFeeRate     = 0.005
	dataFeePerByte  = 0.0001
)

// =============================================================================

// Tx is the transactional information between two parties. The id, fee and
// placeholder signature are derived once at construction and are immutable
// thereafter.
type Tx struct {
	ID        string  `json:"id"`
	Kind      TxKind  `json:"kind"`
	FromID    string  `json:"from"`
	ToID      string  `json:"to"`
	Value     float64 `json:"value"`
	Fee       float64 `json:"fee"`
	Code      string  `json:"code,omitempty"`
	Data      []byte  `json:"data,omitempty"`
	TimeStamp int64   `json:"timestamp"`
	Signature string  `json:"sig"`
}

// NewTx constructs a new transfer transaction.
func NewTx(fromID string, toID string, value float64) Tx {
	tx := newTx(KindTransfer, fromID, toID, value)
	tx.Fee = transferFeeRate * value

	return tx
}

// NewContractTx constructs a transaction that deploys smart contract code.
func NewContractTx(fromID string, toID string, value float64, code string) Tx {
	tx := newTx(KindSmartContract, fromID, toID, value)
	tx.Code = code
	tx.Fee = contractFeeRate*value + contractFeeFlat

	return tx
}

// NewDataTx constructs a transaction that stores an arbitrary payload.
func NewDataTx(fromID string, toID string, value float64, data []byte) Tx {
	tx := newTx(KindDataStorage, fromID, toID, value)
	tx.Data = data
	tx.Fee = dataFeeRate*value + float64(len(data))*dataFeePerByte

	return tx
}

// newTx derives the identity fields shared by every transaction kind.
func newTx(kind TxKind, fromID string, toID string, value float64) Tx {
	now := time.Now().UTC().Unix()
	id := signature.Hash(fmt.Sprintf("%s%s%v%d", fromID, toID, value, now))

	return Tx{
		ID:        id,
		Kind:      kind,
		FromID:    fromID,
		ToID:      toID,
		Value:     value,
		TimeStamp: now,
		Signature: signature.Sign(id, now),
	}
}

// =============================================================================

// Validate checks the transaction's own validity predicate: both parties
// must be named and the amount must be positive.
func (tx Tx) Validate() error {
	if tx.FromID == "" {
		return &InvalidTransactionError{Reason: "empty sender"}
	}

	if tx.ToID == "" {
		return &InvalidTransactionError{Reason: "empty receiver"}
	}

	if tx.Value <= 0 {
		return &InvalidTransactionError{Reason: "non-positive amount"}
	}

	return nil
}

// Cost returns the total the sender must hold for admission.
func (tx Tx) Cost() float64 {
	return tx.Value + tx.Fee
}

// LeafHash implements the merkle Hashable interface. The digest covers only
// the semantically identifying fields so logically identical transfers hash
// identically regardless of fee, timestamp or id.
func (tx Tx) LeafHash() string {
	return signature.Hash(fmt.Sprintf("%s%s%v", tx.FromID, tx.ToID, tx.Value))
}

// String implements the fmt.Stringer interface for logging.
func (tx Tx) String() string {
	return fmt.Sprintf("%s:%s->%s:%v", tx.Kind, tx.FromID, tx.ToID, tx.Value)
}
