package database

import (
	"fmt"
	"time"

	"github.com/chainlabs/chainsim/foundation/blockchain/merkle"
	"github.com/chainlabs/chainsim/foundation/blockchain/signature"
)

// BlockHeader represents the common information required for each block.
// The Validator field is set only under stake-based finalization and is
// deliberately excluded from the hash input.
type BlockHeader struct {
	Number        uint64 `json:"number"`
	TimeStamp     int64  `json:"timestamp"`
	MerkleRoot    string `json:"merkle_root"`
	PrevBlockHash string `json:"prev_block_hash"`
	Nonce         uint64 `json:"nonce"`
	Difficulty    uint   `json:"difficulty"`
	Validator     string `json:"validator,omitempty"`
}

// Block represents a group of transactions batched together with the
// linkage and consensus metadata. Once appended to the chain a block is
// immutable.
type Block struct {
	Header BlockHeader `json:"header"`
	Trans  []Tx        `json:"trans"`
	Hash   string      `json:"hash"`
}

// NewBlock constructs a candidate block over the ordered transactions,
// computing the merkle commitment and the initial hash with nonce zero.
func NewBlock(number uint64, trans []Tx, prevBlockHash string, difficulty uint) Block {
	b := Block{
		Header: BlockHeader{
			Number:        number,
			TimeStamp:     time.Now().UTC().Unix(),
			MerkleRoot:    merkle.Root(trans),
			PrevBlockHash: prevBlockHash,
			Difficulty:    difficulty,
		},
		Trans: trans,
	}

	b.Hash = b.CalculateHash()
	return b
}

// GenesisBlock constructs the first block of a chain: no transactions and
// the zero-hash parent sentinel.
func GenesisBlock(difficulty uint) Block {
	return NewBlock(0, nil, signature.ZeroHash, difficulty)
}

// CalculateHash derives the block hash from the header fields. This is the
// only way a block hash is ever produced.
func (b Block) CalculateHash() string {
	data := fmt.Sprintf("%d%d%s%s%d%d",
		b.Header.Number,
		b.Header.TimeStamp,
		b.Header.MerkleRoot,
		b.Header.PrevBlockHash,
		b.Header.Nonce,
		b.Header.Difficulty,
	)

	return signature.Hash(data)
}

// HashSolved reports whether the block hash starts with the number of zero
// hex digits its difficulty requires.
func (b Block) HashSolved() bool {
	return isHashSolved(b.Header.Difficulty, b.Hash)
}

// ValidateBlock checks the structural commitments of this block against its
// predecessor: the stored hash, the parent linkage and the merkle root.
func (b Block) ValidateBlock(prevBlock Block) error {
	if b.Hash != b.CalculateHash() {
		return &InvalidBlockError{Number: b.Header.Number, Reason: "stored hash does not match recomputed hash"}
	}

	if b.Header.PrevBlockHash != prevBlock.Hash {
		return &InvalidBlockError{Number: b.Header.Number, Reason: "parent hash does not match previous block"}
	}

	if b.Header.MerkleRoot != merkle.Root(b.Trans) {
		return &InvalidBlockError{Number: b.Header.Number, Reason: "merkle root does not match transactions"}
	}

	return nil
}

// String implements the fmt.Stringer interface for logging.
func (b Block) String() string {
	return fmt.Sprintf("block[%d]: %s at: %d, with: %d transactions, nonce: %d, difficulty: %d",
		b.Header.Number, b.Hash, b.Header.TimeStamp, len(b.Trans), b.Header.Nonce, b.Header.Difficulty)
}

// isHashSolved checks the hash complies with the proof of work rule for the
// specified difficulty.
func isHashSolved(difficulty uint, hash string) bool {
	if int(difficulty) > len(hash) {
		return false
	}

	for _, c := range hash[:difficulty] {
		if c != '0' {
			return false
		}
	}

	return true
}
