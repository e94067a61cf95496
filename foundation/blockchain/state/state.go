// Package state is the core API for the blockchain and implements all the
// business rules and processing.
package state

import (
	"sync"

	"github.com/chainlabs/chainsim/foundation/blockchain/consensus"
	"github.com/chainlabs/chainsim/foundation/blockchain/database"
	"github.com/chainlabs/chainsim/foundation/blockchain/genesis"
	"github.com/chainlabs/chainsim/foundation/blockchain/mempool"
)

// EventHandler defines a function that is called when events occur in the
// processing of the chain.
type EventHandler func(v string, args ...any)

// Config represents the configuration required to construct a chain.
type Config struct {
	Genesis        genesis.Genesis
	Source         consensus.Source
	MaxPoWAttempts uint64
	EvHandler      EventHandler
}

// State manages the blockchain: the ordered sequence of blocks, the
// pending transaction pool and the wallet ledger. These resources are
// owned exclusively by one State value; every operation runs to completion
// under its lock, so exactly one block is ever appended per production
// round.
type State struct {
	mu sync.RWMutex

	evHandler    EventHandler
	genesis      genesis.Genesis
	chain        []database.Block
	difficulty   uint
	miningReward float64
	transFees    float64
	mempool      *mempool.Mempool
	db           *database.Database
	validators   map[string]float64
	finalizer    consensus.Finalizer
}

// New constructs a new chain for the configured consensus strategy,
// creating the genesis block and seeding the founding balances.
func New(cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	finalizer, err := consensus.Retrieve(cfg.Genesis.Consensus, consensus.Config{
		Source:         cfg.Source,
		MaxPoWAttempts: cfg.MaxPoWAttempts,
		EvHandler:      ev,
	})
	if err != nil {
		return nil, err
	}

	s := State{
		evHandler:    ev,
		genesis:      cfg.Genesis,
		difficulty:   cfg.Genesis.Difficulty,
		miningReward: cfg.Genesis.MiningReward,
		mempool:      mempool.New(),
		db:           database.New(cfg.Genesis.Balances),
		validators:   make(map[string]float64),
		finalizer:    finalizer,
	}

	s.chain = append(s.chain, database.GenesisBlock(s.difficulty))
	ev("state: genesis block created: consensus[%s] difficulty[%d]", cfg.Genesis.Consensus, s.difficulty)

	return &s, nil
}
