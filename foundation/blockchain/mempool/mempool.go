// Package mempool maintains the ordered pool of transactions waiting to be
// included in the next block. Unlike a priority mempool, admission order is
// preserved: the merkle commitment over a block is order sensitive and the
// synthesized reward transaction must stay last.
package mempool

import (
	"sync"

	"github.com/chainlabs/chainsim/foundation/blockchain/database"
)

// Mempool represents the queue of admitted, fee-reserved transactions.
type Mempool struct {
	mu   sync.RWMutex
	pool []database.Tx
}

// New constructs a new mempool for use.
func New() *Mempool {
	return &Mempool{}
}

// Count returns the current number of transactions in the pool.
func (mp *Mempool) Count() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	return len(mp.pool)
}

// Append adds a transaction to the back of the queue.
func (mp *Mempool) Append(tx database.Tx) {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = append(mp.pool, tx)
}

// Copy returns the queued transactions in admission order.
func (mp *Mempool) Copy() []database.Tx {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	pool := make([]database.Tx, len(mp.pool))
	copy(pool, mp.pool)

	return pool
}

// Fees sums the fees of every queued transaction.
func (mp *Mempool) Fees() float64 {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	var total float64
	for _, tx := range mp.pool {
		total += tx.Fee
	}

	return total
}

// Truncate clears all the transactions from the pool.
func (mp *Mempool) Truncate() {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = nil
}
