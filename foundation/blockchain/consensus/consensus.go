// Package consensus provides the interchangeable finalization strategies a
// chain can run under: proof of work, proof of stake and delegated proof of
// stake. A strategy either finalizes the candidate block in place or
// signals a named consensus failure; none of them consult other nodes.
package consensus

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/chainlabs/chainsim/foundation/blockchain/database"
)

// Set of strategy names.
const (
	StrategyPoW  = "POW"
	StrategyPoS  = "POS"
	StrategyDPoS = "DPOS"
)

// Error signals that a candidate block could not be finalized. The reason
// names the failure: not a registered validator, a failed stake draw, or
// not being selected as a delegate.
type Error struct {
	Reason string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("consensus error: %s", e.Reason)
}

// newError constructs a consensus error with a formatted reason.
func newError(format string, args ...any) error {
	return &Error{Reason: fmt.Sprintf(format, args...)}
}

// =============================================================================

// Source produces uniform random values in [0,1). It exists so tests can
// supply deterministic sequences instead of true randomness.
type Source interface {
	Float64() float64
}

// mathSource is the default source backed by math/rand.
type mathSource struct{}

func (mathSource) Float64() float64 {
	return rand.Float64()
}

// =============================================================================

// Round carries the per-attempt context a strategy needs: who proposes the
// block and, for stake-based strategies, their registered stake.
type Round struct {
	ProducerID string
	Stake      float64
	Registered bool
}

// Finalizer represents the behavior required to commit a candidate block's
// proof before it may be appended to the chain.
type Finalizer interface {
	Finalize(ctx context.Context, b *database.Block, round Round) error
}

// =============================================================================

// Config carries the knobs shared by the strategies.
type Config struct {
	// Source overrides the randomness used by the stake-based strategies.
	Source Source

	// MaxPoWAttempts bounds the nonce search. Zero leaves it unbounded.
	MaxPoWAttempts uint64

	// EvHandler receives progress events. May be nil.
	EvHandler func(v string, args ...any)
}

// Retrieve returns the finalization strategy registered under the specified
// name.
func Retrieve(name string, cfg Config) (Finalizer, error) {
	ev := cfg.EvHandler
	if ev == nil {
		ev = func(v string, args ...any) {}
	}

	src := cfg.Source
	if src == nil {
		src = mathSource{}
	}

	switch strings.ToUpper(name) {
	case StrategyPoW:
		return &ProofOfWork{maxAttempts: cfg.MaxPoWAttempts, ev: ev}, nil
	case StrategyPoS:
		return &ProofOfStake{src: src, ev: ev}, nil
	case StrategyDPoS:
		return &DelegatedProofOfStake{src: src, ev: ev}, nil
	}

	return nil, fmt.Errorf("consensus strategy %q does not exist", name)
}
