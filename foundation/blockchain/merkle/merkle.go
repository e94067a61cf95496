// Package merkle folds an ordered list of transaction digests into a single
// root digest for commitment and validation support in the blockchain.
package merkle

import (
	"github.com/chainlabs/chainsim/foundation/blockchain/signature"
)

// Hashable represents the behavior concrete data must exhibit to be
// committed by the fold.
type Hashable interface {
	LeafHash() string
}

// Root computes the merkle root over the ordered list of values. Adjacent
// digests are paired left to right, concatenated and re-hashed, and an
// unpaired trailing digest is carried forward unchanged to the next level
// until one digest remains. The commitment is order sensitive: reordering
// the values changes the root. An empty list yields the fixed sentinel.
func Root[T Hashable](values []T) string {
	if len(values) == 0 {
		return signature.ZeroHash
	}

	hashes := make([]string, len(values))
	for i, value := range values {
		hashes[i] = value.LeafHash()
	}

	for len(hashes) > 1 {
		next := make([]string, 0, (len(hashes)+1)/2)

		for i := 0; i < len(hashes); i += 2 {
			if i+1 == len(hashes) {
				next = append(next, hashes[i])
				continue
			}
			next = append(next, signature.Hash(hashes[i]+hashes[i+1]))
		}

		hashes = next
	}

	return hashes[0]
}
