// Package signature provides the digest support used everywhere identity
// and integrity must be derived from content.
package signature

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ZeroHash is the sentinel digest used for the genesis parent link and for
// the merkle commitment over an empty set of transactions. It is a fixed
// value, not the hash of empty input.
const ZeroHash = "0"

// Hash returns the hex encoded sha256 digest of the specified data.
// Identical input always yields an identical digest.
func Hash(data string) string {
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

// Sign produces the placeholder signature recorded on a transaction. No key
// material is involved, the value is a digest derived from the transaction
// identity. The 0x prefix distinguishes signatures from content digests.
func Sign(txID string, timestamp int64) string {
	hash := sha256.Sum256(fmt.Appendf(nil, "%s%d", txID, timestamp))
	return hexutil.Encode(hash[:])
}
