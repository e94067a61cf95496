package merkle_test

import (
	"testing"

	"github.com/chainlabs/chainsim/foundation/blockchain/merkle"
	"github.com/chainlabs/chainsim/foundation/blockchain/signature"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// leaf gives the tests a minimal Hashable value.
type leaf string

func (l leaf) LeafHash() string {
	return signature.Hash(string(l))
}

func Test_Root(t *testing.T) {
	t.Log("Given the need to commit an ordered list of values to one digest.")
	{
		t.Logf("\tTest 0:\tWhen committing an empty list.")
		{
			if root := merkle.Root([]leaf{}); root != signature.ZeroHash {
				t.Fatalf("\t%s\tTest 0:\tShould return the fixed sentinel: got %q.", failed, root)
			}
			t.Logf("\t%s\tTest 0:\tShould return the fixed sentinel.", success)
		}

		t.Logf("\tTest 1:\tWhen committing a single value.")
		{
			if root := merkle.Root([]leaf{"a"}); root != leaf("a").LeafHash() {
				t.Fatalf("\t%s\tTest 1:\tShould return the leaf digest unchanged.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould return the leaf digest unchanged.", success)
		}

		t.Logf("\tTest 2:\tWhen committing a pair of values.")
		{
			exp := signature.Hash(leaf("a").LeafHash() + leaf("b").LeafHash())
			if root := merkle.Root([]leaf{"a", "b"}); root != exp {
				t.Fatalf("\t%s\tTest 2:\tShould hash the concatenated pair.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould hash the concatenated pair.", success)
		}

		t.Logf("\tTest 3:\tWhen committing an odd number of values.")
		{
			// The trailing digest is carried forward unchanged, not duplicated.
			level1 := signature.Hash(leaf("a").LeafHash() + leaf("b").LeafHash())
			exp := signature.Hash(level1 + leaf("c").LeafHash())

			if root := merkle.Root([]leaf{"a", "b", "c"}); root != exp {
				t.Fatalf("\t%s\tTest 3:\tShould carry the unpaired trailing digest forward.", failed)
			}
			t.Logf("\t%s\tTest 3:\tShould carry the unpaired trailing digest forward.", success)
		}

		t.Logf("\tTest 4:\tWhen permuting the committed values.")
		{
			if merkle.Root([]leaf{"a", "b", "c"}) == merkle.Root([]leaf{"c", "b", "a"}) {
				t.Fatalf("\t%s\tTest 4:\tShould change the root when the order changes.", failed)
			}
			t.Logf("\t%s\tTest 4:\tShould change the root when the order changes.", success)
		}
	}
}
