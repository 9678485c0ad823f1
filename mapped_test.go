package microkelvin_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	mk "github.com/dusk-network/microkelvin"
	"github.com/dusk-network/microkelvin/annotations"
	"github.com/dusk-network/microkelvin/examples/linkedlist"
	"github.com/dusk-network/microkelvin/walkers"
)

type keyedPair struct {
	key   uint32
	value string
}

type pairCard = annotations.Cardinality[keyedPair]

func buildPairList(t *testing.T, pairs ...keyedPair) *mk.Link[keyedPair, pairCard, *linkedlist.Node[keyedPair, pairCard]] {
	t.Helper()
	root := linkedlist.Empty[keyedPair, pairCard]()
	for i := len(pairs) - 1; i >= 0; i-- {
		root = linkedlist.Prepend[keyedPair, pairCard](pairs[i], root)
	}
	return root
}

// scenario (f): a MappedBranch over (u32, string) leaves annotated by
// Cardinality, walked with AllLeaves and projected down to just the key,
// yields the key sequence in walker order.
func TestMappedBranchYieldsProjectedSequence(t *testing.T) {
	root := buildPairList(t,
		keyedPair{1, "one"}, keyedPair{2, "two"}, keyedPair{3, "three"},
	)

	branch, err := walkers.First[keyedPair, pairCard, *linkedlist.Node[keyedPair, pairCard]](root)
	require.NoError(t, err)
	require.NotNil(t, branch)

	project := func(p keyedPair) uint32 { return p.key }
	walker := walkers.AllLeaves[keyedPair, pairCard, *linkedlist.Node[keyedPair, pairCard]]{}
	mapped := mk.NewMappedBranch[keyedPair, pairCard, *linkedlist.Node[keyedPair, pairCard], uint32](branch, walker, project)

	got := []uint32{mapped.Value()}
	for {
		key, ok, err := mapped.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, key)
	}

	require.Equal(t, []uint32{1, 2, 3}, got)
}
