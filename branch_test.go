package microkelvin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mk "github.com/dusk-network/microkelvin"
	"github.com/dusk-network/microkelvin/annotations"
	"github.com/dusk-network/microkelvin/examples/linkedlist"
	"github.com/dusk-network/microkelvin/walkers"
)

type intCard = annotations.Cardinality[int]

func buildList(t *testing.T, values ...int) *mk.Link[int, intCard, *linkedlist.Node[int, intCard]] {
	t.Helper()
	root := linkedlist.Empty[int, intCard]()
	for i := len(values) - 1; i >= 0; i-- {
		root = linkedlist.Prepend[int, intCard](values[i], root)
	}
	return root
}

// scenario (a): a fresh, in-memory collection reports the annotation its
// algebra predicts without ever touching persistence.
func TestCardinalityOfFreshList(t *testing.T) {
	root := buildList(t, 1, 2, 3, 4, 5)
	ann := root.Annotation()
	assert.Equal(t, uint64(5), ann.Uint64())
}

func TestCardinalityOfEmptyList(t *testing.T) {
	root := linkedlist.Empty[int, intCard]()
	ann := root.Annotation()
	assert.Equal(t, uint64(0), ann.Uint64())
}

// scenario (b): First/AllLeaves visits slots in order.
func TestFirstLeaf(t *testing.T) {
	root := buildList(t, 10, 20, 30)
	branch, err := walkers.First[int, intCard, *linkedlist.Node[int, intCard]](root)
	require.NoError(t, err)
	require.NotNil(t, branch)
	assert.Equal(t, 10, branch.Leaf())
}

// scenario (c): iterating via the Walker protocol produces every leaf in
// order, and matches an Nth-by-index walk at every position.
func TestIteratorMatchesNth(t *testing.T) {
	values := []int{10, 20, 30, 40}
	root := buildList(t, values...)

	branch, err := walkers.First[int, intCard, *linkedlist.Node[int, intCard]](root)
	require.NoError(t, err)
	require.NotNil(t, branch)

	it := mk.NewIterator[int, intCard, *linkedlist.Node[int, intCard]](
		branch, walkers.AllLeaves[int, intCard, *linkedlist.Node[int, intCard]]{},
	)

	got := []int{branch.Leaf()}
	for {
		leaf, ok, err := it.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, leaf)
	}
	assert.Equal(t, values, got)

	cardOf := func(c intCard) uint64 { return c.Uint64() }
	for i, want := range values {
		nth, err := walkers.Nth[int, intCard, *linkedlist.Node[int, intCard]](root, uint64(i), cardOf)
		require.NoError(t, err)
		require.NotNil(t, nth)
		assert.Equal(t, want, nth.Leaf())
	}
}

// Nth past the end of the list reports no branch and no error.
func TestNthOutOfRange(t *testing.T) {
	root := buildList(t, 1, 2, 3)
	cardOf := func(c intCard) uint64 { return c.Uint64() }
	branch, err := walkers.Nth[int, intCard, *linkedlist.Node[int, intCard]](root, 10, cardOf)
	require.NoError(t, err)
	assert.Nil(t, branch)
}

// keyedInt lets a plain int serve as its own Max key, the way any leaf can
// be its own key under Keyed.
type keyedInt int

func (k keyedInt) Key() int { return int(k) }

type maxAndCard = annotations.Product[keyedInt, annotations.Cardinality[keyedInt], annotations.Max[keyedInt, int]]

func buildCombinedList(t *testing.T, values ...int) *mk.Link[keyedInt, maxAndCard, *linkedlist.Node[keyedInt, maxAndCard]] {
	t.Helper()
	root := linkedlist.Empty[keyedInt, maxAndCard]()
	for i := len(values) - 1; i >= 0; i-- {
		root = linkedlist.Prepend[keyedInt, maxAndCard](keyedInt(values[i]), root)
	}
	return root
}

// mutating a leaf through BranchMut and committing must fold the change
// back into every cached annotation on the path: cardinality stays the
// same, but the collection's Max must track the rewrite.
func TestMutationMaintainsAnnotation(t *testing.T) {
	root := buildCombinedList(t, 1, 9, 3)

	before := root.Annotation()
	assert.Equal(t, 9, before.Second.Key())

	cardOf := func(a maxAndCard) uint64 { return a.First.Uint64() }
	bm, err := walkers.NthMut[keyedInt, maxAndCard, *linkedlist.Node[keyedInt, maxAndCard]](root, 1, cardOf)
	require.NoError(t, err)
	require.NotNil(t, bm)
	assert.Equal(t, keyedInt(9), bm.Leaf())

	bm.SetLeaf(keyedInt(2))
	require.NoError(t, bm.Commit())

	after := root.Annotation()
	assert.Equal(t, 3, after.Second.Key())
	assert.Equal(t, before.First, after.First)
}

// a walk-aborting or -violating Walker must not panic the caller for
// ordinary exhaustion, only for a genuine protocol violation.
func TestWalkExhaustionIsNotAnError(t *testing.T) {
	root := linkedlist.Empty[int, intCard]()
	branch, err := walkers.First[int, intCard, *linkedlist.Node[int, intCard]](root)
	require.NoError(t, err)
	assert.Nil(t, branch)
}
