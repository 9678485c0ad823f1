package microkelvin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mk "github.com/dusk-network/microkelvin"
	"github.com/dusk-network/microkelvin/examples/linkedlist"
	"github.com/dusk-network/microkelvin/persist"
	"github.com/dusk-network/microkelvin/walkers"
)

// scenario (e): a round-tripped root reports its annotation, and can be
// walked to a specific leaf, without materializing every interior node —
// only the nodes on the path the walk actually needs get decoded.
func TestPersistRoundTrip(t *testing.T) {
	backend := persist.NewMemoryBackend()
	encode, decode := linkedlist.Codecs[int, intCard](backend)

	original := buildList(t, 1, 2, 3, 4, 5)
	persisted, err := mk.Persist[int, intCard, *linkedlist.Node[int, intCard]](original, backend, encode, decode)
	require.NoError(t, err)

	restored := mk.Restore[int, intCard, *linkedlist.Node[int, intCard]](persisted, backend)

	ann := restored.Annotation()
	assert.Equal(t, uint64(5), ann.Uint64())

	cardOf := func(c intCard) uint64 { return c.Uint64() }
	branch, err := walkers.Nth[int, intCard, *linkedlist.Node[int, intCard]](restored, 3, cardOf)
	require.NoError(t, err)
	require.NotNil(t, branch)
	assert.Equal(t, 4, branch.Leaf())
}

// RestoreMany warms its cache through Prefetch, which prefers a Backend's
// own GetMany over fanning out individual Gets; MemoryBackend implements
// BatchBackend, so a single batch call should cover every root restored.
func TestRestoreManyUsesBatchBackend(t *testing.T) {
	backend := persist.NewMemoryBackend()
	var _ persist.BatchBackend = backend
	encode, decode := linkedlist.Codecs[int, intCard](backend)

	firstRoot := buildList(t, 1, 2, 3)
	firstPersisted, err := mk.Persist[int, intCard, *linkedlist.Node[int, intCard]](firstRoot, backend, encode, decode)
	require.NoError(t, err)

	secondRoot := buildList(t, 4, 5)
	secondPersisted, err := mk.Persist[int, intCard, *linkedlist.Node[int, intCard]](secondRoot, backend, encode, decode)
	require.NoError(t, err)

	restored, err := mk.RestoreMany[int, intCard, *linkedlist.Node[int, intCard]](
		context.Background(), []mk.PersistedId[int, intCard, *linkedlist.Node[int, intCard]]{firstPersisted, secondPersisted}, backend,
	)
	require.NoError(t, err)
	require.Len(t, restored, 2)

	assert.Equal(t, uint64(3), restored[0].Annotation().Uint64())
	assert.Equal(t, uint64(2), restored[1].Annotation().Uint64())

	cardOf := func(c intCard) uint64 { return c.Uint64() }
	branch, err := walkers.Nth[int, intCard, *linkedlist.Node[int, intCard]](restored[0], 1, cardOf)
	require.NoError(t, err)
	require.NotNil(t, branch)
	assert.Equal(t, 2, branch.Leaf())

	assert.Equal(t, 1, backend.BatchCalls())
}

func TestMemoryBackendDeduplicates(t *testing.T) {
	backend := persist.NewMemoryBackend()
	id1, err := backend.Put([]byte("same bytes"))
	require.NoError(t, err)
	id2, err := backend.Put([]byte("same bytes"))
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
	assert.Equal(t, 1, backend.Len())
}

func TestMemoryBackendMissingReportsNotFound(t *testing.T) {
	backend := persist.NewMemoryBackend()
	_, err := backend.Get(persist.Identifier{})
	require.Error(t, err)
	assert.ErrorIs(t, err, persist.ErrNotFound)
}

func TestConfigOpenMemory(t *testing.T) {
	cfg := persist.Config{Kind: "memory"}
	backend, err := cfg.Open()
	require.NoError(t, err)
	_, ok := backend.(*persist.MemoryBackend)
	assert.True(t, ok)
}

func TestRegistryLooksUpOnce(t *testing.T) {
	r := persist.NewRegistry()
	r.Register("main", persist.Config{Kind: "memory"})

	first, err := r.Lookup("main")
	require.NoError(t, err)
	second, err := r.Lookup("main")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestRegistryUnknownName(t *testing.T) {
	r := persist.NewRegistry()
	_, err := r.Lookup("missing")
	assert.Error(t, err)
}
