package microkelvin

import (
	"context"

	"github.com/pkg/errors"

	"github.com/dusk-network/microkelvin/persist"
)

// PersistedId is the durable counterpart of a Link: the Identifier a root
// was written under, plus everything needed to read it back into a fresh
// Link against the same or a different Backend. It is the value a caller
// actually stores (in a file, in a parent structure's own leaf, etc.)
// between process runs.
type PersistedId[L any, A Annotation[L, A], C Compound[L, A, C]] struct {
	id     persist.Identifier
	ann    A
	decode persist.DecodeFunc[C, A]
	encode persist.EncodeFunc[C, A]
}

// Identifier returns the content identifier this PersistedId resolves to.
func (p PersistedId[L, A, C]) Identifier() persist.Identifier {
	return p.id
}

// Annotation returns the root's annotation as it stood at Persist time, the
// same value a Link restored from this PersistedId is seeded with so its own
// Annotation never has to touch the backend.
func (p PersistedId[L, A, C]) Annotation() A {
	return p.ann
}

// Persist walks root's node graph and writes every reachable node into
// backend, bottom-up, so that a parent node is only ever written once its
// children's identifiers are known. It returns a PersistedId the caller can
// later pass to Restore, against this or any Backend holding the same
// content.
//
// This mirrors ValueStore.WriteValue's "encode then put" shape, generalized
// to a whole subtree instead of one value, since a Link's children may
// themselves be unwritten memory-only Links.
func Persist[L any, A Annotation[L, A], C Compound[L, A, C]](
	root *Link[L, A, C], backend persist.Backend, encode persist.EncodeFunc[C, A], decode persist.DecodeFunc[C, A],
) (PersistedId[L, A, C], error) {
	var zero PersistedId[L, A, C]

	node, err := root.Inner()
	if err != nil {
		return zero, err
	}

	for i := 0; i < node.NumSlots(); i++ {
		child := node.Child(i)
		if child.Kind != SlotNode {
			continue
		}
		if _, alreadyPersisted := child.Node.Identifier(); alreadyPersisted {
			continue
		}
		if _, err := Persist[L, A, C](child.Node, backend, encode, decode); err != nil {
			return zero, errors.Wrap(err, "persist: writing child")
		}
	}

	ann := root.Annotation()

	raw, err := encode(node, ann)
	if err != nil {
		return zero, errors.Wrap(err, "persist: encoding node")
	}
	id, err := backend.Put(raw)
	if err != nil {
		return zero, errors.Wrap(err, "persist: writing node")
	}

	root.hasID = true
	root.id = id

	return PersistedId[L, A, C]{id: id, ann: ann, decode: decode, encode: encode}, nil
}

// Restore builds an identified-only Link from a PersistedId: the Link
// knows how to fetch and decode its node from backend on first use, but
// does nothing eagerly. The Link is seeded with the PersistedId's annotation
// snapshot, so asking a restored root for its Cardinality materializes no
// node at all.
func Restore[L any, A Annotation[L, A], C Compound[L, A, C]](
	p PersistedId[L, A, C], backend persist.Backend,
) *Link[L, A, C] {
	return NewIdentifiedLink[L, A, C](p.id, p.ann, backend, p.decode, p.encode)
}

// RestoreMany builds identified-only Links for a whole batch of PersistedIds
// at once, the way a caller that already knows it is about to walk many
// roots in a row would call it rather than restoring one at a time. It
// warms a single persist.Prefetch round trip across every root's
// Identifier first, then hands each resulting Link a Backend that serves
// from that warm cache (falling through to backend on a miss), so the
// first Inner call on any of them never re-fetches what Prefetch already
// pulled.
func RestoreMany[L any, A Annotation[L, A], C Compound[L, A, C]](
	ctx context.Context, ps []PersistedId[L, A, C], backend persist.Backend,
) ([]*Link[L, A, C], error) {
	if len(ps) == 0 {
		return nil, nil
	}

	ids := make([]persist.Identifier, len(ps))
	for i, p := range ps {
		ids[i] = p.id
	}

	cache, err := persist.Prefetch(ctx, backend, ids)
	if err != nil {
		return nil, errors.Wrap(err, "persist: prefetching roots")
	}
	warm := persist.NewPrefetchedBackend(cache, backend)

	links := make([]*Link[L, A, C], len(ps))
	for i, p := range ps {
		links[i] = NewIdentifiedLink[L, A, C](p.id, p.ann, warm, p.decode, p.encode)
	}
	return links, nil
}
