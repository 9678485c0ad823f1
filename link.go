package microkelvin

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/dusk-network/microkelvin/d"
	"github.com/dusk-network/microkelvin/persist"
)

// Link is the annotated indirection every edge between Compound nodes goes
// through. It can hold, independently of each other, an in-memory node
// value and a persisted identifier for that same node, and it lazily
// computes and caches the node's annotation.
//
// A Link starts in one of three states:
//   - memory-only: built from a freshly constructed C, no Identifier yet.
//   - identified-only: restored from persistence, holding an Identifier and
//     a Backend capable of resolving it, but no materialized C.
//   - both: an identified-only Link that has since been materialized, or a
//     memory-only Link that has since been persisted.
//
// No explicit tag tracks which state a Link is in; it is read off the
// nilness of the cached node pointer and whether an Identifier is set. The
// two lazy caches (materialized node, computed annotation) are each guarded
// by their own sync.Once so that concurrent readers publish and observe the
// computed value through the same memory barrier, without taking a lock on
// the hot path once the value is warm.
type Link[L any, A Annotation[L, A], C Compound[L, A, C]] struct {
	id      persist.Identifier
	hasID   bool
	backend persist.Backend

	nodeOnce sync.Once
	node     C
	nodeErr  error

	annOnce sync.Once
	ann     A

	encode persist.EncodeFunc[C, A]
	decode persist.DecodeFunc[C, A]
}

// NewLink wraps an already-constructed node in a memory-only Link.
func NewLink[L any, A Annotation[L, A], C Compound[L, A, C]](node C) *Link[L, A, C] {
	l := &Link[L, A, C]{node: node}
	l.nodeOnce.Do(func() {}) // node is already materialized; mark it warm.
	return l
}

// NewIdentifiedLink builds an identified-only Link: it knows how to fetch
// and decode its node on demand but has not done so yet, and it is handed
// its annotation up front by the caller (read off the parent's own decoded
// bytes, or off a PersistedId's snapshot for a restored root) so Annotation
// never has a reason to touch the backend.
func NewIdentifiedLink[L any, A Annotation[L, A], C Compound[L, A, C]](
	id persist.Identifier,
	ann A,
	backend persist.Backend,
	decode persist.DecodeFunc[C, A],
	encode persist.EncodeFunc[C, A],
) *Link[L, A, C] {
	l := &Link[L, A, C]{id: id, hasID: true, backend: backend, decode: decode, encode: encode}
	l.annOnce.Do(func() { l.ann = ann })
	return l
}

// Identifier reports the Link's persisted identifier and whether it has
// one. A memory-only Link that has never been persisted reports false.
func (l *Link[L, A, C]) Identifier() (persist.Identifier, bool) {
	return l.id, l.hasID
}

// Inner materializes and returns the node this Link refers to, fetching and
// decoding it from the backend at most once even under concurrent callers.
// A fetch failure is cached and returned to every caller rather than
// retried, since a Link whose backend cannot resolve its identifier is not
// expected to start succeeding on its own.
func (l *Link[L, A, C]) Inner() (C, error) {
	l.nodeOnce.Do(func() {
		if l.hasID && l.backend != nil && l.decode != nil {
			raw, err := l.backend.Get(l.id)
			if err != nil {
				l.nodeErr = errors.Wrapf(err, "link: fetching %s", l.id)
				return
			}
			// The annotation decode returns here is the same value this
			// Link was already constructed with (NewIdentifiedLink seeded
			// it from the parent's own bytes); it is discarded rather than
			// re-cached so that materializing a node is never what makes
			// Annotation available.
			node, _, err := l.decode(raw)
			if err != nil {
				l.nodeErr = errors.Wrapf(err, "link: decoding %s", l.id)
				return
			}
			l.node = node
		}
	})
	return l.node, l.nodeErr
}

// InnerMut returns a mutable view of the node for exclusive-access callers
// (BranchMut). Handing out the view invalidates both the cached annotation
// and the persisted identifier, since the node's content may change; an
// Annotation read after that is recomputed from the node as it then is.
func (l *Link[L, A, C]) InnerMut() (*C, error) {
	if _, err := l.Inner(); err != nil {
		return nil, err
	}
	l.Invalidate()
	return &l.node, nil
}

// Invalidate clears the cached annotation and persisted identifier after an
// out-of-band mutation of the node through InnerMut. It must only be called
// while the caller holds exclusive access to the Link, and only once the
// node is already materialized — the recompute Annotation performs
// afterwards reads l.node directly rather than through Inner, so it must
// never be asked to do so before materialization has happened.
func (l *Link[L, A, C]) Invalidate() {
	l.annOnce = sync.Once{}
	l.hasID = false
	l.id = persist.Identifier{}
}

// Annotation returns this Link's annotation, never touching the backend to
// do so. A state-2 Link is handed its annotation at construction time (see
// NewIdentifiedLink) and never needs to compute it at all; a memory-only
// Link already holds its node directly, so folding children is a pure,
// in-memory, infallible operation — the only source of truth an annotation
// ever needs is already resident by the time this is called.
func (l *Link[L, A, C]) Annotation() A {
	var zero A
	l.annOnce.Do(func() {
		node := l.node
		children := make([]A, 0, node.NumSlots())
		for i := 0; i < node.NumSlots(); i++ {
			child := node.Child(i)
			switch child.Kind {
			case SlotLeaf:
				children = append(children, zero.FromLeaf(child.Leaf))
			case SlotNode:
				children = append(children, child.Node.Annotation())
			case SlotEmpty:
				children = append(children, zero.Zero())
			case SlotEndOfNode:
				l.ann = zero.Combine(children)
				return
			}
		}
		l.ann = zero.Combine(children)
	})
	return l.ann
}

// persistedID reports the identifier this Link was most recently persisted
// under, asserting via d.Chk that callers only ask after a successful
// Persist — asking before is a programmer error, not a runtime condition.
func (l *Link[L, A, C]) persistedID() persist.Identifier {
	d.Chk.True(l.hasID, "link has no persisted identifier yet")
	return l.id
}
