package walkers

import (
	"cmp"

	mk "github.com/dusk-network/microkelvin"
)

// Member searches an ordered collection for a leaf matching a given key,
// descending only into subtrees whose maximum key is large enough to
// possibly contain it. It is the Go rendering of the protocol's "keyed
// search by key k" reference walker, generalized over whatever key-bearing
// annotation the caller's collection uses via two extractor closures —
// the same capability-witness approach Offset uses for Cardinality.
type Member[L any, A mk.Annotation[L, A], C mk.Compound[L, A, C], K cmp.Ordered] struct {
	target  K
	keyOf   func(L) K
	maxKeyOf func(A) (K, bool)
}

// NewMember builds a Member walker for target, using keyOf to read a
// leaf's key and maxKeyOf to read a subtree's maximum key (ok=false
// meaning "subtree is empty, has no maximum").
func NewMember[L any, A mk.Annotation[L, A], C mk.Compound[L, A, C], K cmp.Ordered](
	target K, keyOf func(L) K, maxKeyOf func(A) (K, bool),
) *Member[L, A, C, K] {
	return &Member[L, A, C, K]{target: target, keyOf: keyOf, maxKeyOf: maxKeyOf}
}

func (m *Member[L, A, C, K]) Walk(_ C, _ int, slot mk.Child[L, A, C]) mk.Step {
	switch slot.Kind {
	case mk.SlotLeaf:
		if m.keyOf(slot.Leaf) == m.target {
			return mk.Found
		}
		return mk.Advance

	case mk.SlotNode:
		maxKey, ok := m.maxKeyOf(slot.Node.Annotation())
		if !ok || maxKey < m.target {
			return mk.Advance
		}
		return mk.Into

	default:
		return mk.Advance
	}
}

// Find constructs a Branch pointing at the leaf keyed by target, if any.
func Find[L any, A mk.Annotation[L, A], C mk.Compound[L, A, C], K cmp.Ordered](
	root *mk.Link[L, A, C], target K, keyOf func(L) K, maxKeyOf func(A) (K, bool),
) (*mk.Branch[L, A, C], error) {
	return mk.Walk[L, A, C](root, NewMember[L, A, C, K](target, keyOf, maxKeyOf))
}
