package walkers

import mk "github.com/dusk-network/microkelvin"

// Offset walks to the nth leaf (0-indexed) of a collection annotated with
// something cardinality-shaped. Since Go has no blanket trait impls to
// reach into an arbitrary A for its Cardinality component (the way the
// system this is ported from borrows A as Cardinality through a marker
// trait), the caller supplies an explicit extractor — a capability-witness
// closure — that knows how to pull a leaf count out of A.
type Offset[L any, A mk.Annotation[L, A], C mk.Compound[L, A, C]] struct {
	remaining uint64
	cardOf    func(A) uint64
}

// NewOffset builds an Offset walker for leaf index n, using cardOf to read
// a subtree's leaf count out of its annotation.
func NewOffset[L any, A mk.Annotation[L, A], C mk.Compound[L, A, C]](n uint64, cardOf func(A) uint64) *Offset[L, A, C] {
	return &Offset[L, A, C]{remaining: n, cardOf: cardOf}
}

func (o *Offset[L, A, C]) Walk(_ C, _ int, slot mk.Child[L, A, C]) mk.Step {
	switch slot.Kind {
	case mk.SlotLeaf:
		if o.remaining == 0 {
			return mk.Found
		}
		o.remaining--
		return mk.Advance

	case mk.SlotNode:
		card := o.cardOf(slot.Node.Annotation())
		if card <= o.remaining {
			o.remaining -= card
			return mk.Advance
		}
		return mk.Into

	case mk.SlotEndOfNode:
		// Every leaf between here and the end of the tree has already been
		// accounted for by the Advance steps that got us this far; running
		// out of slots with remaining still unconsumed means no such nth
		// leaf exists anywhere in the tree, not just at this level.
		return mk.Abort

	default:
		return mk.Advance
	}
}

// Nth constructs a Branch pointing at the nth leaf of root, if any.
func Nth[L any, A mk.Annotation[L, A], C mk.Compound[L, A, C]](
	root *mk.Link[L, A, C], n uint64, cardOf func(A) uint64,
) (*mk.Branch[L, A, C], error) {
	return mk.Walk[L, A, C](root, NewOffset[L, A, C](n, cardOf))
}

// NthMut constructs a BranchMut pointing at the nth leaf of root, if any.
func NthMut[L any, A mk.Annotation[L, A], C mk.Compound[L, A, C]](
	root *mk.Link[L, A, C], n uint64, cardOf func(A) uint64,
) (*mk.BranchMut[L, A, C], error) {
	return mk.WalkMut[L, A, C](root, NewOffset[L, A, C](n, cardOf))
}
