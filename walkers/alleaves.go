// Package walkers provides the reference Walker implementations the walker
// protocol names: an in-order full traversal, offset search by
// cardinality, first-leaf, and member search by key. Each one is a small,
// stateful Walker value re-invoked once per slot, exactly as the protocol
// it implements describes.
package walkers

import mk "github.com/dusk-network/microkelvin"

// AllLeaves visits every slot in order without ever skipping or aborting,
// used to drive a full in-order traversal via Branch/Iterator instead of a
// bespoke recursive walk.
type AllLeaves[L any, A mk.Annotation[L, A], C mk.Compound[L, A, C]] struct{}

func (AllLeaves[L, A, C]) Walk(_ C, _ int, slot mk.Child[L, A, C]) mk.Step {
	switch slot.Kind {
	case mk.SlotLeaf:
		return mk.Found
	case mk.SlotNode:
		return mk.Into
	default:
		return mk.Advance
	}
}

// First returns a Branch pointing at root's first leaf in slot order.
func First[L any, A mk.Annotation[L, A], C mk.Compound[L, A, C]](root *mk.Link[L, A, C]) (*mk.Branch[L, A, C], error) {
	return mk.Walk[L, A, C](root, AllLeaves[L, A, C]{})
}
