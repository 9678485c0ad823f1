package microkelvin

import "github.com/dusk-network/microkelvin/d"

// level is one entry in a Branch's path from the root down to its leaf: the
// Link traversed to reach this node, the node itself, and the slot offset
// currently under consideration. Branch keeps these as a plain slice rather
// than a chain of parent pointers so that advancing or retreating never
// recurses and never allocates beyond the occasional append when
// descending — grounded on the dolt meta-sequence cursor's advance/retreat
// pair, generalized from a fixed two-level B-tree cursor to an arbitrary
// depth stack.
type level[L any, A Annotation[L, A], C Compound[L, A, C]] struct {
	link   *Link[L, A, C]
	node   C
	offset int
}

// Branch is a read-only cursor pointing at one leaf inside a Compound tree,
// together with the full path of nodes and offsets that led to it. It is
// the Go rendering of the walked-to position spec.md calls a branch.
type Branch[L any, A Annotation[L, A], C Compound[L, A, C]] struct {
	levels []level[L, A, C]
	leaf   L
}

// Walk builds a Branch by repeatedly asking w what to do at the slot under
// consideration, starting at root's first slot. It returns a nil Branch
// (with a nil error) if the walk exhausts the tree without finding a slot
// the Walker accepts.
func Walk[L any, A Annotation[L, A], C Compound[L, A, C]](root *Link[L, A, C], w Walker[L, A, C]) (*Branch[L, A, C], error) {
	node, err := root.Inner()
	if err != nil {
		return nil, err
	}
	b := &Branch[L, A, C]{levels: []level[L, A, C]{{link: root, node: node, offset: 0}}}
	found, err := b.run(w)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return b, nil
}

// run drives the walk loop shared by Walk and Iterator.Next: it never
// recurses, reusing the same explicit level stack across both an initial
// descent and a later resumption.
func (b *Branch[L, A, C]) run(w Walker[L, A, C]) (bool, error) {
	for {
		top := &b.levels[len(b.levels)-1]
		if top.offset >= top.node.NumSlots() {
			if !b.popLevel() {
				return false, nil
			}
			continue
		}

		slot := top.node.Child(top.offset)

		step := w.Walk(top.node, top.offset, slot)
		switch step.Kind {
		case StepAbort:
			return false, nil

		case StepAdvance:
			if slot.Kind == SlotEndOfNode {
				if !b.popLevel() {
					return false, nil
				}
				continue
			}
			top.offset++

		case StepFound:
			d.Exp.Equal(SlotLeaf, slot.Kind, "Walker returned Found for a non-leaf slot")
			b.leaf = slot.Leaf
			return true, nil

		case StepInto:
			d.Exp.Equal(SlotNode, slot.Kind, "Walker returned Into for a non-node slot")
			child, err := slot.Node.Inner()
			if err != nil {
				return false, err
			}
			b.levels = append(b.levels, level[L, A, C]{link: slot.Node, node: child, offset: 0})

		default:
			d.Chk.Fail("Walker returned an unrecognized Step")
		}
	}
}

// popLevel discards the current (exhausted) level and advances its parent
// past the slot it was reached through. It reports false once the root
// level itself is exhausted.
func (b *Branch[L, A, C]) popLevel() bool {
	if len(b.levels) == 1 {
		return false
	}
	b.levels = b.levels[:len(b.levels)-1]
	b.levels[len(b.levels)-1].offset++
	return true
}

// Leaf returns the leaf value this Branch points to.
func (b *Branch[L, A, C]) Leaf() L {
	return b.leaf
}

// Depth reports how many levels deep this Branch's leaf sits, with 1
// meaning the leaf is a direct child of the root.
func (b *Branch[L, A, C]) Depth() int {
	return len(b.levels)
}

// Path returns, for each level from root to leaf, the node at that level
// and the slot offset the branch passed through. The slice is a fresh copy,
// but its nodes are the Branch's own node values: when C is a pointer type,
// mutating them (through SetChild) mutates the tree the Branch was walked
// from.
func (b *Branch[L, A, C]) Path() []struct {
	Node   C
	Offset int
} {
	out := make([]struct {
		Node   C
		Offset int
	}, len(b.levels))
	for i, lv := range b.levels {
		out[i].Node = lv.node
		out[i].Offset = lv.offset
	}
	return out
}
