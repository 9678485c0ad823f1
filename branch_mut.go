package microkelvin

import (
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/dusk-network/microkelvin/d"
)

// BranchMut is a Branch obtained for mutation: it grants exclusive access
// to the leaf it points to and to every node along its path, and it is
// responsible for folding any mutation back into the cached annotations on
// that path once the caller is done. Go has no destructors, so the
// "recompute on drop" behaviour this mutation model calls for is instead an
// explicit Commit call; a finalizer stands in for the detection (not the
// recomputation) of a BranchMut that was discarded without one, logging a
// warning the way an abandoned resource would be reported elsewhere in this
// codebase.
type BranchMut[L any, A Annotation[L, A], C Compound[L, A, C]] struct {
	levels    []level[L, A, C]
	committed bool
}

// WalkMut builds a BranchMut the same way Walk builds a Branch.
func WalkMut[L any, A Annotation[L, A], C Compound[L, A, C]](root *Link[L, A, C], w Walker[L, A, C]) (*BranchMut[L, A, C], error) {
	b, err := Walk(root, w)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}

	bm := &BranchMut[L, A, C]{levels: b.levels}
	runtime.SetFinalizer(bm, func(leaked *BranchMut[L, A, C]) {
		if !leaked.committed {
			logrus.Warn("microkelvin: BranchMut discarded without Commit; mutation, if any, was not folded into cached annotations")
		}
	})
	return bm, nil
}

// Leaf returns the leaf value this BranchMut points to.
func (b *BranchMut[L, A, C]) Leaf() L {
	top := b.levels[len(b.levels)-1]
	return top.node.ChildMut(top.offset).Leaf
}

// SetLeaf overwrites the leaf this BranchMut points to. It requires the
// node's type to implement MutableLeaves, asserted via d.Exp since calling
// it on a collection that never declared support for in-place leaf
// mutation is a programmer error, not a runtime condition.
func (b *BranchMut[L, A, C]) SetLeaf(leaf L) {
	top := &b.levels[len(b.levels)-1]
	_, mutable := any(top.node).(MutableLeaves)
	d.Exp.True(mutable, "node type does not implement MutableLeaves")
	top.node.SetChild(top.offset, Child[L, A, C]{Kind: SlotLeaf, Leaf: leaf})
}

// Commit folds any mutation made through SetLeaf (or through the node
// values reachable from Path) back into the cached annotation of every
// Link on the path, from the leaf's parent up to the root, then marks the
// BranchMut as safely finished so the leak finalizer stays quiet.
func (b *BranchMut[L, A, C]) Commit() error {
	for i := len(b.levels) - 1; i >= 0; i-- {
		lv := b.levels[i]
		lv.link.Invalidate()
		lv.link.Annotation()
	}
	b.committed = true
	return nil
}

// Path mirrors Branch.Path but returns nodes obtained under BranchMut's
// exclusive-access contract, so callers may mutate non-leaf node state
// reachable from them (through SetChild) before calling Commit.
func (b *BranchMut[L, A, C]) Path() []struct {
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
