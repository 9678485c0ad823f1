package microkelvin

// MappedBranch wraps a Branch with a leaf projection, so callers that only
// care about a field or computed view of a leaf don't need to thread the
// whole leaf type through their own code. It carries no state beyond the
// underlying Branch, an Iterator resuming that Branch's walk, and a
// projection function; the annotation-maintenance
// invariant is entirely the underlying Branch's, since a MappedBranch never
// mutates anything.
type MappedBranch[L any, A Annotation[L, A], C Compound[L, A, C], T any] struct {
	branch  *Branch[L, A, C]
	it      *Iterator[L, A, C]
	project func(L) T
}

// NewMappedBranch wraps branch, projecting its leaf through project. The
// walker is the same one that produced branch in the first place; it is
// stored alongside the projection so Next can keep resuming the walk
// through the Iterator it builds, applying project to each yielded leaf
// without the caller ever touching the underlying Branch directly.
func NewMappedBranch[L any, A Annotation[L, A], C Compound[L, A, C], T any](
	branch *Branch[L, A, C], walker Walker[L, A, C], project func(L) T,
) *MappedBranch[L, A, C, T] {
	return &MappedBranch[L, A, C, T]{branch: branch, it: NewIterator(branch, walker), project: project}
}

// Value returns the projected view of the branch's leaf.
func (m *MappedBranch[L, A, C, T]) Value() T {
	return m.project(m.branch.Leaf())
}

// Next advances to the next leaf the walker accepts and returns its
// projected view, returning ok=false once the tree is exhausted.
func (m *MappedBranch[L, A, C, T]) Next() (T, bool, error) {
	leaf, ok, err := m.it.Next()
	if err != nil {
		var zero T
		return zero, false, err
	}
	if !ok {
		var zero T
		return zero, false, nil
	}
	return m.project(leaf), true, nil
}

// Underlying returns the wrapped Branch, for callers that need the full
// leaf or the path alongside the projection.
func (m *MappedBranch[L, A, C, T]) Underlying() *Branch[L, A, C] {
	return m.branch
}

// MappedBranchMut wraps a BranchMut with a get/set projection pair, so a
// mutation to just the projected view still goes through SetLeaf and
// Commit and so still maintains every annotation on the path.
type MappedBranchMut[L any, A Annotation[L, A], C Compound[L, A, C], T any] struct {
	branch *BranchMut[L, A, C]
	get    func(L) T
	set    func(L, T) L
}

// NewMappedBranchMut wraps branch with a get/set projection pair.
func NewMappedBranchMut[L any, A Annotation[L, A], C Compound[L, A, C], T any](
	branch *BranchMut[L, A, C], get func(L) T, set func(L, T) L,
) *MappedBranchMut[L, A, C, T] {
	return &MappedBranchMut[L, A, C, T]{branch: branch, get: get, set: set}
}

// Value returns the projected view of the branch's leaf.
func (m *MappedBranchMut[L, A, C, T]) Value() T {
	return m.get(m.branch.Leaf())
}

// SetValue rewrites the projected view of the branch's leaf, leaving the
// rest of the leaf untouched.
func (m *MappedBranchMut[L, A, C, T]) SetValue(v T) {
	m.branch.SetLeaf(m.set(m.branch.Leaf(), v))
}

// Commit delegates to the underlying BranchMut.
func (m *MappedBranchMut[L, A, C, T]) Commit() error {
	return m.branch.Commit()
}
