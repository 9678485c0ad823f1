package microkelvin

// SlotKind is the shape of a single child position in a Compound node.
// Exactly one of the four states holds: Empty, Leaf, Node or EndOfNode.
type SlotKind int

const (
	// SlotEmpty marks an occupied-but-vacant slot inside a node (e.g. a
	// deleted element in a fixed-arity node). It participates in Combine
	// like any other slot, contributing A's Zero.
	SlotEmpty SlotKind = iota
	// SlotLeaf holds a leaf value directly.
	SlotLeaf
	// SlotNode holds a Link to a child node.
	SlotNode
	// SlotEndOfNode marks the first unused slot past a node's occupied
	// children. Walkers and iterators use it to stop descending without
	// relying on a separate length field.
	SlotEndOfNode
)

// Child is the result of inspecting slot i of a Compound node: exactly one
// of Leaf/Node is meaningful, selected by Kind. ChildMut is the same shape;
// the two are unified here because Go draws no enforced distinction between
// a read-only and a mutable view of a slot — callers obtaining a ChildMut
// are simply expected to go through Compound.ChildMut, which is documented
// as granting exclusive access.
type Child[L any, A Annotation[L, A], C Compound[L, A, C]] struct {
	Kind SlotKind
	Leaf L
	Node *Link[L, A, C]
}

// ChildMut is an alias for Child: mutability in this port is a matter of
// which Compound method produced the value (Child vs ChildMut), not of the
// Go type itself.
type ChildMut[L any, A Annotation[L, A], C Compound[L, A, C]] = Child[L, A, C]

// Compound is the contract every recursively-defined, annotation-carrying
// collection must satisfy. C is the concrete node type itself, so that
// Branch/BranchMut and the walkers can be generic over "some Compound" while
// still returning concrete, strongly-typed links back to it.
//
// Implementations must be side-effect free in Child/ChildMut beyond the
// mutation ChildMut is explicitly asked to perform, and must report the same
// NumSlots for the lifetime of a given node value.
type Compound[L any, A Annotation[L, A], C Compound[L, A, C]] interface {
	// NumSlots returns the number of child positions this node exposes.
	// It must be stable for a given node value; Walk and Iterator rely on
	// it to recognize SlotEndOfNode without a dedicated method call.
	NumSlots() int
	// Child returns a read-only view of slot i.
	Child(i int) Child[L, A, C]
	// ChildMut returns a mutable view of slot i. Callers must have
	// exclusive access to the node (guaranteed by BranchMut's ownership
	// model) before calling this.
	ChildMut(i int) ChildMut[L, A, C]
	// SetChild overwrites slot i with child. It is the only way a
	// BranchMut mutates a node's content; implementations that cannot
	// physically support changing a slot's kind (e.g. a fixed-arity node
	// whose slots are always SlotLeaf) only need to support SetChild calls
	// that keep the slot's Kind unchanged.
	SetChild(i int, child Child[L, A, C])
}

// MutableLeaves is an optional marker a Compound implementation satisfies
// to declare that its leaves may be mutated in place through a BranchMut
// without changing the tree's shape (no rebalancing, no slot count change).
// Collections whose leaves cannot be safely mutated in place (e.g. ones
// that use leaf identity for deduplication) simply don't implement it;
// WalkMut's mutating leaf accessors require it via a type assertion.
type MutableLeaves interface {
	MutableLeaves()
}
