package microkelvin

// Annotation is the algebra a caller plugs in to summarize a Compound tree:
// Zero is the identity element, FromLeaf lifts a single leaf, and Combine
// folds a node's child annotations left-to-right into the node's own
// annotation. Combine need not be commutative, only associative, so
// order-sensitive summaries (e.g. the rightmost element) are expressible.
//
// Implementations are plain values: Zero is typically just the Go zero
// value of A, and FromLeaf/Combine take A and L by value. This mirrors how
// Cardinality, Max and Unit are implemented in the annotations subpackage.
type Annotation[L any, A Annotation[L, A]] interface {
	// Zero returns the annotation of an empty collection.
	Zero() A
	// FromLeaf lifts a single leaf value into an annotation.
	FromLeaf(leaf L) A
	// Combine folds the annotations of a node's occupied child slots, in
	// slot order, into that node's own annotation. combine([]) must equal
	// Zero().
	Combine(children []A) A
}
