package annotations

// Annotation mirrors the root package's Annotation contract. It is
// redeclared here, rather than imported, so that this package stays free
// of a dependency on the root microkelvin package — Product only needs the
// shape of the contract, not the Compound machinery built on top of it.
type Annotation[L any, A any] interface {
	Zero() A
	FromLeaf(leaf L) A
	Combine(children []A) A
}

// Product combines two independent annotations into one, so a single
// Compound can be walked by either facet without maintaining two separate
// trees. Cardinality-and-Max-together is the common case this exists for.
type Product[L any, A1 Annotation[L, A1], A2 Annotation[L, A2]] struct {
	First  A1
	Second A2
}

func (Product[L, A1, A2]) Zero() Product[L, A1, A2] {
	var a1 A1
	var a2 A2
	return Product[L, A1, A2]{First: a1.Zero(), Second: a2.Zero()}
}

func (Product[L, A1, A2]) FromLeaf(leaf L) Product[L, A1, A2] {
	var a1 A1
	var a2 A2
	return Product[L, A1, A2]{First: a1.FromLeaf(leaf), Second: a2.FromLeaf(leaf)}
}

func (Product[L, A1, A2]) Combine(children []Product[L, A1, A2]) Product[L, A1, A2] {
	var a1 A1
	var a2 A2
	firsts := make([]A1, len(children))
	seconds := make([]A2, len(children))
	for i, c := range children {
		firsts[i] = c.First
		seconds[i] = c.Second
	}
	return Product[L, A1, A2]{First: a1.Combine(firsts), Second: a2.Combine(seconds)}
}
