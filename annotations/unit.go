package annotations

// Unit is the annotation for callers who need Compound's annotation
// machinery (for Link's lazy caching, for example) but have nothing to
// summarize. Combine and FromLeaf are both no-ops.
type Unit[L any] struct{}

func (Unit[L]) Zero() Unit[L] { return Unit[L]{} }

func (Unit[L]) FromLeaf(_ L) Unit[L] { return Unit[L]{} }

func (Unit[L]) Combine(_ []Unit[L]) Unit[L] { return Unit[L]{} }
