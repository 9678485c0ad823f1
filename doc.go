// Package microkelvin implements annotated, content-addressed,
// recursively-defined collections: a Compound contract any tree-shaped
// container can satisfy, an Annotation algebra for summarizing subtrees,
// Link as the lazy, thread-safe, optionally-persisted indirection between
// nodes, and Branch/BranchMut/Iterator as the walk machinery a Walker
// drives over all of the above.
//
// Reference annotations and walkers live in the annotations and walkers
// subpackages; the persistence bridge lives in persist; examples/linkedlist
// and examples/bintree are complete Compound implementations exercising the
// whole stack.
package microkelvin
