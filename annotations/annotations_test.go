package annotations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dusk-network/microkelvin/annotations"
)

type keyedString string

func (k keyedString) Key() string { return string(k) }

func TestCardinalityCombine(t *testing.T) {
	var zero annotations.Cardinality[int]
	children := []annotations.Cardinality[int]{zero.FromLeaf(1), zero.FromLeaf(2), zero.Zero()}
	assert.Equal(t, uint64(2), zero.Combine(children).Uint64())
}

func TestMaxCombineEmpty(t *testing.T) {
	var zero annotations.Max[keyedString, string]
	combined := zero.Combine(nil)
	assert.False(t, combined.HasValue())
}

func TestMaxCombinePicksLargest(t *testing.T) {
	var zero annotations.Max[keyedString, string]
	children := []annotations.Max[keyedString, string]{
		zero.FromLeaf("b"),
		zero.FromLeaf("z"),
		zero.FromLeaf("a"),
	}
	combined := zero.Combine(children)
	assert.True(t, combined.HasValue())
	assert.Equal(t, "z", combined.Key())
}

func TestUnitIsAlwaysItself(t *testing.T) {
	var zero annotations.Unit[int]
	assert.Equal(t, annotations.Unit[int]{}, zero.Combine([]annotations.Unit[int]{zero.FromLeaf(1)}))
}

func TestProductCombinesBothFacets(t *testing.T) {
	type product = annotations.Product[keyedString, annotations.Cardinality[keyedString], annotations.Max[keyedString, string]]
	var zero product
	children := []product{zero.FromLeaf("m"), zero.FromLeaf("z"), zero.FromLeaf("a")}
	combined := zero.Combine(children)
	assert.Equal(t, uint64(3), combined.First.Uint64())
	assert.Equal(t, "z", combined.Second.Key())
}
