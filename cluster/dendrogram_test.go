package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// DENDROGRAM TESTS
// ============================================================================

func TestBuildDendrogramLeafOrder(t *testing.T) {
	m := matrixFromPercent([]string{"Duhumbi", "Khispi", "Rupa"}, map[[2]int]float64{
		{0, 1}: 50,
		{0, 2}: 0,
		{1, 2}: 100.0 / 3,
	})
	merges, err := Linkage(m, Average)
	require.NoError(t, err)

	d := BuildDendrogram(merges, m.Labels)
	require.NotNil(t, d.Root)

	// Root merges Rupa (id 2) with the {Duhumbi, Khispi} cluster (id 3);
	// first-listed child first gives Rupa the leftmost slot.
	assert.Equal(t, []string{"Rupa", "Duhumbi", "Khispi"}, d.LeafLabels())
	assert.Equal(t, []int{2, 0, 1}, d.LeafIndex())
	assert.InDelta(t, (100+100-100.0/3)/2, d.MaxHeight(), 1e-9)
}

func TestDendrogramPositions(t *testing.T) {
	merges := []Merge{
		{A: 0, B: 1, Dist: 10, Size: 2},
		{A: 2, B: 3, Dist: 30, Size: 3},
	}
	d := BuildDendrogram(merges, []string{"a", "b", "c"})

	// Leaves occupy slots 0..2; internal nodes sit at child midpoints.
	// Display order is c, a, b (first-listed child of the root first).
	assert.Equal(t, []string{"c", "a", "b"}, d.LeafLabels())
	for i, leaf := range d.Leaves {
		assert.Equal(t, float64(i), leaf.Position)
	}
	inner := d.Root.Right
	require.False(t, inner.IsLeaf())
	assert.Equal(t, 1.5, inner.Position, "inner node centered over a and b")
	assert.Equal(t, 0.75, d.Root.Position, "root centered over its children")
}

func TestBuildDendrogramSingleLeaf(t *testing.T) {
	d := BuildDendrogram(nil, []string{"only"})
	require.NotNil(t, d.Root)
	assert.True(t, d.Root.IsLeaf())
	assert.Equal(t, []string{"only"}, d.LeafLabels())
	assert.Equal(t, 0.0, d.MaxHeight())
}
