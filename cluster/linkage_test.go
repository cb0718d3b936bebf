package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/mat"
)

// ============================================================================
// LINKAGE TESTS
// ============================================================================

// matrixFromPercent builds a Matrix from an upper-triangle percent listing.
func matrixFromPercent(labels []string, upper map[[2]int]float64) *Matrix {
	n := len(labels)
	m := &Matrix{Labels: labels, Percent: mat.NewSymDense(n, nil)}
	for i := 0; i < n; i++ {
		m.Percent.SetSym(i, i, 100)
	}
	for ij, v := range upper {
		m.Percent.SetSym(ij[0], ij[1], v)
	}
	return m
}

func TestLinkageAverageThreeLanguages(t *testing.T) {
	// Distances: d(0,1)=50, d(0,2)=100, d(1,2)=66.67
	m := matrixFromPercent([]string{"L1", "L2", "L3"}, map[[2]int]float64{
		{0, 1}: 50,
		{0, 2}: 0,
		{1, 2}: 100.0 / 3,
	})

	merges, err := Linkage(m, Average)
	require.NoError(t, err)
	require.Len(t, merges, 2)

	// Step 1: the closest pair (0,1) at distance 50.
	assert.Equal(t, 0, merges[0].A)
	assert.Equal(t, 1, merges[0].B)
	assert.InDelta(t, 50.0, merges[0].Dist, 1e-9)
	assert.Equal(t, 2, merges[0].Size)

	// Step 2: cluster 3 = {0,1} joins 2 at the UPGMA mean (100+66.67)/2.
	assert.Equal(t, 2, merges[1].A)
	assert.Equal(t, 3, merges[1].B)
	assert.InDelta(t, (100+100-100.0/3)/2, merges[1].Dist, 1e-9)
	assert.Equal(t, 3, merges[1].Size)
}

func TestLinkageSingleAndComplete(t *testing.T) {
	m := matrixFromPercent([]string{"L1", "L2", "L3"}, map[[2]int]float64{
		{0, 1}: 50,
		{0, 2}: 0,
		{1, 2}: 100.0 / 3,
	})

	single, err := Linkage(m, Single)
	require.NoError(t, err)
	assert.InDelta(t, 100-100.0/3, single[1].Dist, 1e-9, "single linkage takes the minimum")

	complete, err := Linkage(m, Complete)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, complete[1].Dist, 1e-9, "complete linkage takes the maximum")
}

func TestLinkageWeightedAverage(t *testing.T) {
	// Four observations where the UPGMA update must weight by cluster size.
	// Distances: d(0,1)=10 merges first; then d(2,3)=20; the final merge
	// distance is the size-weighted mean of all cross-pair distances.
	m := matrixFromPercent([]string{"a", "b", "c", "d"}, map[[2]int]float64{
		{0, 1}: 90, // d=10
		{2, 3}: 80, // d=20
		{0, 2}: 40, // d=60
		{0, 3}: 30, // d=70
		{1, 2}: 20, // d=80
		{1, 3}: 10, // d=90
	})

	merges, err := Linkage(m, Average)
	require.NoError(t, err)
	require.Len(t, merges, 3)
	assert.InDelta(t, 10, merges[0].Dist, 1e-9)
	assert.InDelta(t, 20, merges[1].Dist, 1e-9)
	assert.InDelta(t, (60+70+80+90)/4.0, merges[2].Dist, 1e-9)
	assert.Equal(t, 4, merges[2].Size)
}

func TestLinkageDeterministic(t *testing.T) {
	m := matrixFromPercent([]string{"L1", "L2", "L3", "L4"}, map[[2]int]float64{
		{0, 1}: 75, {0, 2}: 40, {0, 3}: 30,
		{1, 2}: 55, {1, 3}: 35,
		{2, 3}: 80,
	})
	first, err := Linkage(m, Average)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Linkage(m, Average)
		require.NoError(t, err)
		assert.Equal(t, first, again, "same input and method must give the same merge table")
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{"average", Average, false},
		{"UPGMA", Average, false},
		{"", Average, false},
		{"single", Single, false},
		{"complete", Complete, false},
		{"ward", Average, true},
	}
	for _, tt := range tests {
		got, err := ParseMethod(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownMethod, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestCut(t *testing.T) {
	m := matrixFromPercent([]string{"L1", "L2", "L3"}, map[[2]int]float64{
		{0, 1}: 50,
		{0, 2}: 0,
		{1, 2}: 100.0 / 3,
	})
	merges, err := Linkage(m, Average)
	require.NoError(t, err)

	// Below the first merge: every language is its own cluster.
	assert.Equal(t, []int{0, 1, 2}, Cut(merges, 3, 40))
	// Between the merges: {L1,L2} vs {L3}.
	assert.Equal(t, []int{0, 0, 1}, Cut(merges, 3, 60))
	// Above the root: one cluster.
	assert.Equal(t, []int{0, 0, 0}, Cut(merges, 3, 100))
}

func TestFormatMerges(t *testing.T) {
	out := FormatMerges([]Merge{{A: 0, B: 1, Dist: 50, Size: 2}})
	assert.Contains(t, out, "0")
	assert.Contains(t, out, "50.00000")
}
