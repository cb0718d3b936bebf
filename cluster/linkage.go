package cluster

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ============================================================================
// LINKAGE — Agglomerative hierarchical clustering
// ============================================================================
// Classic stored-matrix algorithm with Lance–Williams updates. Starts from
// the condensed distance matrix (100 − similarity), repeatedly merges the
// closest pair of active clusters, and emits one Merge row per step — the
// same (a, b, distance, size) table the paper prints as "the linkage
// matrix". Original observations are clusters 0..n−1; the cluster formed at
// step k gets id n+k.
//
// n is the number of languages in a comparative study (tens, not millions),
// so the O(n³) scan is the right trade against a priority-queue variant.
// ============================================================================

// Method selects the inter-cluster distance update.
type Method int

const (
	// Average is UPGMA, the method used for the published figures.
	Average Method = iota
	// Single merges on minimum member distance (nearest neighbour).
	Single
	// Complete merges on maximum member distance (furthest neighbour).
	Complete
)

var ErrUnknownMethod = errors.New("cluster: unknown linkage method")

// ParseMethod maps a CLI string to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "average", "upgma", "":
		return Average, nil
	case "single":
		return Single, nil
	case "complete":
		return Complete, nil
	default:
		return Average, fmt.Errorf("%w: %q (want average, single or complete)", ErrUnknownMethod, s)
	}
}

func (m Method) String() string {
	switch m {
	case Average:
		return "average"
	case Single:
		return "single"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Merge is one agglomeration step. A and B are the merged cluster ids
// (A < B), Dist the inter-cluster distance at which they merged, Size the
// number of observations in the new cluster.
type Merge struct {
	A, B int
	Dist float64
	Size int
}

// Linkage clusters the similarity matrix and returns the merge table in
// agglomeration order (n−1 rows for n languages).
func Linkage(m *Matrix, method Method) ([]Merge, error) {
	n := m.N()
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewLanguages, n)
	}

	// Working distance matrix, full square for simple indexing.
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			d[i][j] = 100 - m.Percent.At(i, j)
		}
	}

	type clusterState struct {
		id   int // current cluster id (original index or n+step)
		size int
	}
	active := make([]clusterState, n)
	idx := make([]int, 0, n) // indices into d that are still live
	for i := 0; i < n; i++ {
		active[i] = clusterState{id: i, size: 1}
		idx = append(idx, i)
	}

	merges := make([]Merge, 0, n-1)
	for step := 0; step < n-1; step++ {
		// Closest active pair. Ties resolve to the earliest pair in scan
		// order, which keeps the table deterministic for a fixed input.
		bi, bj := -1, -1
		best := math.Inf(1)
		for a := 0; a < len(idx); a++ {
			for b := a + 1; b < len(idx); b++ {
				if dd := d[idx[a]][idx[b]]; dd < best {
					best, bi, bj = dd, a, b
				}
			}
		}

		i, j := idx[bi], idx[bj]
		ci, cj := active[i], active[j]

		a, b := ci.id, cj.id
		if a > b {
			a, b = b, a
		}
		newSize := ci.size + cj.size
		merges = append(merges, Merge{A: a, B: b, Dist: best, Size: newSize})

		// Lance–Williams update: fold cluster j into slot i.
		for _, k := range idx {
			if k == i || k == j {
				continue
			}
			var nd float64
			switch method {
			case Single:
				nd = math.Min(d[k][i], d[k][j])
			case Complete:
				nd = math.Max(d[k][i], d[k][j])
			default: // Average (UPGMA)
				nd = (float64(ci.size)*d[k][i] + float64(cj.size)*d[k][j]) / float64(newSize)
			}
			d[k][i], d[i][k] = nd, nd
		}

		active[i] = clusterState{id: n + step, size: newSize}
		idx = append(idx[:bj], idx[bj+1:]...)
	}
	return merges, nil
}

// FormatMerges renders the merge table the way the --linkage flag prints it:
// one row per step with cluster ids, merge distance, and cluster size.
func FormatMerges(merges []Merge) string {
	var sb strings.Builder
	for _, mg := range merges {
		fmt.Fprintf(&sb, "%4d %4d  %10.5f  %4d\n", mg.A, mg.B, mg.Dist, mg.Size)
	}
	return sb.String()
}

// Cut assigns observations to flat clusters by cutting the tree at the given
// distance: merges with Dist <= height are applied, the rest are not.
// Returns one cluster id per observation, numbered from 0 in order of first
// appearance.
func Cut(merges []Merge, n int, height float64) []int {
	parent := make([]int, n+len(merges))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	for step, mg := range merges {
		if mg.Dist > height {
			continue
		}
		node := n + step
		parent[find(mg.A)] = node
		parent[find(mg.B)] = node
	}

	labels := make([]int, n)
	seen := map[int]int{}
	for i := 0; i < n; i++ {
		root := find(i)
		id, ok := seen[root]
		if !ok {
			id = len(seen)
			seen[root] = id
		}
		labels[i] = id
	}
	return labels
}
