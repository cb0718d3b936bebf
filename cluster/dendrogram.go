package cluster

// ============================================================================
// DENDROGRAM — Tree form of the merge table, with render coordinates
// ============================================================================
// The renderer needs two things the flat merge table does not give directly:
// the left-to-right leaf order (which fixes the row/column order of the
// clustered heatmap) and, per internal node, the positions of its children.
// Leaf order comes from a root-first traversal taking the first-listed
// child of every merge first — the same convention the published figures
// follow, so regenerated plots line up with the paper.
// ============================================================================

// Node is one vertex of the dendrogram. Leaves carry a Label and a zero
// Height; internal nodes carry the merge distance.
type Node struct {
	ID     int
	Label  string
	Height float64
	Left   *Node
	Right  *Node

	// Position is the leaf slot (0-based) for leaves, and the midpoint of
	// the children's positions for internal nodes. Filled by BuildDendrogram.
	Position float64
}

// IsLeaf reports whether the node is an original observation.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Dendrogram is the assembled tree plus its leaf ordering.
type Dendrogram struct {
	Root   *Node
	Leaves []*Node // left-to-right display order
}

// LeafLabels returns the language names in display order.
func (d *Dendrogram) LeafLabels() []string {
	out := make([]string, len(d.Leaves))
	for i, l := range d.Leaves {
		out[i] = l.Label
	}
	return out
}

// LeafIndex returns, per display slot, the original observation index.
func (d *Dendrogram) LeafIndex() []int {
	out := make([]int, len(d.Leaves))
	for i, l := range d.Leaves {
		out[i] = l.ID
	}
	return out
}

// MaxHeight returns the root merge distance (0 for a single leaf).
func (d *Dendrogram) MaxHeight() float64 {
	if d.Root == nil {
		return 0
	}
	return d.Root.Height
}

// BuildDendrogram assembles the tree from a merge table and the observation
// labels (in original matrix order).
func BuildDendrogram(merges []Merge, labels []string) *Dendrogram {
	n := len(labels)
	nodes := make(map[int]*Node, n+len(merges))
	for i, lab := range labels {
		nodes[i] = &Node{ID: i, Label: lab}
	}
	var root *Node
	for step, mg := range merges {
		node := &Node{
			ID:     n + step,
			Height: mg.Dist,
			Left:   nodes[mg.A],
			Right:  nodes[mg.B],
		}
		nodes[n+step] = node
		root = node
	}

	d := &Dendrogram{Root: root}
	if root == nil {
		if n == 1 {
			leaf := nodes[0]
			d.Root = leaf
			d.Leaves = []*Node{leaf}
		}
		return d
	}

	// Depth-first, left child first: fixes leaf slots, then back-fills
	// internal node positions as child midpoints.
	var walk func(*Node)
	walk = func(nd *Node) {
		if nd.IsLeaf() {
			nd.Position = float64(len(d.Leaves))
			d.Leaves = append(d.Leaves, nd)
			return
		}
		walk(nd.Left)
		walk(nd.Right)
		nd.Position = (nd.Left.Position + nd.Right.Position) / 2
	}
	walk(root)
	return d
}
