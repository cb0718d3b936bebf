package render

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"

	"github.com/metroxylon/kho-bwa-core-voc/cluster"
)

// ============================================================================
// CLUSTERMAP — Annotated heatmap with marginal dendrograms
// ============================================================================
// Composition (matching the published figures):
//
//	┌─────────┬──────────────────────┐
//	│ colorbar│   column dendrogram  │
//	├─────────┼──────────────────────┼───────┐
//	│  row    │                      │ row   │
//	│  dendro │   heatmap cells      │ labels│
//	│         │   (annotated %)      │       │
//	└─────────┴──────────────────────┴───────┘
//	          │ column labels (45°)  │
//
// Rows and columns share one leaf order — the similarity matrix is
// symmetric, so the same dendrogram frames both axes.
// ============================================================================

// Renderer turns a clustered similarity matrix into PNG figures.
type Renderer struct {
	style Style
	font  *truetype.Font
	pal   palette
}

// New builds a Renderer with the embedded font loaded. Options override the
// default style.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{style: DefaultStyle()}
	for _, opt := range opts {
		opt(r)
	}
	f, err := loadFont()
	if err != nil {
		return nil, err
	}
	r.font = f
	r.pal = newPalette(r.style.MaxValue)
	return r, nil
}

// Clustermap renders the matrix ordered by the dendrogram's leaves and
// writes the figure to path. The output directory is created if missing.
func (r *Renderer) Clustermap(m *cluster.Matrix, den *cluster.Dendrogram, path string) error {
	if m.N() != len(den.Leaves) {
		return fmt.Errorf("render: matrix has %d languages, dendrogram %d leaves",
			m.N(), len(den.Leaves))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("render: create output dir: %w", err)
	}

	dc := r.draw(m, den)
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

// geometry is the computed pixel layout for one figure.
type geometry struct {
	cell              float64
	heatLeft, heatTop float64
	heatSize          float64 // square: n*cell
	labelRightW       float64
	labelBottomH      float64
	width, height     int
}

func (r *Renderer) layout(n int, labels []string) geometry {
	s := r.style
	g := geometry{cell: float64(s.CellSize)}
	g.heatSize = float64(n) * g.cell

	// Label band sizes depend on the longest language name.
	probe := gg.NewContext(1, 1)
	probe.SetFontFace(face(r.font, s.LabelFontSize))
	maxW := 0.0
	for _, l := range labels {
		if w, _ := probe.MeasureString(l); w > maxW {
			maxW = w
		}
	}
	g.labelRightW = maxW + 14
	// Rotated 45°, the vertical extent of a label is its width / √2.
	g.labelBottomH = maxW/math.Sqrt2 + 18

	pad := float64(s.Padding)
	g.heatLeft = pad + float64(s.DendroSize)
	g.heatTop = pad + float64(s.DendroSize)
	g.width = int(g.heatLeft + g.heatSize + g.labelRightW + pad)
	g.height = int(g.heatTop + g.heatSize + g.labelBottomH + pad)
	return g
}

func (r *Renderer) draw(m *cluster.Matrix, den *cluster.Dendrogram) *gg.Context {
	s := r.style
	order := den.LeafIndex()
	labels := den.LeafLabels()
	n := len(order)
	g := r.layout(n, labels)

	dc := gg.NewContext(g.width, g.height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	r.drawCells(dc, m, order, g)
	if s.Annotate {
		r.drawAnnotations(dc, m, order, g)
	}
	r.drawLabels(dc, labels, g)
	r.drawTopDendrogram(dc, den, g)
	r.drawLeftDendrogram(dc, den, g)
	if s.Colorbar {
		r.drawColorbar(dc, g)
	}
	return dc
}

// ── Heatmap cells ────────────────────────────────────────────────────────

func (r *Renderer) drawCells(dc *gg.Context, m *cluster.Matrix, order []int, g geometry) {
	for row := 0; row < len(order); row++ {
		for col := 0; col < len(order); col++ {
			v := m.At(order[row], order[col])
			cr, cg, cb := r.pal.rgb(v)
			dc.SetRGB(cr, cg, cb)
			dc.DrawRectangle(g.heatLeft+float64(col)*g.cell, g.heatTop+float64(row)*g.cell, g.cell, g.cell)
			dc.Fill()
		}
	}
}

func (r *Renderer) drawAnnotations(dc *gg.Context, m *cluster.Matrix, order []int, g geometry) {
	dc.SetFontFace(face(r.font, r.style.FontSize))
	for row := 0; row < len(order); row++ {
		for col := 0; col < len(order); col++ {
			v := m.At(order[row], order[col])
			tr, tg, tb := r.pal.annotationRGB(v)
			dc.SetRGB(tr, tg, tb)
			dc.DrawStringAnchored(
				fmt.Sprintf("%d", int(math.Round(v))),
				g.heatLeft+(float64(col)+0.5)*g.cell,
				g.heatTop+(float64(row)+0.5)*g.cell,
				0.5, 0.5)
		}
	}
}

// ── Language labels ──────────────────────────────────────────────────────

func (r *Renderer) drawLabels(dc *gg.Context, labels []string, g geometry) {
	dc.SetFontFace(face(r.font, r.style.LabelFontSize))
	dc.SetRGB(0.1, 0.1, 0.1)

	// Row labels: horizontal, right of the heatmap.
	for i, l := range labels {
		dc.DrawStringAnchored(l,
			g.heatLeft+g.heatSize+7,
			g.heatTop+(float64(i)+0.5)*g.cell,
			0, 0.5)
	}

	// Column labels: rotated 45°, under the heatmap.
	for i, l := range labels {
		x := g.heatLeft + (float64(i)+0.5)*g.cell
		y := g.heatTop + g.heatSize + 7
		dc.Push()
		dc.RotateAbout(gg.Radians(45), x, y)
		dc.DrawStringAnchored(l, x, y, 0, 0.5)
		dc.Pop()
	}
}

// ── Dendrograms ──────────────────────────────────────────────────────────
// Each internal node draws the usual U shape: two vertical stems from the
// children up to the merge height, joined by a horizontal bar.

func (r *Renderer) drawTopDendrogram(dc *gg.Context, den *cluster.Dendrogram, g geometry) {
	maxH := den.MaxHeight()
	if maxH <= 0 {
		return
	}
	dc.SetRGB(0.15, 0.15, 0.15)
	dc.SetLineWidth(r.style.LineWidth)

	slotX := func(pos float64) float64 { return g.heatLeft + (pos+0.5)*g.cell }
	heightY := func(h float64) float64 {
		return g.heatTop - 6 - (float64(r.style.DendroSize)-12)*(h/maxH)
	}

	var walk func(n *cluster.Node)
	walk = func(n *cluster.Node) {
		if n.IsLeaf() {
			return
		}
		y := heightY(n.Height)
		lx, rx := slotX(n.Left.Position), slotX(n.Right.Position)
		dc.DrawLine(lx, heightY(n.Left.Height), lx, y)
		dc.DrawLine(rx, heightY(n.Right.Height), rx, y)
		dc.DrawLine(lx, y, rx, y)
		dc.Stroke()
		walk(n.Left)
		walk(n.Right)
	}
	walk(den.Root)
}

func (r *Renderer) drawLeftDendrogram(dc *gg.Context, den *cluster.Dendrogram, g geometry) {
	maxH := den.MaxHeight()
	if maxH <= 0 {
		return
	}
	dc.SetRGB(0.15, 0.15, 0.15)
	dc.SetLineWidth(r.style.LineWidth)

	slotY := func(pos float64) float64 { return g.heatTop + (pos+0.5)*g.cell }
	heightX := func(h float64) float64 {
		return g.heatLeft - 6 - (float64(r.style.DendroSize)-12)*(h/maxH)
	}

	var walk func(n *cluster.Node)
	walk = func(n *cluster.Node) {
		if n.IsLeaf() {
			return
		}
		x := heightX(n.Height)
		ly, ry := slotY(n.Left.Position), slotY(n.Right.Position)
		dc.DrawLine(heightX(n.Left.Height), ly, x, ly)
		dc.DrawLine(heightX(n.Right.Height), ry, x, ry)
		dc.DrawLine(x, ly, x, ry)
		dc.Stroke()
		walk(n.Left)
		walk(n.Right)
	}
	walk(den.Root)
}

// ── Colorbar ─────────────────────────────────────────────────────────────
// Lives in the otherwise-empty corner above the row dendrogram.

func (r *Renderer) drawColorbar(dc *gg.Context, g geometry) {
	s := r.style
	barW := 16.0
	barH := float64(s.DendroSize) * 0.7
	x := float64(s.Padding) + 8
	y := float64(s.Padding) + 14

	steps := int(barH)
	for i := 0; i < steps; i++ {
		// Top of the bar is the scale maximum.
		v := s.MaxValue * (1 - float64(i)/float64(steps-1))
		cr, cg, cb := r.pal.rgb(v)
		dc.SetRGB(cr, cg, cb)
		dc.DrawRectangle(x, y+float64(i), barW, 1.5)
		dc.Fill()
	}

	dc.SetFontFace(face(r.font, s.FontSize))
	dc.SetRGB(0.1, 0.1, 0.1)
	dc.DrawStringAnchored(fmt.Sprintf("%d", int(s.MaxValue)), x+barW+4, y, 0, 0.5)
	dc.DrawStringAnchored("0", x+barW+4, y+barH, 0, 0.5)
}
