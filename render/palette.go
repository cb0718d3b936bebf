package render

import (
	"github.com/mazznoer/colorgrad"
)

// ============================================================================
// PALETTE — Reversed inferno color scale
// ============================================================================
// High cognacy percentages render dark, low ones bright, so the tight
// subgroups stand out as dark blocks along the diagonal. That is the
// reversed inferno map, the scale the published heatmaps use.
// ============================================================================

type palette struct {
	grad colorgrad.Gradient
	max  float64
}

func newPalette(max float64) palette {
	return palette{grad: colorgrad.Inferno(), max: max}
}

// rgb returns the cell color for a percentage as 0..1 components.
func (p palette) rgb(v float64) (r, g, b float64) {
	t := v / p.max
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	c := p.grad.At(1 - t) // reversed
	return c.R, c.G, c.B
}

// annotationRGB picks black or white for text over a cell so the rounded
// percentage stays readable on both ends of the scale.
func (p palette) annotationRGB(v float64) (r, g, b float64) {
	cr, cg, cb := p.rgb(v)
	luma := 0.299*cr + 0.587*cg + 0.114*cb
	if luma < 0.5 {
		return 1, 1, 1
	}
	return 0, 0, 0
}
