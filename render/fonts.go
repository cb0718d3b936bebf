package render

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
)

// ============================================================================
// FONTS — Label and annotation typefaces
// ============================================================================
// Uses the Roboto face embedded in go-chart, so figures render identically
// on any machine with no font files to install.
// ============================================================================

func loadFont() (*truetype.Font, error) {
	f, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("render: load embedded font: %w", err)
	}
	return f, nil
}

// face builds a font.Face at the given point size.
func face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 96})
}
