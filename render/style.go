package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ============================================================================
// STYLE — Figure geometry and typography
// ============================================================================
// Defaults reproduce the look of the published figures. A YAML style file
// can override any field for one-off renders (poster sizes, talk slides)
// without touching code.
// ============================================================================

// Style controls clustermap geometry. All lengths are in pixels.
type Style struct {
	CellSize      int     `yaml:"cell_size"`       // heatmap cell edge
	Padding       int     `yaml:"padding"`         // outer canvas margin
	DendroSize    int     `yaml:"dendro_size"`     // depth of the marginal dendrograms
	FontSize      float64 `yaml:"font_size"`       // cell annotations
	LabelFontSize float64 `yaml:"label_font_size"` // language labels
	LineWidth     float64 `yaml:"line_width"`      // dendrogram strokes
	MaxValue      float64 `yaml:"max_value"`       // color scale ceiling
	Annotate      bool    `yaml:"annotate"`        // print rounded percentages in cells
	Colorbar      bool    `yaml:"colorbar"`        // draw the scale in the corner
}

// DefaultStyle returns the style used for the paper figures.
func DefaultStyle() Style {
	return Style{
		CellSize:      30,
		Padding:       12,
		DendroSize:    130,
		FontSize:      11,
		LabelFontSize: 12,
		LineWidth:     1.5,
		MaxValue:      100,
		Annotate:      true,
		Colorbar:      true,
	}
}

// LoadStyle reads a YAML style file, applying it over the defaults so a file
// only needs the fields it changes.
func LoadStyle(path string) (Style, error) {
	s := DefaultStyle()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("render: read style: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("render: parse style %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return s, fmt.Errorf("render: style %s: %w", path, err)
	}
	return s, nil
}

func (s Style) validate() error {
	if s.CellSize <= 0 {
		return fmt.Errorf("cell_size must be positive, got %d", s.CellSize)
	}
	if s.MaxValue <= 0 {
		return fmt.Errorf("max_value must be positive, got %g", s.MaxValue)
	}
	if s.DendroSize < 0 || s.Padding < 0 {
		return fmt.Errorf("negative lengths are not valid")
	}
	return nil
}
