package render

// ============================================================================
// RENDERER OPTIONS — Functional options for New()
// ============================================================================

// Option configures a Renderer.
type Option func(*Renderer)

// WithStyle replaces the default style wholesale.
func WithStyle(s Style) Option {
	return func(r *Renderer) { r.style = s }
}

// WithAnnotations toggles the rounded percentage printed in each cell.
func WithAnnotations(on bool) Option {
	return func(r *Renderer) { r.style.Annotate = on }
}

// WithColorbar toggles the color scale in the top-left corner.
func WithColorbar(on bool) Option {
	return func(r *Renderer) { r.style.Colorbar = on }
}
