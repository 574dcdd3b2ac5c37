package cards

// Font is the interface for a font that can measure and render text.
// Implementations are expected to be GPU-oriented, using a pre-rasterized
// texture atlas and scaling quads rather than re-rasterizing per size.
//
// The cards package does not depend on any concrete font implementation.
// Applications inject a Font that satisfies this interface; tests use
// fixed-metric fakes.
type Font interface {
	// TextureID returns the texture ID of the font atlas.
	// The atlas is alpha-only: glyph coverage lives in the R channel.
	TextureID() uint32

	// MeasureText returns the pixel dimensions of the text rendered at
	// the given point size.
	MeasureText(text string, size float32) Vec2

	// GlyphQuads generates quads for rendering the text with its top-left
	// corner at (x, y) and the given point size. The returned slice should
	// be used immediately and not stored.
	GlyphQuads(text string, x, y, size float32) []GlyphQuad
}

// FitTextSize shrinks size until text rendered with f fits within
// maxWidth, mirroring the point-by-point font shrink of the renderer.
// It never returns a size below 1.
func FitTextSize(f Font, text string, size, maxWidth float32) float32 {
	for size > 1 && f.MeasureText(text, size).X > maxWidth {
		size--
	}
	return size
}
