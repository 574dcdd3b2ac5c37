package opengl

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	findfont "github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/flashdeck/cards"
)

const (
	// fontBaseSize is the pixel size glyphs are rasterized at. Text is
	// drawn by scaling quads down from this size, so it should be at
	// least as large as the biggest size the scene uses.
	fontBaseSize = 64

	// atlasSize is the width and height of the glyph atlas texture.
	atlasSize = 1024
)

// glyphInfo holds one glyph's atlas region and base-size metrics.
type glyphInfo struct {
	u0, v0, u1, v1 float32 // atlas texture coordinates
	offX, offY     float32 // bearing relative to pen and baseline
	w, h           float32 // bitmap size in pixels
	advance        float32 // pen advance
}

// FontAtlas implements cards.Font with a TrueType font pre-rasterized
// into a single alpha texture. Printable ASCII is covered, matching the
// quiz's allowed input characters; anything else renders as '?'.
type FontAtlas struct {
	tex     uint32
	base    float32
	ascent  float32
	descent float32
	glyphs  map[rune]glyphInfo
}

// LoadSystemFont locates the first of the named TTF files on the system
// and builds a FontAtlas from it. The GL context must be current.
func LoadSystemFont(names ...string) (*FontAtlas, error) {
	var lastErr error
	for _, name := range names {
		path, err := findfont.Find(name)
		if err != nil {
			lastErr = err
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		return NewFontAtlas(data)
	}
	return nil, fmt.Errorf("no usable font among %v: %w", names, lastErr)
}

// NewFontAtlas parses TTF data and rasterizes printable ASCII into an
// alpha atlas texture. The GL context must be current.
func NewFontAtlas(ttfData []byte) (*FontAtlas, error) {
	ttf, err := truetype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    fontBaseSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	fa := &FontAtlas{
		base:    fontBaseSize,
		ascent:  fixedToFloat(metrics.Ascent),
		descent: fixedToFloat(metrics.Descent),
		glyphs:  make(map[rune]glyphInfo, 95),
	}

	atlas := image.NewAlpha(image.Rect(0, 0, atlasSize, atlasSize))
	penX, penY, rowH := 1, 1, 0

	for r := rune(32); r <= 126; r++ {
		dr, mask, maskp, adv, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}

		w, h := dr.Dx(), dr.Dy()
		if penX+w+1 > atlasSize {
			penX = 1
			penY += rowH + 1
			rowH = 0
		}
		if penY+h+1 > atlasSize {
			return nil, fmt.Errorf("glyph atlas overflow at %q", r)
		}

		draw.Draw(atlas, image.Rect(penX, penY, penX+w, penY+h), mask, maskp, draw.Src)

		fa.glyphs[r] = glyphInfo{
			u0:      float32(penX) / atlasSize,
			v0:      float32(penY) / atlasSize,
			u1:      float32(penX+w) / atlasSize,
			v1:      float32(penY+h) / atlasSize,
			offX:    float32(dr.Min.X),
			offY:    float32(dr.Min.Y),
			w:       float32(w),
			h:       float32(h),
			advance: fixedToFloat(adv),
		}

		if h > rowH {
			rowH = h
		}
		penX += w + 1
	}

	fa.tex = createAlphaTexture(atlasSize, atlasSize, atlas.Pix)
	return fa, nil
}

// TextureID returns the atlas texture handle.
func (fa *FontAtlas) TextureID() uint32 {
	return fa.tex
}

// MeasureText returns the pixel dimensions of text at the given point size.
func (fa *FontAtlas) MeasureText(text string, size float32) cards.Vec2 {
	s := size / fa.base
	var width float32
	for _, r := range text {
		width += fa.glyph(r).advance
	}
	return cards.Vec2{X: width * s, Y: (fa.ascent + fa.descent) * s}
}

// GlyphQuads generates quads for text with its top-left corner at (x, y).
func (fa *FontAtlas) GlyphQuads(text string, x, y, size float32) []cards.GlyphQuad {
	s := size / fa.base
	pen := x
	baseline := y + fa.ascent*s

	quads := make([]cards.GlyphQuad, 0, len(text))
	for _, r := range text {
		g := fa.glyph(r)
		if g.w > 0 && g.h > 0 {
			x0 := pen + g.offX*s
			y0 := baseline + g.offY*s
			quads = append(quads, cards.GlyphQuad{
				X0: x0, Y0: y0,
				X1: x0 + g.w*s, Y1: y0 + g.h*s,
				U0: g.u0, V0: g.v0,
				U1: g.u1, V1: g.v1,
			})
		}
		pen += g.advance * s
	}
	return quads
}

// glyph looks up a rune's glyph, falling back to '?'.
func (fa *FontAtlas) glyph(r rune) glyphInfo {
	if g, ok := fa.glyphs[r]; ok {
		return g
	}
	return fa.glyphs['?']
}

// fixedToFloat converts 26.6 fixed point to float32 pixels.
func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
