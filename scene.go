package cards

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Default frame dimensions, matching the fixed window size.
const (
	FrameWidth  = 600
	FrameHeight = 800
)

// Scene composes the per-frame draw list for the quiz: background,
// card image with outline, score indicator, typed text, and the
// revealed answer. It reads the quiz state and never mutates it.
type Scene struct {
	font   Font
	style  Style
	width  float32
	height float32
	titler cases.Caser
}

// SceneOption configures a Scene.
type SceneOption func(*Scene)

// WithStyle sets the scene style.
func WithStyle(style Style) SceneOption {
	return func(s *Scene) { s.style = style }
}

// NewScene creates a scene composer for a frame of the given size.
func NewScene(font Font, width, height int, opts ...SceneOption) *Scene {
	s := &Scene{
		font:   font,
		style:  DefaultStyle(),
		width:  float32(width),
		height: float32(height),
		titler: cases.Title(language.English),
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Compose builds one frame of the quiz into dl.
func (s *Scene) Compose(dl *DrawList, q *Quiz) {
	dl.PushClipRect(0, 0, s.width, s.height)
	defer dl.PopClipRect()

	dl.AddRect(0, 0, s.width, s.height, s.style.BackgroundColor)

	card := q.Card()
	pos := s.imageOffset(card)
	dl.AddImage(card.Texture, pos.X, pos.Y, card.Width, card.Height)
	dl.AddRectOutline(pos.X, pos.Y, card.Width, card.Height,
		s.style.OutlineColor, s.style.OutlineThickness)

	score := fmt.Sprintf("%d/%d", q.Score(), q.SubsetSize())
	s.text(dl, score, 25, 25, s.style.ScoreTextSize, s.style.InkColor)

	s.text(dl, q.Text(), s.width/2, s.height-50, s.style.AnswerTextSize, s.style.InkColor)
	if q.Revealed() {
		answer := s.titler.String(card.Name)
		s.text(dl, answer, s.width/2, s.height-100, s.style.AnswerTextSize, s.style.RevealColor)
	}
}

// imageOffset places the card horizontally centered. The vertical
// offset is computed from the frame width as well, which sits the image
// above center on the tall frame. Kept as-is.
func (s *Scene) imageOffset(card *Card) Vec2 {
	return Vec2{
		X: float32(int(s.width-card.Width) / 2),
		Y: float32(int(s.width-card.Height) / 2),
	}
}

// text draws a string centered on (x, y), shrinking the point size
// until the rendered width fits the frame.
func (s *Scene) text(dl *DrawList, str string, x, y, size float32, color uint32) {
	if str == "" {
		return
	}

	size = FitTextSize(s.font, str, size, s.width)
	m := s.font.MeasureText(str, size)

	dl.SetTexture(s.font.TextureID())
	dl.AddGlyphQuads(s.font.GlyphQuads(str, x-m.X/2, y-m.Y/2, size), color)
}
