package cards_test

import (
	"testing"

	"github.com/flashdeck/cards"
)

// fakeFont has fixed metrics: every glyph is size/2 wide and size tall,
// so measurements are trivial to predict.
type fakeFont struct {
	texture uint32
}

func (f *fakeFont) TextureID() uint32 { return f.texture }

func (f *fakeFont) MeasureText(text string, size float32) cards.Vec2 {
	return cards.Vec2{X: float32(len(text)) * size / 2, Y: size}
}

func (f *fakeFont) GlyphQuads(text string, x, y, size float32) []cards.GlyphQuad {
	quads := make([]cards.GlyphQuad, 0, len(text))
	for range text {
		quads = append(quads, cards.GlyphQuad{X0: x, Y0: y, X1: x + size/2, Y1: y + size})
		x += size / 2
	}
	return quads
}

// loadTextured builds Cards with a fake texture and fixed dimensions.
func loadTextured(file string) (*cards.Card, error) {
	return &cards.Card{
		Name:    cards.DisplayName(file),
		Texture: 42,
		Width:   480,
		Height:  240,
	}, nil
}

func newTestScene() (*cards.Scene, *fakeFont) {
	font := &fakeFont{texture: 7}
	return cards.NewScene(font, cards.FrameWidth, cards.FrameHeight), font
}

// findCmd returns the first draw command bound to the given texture.
func findCmd(t *testing.T, dl *cards.DrawList, texture uint32) cards.DrawCmd {
	t.Helper()
	for _, cmd := range dl.CmdBuffer {
		if cmd.TextureID == texture {
			return cmd
		}
	}
	t.Fatalf("no draw command for texture %d in %+v", texture, dl.CmdBuffer)
	return cards.DrawCmd{}
}

// countVertices counts frame vertices carrying the given color.
func countVertices(dl *cards.DrawList, color uint32) int {
	n := 0
	for _, v := range dl.VtxBuffer {
		if v.Color == color {
			n++
		}
	}
	return n
}

func TestComposeLayout(t *testing.T) {
	sel := cards.NewSelector(testFiles(4), 2, loadTextured, cards.WithRand(testRand()))
	q, err := cards.NewQuiz(sel, nil)
	if err != nil {
		t.Fatal(err)
	}
	scene, font := newTestScene()
	style := cards.DefaultStyle()

	dl := cards.AcquireDrawList()
	defer cards.ReleaseDrawList(dl)
	scene.Compose(dl, q)
	dl.Finalize()

	// The untextured command carries the background fill and the outline.
	bg := findCmd(t, dl, 0)
	first := dl.VtxBuffer[bg.VertexOffset]
	if first.Pos != [2]float32{0, 0} || first.Color != style.BackgroundColor {
		t.Errorf("background vertex = %+v, want origin with the background color", first)
	}

	// A 480x240 card centers at x=60; the vertical offset is derived
	// from the frame width, so y=(600-240)/2=180.
	img := findCmd(t, dl, 42)
	corner := dl.VtxBuffer[img.VertexOffset]
	if corner.Pos != [2]float32{60, 180} {
		t.Errorf("image corner = %v, want [60 180]", corner.Pos)
	}
	if img.ElemCount != 6 {
		t.Errorf("image command draws %d indices, want 6", img.ElemCount)
	}

	// The score indicator "0/2" is the only text on an empty buffer:
	// three glyphs, four vertices each.
	text := findCmd(t, dl, font.texture)
	if got := text.ElemCount / 6; got != 3 {
		t.Errorf("text command draws %d glyphs, want 3 for the score", got)
	}
	if n := countVertices(dl, style.RevealColor); n != 0 {
		t.Errorf("found %d reveal-colored vertices before any reveal", n)
	}
}

func TestComposeTypedText(t *testing.T) {
	sel := cards.NewSelector(testFiles(4), 2, loadTextured, cards.WithRand(testRand()))
	q, err := cards.NewQuiz(sel, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := q.TypeChar('x'); err != nil {
		t.Fatal(err)
	}
	scene, _ := newTestScene()

	dl := cards.AcquireDrawList()
	defer cards.ReleaseDrawList(dl)
	scene.Compose(dl, q)
	dl.Finalize()

	// Score (3 glyphs) plus the one typed character.
	var glyphs uint32
	for _, cmd := range dl.CmdBuffer {
		if cmd.TextureID == 7 {
			glyphs += cmd.ElemCount / 6
		}
	}
	if glyphs != 4 {
		t.Errorf("composed %d glyphs, want 4 (score plus typed text)", glyphs)
	}
}

func TestComposeReveal(t *testing.T) {
	sel := cards.NewSelector(testFiles(4), 2, loadTextured, cards.WithRand(testRand()))
	q, err := cards.NewQuiz(sel, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := q.Submit(); err != nil {
		t.Fatal(err)
	}
	if !q.Revealed() {
		t.Fatal("submitting an empty buffer should reveal")
	}
	scene, _ := newTestScene()
	style := cards.DefaultStyle()

	dl := cards.AcquireDrawList()
	defer cards.ReleaseDrawList(dl)
	scene.Compose(dl, q)
	dl.Finalize()

	// The revealed answer renders one quad per character of the name.
	want := 4 * len(q.Card().Name)
	if n := countVertices(dl, style.RevealColor); n != want {
		t.Errorf("found %d reveal-colored vertices, want %d", n, want)
	}
}

func TestFitTextSize(t *testing.T) {
	font := &fakeFont{}

	// "abcd" at size 50 measures 100 wide; it fits 60 at size 30.
	if got := cards.FitTextSize(font, "abcd", 50, 60); got != 30 {
		t.Errorf("FitTextSize = %v, want 30", got)
	}
	// Already fitting text keeps its size.
	if got := cards.FitTextSize(font, "ab", 50, 600); got != 50 {
		t.Errorf("FitTextSize = %v, want 50", got)
	}
	// The size never drops below 1, even when nothing fits.
	if got := cards.FitTextSize(font, "abcdefgh", 50, 1); got != 1 {
		t.Errorf("FitTextSize = %v, want floor of 1", got)
	}
}
