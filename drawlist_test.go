package cards_test

import (
	"testing"

	"github.com/flashdeck/cards"
)

func TestDrawListPoolReuse(t *testing.T) {
	dl := cards.AcquireDrawList()
	dl.AddRect(0, 0, 10, 10, cards.ColorWhite)
	if len(dl.VtxBuffer) == 0 {
		t.Fatal("AddRect produced no vertices")
	}
	cards.ReleaseDrawList(dl)

	dl = cards.AcquireDrawList()
	defer cards.ReleaseDrawList(dl)
	if len(dl.VtxBuffer) != 0 || len(dl.IdxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
		t.Error("acquired DrawList was not cleared")
	}
}

func TestDrawListTextureBatching(t *testing.T) {
	dl := cards.AcquireDrawList()
	defer cards.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, cards.ColorWhite)
	dl.AddRect(20, 0, 10, 10, cards.ColorBlack)
	dl.AddImage(5, 0, 0, 32, 32)
	dl.SetTexture(9)
	dl.AddGlyphQuads([]cards.GlyphQuad{{X1: 8, Y1: 8}, {X0: 8, X1: 16, Y1: 8}}, cards.ColorBlack)
	dl.Finalize()

	if len(dl.CmdBuffer) != 3 {
		t.Fatalf("got %d commands, want 3 (untextured, image, glyphs)", len(dl.CmdBuffer))
	}

	tests := []struct {
		texture uint32
		elems   uint32
	}{
		{0, 12}, // two rects batched into one command
		{5, 6},
		{9, 12},
	}
	for i, tt := range tests {
		cmd := dl.CmdBuffer[i]
		if cmd.TextureID != tt.texture || cmd.ElemCount != tt.elems {
			t.Errorf("cmd %d = texture %d / %d elems, want texture %d / %d elems",
				i, cmd.TextureID, cmd.ElemCount, tt.texture, tt.elems)
		}
	}
}

func TestDrawListClipRect(t *testing.T) {
	dl := cards.AcquireDrawList()
	defer cards.ReleaseDrawList(dl)

	dl.PushClipRect(0, 0, 100, 100)
	dl.AddRect(0, 0, 10, 10, cards.ColorWhite)
	dl.PushClipRect(10, 10, 50, 50)
	dl.AddImage(3, 0, 0, 32, 32)
	dl.PopClipRect()
	dl.AddRect(0, 0, 10, 10, cards.ColorWhite)
	dl.Finalize()

	want := [][4]float32{
		{0, 0, 100, 100},
		{10, 10, 50, 50},
		{0, 0, 100, 100},
	}
	if len(dl.CmdBuffer) != len(want) {
		t.Fatalf("got %d commands, want %d", len(dl.CmdBuffer), len(want))
	}
	for i, cmd := range dl.CmdBuffer {
		if cmd.ClipRect != want[i] {
			t.Errorf("cmd %d clip = %v, want %v", i, cmd.ClipRect, want[i])
		}
	}
}

func TestAddRectSkipsTransparent(t *testing.T) {
	dl := cards.AcquireDrawList()
	defer cards.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, cards.RGBA(255, 0, 0, 0))
	dl.Finalize()

	if len(dl.VtxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
		t.Error("fully transparent rect should produce no geometry")
	}
}

func TestAddRectOutline(t *testing.T) {
	dl := cards.AcquireDrawList()
	defer cards.ReleaseDrawList(dl)

	dl.AddRectOutline(0, 0, 100, 50, cards.ColorBlack, 2)
	dl.Finalize()

	// Four edges, one quad each.
	if len(dl.VtxBuffer) != 16 || len(dl.IdxBuffer) != 24 {
		t.Errorf("outline produced %d vertices / %d indices, want 16 / 24",
			len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
}

func TestAddImageSkipsZeroTexture(t *testing.T) {
	dl := cards.AcquireDrawList()
	defer cards.ReleaseDrawList(dl)

	dl.AddImage(0, 0, 0, 32, 32)
	dl.Finalize()

	if len(dl.VtxBuffer) != 0 {
		t.Error("image with no texture should produce no geometry")
	}
}
