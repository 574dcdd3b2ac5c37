package cards_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/flashdeck/cards"
)

// writePNG writes a solid-color PNG of the given size.
func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0x80
	}
	img.Set(0, 0, color.White)

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestListCardFiles(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "cat.png"), 4, 4)
	writePNG(t, filepath.Join(dir, "dog.png"), 4, 4)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := cards.ListCardFiles(dir)
	if err != nil {
		t.Fatalf("ListCardFiles() returned error: %v", err)
	}
	if len(files) != 2 || files[0] != "cat.png" || files[1] != "dog.png" {
		t.Errorf("files = %v, want [cat.png dog.png]", files)
	}
}

func TestListCardFilesMissingDir(t *testing.T) {
	if _, err := cards.ListCardFiles(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("ListCardFiles() should fail on a missing directory")
	}
}

func TestLoadCardImageScaling(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		frameWidth int
		wantW      int
		wantH      int
	}{
		{"wide", 100, 50, 600, 480, 240},
		{"tall", 50, 100, 600, 240, 480},
		{"square", 64, 64, 600, 480, 480},
		{"small frame", 200, 100, 100, 80, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writePNG(t, filepath.Join(dir, "img.png"), tt.w, tt.h)

			img, err := cards.LoadCardImage(dir, "img.png", tt.frameWidth)
			if err != nil {
				t.Fatalf("LoadCardImage() returned error: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("scaled size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestLoadCardImageBadFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := cards.LoadCardImage(dir, "broken.png", 600); err == nil {
		t.Error("LoadCardImage() should fail on a corrupt image")
	}
	if _, err := cards.LoadCardImage(dir, "missing.png", 600); err == nil {
		t.Error("LoadCardImage() should fail on a missing file")
	}
}

func TestDisplayName(t *testing.T) {
	if got := cards.DisplayName("blue-jay.png"); got != "blue-jay" {
		t.Errorf("DisplayName(blue-jay.png) = %q, want blue-jay", got)
	}
}
