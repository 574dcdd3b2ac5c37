package cards

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// cardExt is the file extension card images are recognized by.
const cardExt = ".png"

// imageFit is the fraction of the frame width the longer image
// dimension is scaled to.
const imageFit = 0.8

// Card is a single flash card: a pre-scaled image texture and the
// display name derived from its file name. Cards are immutable and
// live only as long as the round they were drawn for.
type Card struct {
	Name    string  // file name minus extension
	Texture uint32  // backend texture handle
	Width   float32 // scaled pixel width
	Height  float32 // scaled pixel height
}

// DisplayName derives a card's display name from its file name.
func DisplayName(file string) string {
	return strings.TrimSuffix(file, cardExt)
}

// ListCardFiles returns the names of all card image files in dir,
// in directory order.
func ListCardFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read image directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), cardExt) {
			files = append(files, e.Name())
		}
	}
	return files, nil
}

// LoadCardImage decodes the image file and scales it so its longer
// dimension equals 80% of frameWidth, preserving aspect ratio.
func LoadCardImage(dir, file string, frameWidth int) (*image.RGBA, error) {
	f, err := os.Open(filepath.Join(dir, file))
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", file, err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", file, err)
	}

	b := src.Bounds()
	maxRes := b.Dx()
	if b.Dy() > maxRes {
		maxRes = b.Dy()
	}
	w := int(float64(frameWidth) * imageFit * float64(b.Dx()) / float64(maxRes))
	h := int(float64(frameWidth) * imageFit * float64(b.Dy()) / float64(maxRes))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst, nil
}
