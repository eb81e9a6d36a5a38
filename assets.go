package subframe

import (
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// DecodeImage reads and decodes the image at path in fsys. PNG, BMP and WebP
// are supported. Returns the decoded image and its format name.
func DecodeImage(fsys fs.FS, path string) (image.Image, string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("load image %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, format, nil
}

// LoadImage decodes the image at path in fsys into an *ebiten.Image.
func LoadImage(fsys fs.FS, path string) (*ebiten.Image, error) {
	img, _, err := DecodeImage(fsys, path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}
