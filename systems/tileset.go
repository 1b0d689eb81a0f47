package systems

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/bmp"
)

// ErrTextureDecode is returned when a texture file is not a readable bitmap
var ErrTextureDecode = errors.New("texture is not a valid bitmap")

// Texture is a decoded tile bitmap
type Texture struct {
	Name  string
	Path  string
	Image image.Image
}

// LoadTexture reads and decodes a BMP file
func LoadTexture(name, path string) (*Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s texture: %w", name, err)
	}
	defer file.Close()

	img, err := bmp.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (%s): %v", ErrTextureDecode, name, path, err)
	}

	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%w: %s (%s) is empty", ErrTextureDecode, name, path)
	}

	return &Texture{
		Name:  name,
		Path:  path,
		Image: img,
	}, nil
}

// Size returns the texture dimensions in pixels
func (t *Texture) Size() (int, int) {
	b := t.Image.Bounds()
	return b.Dx(), b.Dy()
}

// AverageColor returns the mean color of the texture, used where a bitmap
// cannot be drawn and one flat color has to stand in for it
func (t *Texture) AverageColor() color.RGBA {
	b := t.Image.Bounds()
	var r, g, bl, a uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cr, cg, cb, ca := t.Image.At(x, y).RGBA()
			r += uint64(cr)
			g += uint64(cg)
			bl += uint64(cb)
			a += uint64(ca)
		}
	}

	n := uint64(b.Dx() * b.Dy())
	return color.RGBA{
		R: uint8(r / n >> 8),
		G: uint8(g / n >> 8),
		B: uint8(bl / n >> 8),
		A: uint8(a / n >> 8),
	}
}
