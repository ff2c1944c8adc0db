package photoedit

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
)

// Bitmap is a rectangular 32-bit RGBA pixel buffer.
// Bitmap implements image.Image and draw.Image, so it can be handed
// directly to the text rasterizer and to image encoders.
type Bitmap struct {
	img *image.RGBA
}

// NewBitmap creates a new, fully transparent bitmap.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// BitmapFromImage copies img into a new bitmap whose origin is (0, 0).
func BitmapFromImage(img image.Image) *Bitmap {
	b := img.Bounds()
	bm := NewBitmap(b.Dx(), b.Dy())
	draw.Draw(bm.img, bm.img.Bounds(), img, b.Min, draw.Src)
	return bm
}

// Width returns the width of the bitmap. A nil bitmap has zero width.
func (b *Bitmap) Width() int {
	if b == nil {
		return 0
	}
	return b.img.Rect.Dx()
}

// Height returns the height of the bitmap. A nil bitmap has zero height.
func (b *Bitmap) Height() int {
	if b == nil {
		return 0
	}
	return b.img.Rect.Dy()
}

// Image returns the underlying premultiplied RGBA image.
func (b *Bitmap) Image() *image.RGBA {
	return b.img
}

// SetPixel sets the color of a single pixel.
func (b *Bitmap) SetPixel(x, y int, c RGBA) {
	b.img.Set(x, y, c.Color())
}

// GetPixel returns the color of a single pixel.
func (b *Bitmap) GetPixel(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}).In(b.img.Rect) {
		return Transparent
	}
	return FromColor(b.img.At(x, y))
}

// Clear fills the entire bitmap with a color.
func (b *Bitmap) Clear(c RGBA) {
	draw.Draw(b.img, b.img.Rect, image.NewUniform(c.Color()), image.Point{}, draw.Src)
}

// EncodePNG writes the bitmap to w in PNG format.
func (b *Bitmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.img)
}

// SavePNG saves the bitmap to a PNG file.
func (b *Bitmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	return b.img.At(x, y)
}

// Set implements the draw.Image interface.
func (b *Bitmap) Set(x, y int, c color.Color) {
	b.img.Set(x, y, c)
}

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return b.img.Rect
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.RGBAModel
}
