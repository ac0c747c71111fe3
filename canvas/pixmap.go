package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored as premultiplied RGBA in an *image.RGBA so the
// rasterizer can composite into it directly.
type Pixmap struct {
	img *image.RGBA
}

// Ensure Pixmap can be used as a draw target.
var _ draw.Image = (*Pixmap)(nil)

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Data returns the raw pixel data (premultiplied RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.img.Pix
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if !(image.Point{X: x, Y: y}.In(p.img.Rect)) {
		return
	}
	p.img.SetRGBA(x, y, c.Premul())
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}.In(p.img.Rect)) {
		return Transparent
	}
	return FromColor(p.img.RGBAAt(x, y))
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	pc := c.Premul()
	pix := p.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = pc.R
		pix[i+1] = pc.G
		pix[i+2] = pc.B
		pix[i+3] = pc.A
	}
}

// ToImage returns a copy of the pixmap as an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(p.img.Rect)
	copy(img.Pix, p.img.Pix)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	pm := NewPixmap(b.Dx(), b.Dy())
	draw.Draw(pm.img, pm.img.Rect, img, b.Min, draw.Src)
	return pm
}

// ReadRegion copies the w×h rectangle at (x, y) into a new ImageData.
// Parts of the rectangle outside the pixmap read as transparent black.
func (p *Pixmap) ReadRegion(x, y, w, h int) (*ImageData, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidRegion
	}
	out := NewImageData(w, h)
	draw.Draw(out.Image(), image.Rect(0, 0, w, h), p.img, image.Pt(x, y), draw.Src)
	return out, nil
}

// WriteRegion copies data verbatim to (x, y), clipped to the pixmap.
// No compositing takes place.
func (p *Pixmap) WriteRegion(data *ImageData, x, y int) error {
	if data == nil {
		return ErrNilImageData
	}
	r := image.Rect(x, y, x+data.Width, y+data.Height)
	draw.Draw(p.img, r, data.Image(), image.Point{}, draw.Src)
	return nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.img.Set(x, y, c)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
