package canvas

import (
	"bytes"
	"image"
	"image/color"
)

// ImageData is a captured rectangular grid of RGBA samples, the unit
// exchanged by GetImageData and PutImageData. Pix holds premultiplied RGBA,
// 4 bytes per pixel, row-major with a stride of 4*Width.
type ImageData struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewImageData allocates a transparent black buffer of the given size.
func NewImageData(width, height int) *ImageData {
	return &ImageData{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// Image returns an *image.RGBA view that shares Pix with d.
func (d *ImageData) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    d.Pix,
		Stride: d.Width * 4,
		Rect:   image.Rect(0, 0, d.Width, d.Height),
	}
}

// RGBAAt returns the sample at (x, y), or transparent black outside the
// buffer.
func (d *ImageData) RGBAAt(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= d.Width || y >= d.Height {
		return color.RGBA{}
	}
	i := (y*d.Width + x) * 4
	return color.RGBA{R: d.Pix[i], G: d.Pix[i+1], B: d.Pix[i+2], A: d.Pix[i+3]}
}

// Clone returns a deep copy of d.
func (d *ImageData) Clone() *ImageData {
	out := &ImageData{Width: d.Width, Height: d.Height, Pix: make([]uint8, len(d.Pix))}
	copy(out.Pix, d.Pix)
	return out
}

// Equal reports whether d and other have the same size and samples.
func (d *ImageData) Equal(other *ImageData) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Width == other.Width && d.Height == other.Height && bytes.Equal(d.Pix, other.Pix)
}
