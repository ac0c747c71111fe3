package imageio

import (
	"image"

	"golang.org/x/image/draw"
)

// Fit scales img to exactly width×height with Catmull-Rom resampling.
// An image already of that size is copied without resampling.
func Fit(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Rect, img, b, draw.Src, nil)
	return dst
}
