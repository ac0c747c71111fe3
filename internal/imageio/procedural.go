package imageio

import (
	"image"
	"math"

	"github.com/gogpu/kaleido/canvas"
)

// Procedural returns an opaque seed image of the given size: concentric
// hue bands over a diagonal stripe pattern. It stands in when no seed
// file is configured.
func Procedural(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	cx, cy := float64(width)/2, float64(height)/2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			r := math.Hypot(dx, dy)
			hue := math.Mod(r*4+math.Atan2(dy, dx)*180/math.Pi, 360)
			light := 0.45
			if (x+y)/12%2 == 0 {
				light = 0.6
			}
			img.SetRGBA(x, y, canvas.HSL(hue, 0.8, light).Premul())
		}
	}
	return img
}
