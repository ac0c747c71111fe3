package canvas

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// SoftwareRenderer is a CPU rasterizer with analytic anti-aliasing.
// Coverage is computed by golang.org/x/image/vector over the bounding box
// of each path, so cost scales with the filled area rather than the
// surface size.
type SoftwareRenderer struct {
	rasterizer *vector.Rasterizer
}

// NewSoftwareRenderer creates a new software renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{
		rasterizer: vector.NewRasterizer(0, 0),
	}
}

// Fill implements Renderer.Fill.
func (r *SoftwareRenderer) Fill(pixmap *Pixmap, p *Path, paint *Paint) error {
	if !paint.Transform.IsFinite() {
		return ErrNonFinite
	}
	if err := p.validate(); err != nil {
		return err
	}
	box, ok := r.prepare(pixmap, p)
	if !ok {
		return nil
	}

	var src image.Image
	switch b := paint.Brush.(type) {
	case nil:
		src = image.NewUniform(Black.Premul())
	case SolidBrush:
		src = image.NewUniform(b.Color.Premul())
	case *PatternBrush:
		src = &patternSource{brush: b, inv: paint.Transform.Invert()}
	default:
		src = image.NewUniform(Black.Premul())
	}

	r.rasterizer.DrawOp = draw.Over
	r.rasterizer.Draw(pixmap.img, box, src, box.Min)
	return nil
}

// Clear implements Renderer.Clear.
func (r *SoftwareRenderer) Clear(pixmap *Pixmap, p *Path) error {
	if err := p.validate(); err != nil {
		return err
	}
	box, ok := r.prepare(pixmap, p)
	if !ok {
		return nil
	}
	r.rasterizer.DrawOp = draw.Src
	r.rasterizer.Draw(pixmap.img, box, image.Transparent, image.Point{})
	return nil
}

// prepare resets the rasterizer to the device-space bounding box of p,
// clipped to the pixmap, and feeds it the path relative to that box.
// It reports false when nothing would be drawn.
func (r *SoftwareRenderer) prepare(pixmap *Pixmap, p *Path) (image.Rectangle, bool) {
	if p.IsEmpty() {
		return image.Rectangle{}, false
	}
	lo, hi := p.Bounds()
	box := image.Rect(
		int(math.Floor(lo.X)), int(math.Floor(lo.Y)),
		int(math.Ceil(hi.X)), int(math.Ceil(hi.Y)),
	).Intersect(pixmap.Bounds())
	if box.Empty() {
		return image.Rectangle{}, false
	}

	r.rasterizer.Reset(box.Dx(), box.Dy())
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	open := false
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case MoveTo:
			if open {
				r.rasterizer.ClosePath()
			}
			r.rasterizer.MoveTo(float32(e.Point.X-ox), float32(e.Point.Y-oy))
			open = true
		case LineTo:
			r.rasterizer.LineTo(float32(e.Point.X-ox), float32(e.Point.Y-oy))
		case Close:
			r.rasterizer.ClosePath()
		}
	}
	if open {
		r.rasterizer.ClosePath()
	}
	return box, true
}
