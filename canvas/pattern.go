package canvas

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Repetition determines how a pattern image is repeated outside its
// bounds. The zero value is Repeat.
type Repetition uint8

const (
	// Repeat tiles the image in both directions.
	Repeat Repetition = iota

	// RepeatX tiles the image horizontally only.
	RepeatX

	// RepeatY tiles the image vertically only.
	RepeatY

	// NoRepeat paints the image once; everything outside is transparent.
	NoRepeat
)

// String returns the canvas keyword for the repetition.
func (r Repetition) String() string {
	switch r {
	case Repeat:
		return "repeat"
	case RepeatX:
		return "repeat-x"
	case RepeatY:
		return "repeat-y"
	case NoRepeat:
		return "no-repeat"
	default:
		return "unknown"
	}
}

// ParseRepetition parses a canvas repetition keyword. The empty string
// means "repeat".
func ParseRepetition(s string) (Repetition, error) {
	switch s {
	case "", "repeat":
		return Repeat, nil
	case "repeat-x":
		return RepeatX, nil
	case "repeat-y":
		return RepeatY, nil
	case "no-repeat":
		return NoRepeat, nil
	}
	return 0, ErrInvalidRepetition
}

// PatternBrush paints with a copy of an image, repeated according to its
// Repetition. The image's top-left corner sits at the user-space origin
// in effect when a fill is performed.
type PatternBrush struct {
	img *image.RGBA
	rep Repetition
}

// NewPatternBrush snapshots img into a new pattern. Later changes to img
// do not affect the brush.
func NewPatternBrush(img image.Image, rep Repetition) (*PatternBrush, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrInvalidDimensions
	}
	if rep > NoRepeat {
		return nil, ErrInvalidRepetition
	}
	snap := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(snap, snap.Rect, img, b.Min, draw.Src)
	return &PatternBrush{img: snap, rep: rep}, nil
}

// brushMarker implements the sealed Brush interface.
func (*PatternBrush) brushMarker() {}

// Repetition returns the pattern's repeat mode.
func (p *PatternBrush) Repetition() Repetition {
	return p.rep
}

// Size returns the dimensions of the pattern image.
func (p *PatternBrush) Size() (width, height int) {
	return p.img.Rect.Dx(), p.img.Rect.Dy()
}

// ColorAt implements Brush using nearest-neighbour sampling.
func (p *PatternBrush) ColorAt(x, y float64) RGBA {
	return FromColor(p.sample(x, y))
}

// sample returns the premultiplied texel covering user-space (x, y).
func (p *PatternBrush) sample(x, y float64) color.RGBA {
	w, h := p.img.Rect.Dx(), p.img.Rect.Dy()
	px := int(math.Floor(x))
	py := int(math.Floor(y))

	if p.rep == Repeat || p.rep == RepeatX {
		px = wrap(px, w)
	}
	if p.rep == Repeat || p.rep == RepeatY {
		py = wrap(py, h)
	}
	if px < 0 || py < 0 || px >= w || py >= h {
		return color.RGBA{}
	}
	i := py*p.img.Stride + px*4
	s := p.img.Pix[i : i+4 : i+4]
	return color.RGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// patternSource adapts a PatternBrush to image.Image in device space.
// Device pixel centres are mapped back to user space through the inverse
// of the fill-time transform before sampling.
type patternSource struct {
	brush *PatternBrush
	inv   Matrix
}

// ColorModel implements image.Image.
func (s *patternSource) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image. A pattern is unbounded.
func (s *patternSource) Bounds() image.Rectangle {
	return image.Rectangle{Min: image.Point{X: -1e9, Y: -1e9}, Max: image.Point{X: 1e9, Y: 1e9}}
}

// At implements image.Image.
func (s *patternSource) At(x, y int) color.Color {
	p := s.inv.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
	return s.brush.sample(p.X, p.Y)
}
