package kaleido

import (
	"image"

	"github.com/gogpu/kaleido/canvas"
)

// Surface is the drawing target the kaleidoscope renders through. It
// mirrors the subset of a 2D canvas context the pipeline needs.
type Surface interface {
	Width() int
	Height() int

	// Transform stack.
	Push()
	Pop()
	Depth() int
	Translate(x, y float64)
	Rotate(angle float64)
	GetTransform() canvas.Matrix

	// Paths and fills.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Fill() error
	FillRect(x, y, w, h float64) error
	ClearRect(x, y, w, h float64) error
	SetFillBrush(b canvas.Brush)
	CreatePattern(img image.Image, rep canvas.Repetition) (*canvas.PatternBrush, error)

	// Pixel I/O in device space.
	GetImageData(x, y, w, h int) (*canvas.ImageData, error)
	PutImageData(data *canvas.ImageData, x, y int) error
}

var _ Surface = (*canvas.Context)(nil)

// scope pins the transform stack depth of a surface for the duration of a
// drawing call. exit unwinds to the recorded depth on every return path.
//
//	sc := enterScope(s)
//	defer sc.exit()
type scope struct {
	s     Surface
	depth int
}

func enterScope(s Surface) scope {
	sc := scope{s: s, depth: s.Depth()}
	s.Push()
	return sc
}

func (sc scope) exit() {
	for sc.s.Depth() > sc.depth {
		sc.s.Pop()
	}
}
