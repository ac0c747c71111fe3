package kaleido

import (
	"fmt"

	"github.com/gogpu/kaleido/canvas"
)

// Output receives finished frames. A frame that fails before Present is
// never delivered, so an Output always holds the last committed frame.
type Output interface {
	Present(frame *canvas.ImageData) error
}

// OutputFunc adapts a function to Output.
type OutputFunc func(frame *canvas.ImageData) error

// Present implements Output.
func (f OutputFunc) Present(frame *canvas.ImageData) error {
	return f(frame)
}

// SurfaceOutput presents frames by writing them to the device origin of
// a visible surface of the same size.
type SurfaceOutput struct {
	Surface Surface
}

// Present implements Output.
func (o SurfaceOutput) Present(frame *canvas.ImageData) error {
	if o.Surface == nil {
		return fmt.Errorf("%w: surface", ErrNilDependency)
	}
	if frame == nil {
		return canvas.ErrNilImageData
	}
	if frame.Width != o.Surface.Width() || frame.Height != o.Surface.Height() {
		return fmt.Errorf("%w: frame %dx%d, surface %dx%d", ErrSizeMismatch,
			frame.Width, frame.Height, o.Surface.Width(), o.Surface.Height())
	}
	return o.Surface.PutImageData(frame, 0, 0)
}

// PixelFunc is an optional post-processing step applied to each frame
// before it is presented. It must not retain its argument.
type PixelFunc func(frame *canvas.ImageData) *canvas.ImageData
