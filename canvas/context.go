package canvas

import (
	"fmt"
	"image"
)

// state is one entry of the Push/Pop stack.
type state struct {
	matrix Matrix
	brush  Brush
}

// Context is the main drawing context.
// It maintains a pixmap, current path, fill brush, and transformation stack.
//
// Context is NOT safe for concurrent use.
type Context struct {
	width    int
	height   int
	pixmap   *Pixmap
	renderer Renderer

	// Current state
	path  *Path
	brush Brush

	// Transform and state stack
	matrix Matrix
	stack  []state

	// Readback policy
	tainted bool
}

// NewContext creates a new drawing context with the given dimensions.
// It returns ErrInvalidDimensions if either dimension is not positive, or
// if a supplied pixmap does not match them.
func NewContext(width, height int, opts ...ContextOption) (*Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	pixmap := options.pixmap
	if pixmap == nil {
		pixmap = NewPixmap(width, height)
	} else if pixmap.Width() != width || pixmap.Height() != height {
		return nil, fmt.Errorf("%w: pixmap is %dx%d, context is %dx%d",
			ErrInvalidDimensions, pixmap.Width(), pixmap.Height(), width, height)
	}

	renderer := options.renderer
	if renderer == nil {
		renderer = NewSoftwareRenderer()
	}

	return &Context{
		width:    width,
		height:   height,
		pixmap:   pixmap,
		renderer: renderer,
		path:     NewPath(),
		brush:    Solid(Black),
		matrix:   Identity(),
		stack:    make([]state, 0, 8),
	}, nil
}

// Width returns the width of the context.
func (c *Context) Width() int {
	return c.width
}

// Height returns the height of the context.
func (c *Context) Height() int {
	return c.height
}

// Image returns the context's pixmap as an image.Image.
// The returned value aliases the surface; later drawing is visible through it.
func (c *Context) Image() image.Image {
	return c.pixmap
}

// Pixmap returns the underlying pixel buffer.
func (c *Context) Pixmap() *Pixmap {
	return c.pixmap
}

// SetFillBrush sets the brush used for fill operations.
func (c *Context) SetFillBrush(b Brush) {
	c.brush = b
}

// FillBrush returns the current fill brush.
func (c *Context) FillBrush() Brush {
	return c.brush
}

// CreatePattern creates a pattern brush from a snapshot of img.
func (c *Context) CreatePattern(img image.Image, rep Repetition) (*PatternBrush, error) {
	return NewPatternBrush(img, rep)
}

// Push saves the current transform and fill brush.
func (c *Context) Push() {
	c.stack = append(c.stack, state{matrix: c.matrix, brush: c.brush})
}

// Pop restores the last saved state. Pop on an empty stack is a no-op.
func (c *Context) Pop() {
	if len(c.stack) == 0 {
		return
	}
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.matrix = top.matrix
	c.brush = top.brush
}

// Depth returns the number of saved states on the stack.
func (c *Context) Depth() int {
	return len(c.stack)
}

// Identity resets the transformation matrix to identity.
func (c *Context) Identity() {
	c.matrix = Identity()
}

// Translate applies a translation to the transformation matrix.
func (c *Context) Translate(x, y float64) {
	c.matrix = c.matrix.Multiply(Translate(x, y))
}

// Rotate applies a rotation (angle in radians).
func (c *Context) Rotate(angle float64) {
	c.matrix = c.matrix.Multiply(Rotate(angle))
}

// SetTransform replaces the current transformation matrix with the given matrix.
func (c *Context) SetTransform(m Matrix) {
	c.matrix = m
}

// GetTransform returns a copy of the current transformation matrix.
func (c *Context) GetTransform() Matrix {
	return c.matrix
}

// BeginPath discards the current path.
func (c *Context) BeginPath() {
	c.path.Clear()
}

// MoveTo starts a new subpath at the given point.
func (c *Context) MoveTo(x, y float64) {
	p := c.matrix.TransformPoint(Pt(x, y))
	c.path.MoveTo(p.X, p.Y)
}

// LineTo adds a line to the current path.
func (c *Context) LineTo(x, y float64) {
	p := c.matrix.TransformPoint(Pt(x, y))
	c.path.LineTo(p.X, p.Y)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	c.path.Close()
}

// Fill fills the current path with the current brush and clears it.
// Returns ErrNonFinite if the path or transform is not finite.
func (c *Context) Fill() error {
	err := c.renderer.Fill(c.pixmap, c.path, &Paint{Brush: c.brush, Transform: c.matrix})
	c.path.Clear()
	return err
}

// FillRect fills a rectangle with the current brush. The current path is
// left untouched.
func (c *Context) FillRect(x, y, w, h float64) error {
	return c.renderer.Fill(c.pixmap, c.rectPath(x, y, w, h), &Paint{Brush: c.brush, Transform: c.matrix})
}

// ClearRect erases a rectangle to transparent black.
func (c *Context) ClearRect(x, y, w, h float64) error {
	return c.renderer.Clear(c.pixmap, c.rectPath(x, y, w, h))
}

// rectPath builds a device-space path for a user-space rectangle.
func (c *Context) rectPath(x, y, w, h float64) *Path {
	p := NewPath()
	for i, pt := range [4]Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}} {
		d := c.matrix.TransformPoint(pt)
		if i == 0 {
			p.MoveTo(d.X, d.Y)
			continue
		}
		p.LineTo(d.X, d.Y)
	}
	p.Close()
	return p
}

// Taint marks the surface as holding pixels that may not be read back.
// Every later GetImageData call fails with ErrTainted.
func (c *Context) Taint() {
	c.tainted = true
}

// Tainted reports whether readback is denied.
func (c *Context) Tainted() bool {
	return c.tainted
}

// GetImageData copies a device-space rectangle out of the surface. The
// transform does not apply. Parts outside the surface read as transparent.
func (c *Context) GetImageData(x, y, w, h int) (*ImageData, error) {
	if c.tainted {
		return nil, ErrTainted
	}
	return c.pixmap.ReadRegion(x, y, w, h)
}

// PutImageData writes data verbatim at device position (x, y), clipped to
// the surface. The transform does not apply and no compositing happens.
func (c *Context) PutImageData(data *ImageData, x, y int) error {
	return c.pixmap.WriteRegion(data, x, y)
}
