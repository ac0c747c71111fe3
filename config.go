package kaleido

import (
	"fmt"
	"math"

	"github.com/gogpu/kaleido/canvas"
)

// Default configuration values.
const (
	DefaultEdge   = 150
	DefaultWidth  = 1024
	DefaultHeight = 1024
	DefaultCount  = 2
	DefaultStep   = -0.01
)

// Config holds the parameters of a kaleidoscope animation.
type Config struct {
	// Edge is the motif edge length d in pixels.
	Edge float64

	// Width and Height are the output surface dimensions.
	Width  int
	Height int

	// Count is the size of the count×count flower grid.
	Count int

	// Step is the source rotation per frame in radians.
	Step float64

	// Policy decides what happens after a failed frame.
	Policy Policy

	// MaxFrames stops the animation after that many committed frames.
	// Zero means no limit.
	MaxFrames uint64
}

// DefaultConfig returns the observed configuration: d=150, a 1024×1024
// output, a 2×2 grid and -0.01 rad per frame.
func DefaultConfig() Config {
	return Config{
		Edge:   DefaultEdge,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Count:  DefaultCount,
		Step:   DefaultStep,
		Policy: SkipFrame,
	}
}

// Unit returns the motif unit for the configured edge.
func (c Config) Unit() TriangleUnit {
	return TriangleUnit{Edge: c.Edge}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if err := c.Unit().Validate(); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", canvas.ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.Count < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, c.Count)
	}
	if math.IsNaN(c.Step) || math.IsInf(c.Step, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidStep, c.Step)
	}
	if c.Policy > FailFast {
		return fmt.Errorf("kaleido: unknown policy %d", c.Policy)
	}
	return nil
}
