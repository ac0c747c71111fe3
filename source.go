package kaleido

import (
	"fmt"
	"math"

	"github.com/gogpu/kaleido/canvas"
)

// SourceSize returns the offscreen surface size used for the pattern
// source of unit u: one edge plus a two pixel margin wide, two heights tall.
func SourceSize(u TriangleUnit) (width, height int) {
	return int(math.Floor(u.Edge)) + 2, 2 * int(math.Floor(u.Height()))
}

// PatternSource holds the slowly rotating input texture that motifs
// sample from. It draws only on its own surface.
type PatternSource struct {
	surface Surface
	seed    canvas.Brush
	unit    TriangleUnit
	origin  canvas.Point
	angle   float64
}

// NewPatternSource creates a pattern source drawing seed onto s. The
// rotation pivot is (d/2, 0) on s.
func NewPatternSource(s Surface, seed canvas.Brush, u TriangleUnit) (*PatternSource, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: surface", ErrNilDependency)
	}
	if seed == nil {
		return nil, ErrNilSeed
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return &PatternSource{
		surface: s,
		seed:    seed,
		unit:    u,
		origin:  canvas.Pt(u.Edge/2, 0),
	}, nil
}

// Advance rotates the source by delta radians. The stored angle is kept
// in [0, 2π).
func (p *PatternSource) Advance(delta float64) {
	a := math.Mod(p.angle+delta, FullTurn)
	if a < 0 {
		a += FullTurn
	}
	p.angle = a
}

// Angle returns the current rotation in [0, 2π).
func (p *PatternSource) Angle() float64 {
	return p.angle
}

// Surface returns the source's own surface.
func (p *PatternSource) Surface() Surface {
	return p.surface
}

// Extent returns the quadrant size used when rendering into s: the edge
// length, or the distance from the pivot to the farthest corner of s if
// that is larger. A square of that half-size covers s at any angle.
func (p *PatternSource) Extent(s Surface) float64 {
	w, h := float64(s.Width()), float64(s.Height())
	e := p.unit.Edge
	for _, c := range [4]canvas.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: 0, Y: h}, {X: w, Y: h}} {
		e = math.Max(e, c.Sub(p.origin).Length())
	}
	return math.Ceil(e)
}

// RenderInto clears s and fills the four quadrants around the rotated
// pivot with the seed.
func (p *PatternSource) RenderInto(s Surface) error {
	if err := s.ClearRect(0, 0, float64(s.Width()), float64(s.Height())); err != nil {
		return fmt.Errorf("kaleido: clear source: %w", err)
	}
	e := p.Extent(s)

	sc := enterScope(s)
	defer sc.exit()

	s.SetFillBrush(p.seed)
	s.Translate(p.origin.X, p.origin.Y)
	s.Rotate(p.angle)
	for _, q := range quadrants(e) {
		if err := s.FillRect(q[0], q[1], q[2], q[3]); err != nil {
			return fmt.Errorf("kaleido: fill source quadrant: %w", err)
		}
	}
	return nil
}

// Render draws the source onto its own surface.
func (p *PatternSource) Render() error {
	return p.RenderInto(p.surface)
}

// Snapshot reads back the whole source surface.
func (p *PatternSource) Snapshot() (*canvas.ImageData, error) {
	return p.surface.GetImageData(0, 0, p.surface.Width(), p.surface.Height())
}

// quadrants returns the four x, y, w, h rectangles that tile [-e, e]².
func quadrants(e float64) [4][4]float64 {
	return [4][4]float64{
		{-e, 0, e, e},
		{0, -e, e, e},
		{-e, -e, e, e},
		{0, 0, e, e},
	}
}
