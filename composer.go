package kaleido

import (
	"fmt"

	"github.com/gogpu/kaleido/canvas"
)

// Composer builds the kaleidoscope frame on its surface: a grid of
// flowers is drawn once, then its Block Region is stamped across the
// whole surface.
type Composer struct {
	surface Surface
	unit    TriangleUnit
	count   int
}

// NewComposer creates a composer drawing a count×count grid on s.
func NewComposer(s Surface, u TriangleUnit, count int) (*Composer, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: surface", ErrNilDependency)
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	return &Composer{surface: s, unit: u, count: count}, nil
}

// Surface returns the kaleidoscope surface.
func (k *Composer) Surface() Surface {
	return k.surface
}

// SetFill installs the fill the flowers are painted with.
func (k *Composer) SetFill(b canvas.Brush) {
	k.surface.SetFillBrush(b)
}

// Frame clears the surface, draws the flower grid offset by (-d/2, -h),
// stamps the block across the surface and reads the result back.
func (k *Composer) Frame() (*canvas.ImageData, error) {
	w, h := k.surface.Width(), k.surface.Height()
	if err := k.surface.ClearRect(0, 0, float64(w), float64(h)); err != nil {
		return nil, fmt.Errorf("kaleido: clear frame: %w", err)
	}
	if err := k.grid(); err != nil {
		return nil, fmt.Errorf("kaleido: draw grid: %w", err)
	}
	if err := Tile(k.surface, k.unit); err != nil {
		return nil, fmt.Errorf("kaleido: tile: %w", err)
	}
	frame, err := k.surface.GetImageData(0, 0, w, h)
	if err != nil {
		return nil, fmt.Errorf("kaleido: capture frame: %w", err)
	}
	return frame, nil
}

func (k *Composer) grid() error {
	sc := enterScope(k.surface)
	defer sc.exit()
	k.surface.Translate(-k.unit.Edge/2, -k.unit.Height())
	return Col(k.surface, k.unit, k.count)
}

// Col draws a count×count grid of flower pairs. Each cell holds a flower
// and a second one offset by (1.5d, h); rows are 2h apart. The transform
// is restored on return.
func Col(s Surface, u TriangleUnit, count int) error {
	d, h := u.Edge, u.Height()
	c := float64(count)

	sc := enterScope(s)
	defer sc.exit()

	for y := 0; y < count; y++ {
		for x := 0; x < count; x++ {
			if err := Flower(s, u); err != nil {
				return err
			}
			s.Translate(d*2-d*0.5, h)
			if err := Flower(s, u); err != nil {
				return err
			}
			s.Translate(d*2-d*0.5, -h)
		}
		s.Translate(c*(-d*(c+1)), h*2)
	}
	return nil
}

// Tile copies the Block Region at the device origin and puts it at
// (x, i·bh) for every row i with i·bh < height+d and every column x, a
// multiple of bw, with x < width+d. For integral d, bw is 3d and the
// columns are the j·d positions of every third motif column. For
// fractional d the stride stays at the block width so stamps abut and
// reach the right edge.
func Tile(s Surface, u TriangleUnit) error {
	bw, bh := u.BlockSize()
	block, err := s.GetImageData(0, 0, bw, bh)
	if err != nil {
		return err
	}

	d := u.Edge
	w, h := float64(s.Width()), float64(s.Height())
	for y := 0; float64(y) < h+d; y += bh {
		for x := 0; float64(x) < w+d; x += bw {
			if err := s.PutImageData(block, x, y); err != nil {
				return err
			}
		}
	}
	return nil
}
