package kaleido

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/kaleido/canvas"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

var errInjected = errors.New("injected fault")

func newSurface(t *testing.T, w, h int) *canvas.Context {
	t.Helper()
	dc, err := canvas.NewContext(w, h)
	if err != nil {
		t.Fatalf("NewContext(%d, %d): %v", w, h, err)
	}
	return dc
}

// faultSurface wraps a canvas context and fails selected operations.
type faultSurface struct {
	*canvas.Context

	// failFillAt fails the n-th Fill call (1-based). Zero never fails.
	failFillAt int
	fills      int

	failGet bool
	failPut bool
}

func (f *faultSurface) Fill() error {
	f.fills++
	if f.failFillAt > 0 && f.fills == f.failFillAt {
		f.BeginPath()
		return errInjected
	}
	return f.Context.Fill()
}

func (f *faultSurface) GetImageData(x, y, w, h int) (*canvas.ImageData, error) {
	if f.failGet {
		return nil, errInjected
	}
	return f.Context.GetImageData(x, y, w, h)
}

func (f *faultSurface) PutImageData(data *canvas.ImageData, x, y int) error {
	if f.failPut {
		return errInjected
	}
	return f.Context.PutImageData(data, x, y)
}

// stepScheduler holds at most one callback and runs it on step.
type stepScheduler struct {
	pending  FrameCallback
	requests int
}

func (s *stepScheduler) RequestNextFrame(cb FrameCallback) {
	s.pending = cb
	s.requests++
}

func (s *stepScheduler) step() bool {
	cb := s.pending
	if cb == nil {
		return false
	}
	s.pending = nil
	cb(time.Now())
	return true
}

// recordOutput keeps every presented frame.
type recordOutput struct {
	frames []*canvas.ImageData
}

func (o *recordOutput) Present(frame *canvas.ImageData) error {
	o.frames = append(o.frames, frame.Clone())
	return nil
}

func (o *recordOutput) last() *canvas.ImageData {
	if len(o.frames) == 0 {
		return nil
	}
	return o.frames[len(o.frames)-1]
}

// stripeSeed returns an opaque seed pattern with distinct rows.
func stripeSeed(t *testing.T) *canvas.PatternBrush {
	t.Helper()
	src := newSurface(t, 8, 8)
	for y := 0; y < 8; y++ {
		src.SetFillBrush(canvas.Solid(canvas.HSL(float64(y)*45, 0.8, 0.5)))
		if err := src.FillRect(0, float64(y), 8, 1); err != nil {
			t.Fatal(err)
		}
	}
	b, err := canvas.NewPatternBrush(src.Image(), canvas.Repeat)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// assertOpaqueCoverage fails if any pixel of d has zero alpha.
func assertOpaqueCoverage(t *testing.T, d *canvas.ImageData) {
	t.Helper()
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			if d.RGBAAt(x, y).A == 0 {
				t.Fatalf("pixel (%d, %d) is transparent", x, y)
			}
		}
	}
}
