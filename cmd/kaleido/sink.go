package main

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"github.com/gogpu/kaleido"
	"github.com/gogpu/kaleido/canvas"
)

// sink is a kaleido.Output that must be closed to flush.
type sink interface {
	kaleido.Output
	Close() error
}

// newSink picks a GIF encoder for .gif paths and a PNG frame directory
// otherwise.
func newSink(path string, fps int) (sink, error) {
	if strings.EqualFold(filepath.Ext(path), ".gif") {
		return newGIFSink(path, fps), nil
	}
	return newPNGSink(path, "frame")
}

// pngSink writes each frame to dir/prefix-NNNNN.png.
type pngSink struct {
	dir    string
	prefix string
	n      int
}

func newPNGSink(dir, prefix string) (*pngSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &pngSink{dir: dir, prefix: prefix}, nil
}

func (s *pngSink) Present(frame *canvas.ImageData) error {
	if frame == nil {
		return canvas.ErrNilImageData
	}
	name := filepath.Join(s.dir, fmt.Sprintf("%s-%05d.png", s.prefix, s.n))
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, frame.Image()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	s.n++
	return nil
}

func (s *pngSink) Close() error { return nil }

// gifSink collects frames and encodes them as one animated GIF on Close.
type gifSink struct {
	path  string
	delay int
	anim  gif.GIF
}

func newGIFSink(path string, fps int) *gifSink {
	delay := 4 // 25 fps
	if fps > 0 {
		delay = max(100/fps, 1)
	}
	return &gifSink{path: path, delay: delay}
}

func (s *gifSink) Present(frame *canvas.ImageData) error {
	if frame == nil {
		return canvas.ErrNilImageData
	}
	bounds := image.Rect(0, 0, frame.Width, frame.Height)
	p := image.NewPaletted(bounds, palette.Plan9)
	draw.FloydSteinberg.Draw(p, bounds, frame.Image(), image.Point{})
	s.anim.Image = append(s.anim.Image, p)
	s.anim.Delay = append(s.anim.Delay, s.delay)
	return nil
}

func (s *gifSink) Close() error {
	if len(s.anim.Image) == 0 {
		return nil
	}
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, &s.anim); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	return f.Close()
}
