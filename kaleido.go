package kaleido

import (
	"fmt"

	"github.com/gogpu/kaleido/canvas"
)

// New builds a complete animation from cfg: the pattern source and
// kaleidoscope surfaces, the PatternSource seeded with seed, the Composer
// and the Driver. Surface creation failures are returned here and are
// fatal; nothing is scheduled until Start.
//
// Options are applied after those derived from cfg.
func New(cfg Config, seed canvas.Brush, out Output, sched Scheduler, opts ...DriverOption) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	u := cfg.Unit()

	sw, sh := SourceSize(u)
	srcSurface, err := canvas.NewContext(sw, sh)
	if err != nil {
		return nil, fmt.Errorf("kaleido: create source surface: %w", err)
	}
	kalSurface, err := canvas.NewContext(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("kaleido: create kaleidoscope surface: %w", err)
	}

	src, err := NewPatternSource(srcSurface, seed, u)
	if err != nil {
		return nil, err
	}
	comp, err := NewComposer(kalSurface, u, cfg.Count)
	if err != nil {
		return nil, err
	}

	base := []DriverOption{
		WithStep(cfg.Step),
		WithPolicy(cfg.Policy),
		WithMaxFrames(cfg.MaxFrames),
	}
	return NewDriver(src, comp, out, sched, append(base, opts...)...)
}
