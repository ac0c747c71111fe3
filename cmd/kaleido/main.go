// Command kaleido renders the hex-flower kaleidoscope animation to a
// directory of PNG frames or to an animated GIF.
//
// Usage:
//
//	kaleido -frames 120 -out frames/
//	kaleido -seed photo.jpg -fit -frames 60 -fps 30 -out spin.gif
//
// Without -seed a procedural texture is used. With -fps 0 frames are
// rendered back to back instead of at a fixed rate.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/gogpu/kaleido"
	"github.com/gogpu/kaleido/canvas"
	"github.com/gogpu/kaleido/frameloop"
	"github.com/gogpu/kaleido/internal/imageio"
)

// nowFunc starts the manual scheduler clock.
var nowFunc = time.Now

func main() {
	var (
		edge    = flag.Float64("edge", kaleido.DefaultEdge, "motif edge length in pixels")
		width   = flag.Int("width", kaleido.DefaultWidth, "output width")
		height  = flag.Int("height", kaleido.DefaultHeight, "output height")
		count   = flag.Int("count", kaleido.DefaultCount, "flower grid size")
		step    = flag.Float64("step", kaleido.DefaultStep, "source rotation per frame in radians")
		frames  = flag.Uint64("frames", 60, "number of frames to render, 0 for no limit")
		fps     = flag.Int("fps", 0, "frame rate, 0 renders as fast as possible")
		seed    = flag.String("seed", "", "seed image (png, jpeg or webp); procedural if empty")
		fit     = flag.Bool("fit", false, "scale the seed image to the source surface")
		out     = flag.String("out", "frames", "output directory for PNG frames, or a .gif file")
		debug   = flag.String("debug", "", "directory for pattern source frames")
		policy  = flag.String("policy", "skip", "failed frame policy: skip or failfast")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	kaleido.SetLogger(newLogger(*verbose))

	pol, err := kaleido.ParsePolicy(*policy)
	if err != nil {
		fatal(err)
	}
	cfg := kaleido.Config{
		Edge:      *edge,
		Width:     *width,
		Height:    *height,
		Count:     *count,
		Step:      *step,
		Policy:    pol,
		MaxFrames: *frames,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *seed, *fit, *out, *debug, *fps); err != nil {
		fatal(err)
	}
}

func run(ctx context.Context, cfg kaleido.Config, seedPath string, fit bool, outPath, debugDir string, fps int) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed, err := loadSeed(cfg.Unit(), seedPath, fit)
	if err != nil {
		return err
	}

	output, err := newSink(outPath, fps)
	if err != nil {
		return err
	}

	var opts []kaleido.DriverOption
	if debugDir != "" {
		dbg, err := newPNGSink(debugDir, "source")
		if err != nil {
			return err
		}
		opts = append(opts, kaleido.WithDebugOutput(dbg))
	}

	var (
		loop   *frameloop.Loop
		manual *frameloop.Manual
		sched  kaleido.Scheduler
	)
	if fps > 0 {
		loop = frameloop.New(fps)
		sched = loop
	} else {
		manual = frameloop.NewManual(nowFunc(), 0)
		sched = manual
	}

	d, err := kaleido.New(cfg, seed, output, sched, opts...)
	if err != nil {
		return err
	}
	if err := d.Start(); err != nil {
		return err
	}

	var runErr error
	if loop != nil {
		runErr = loop.Run(ctx)
	} else {
		for ctx.Err() == nil && manual.Step() {
		}
		runErr = ctx.Err()
	}
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}

	kaleido.Logger().Info("kaleido: done", "frames", d.Frames(), "failures", d.Failures(), "out", outPath)
	if err := output.Close(); err != nil {
		return err
	}
	return runErr
}

// loadSeed returns the pattern the source is painted with.
func loadSeed(u kaleido.TriangleUnit, path string, fit bool) (canvas.Brush, error) {
	sw, sh := kaleido.SourceSize(u)
	var img image.Image
	if path == "" {
		img = imageio.Procedural(sw, sh)
	} else {
		loaded, err := imageio.Load(path)
		if err != nil {
			return nil, err
		}
		img = loaded
		if fit {
			img = imageio.Fit(loaded, sw, sh)
		}
	}
	brush, err := canvas.NewPatternBrush(img, canvas.Repeat)
	if err != nil {
		return nil, err
	}
	return brush, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "kaleido: %v\n", err)
	os.Exit(1)
}
