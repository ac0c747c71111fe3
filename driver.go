package kaleido

import (
	"fmt"
	"time"

	"github.com/gogpu/kaleido/canvas"
)

// FrameCallback is invoked by a Scheduler once per frame.
type FrameCallback func(now time.Time)

// Scheduler delivers frame callbacks. RequestNextFrame arms cb for the
// next frame only; a callback that wants more frames must request again.
// Callbacks are delivered serially and never re-entrantly.
type Scheduler interface {
	RequestNextFrame(cb FrameCallback)
}

// State is the driver's position in its frame cycle.
type State uint8

const (
	// Idle means the driver is waiting for its next callback.
	Idle State = iota

	// Rendering means a frame is in progress.
	Rendering
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Rendering:
		return "Rendering"
	default:
		return "Unknown"
	}
}

// Policy decides what a driver does after a frame fails.
type Policy uint8

const (
	// SkipFrame drops the failed frame and re-arms for the next one.
	SkipFrame Policy = iota

	// FailFast drops the failed frame and does not re-arm, ending the
	// animation.
	FailFast
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case SkipFrame:
		return "skip"
	case FailFast:
		return "failfast"
	default:
		return "unknown"
	}
}

// ParsePolicy parses "skip" or "failfast".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "skip", "":
		return SkipFrame, nil
	case "failfast":
		return FailFast, nil
	}
	return 0, fmt.Errorf("kaleido: unknown policy %q", s)
}

// Driver runs the per-frame sequence: rotate the source, redraw it,
// derive the kaleidoscope fill from it, compose a frame, present it and
// re-arm with the scheduler.
type Driver struct {
	source   *PatternSource
	composer *Composer
	output   Output
	opts     driverOptions

	// rearm requests the next frame from the scheduler the driver was
	// built with.
	rearm func()

	state    State
	armed    bool
	frames   uint64
	failures uint64
}

// NewDriver wires a driver. Nothing is scheduled until Start.
func NewDriver(src *PatternSource, comp *Composer, out Output, sched Scheduler, opts ...DriverOption) (*Driver, error) {
	switch {
	case src == nil:
		return nil, fmt.Errorf("%w: pattern source", ErrNilDependency)
	case comp == nil:
		return nil, fmt.Errorf("%w: composer", ErrNilDependency)
	case out == nil:
		return nil, fmt.Errorf("%w: output", ErrNilDependency)
	case sched == nil:
		return nil, fmt.Errorf("%w: scheduler", ErrNilDependency)
	}

	options := defaultDriverOptions()
	for _, opt := range opts {
		opt(&options)
	}

	d := &Driver{
		source:   src,
		composer: comp,
		output:   out,
		opts:     options,
	}
	d.rearm = func() { sched.RequestNextFrame(d.tick) }
	return d, nil
}

// Start arms the first frame. It returns ErrDriverRunning if the driver
// is already armed.
func (d *Driver) Start() error {
	if d.armed {
		return ErrDriverRunning
	}
	d.armed = true
	Logger().Info("kaleido: driver started",
		"policy", d.opts.policy.String(),
		"step", d.opts.step,
		"maxFrames", d.opts.maxFrames)
	d.rearm()
	return nil
}

// State returns Idle or Rendering.
func (d *Driver) State() State {
	return d.state
}

// Running reports whether the driver is waiting for another callback.
func (d *Driver) Running() bool {
	return d.armed
}

// Frames returns the number of frames presented.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Failures returns the number of frames that failed.
func (d *Driver) Failures() uint64 {
	return d.failures
}

// tick is the scheduler callback.
func (d *Driver) tick(now time.Time) {
	d.state = Rendering
	err := d.Tick()
	d.state = Idle

	if err != nil {
		d.failures++
		if d.opts.onError != nil {
			d.opts.onError(err)
		}
		if d.opts.policy == FailFast {
			Logger().Warn("kaleido: animation halted", "frame", d.frames, "err", err)
			d.armed = false
			return
		}
		Logger().Warn("kaleido: frame skipped", "frame", d.frames, "err", err)
	}

	if d.opts.maxFrames > 0 && d.frames >= d.opts.maxFrames {
		Logger().Info("kaleido: frame limit reached", "frames", d.frames)
		d.armed = false
		return
	}
	Logger().Debug("kaleido: tick", "frame", d.frames, "at", now, "took", time.Since(now))
	d.rearm()
}

// Tick runs one frame synchronously without touching the scheduler. An
// error leaves the output untouched.
func (d *Driver) Tick() error {
	d.source.Advance(d.opts.step)

	if err := d.source.Render(); err != nil {
		return fmt.Errorf("kaleido: render source: %w", err)
	}
	snap, err := d.source.Snapshot()
	if err != nil {
		return fmt.Errorf("kaleido: capture source: %w", err)
	}
	if d.opts.debug != nil {
		if err := d.opts.debug.Present(snap); err != nil {
			return fmt.Errorf("kaleido: present source: %w", err)
		}
	}

	fill, err := d.composer.Surface().CreatePattern(snap.Image(), canvas.Repeat)
	if err != nil {
		return fmt.Errorf("kaleido: create fill: %w", err)
	}
	d.composer.SetFill(fill)

	frame, err := d.composer.Frame()
	if err != nil {
		return err
	}
	for _, fn := range d.opts.post {
		frame = fn(frame)
	}
	if err := d.output.Present(frame); err != nil {
		return fmt.Errorf("kaleido: present frame: %w", err)
	}

	d.frames++
	Logger().Debug("kaleido: frame presented", "frame", d.frames, "angle", d.source.Angle())
	return nil
}
