package kaleido

import (
	"errors"
	"testing"

	"github.com/gogpu/kaleido/canvas"
)

// smallConfig renders quickly while keeping the default grid.
func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Edge = 20
	cfg.Width = 100
	cfg.Height = 90
	return cfg
}

func TestNewDriverNilDependencies(t *testing.T) {
	u := TriangleUnit{Edge: 20}
	src := newTestSource(t, u)
	comp, err := NewComposer(newSurface(t, 100, 90), u, 2)
	if err != nil {
		t.Fatal(err)
	}
	out := &recordOutput{}
	sched := &stepScheduler{}

	tests := []struct {
		name  string
		build func() (*Driver, error)
	}{
		{"source", func() (*Driver, error) { return NewDriver(nil, comp, out, sched) }},
		{"composer", func() (*Driver, error) { return NewDriver(src, nil, out, sched) }},
		{"output", func() (*Driver, error) { return NewDriver(src, comp, nil, sched) }},
		{"scheduler", func() (*Driver, error) { return NewDriver(src, comp, out, nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.build(); !errors.Is(err, ErrNilDependency) {
				t.Errorf("error = %v, want ErrNilDependency", err)
			}
		})
	}
}

func TestDriverDefaultConfigEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("full-size frame")
	}
	out := &recordOutput{}
	sched := &stepScheduler{}
	d, err := New(DefaultConfig(), stripeSeed(t), out, sched, WithMaxFrames(1))
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Start(); err != nil {
		t.Fatal(err)
	}
	for sched.step() {
	}

	if d.Frames() != 1 || len(out.frames) != 1 {
		t.Fatalf("frames = %d, presented = %d, want 1", d.Frames(), len(out.frames))
	}
	f := out.last()
	if f.Width != 1024 || f.Height != 1024 || len(f.Pix) != 4*1024*1024 {
		t.Fatalf("frame %dx%d with %d bytes", f.Width, f.Height, len(f.Pix))
	}
	assertOpaqueCoverage(t, f)
}

func TestDriverRearmsEachFrame(t *testing.T) {
	out := &recordOutput{}
	sched := &stepScheduler{}
	cfg := smallConfig()
	cfg.MaxFrames = 5
	d, err := New(cfg, stripeSeed(t), out, sched)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Start(); err != nil {
		t.Fatal(err)
	}
	if !errors.Is(d.Start(), ErrDriverRunning) {
		t.Error("second Start should fail with ErrDriverRunning")
	}

	n := 0
	for sched.step() {
		n++
		if d.State() != Idle {
			t.Errorf("state after callback = %v, want Idle", d.State())
		}
	}
	if n != 5 || d.Frames() != 5 || len(out.frames) != 5 {
		t.Errorf("callbacks=%d frames=%d presented=%d, want 5", n, d.Frames(), len(out.frames))
	}
	if d.Running() {
		t.Error("driver still armed after reaching the frame limit")
	}
	if out.frames[0].Equal(out.frames[4]) {
		t.Error("rotating source produced identical frames")
	}
}

func TestDriverSkipFrameKeepsLastCommittedFrame(t *testing.T) {
	cfg := smallConfig()
	u := cfg.Unit()
	src := newTestSource(t, u)
	kal := &faultSurface{Context: newSurface(t, cfg.Width, cfg.Height)}
	comp, err := NewComposer(kal, u, cfg.Count)
	if err != nil {
		t.Fatal(err)
	}
	out := &recordOutput{}
	sched := &stepScheduler{}
	var handled []error
	d, err := NewDriver(src, comp, out, sched, WithErrorHandler(func(err error) { handled = append(handled, err) }))
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Start(); err != nil {
		t.Fatal(err)
	}

	if !sched.step() {
		t.Fatal("first frame not scheduled")
	}
	committed := out.last().Clone()

	kal.failGet = true
	if !sched.step() {
		t.Fatal("second frame not scheduled")
	}
	if len(out.frames) != 1 || !out.last().Equal(committed) {
		t.Error("failed frame reached the output")
	}
	if d.Failures() != 1 || len(handled) != 1 || !errors.Is(handled[0], errInjected) {
		t.Errorf("failures=%d handled=%v", d.Failures(), handled)
	}
	if !d.Running() || sched.pending == nil {
		t.Fatal("SkipFrame should re-arm after a failure")
	}

	kal.failGet = false
	if !sched.step() {
		t.Fatal("third frame not scheduled")
	}
	if d.Frames() != 2 || len(out.frames) != 2 {
		t.Errorf("frames=%d presented=%d after recovery, want 2", d.Frames(), len(out.frames))
	}
}

func TestDriverFailFastStops(t *testing.T) {
	cfg := smallConfig()
	cfg.Policy = FailFast
	out := &recordOutput{}
	sched := &stepScheduler{}
	var failed error
	d, err := New(cfg, stripeSeed(t), OutputFunc(func(*canvas.ImageData) error { return errInjected }), sched,
		WithErrorHandler(func(err error) { failed = err }))
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Start(); err != nil {
		t.Fatal(err)
	}
	if !sched.step() {
		t.Fatal("first frame not scheduled")
	}
	if sched.step() {
		t.Error("FailFast re-armed after a failure")
	}
	if d.Running() || d.Frames() != 0 || len(out.frames) != 0 {
		t.Errorf("running=%v frames=%d", d.Running(), d.Frames())
	}
	if !errors.Is(failed, errInjected) {
		t.Errorf("handled error = %v", failed)
	}
	// A stopped driver may be started again.
	if err := d.Start(); err != nil {
		t.Errorf("restart: %v", err)
	}
}

func TestDriverTaintedSourceFails(t *testing.T) {
	cfg := smallConfig()
	u := cfg.Unit()
	src := newTestSource(t, u)
	src.Surface().(*canvas.Context).Taint()
	comp, err := NewComposer(newSurface(t, cfg.Width, cfg.Height), u, cfg.Count)
	if err != nil {
		t.Fatal(err)
	}
	d, err := NewDriver(src, comp, &recordOutput{}, &stepScheduler{})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Tick(); !errors.Is(err, canvas.ErrTainted) {
		t.Errorf("Tick error = %v, want ErrTainted", err)
	}
}

func TestDriverDebugAndPostProcess(t *testing.T) {
	cfg := smallConfig()
	cfg.MaxFrames = 2
	out := &recordOutput{}
	debug := &recordOutput{}
	var calls int
	invert := func(f *canvas.ImageData) *canvas.ImageData {
		calls++
		for i := 0; i < len(f.Pix); i += 4 {
			f.Pix[i] = f.Pix[i+3] - f.Pix[i]
		}
		return f
	}
	sched := &stepScheduler{}
	d, err := New(cfg, stripeSeed(t), out, sched, WithDebugOutput(debug), WithPostProcess(invert))
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Start(); err != nil {
		t.Fatal(err)
	}
	for sched.step() {
	}

	if calls != 2 || len(out.frames) != 2 {
		t.Errorf("post-process calls=%d presented=%d, want 2", calls, len(out.frames))
	}
	sw, sh := SourceSize(cfg.Unit())
	if len(debug.frames) != 2 || debug.frames[0].Width != sw || debug.frames[0].Height != sh {
		t.Errorf("debug output got %d frames", len(debug.frames))
	}
}

func TestDriverStepApplied(t *testing.T) {
	cfg := smallConfig()
	u := cfg.Unit()
	src := newTestSource(t, u)
	comp, err := NewComposer(newSurface(t, cfg.Width, cfg.Height), u, cfg.Count)
	if err != nil {
		t.Fatal(err)
	}
	d, err := NewDriver(src, comp, &recordOutput{}, &stepScheduler{}, WithStep(0.25))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := d.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if got := src.Angle(); got < 0.7499 || got > 0.7501 {
		t.Errorf("angle after 3 ticks = %v, want 0.75", got)
	}
}

func TestStateAndPolicyStrings(t *testing.T) {
	if Idle.String() != "Idle" || Rendering.String() != "Rendering" || State(9).String() != "Unknown" {
		t.Error("unexpected State strings")
	}
	for _, p := range []Policy{SkipFrame, FailFast} {
		got, err := ParsePolicy(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePolicy(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePolicy("retry"); err == nil {
		t.Error("ParsePolicy accepted an unknown policy")
	}
}
