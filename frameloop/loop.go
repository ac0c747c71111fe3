package frameloop

import (
	"context"
	"sync"
	"time"

	"github.com/gogpu/kaleido"
)

// DefaultFPS is the frame rate used when New is given a non-positive rate.
const DefaultFPS = 60

// Loop is a ticker-driven scheduler.
//
// RequestNextFrame is safe to call from any goroutine. Callbacks run on
// the goroutine that called Run, one at a time.
type Loop struct {
	interval time.Duration

	mu      sync.Mutex
	pending kaleido.FrameCallback
	frames  uint64
}

var _ kaleido.Scheduler = (*Loop)(nil)

// New creates a loop ticking fps times per second.
func New(fps int) *Loop {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Loop{interval: time.Second / time.Duration(fps)}
}

// Interval returns the time between ticks.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// RequestNextFrame arms cb for the next tick.
func (l *Loop) RequestNextFrame(cb kaleido.FrameCallback) {
	l.mu.Lock()
	l.pending = cb
	l.mu.Unlock()
}

// Frames returns the number of callbacks delivered.
func (l *Loop) Frames() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

// take removes and returns the pending callback.
func (l *Loop) take() kaleido.FrameCallback {
	l.mu.Lock()
	defer l.mu.Unlock()
	cb := l.pending
	l.pending = nil
	if cb != nil {
		l.frames++
	}
	return cb
}

// idle reports whether no callback is armed.
func (l *Loop) idle() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending == nil
}

// Run delivers armed callbacks once per tick until ctx is done or a tick
// finds nothing armed. It returns ctx.Err() on cancellation and nil when
// the animation stops requesting frames.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	log := kaleido.Logger()
	log.Info("frameloop: started", "interval", l.interval)

	for {
		if l.idle() {
			log.Info("frameloop: no frame requested, stopping", "frames", l.Frames())
			return nil
		}
		select {
		case <-ctx.Done():
			log.Info("frameloop: cancelled", "frames", l.Frames())
			return ctx.Err()
		case now := <-ticker.C:
			if cb := l.take(); cb != nil {
				cb(now)
			}
		}
	}
}
