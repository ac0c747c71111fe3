package frameloop

import (
	"time"

	"github.com/gogpu/kaleido"
)

// Manual is a scheduler that delivers a frame only when stepped. It is
// not safe for concurrent use.
type Manual struct {
	pending kaleido.FrameCallback
	clock   time.Time
	step    time.Duration
	frames  uint64
}

var _ kaleido.Scheduler = (*Manual)(nil)

// NewManual creates a manual scheduler whose clock starts at start and
// advances by step on every delivered frame.
func NewManual(start time.Time, step time.Duration) *Manual {
	return &Manual{clock: start, step: step}
}

// RequestNextFrame arms cb for the next Step.
func (m *Manual) RequestNextFrame(cb kaleido.FrameCallback) {
	m.pending = cb
}

// Pending reports whether a callback is armed.
func (m *Manual) Pending() bool {
	return m.pending != nil
}

// Frames returns the number of callbacks delivered.
func (m *Manual) Frames() uint64 {
	return m.frames
}

// Step delivers the armed callback, if any, and reports whether one ran.
func (m *Manual) Step() bool {
	cb := m.pending
	if cb == nil {
		return false
	}
	m.pending = nil
	m.frames++
	now := m.clock
	m.clock = m.clock.Add(m.step)
	cb(now)
	return true
}

// Drain steps until nothing is armed or limit frames have run, and
// returns the number delivered. A limit of zero means no limit.
func (m *Manual) Drain(limit uint64) uint64 {
	var n uint64
	for (limit == 0 || n < limit) && m.Step() {
		n++
	}
	return n
}
