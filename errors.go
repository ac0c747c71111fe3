package kaleido

import "errors"

// Errors returned by the kaleidoscope core.
var (
	// ErrInvalidEdge is returned when the motif edge length is not a finite
	// value large enough to give a block at least one pixel high.
	ErrInvalidEdge = errors.New("kaleido: invalid edge length")

	// ErrInvalidCount is returned when the motif grid count is below 1.
	ErrInvalidCount = errors.New("kaleido: invalid grid count")

	// ErrInvalidStep is returned when the per-frame rotation is not finite.
	ErrInvalidStep = errors.New("kaleido: invalid rotation step")

	// ErrNilSeed is returned when a PatternSource is created without a fill.
	ErrNilSeed = errors.New("kaleido: nil seed fill")

	// ErrNilDependency is returned when a required collaborator is nil.
	ErrNilDependency = errors.New("kaleido: nil dependency")

	// ErrDriverRunning is returned by Start on a driver that is already armed.
	ErrDriverRunning = errors.New("kaleido: driver already running")

	// ErrSizeMismatch is returned when a frame does not match the output size.
	ErrSizeMismatch = errors.New("kaleido: frame size mismatch")
)
