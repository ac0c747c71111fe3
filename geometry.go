package kaleido

import (
	"fmt"
	"math"
)

// Angle and ratio constants.
const (
	// Sqrt3Over2 is the height of an equilateral triangle with unit edge.
	Sqrt3Over2 = 0.86602540378443864676372317075293618347140262690519

	// Sixty is 60° in radians, the step between petals.
	Sixty = math.Pi / 3

	// FullTurn is 360° in radians.
	FullTurn = 2 * math.Pi

	// petals is the symmetry order of the motif.
	petals = 6
)

// TriangleUnit is the motif scale: an equilateral triangle of edge Edge.
// The height is always derived from Edge.
type TriangleUnit struct {
	Edge float64
}

// Height returns (√3/2)·Edge.
func (u TriangleUnit) Height() float64 {
	return Sqrt3Over2 * u.Edge
}

// BlockSize returns the size of the Block Region, (floor(3d), floor(2h)).
func (u TriangleUnit) BlockSize() (width, height int) {
	return int(math.Floor(3 * u.Edge)), int(math.Floor(2 * u.Height()))
}

// Validate checks that the unit yields a non-empty block.
func (u TriangleUnit) Validate() error {
	if math.IsNaN(u.Edge) || math.IsInf(u.Edge, 0) || u.Edge <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidEdge, u.Edge)
	}
	if w, h := u.BlockSize(); w < 1 || h < 1 {
		return fmt.Errorf("%w: %v gives a %dx%d block", ErrInvalidEdge, u.Edge, w, h)
	}
	return nil
}
