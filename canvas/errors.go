package canvas

import "errors"

// Errors returned by surface operations.
var (
	// ErrInvalidDimensions is returned when a surface is created with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("canvas: invalid dimensions")

	// ErrNonFinite is returned when a fill is attempted with a path or
	// transform that contains NaN or infinite values.
	ErrNonFinite = errors.New("canvas: non-finite coordinate")

	// ErrInvalidRegion is returned by GetImageData for a zero or negative
	// width or height.
	ErrInvalidRegion = errors.New("canvas: invalid region")

	// ErrTainted is returned when pixel readback is denied for the surface.
	ErrTainted = errors.New("canvas: readback denied on tainted surface")

	// ErrNilImageData is returned when PutImageData is given no data.
	ErrNilImageData = errors.New("canvas: nil image data")

	// ErrNilImage is returned when a pattern is created without a source.
	ErrNilImage = errors.New("canvas: nil pattern image")

	// ErrInvalidRepetition is returned for an unknown repetition keyword.
	ErrInvalidRepetition = errors.New("canvas: invalid repetition")
)
