package canvas

// Brush represents what to paint with.
// This is a sealed interface - only types in this package implement it.
//
// Supported brush types:
//   - SolidBrush: A single solid color
//   - PatternBrush: A repeating image sampled in user space
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	// Only types in this package can implement Brush.
	brushMarker()

	// ColorAt returns the color at the given user-space coordinates.
	// For solid brushes, this returns the same color regardless of position.
	ColorAt(x, y float64) RGBA
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	// Color is the solid color of this brush.
	Color RGBA
}

// brushMarker implements the sealed Brush interface.
func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// Solid creates a SolidBrush from an RGBA color.
//
// Example:
//
//	brush := canvas.Solid(canvas.Red)
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// SolidRGB creates a SolidBrush from RGB components (0-1 range).
// Alpha is set to 1.0 (fully opaque).
func SolidRGB(r, g, b float64) SolidBrush {
	return SolidBrush{Color: RGB(r, g, b)}
}
