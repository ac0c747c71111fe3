package canvas

// Paint carries the fill state captured at the moment of a fill.
type Paint struct {
	// Brush is the fill brush.
	Brush Brush

	// Transform maps user space to device space. Pattern brushes are
	// sampled in that user space.
	Transform Matrix
}

// Renderer is the interface for rendering paths to a pixmap.
type Renderer interface {
	// Fill composites paint over the area covered by path.
	// Returns an error if the rendering operation fails.
	Fill(pixmap *Pixmap, path *Path, paint *Paint) error

	// Clear erases the area covered by path to transparent black.
	Clear(pixmap *Pixmap, path *Path) error
}
