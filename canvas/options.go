package canvas

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Default software rendering
//	dc, err := canvas.NewContext(800, 600)
//
//	// Custom renderer (dependency injection)
//	dc, err := canvas.NewContext(800, 600, canvas.WithRenderer(r))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	renderer Renderer
	pixmap   *Pixmap
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		renderer: nil, // Will be set to SoftwareRenderer if nil
		pixmap:   nil, // Will be created if nil
	}
}

// WithRenderer sets a custom renderer for the Context.
func WithRenderer(r Renderer) ContextOption {
	return func(o *contextOptions) {
		o.renderer = r
	}
}

// WithPixmap sets a custom pixmap for the Context.
// The pixmap dimensions must match the Context dimensions.
//
// Example:
//
//	pm := canvas.NewPixmap(800, 600)
//	dc, err := canvas.NewContext(800, 600, canvas.WithPixmap(pm))
func WithPixmap(pm *Pixmap) ContextOption {
	return func(o *contextOptions) {
		o.pixmap = pm
	}
}
