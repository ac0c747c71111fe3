package kaleido

// DriverOption configures a Driver during creation.
//
// Example:
//
//	d, err := kaleido.NewDriver(src, comp, out, sched,
//	    kaleido.WithPolicy(kaleido.FailFast),
//	    kaleido.WithDebugOutput(debugOut),
//	)
type DriverOption func(*driverOptions)

// driverOptions holds optional configuration for Driver creation.
type driverOptions struct {
	step      float64
	policy    Policy
	maxFrames uint64
	debug     Output
	post      []PixelFunc
	onError   func(error)
}

// defaultDriverOptions returns the default driver options.
func defaultDriverOptions() driverOptions {
	return driverOptions{
		step:   DefaultStep,
		policy: SkipFrame,
	}
}

// WithStep sets the source rotation applied at the start of every frame.
func WithStep(radians float64) DriverOption {
	return func(o *driverOptions) {
		o.step = radians
	}
}

// WithPolicy sets the failed-frame policy.
func WithPolicy(p Policy) DriverOption {
	return func(o *driverOptions) {
		o.policy = p
	}
}

// WithMaxFrames stops re-arming after n committed frames. Zero means
// no limit.
func WithMaxFrames(n uint64) DriverOption {
	return func(o *driverOptions) {
		o.maxFrames = n
	}
}

// WithDebugOutput receives the pattern source snapshot every frame.
func WithDebugOutput(out Output) DriverOption {
	return func(o *driverOptions) {
		o.debug = out
	}
}

// WithPostProcess appends per-frame pixel functions, applied in order
// between composing and presenting a frame.
func WithPostProcess(fns ...PixelFunc) DriverOption {
	return func(o *driverOptions) {
		o.post = append(o.post, fns...)
	}
}

// WithErrorHandler is called with the error of every failed frame.
func WithErrorHandler(fn func(error)) DriverOption {
	return func(o *driverOptions) {
		o.onError = fn
	}
}
