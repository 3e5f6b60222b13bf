package pixfmt

// Option configures a single Reformat call.
// Use functional options to customize conversion behavior.
//
// Example:
//
//	// Default conversion
//	dst, err := pixfmt.Reformat(src, pixfmt.FormatRGBA8)
//
//	// Custom quantizer and a shared scratch pool
//	dst, err := pixfmt.Reformat(src, pixfmt.FormatIndex8RGBA,
//		pixfmt.WithQuantizer(q), pixfmt.WithPool(pool))
type Option func(*options)

// options holds optional configuration for Reformat.
type options struct {
	quantizer   Quantizer
	pool        *Pool
	memoryLimit int
	workers     int
}

// defaultOptions returns the default reformat options.
func defaultOptions() options {
	return options{
		quantizer: nil, // DefaultQuantizer is used if nil
		pool:      nil, // scratch buffers are allocated per call
	}
}

// WithQuantizer sets the algorithm used to encode indexed formats.
//
// Example:
//
//	dst, err := pixfmt.Reformat(src, pixfmt.FormatIndex8RGB, pixfmt.WithQuantizer(myQuantizer))
func WithQuantizer(q Quantizer) Option {
	return func(o *options) {
		o.quantizer = q
	}
}

// WithPool makes Reformat take its scratch buffers from p and return them
// afterwards.
func WithPool(p *Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithMemoryLimit caps the bytes Reformat may allocate for the destination
// and its scratch buffers. Conversions that would exceed it fail with
// ErrOutOfMemory before anything is allocated. Zero or negative means no
// limit.
func WithMemoryLimit(n int) Option {
	return func(o *options) {
		o.memoryLimit = n
	}
}

// WithWorkers lets direct conversions of large bitmaps split their rows into
// up to n bands converted concurrently. n <= 1 keeps the conversion on the
// calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
