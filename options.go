package grayfx

import "log/slog"

// Option configures a Processor during creation.
//
// Example:
//
//	// Sequential processing, package logger
//	p := grayfx.NewProcessor()
//
//	// Rows split across 8 goroutines
//	p := grayfx.NewProcessor(grayfx.WithWorkers(8))
type Option func(*options)

// options holds optional configuration for Processor creation.
type options struct {
	workers int
	logger  *slog.Logger
}

// defaultOptions returns the default processor options.
func defaultOptions() options {
	return options{
		workers: 1,   // sequential
		logger:  nil, // resolved from Logger() at call time
	}
}

// WithWorkers sets how many goroutines share the row loop of each pass.
// Values of 1 or less keep processing on the calling goroutine.
// Output is identical for every worker count.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets a logger for this processor instead of the package
// logger configured with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
