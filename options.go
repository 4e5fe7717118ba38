package pattern

import "log/slog"

// RenderOption configures a Renderer during creation.
//
// Example:
//
//	// Sequential rendering, the default
//	r := pattern.NewSimpleRenderer()
//
//	// Scanline bands on every CPU
//	r, err := pattern.NewRenderer(pattern.QualityGood, pattern.WithWorkers(0))
type RenderOption func(*renderOptions)

type renderOptions struct {
	workers int
	logger  *slog.Logger
}

func defaultRenderOptions() renderOptions {
	return renderOptions{workers: 1}
}

func applyRenderOptions(opts []RenderOption) renderOptions {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWorkers sets the number of goroutines that render scanline bands.
// 1 renders on the calling goroutine; 0 or less uses GOMAXPROCS.
// Output is identical for every worker count.
func WithWorkers(n int) RenderOption {
	return func(o *renderOptions) {
		o.workers = n
	}
}

// WithLogger overrides the package logger for one renderer.
func WithLogger(l *slog.Logger) RenderOption {
	return func(o *renderOptions) {
		o.logger = l
	}
}

func (o renderOptions) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}
