package groupby

import "go.uber.org/zap"

// Option configures a grouping call.
type Option func(*options)

type options struct {
	logger   *zap.Logger
	capacity int
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets a logger that receives debug records describing the
// resolved selector and the size of the result. Errors are returned to the
// caller, not logged. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCapacity pre-sizes the result for about n distinct keys.
// Values <= 0 are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
