package okm

// DefaultCapacity is the number of entries a new map reserves up front.
// Time series are built by appending, so a generous baseline avoids the
// first rounds of doubling.
const DefaultCapacity = 6400

type options struct {
	capacity  int
	algorithm Algorithm
	logger    *Logger
	metrics   MetricsCollector
}

func defaultOptions() options {
	return options{
		capacity:  DefaultCapacity,
		algorithm: Bisection,
	}
}

func applyOptions(optFns []Option) options {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// Option configures a Map or View at construction.
type Option func(*options)

// WithCapacity sets the number of entries reserved at construction.
// Negative values are treated as zero. Views ignore it.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = max(n, 0)
	}
}

// WithAlgorithm selects the search strategy.
//
// Interpolation pays off for evenly spaced keys (timestamps at a fixed
// resolution). Keep the default Bisection when keys cluster.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) {
		o.algorithm = a
	}
}

// WithLogger attaches a diagnostic logger. Misses are logged at debug level,
// discouraged shifting inserts and removes at warn level.
// Pass nil to disable logging (the default).
//
// Example:
//
//	m := okm.New[uint32, float64](okm.WithLogger(okm.NewTextLogger(slog.LevelDebug).WithName("quotes")))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics configures a metrics collector for growth, shift, miss and
// merge events. Pass nil to disable metrics collection (the default).
func WithMetrics(mc MetricsCollector) Option {
	return func(o *options) {
		o.metrics = mc
	}
}
