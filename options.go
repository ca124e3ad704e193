package picker

import (
	"math/rand"

	"github.com/Alex-2504834/RandomStudentPicker/internal/logging"
	"github.com/Alex-2504834/RandomStudentPicker/internal/metrics"
)

// Option configures a Roster with optional dependencies.
type Option func(*rosterOptions)

// rosterOptions holds optional Roster configuration.
type rosterOptions struct {
	logger  Logger
	metrics MetricsCollector
	rng     *rand.Rand
}

func applyOptions(opts []Option) rosterOptions {
	o := rosterOptions{
		logger:  logging.NewNop(),
		metrics: metrics.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (a no-op logger is used when unset)
//
// Returns:
//   - Option: Functional option for NewRoster
//
// Example:
//
//	logger := logging.NewSlog(slog.Default())
//	roster, err := picker.NewRoster(&cfg, picker.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *rosterOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation (no-op when unset)
//
// Returns:
//   - Option: Functional option for NewRoster
func WithMetrics(collector MetricsCollector) Option {
	return func(o *rosterOptions) {
		if collector != nil {
			o.metrics = collector
		}
	}
}

// WithRand sets the random source used for weighted draws.
//
// Deterministic tests inject a seeded source here.
//
// Parameters:
//   - rng: Random source (a time-seeded source is used when unset)
//
// Returns:
//   - Option: Functional option for NewRoster
func WithRand(rng *rand.Rand) Option {
	return func(o *rosterOptions) {
		o.rng = rng
	}
}
