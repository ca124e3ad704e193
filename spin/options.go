package spin

import (
	"math/rand"

	"github.com/Alex-2504834/RandomStudentPicker/types"
)

// Option configures a Scheduler with optional dependencies.
type Option func(*Scheduler)

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (a no-op logger is used when unset)
//
// Returns:
//   - Option: Functional option for NewScheduler
func WithLogger(logger types.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation (no-op when unset)
//
// Returns:
//   - Option: Functional option for NewScheduler
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(s *Scheduler) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}

// WithClock sets the clock used to schedule animation steps.
//
// Tests inject a manual clock here to drive spins deterministically.
//
// Parameters:
//   - clock: Clock implementation (the real time.AfterFunc clock when unset)
//
// Returns:
//   - Option: Functional option for NewScheduler
func WithClock(clock types.Clock) Option {
	return func(s *Scheduler) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithRand sets the random source used to pick the spin start position.
//
// Parameters:
//   - rng: Random source (a time-seeded source is used when unset)
//
// Returns:
//   - Option: Functional option for NewScheduler
func WithRand(rng *rand.Rand) Option {
	return func(s *Scheduler) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithFrameFunc sets the per-step render callback.
//
// The callback receives every animation frame, including the forced
// landing frame. It runs on the clock's callback goroutine and must not
// block for long: the next step is not scheduled until it returns.
//
// Parameters:
//   - fn: Frame callback
//
// Returns:
//   - Option: Functional option for NewScheduler
func WithFrameFunc(fn func(types.SpinFrame)) Option {
	return func(s *Scheduler) {
		s.frameFn = fn
	}
}

// WithDoneFunc sets the spin completion callback.
//
// The callback receives the landed target name after the final frame has
// been rendered and the scheduler has returned to Idle, so starting a new
// spin from inside the callback is allowed.
//
// Parameters:
//   - fn: Completion callback
//
// Returns:
//   - Option: Functional option for NewScheduler
func WithDoneFunc(fn func(target string)) Option {
	return func(s *Scheduler) {
		s.doneFn = fn
	}
}
