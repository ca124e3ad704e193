package spin

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/Alex-2504834/RandomStudentPicker/internal/clock"
	"github.com/Alex-2504834/RandomStudentPicker/internal/logging"
	"github.com/Alex-2504834/RandomStudentPicker/internal/metrics"
	"github.com/Alex-2504834/RandomStudentPicker/types"
)

// Scheduler drives the spin animation timeline.
//
// Implements a validated state machine with these states:
//   - Idle: Ready for a new spin
//   - Spinning: Stepping through an active timeline
//   - Landed: Final step completed, center forced to the target
//
// Only one timeline may be active at a time; Start while Spinning is a
// no-op. After landing the scheduler returns to Idle immediately.
type Scheduler struct {
	cfg Config

	mu       sync.Mutex
	strip    []string
	run      *timeline
	speed    float64
	minDelay time.Duration
	maxDelay time.Duration
	rng      *rand.Rand

	current atomic.Int32 // types.SpinState

	clock   types.Clock
	logger  types.Logger
	metrics types.MetricsCollector
	frameFn func(types.SpinFrame)
	doneFn  func(target string)

	// Fan-out to subscribers
	subscribers      *xsync.Map[uint64, *stateSubscriber]
	nextSubscriberID atomic.Uint64
}

// timeline is one spin run. It snapshots the strip and delay bounds at
// start time, so strip rebuilds and speed changes never affect a run in
// flight.
type timeline struct {
	id       string
	target   string
	strip    []string
	center   int
	step     int
	total    int
	minDelay time.Duration
	maxDelay time.Duration
	started  time.Time
}

// NewScheduler creates a new spin scheduler.
//
// Missing config fields are filled with defaults before validation.
//
// Parameters:
//   - cfg: Animation geometry and pacing configuration
//   - opts: Optional dependencies (WithLogger, WithMetrics, WithClock, WithRand, WithFrameFunc, WithDoneFunc)
//
// Returns:
//   - *Scheduler: A new scheduler in the Idle state with an empty strip
//   - error: Configuration validation error
//
// Example:
//
//	sched, err := spin.NewScheduler(spin.DefaultConfig(),
//	    spin.WithFrameFunc(render),
//	    spin.WithDoneFunc(announce),
//	)
//	if err != nil { /* handle */ }
//	sched.SetStrip(roster.Names())
//	sched.Start(picked.Name)
func NewScheduler(cfg Config, opts ...Option) (*Scheduler, error) {
	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid spin config: %w", err)
	}

	s := &Scheduler{
		cfg:         cfg,
		speed:       cfg.Speed,
		clock:       clock.New(),
		logger:      logging.NewNop(),
		metrics:     metrics.NewNop(),
		subscribers: xsync.NewMap[uint64, *stateSubscriber](),
	}
	s.minDelay, s.maxDelay = delayBounds(&cfg, cfg.Speed)
	s.current.Store(int32(types.SpinIdle))

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // animation start point, not security sensitive
	}

	return s, nil
}

// State returns the current scheduler state.
//
// This method is thread-safe and can be called concurrently.
//
// Returns:
//   - types.SpinState: Current state (Idle, Spinning, or Landed)
func (s *Scheduler) State() types.SpinState {
	return types.SpinState(s.current.Load())
}

// Subscribe returns a channel that receives state change notifications.
//
// The returned channel is buffered (size 4) so a full Idle → Spinning →
// Landed → Idle cycle can be queued without blocking the scheduler. The
// subscriber receives the current state immediately upon subscription.
//
// Returns:
//   - <-chan types.SpinState: Channel that receives state updates
//   - func(): Unsubscribe function to clean up resources
func (s *Scheduler) Subscribe() (<-chan types.SpinState, func()) {
	id := s.nextSubscriberID.Add(1)

	sub := &stateSubscriber{ch: make(chan types.SpinState, 4)}
	s.subscribers.Store(id, sub)

	// Immediately send the current state
	sub.trySend(s.State(), s.metrics)

	unsubscribe := func() {
		if removed, ok := s.subscribers.LoadAndDelete(id); ok {
			removed.close()
		}
	}

	return sub.ch, unsubscribe
}

// SetStrip rebuilds the cyclic name strip from the given roster names.
//
// The strip concatenates StripRepeat copies of the name order; an empty
// name list produces an empty strip, on which Start is a no-op. A run in
// flight keeps its own snapshot and is unaffected.
//
// Parameters:
//   - names: Roster names in display order
func (s *Scheduler) SetStrip(names []string) {
	strip := buildStrip(names, s.cfg.StripRepeat)

	s.mu.Lock()
	s.strip = strip
	s.mu.Unlock()

	s.logger.Debug("spin strip rebuilt", "names", len(names), "strip_length", len(strip))
}

// StripLength returns the current strip length.
func (s *Scheduler) StripLength() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.strip)
}

// SetSpeed updates the animation speed setting.
//
// The value is clamped to [0, 100] and the per-step delay bounds are
// recomputed. A spin already in flight is unaffected; the next spin uses
// the new bounds.
//
// Parameters:
//   - speed: Speed setting, 0 slowest to 100 fastest
func (s *Scheduler) SetSpeed(speed float64) {
	if speed < 0 {
		speed = 0
	}
	if speed > 100 {
		speed = 100
	}

	minDelay, maxDelay := delayBounds(&s.cfg, speed)

	s.mu.Lock()
	s.speed = speed
	s.minDelay = minDelay
	s.maxDelay = maxDelay
	s.mu.Unlock()

	s.logger.Debug("spin speed updated",
		"speed", speed,
		"min_delay", minDelay,
		"max_delay", maxDelay,
	)
}

// Speed returns the current speed setting.
func (s *Scheduler) Speed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.speed
}

// Start begins a spin that lands the center slot on target.
//
// The starting position is re-randomized uniformly over the strip, and the
// total step count is FullSpins complete rotations plus the minimal forward
// distance to the closest occurrence of target. If target does not occur in
// the strip the run degrades to FullSpins rotations with the landing frame
// forced to target; this cannot happen when the strip was built from the
// live roster.
//
// A request while a spin is in flight is rejected outright: not queued,
// not an error. A request on an empty strip is a no-op with no landing
// event.
//
// Parameters:
//   - target: Name the center slot must land on
//
// Returns:
//   - bool: true if a timeline was started, false if rejected or the strip is empty
func (s *Scheduler) Start(target string) bool {
	s.mu.Lock()

	if s.State() != types.SpinIdle {
		s.mu.Unlock()
		s.metrics.RecordSpinRejected()
		s.logger.Debug("spin request ignored, already spinning", "target", target)

		return false
	}

	if len(s.strip) == 0 {
		s.mu.Unlock()
		s.logger.Warn("spin request on empty strip", "target", target)

		return false
	}

	return s.startFrom(target, s.rng.Intn(len(s.strip)))
}

// startFrom plans and launches a timeline from the given start center
// index. Callers hold s.mu; it is released before scheduling the first
// step.
func (s *Scheduler) startFrom(target string, start int) bool {
	// SetStrip replaces the slice wholesale, so the run can share it.
	strip := s.strip

	total := s.cfg.FullSpins * len(strip)
	if d, ok := closestForward(strip, target, start); ok {
		total += d
	} else {
		s.logger.Warn("target not found on strip, landing will be forced",
			"target", target,
			"strip_length", len(strip),
		)
	}

	run := &timeline{
		id:       uuid.NewString(),
		target:   target,
		strip:    strip,
		center:   start,
		total:    total,
		minDelay: s.minDelay,
		maxDelay: s.maxDelay,
		started:  time.Now(),
	}
	s.run = run

	s.emitStateChange(types.SpinSpinning)
	s.mu.Unlock()

	s.metrics.RecordSpinStart(run.total)
	s.logger.Info("spin started",
		"run_id", run.id,
		"target", target,
		"total_steps", run.total,
		"strip_length", len(strip),
	)

	s.clock.Schedule(0, func() { s.step(run) })

	return true
}

// Reset abandons any spin in flight and returns the scheduler to Idle.
//
// Pending timer callbacks for the abandoned run become no-ops. Intended
// for teardown; during normal operation runs complete naturally.
func (s *Scheduler) Reset() {
	s.mu.Lock()
	abandoned := s.run
	s.run = nil
	s.emitStateChange(types.SpinIdle)
	s.mu.Unlock()

	if abandoned != nil {
		s.logger.Info("spin abandoned", "run_id", abandoned.id, "step", abandoned.step, "total_steps", abandoned.total)
	}
}

// step executes one timeline step: advance the center, render the frame,
// and schedule the next step only after the render callback returns.
func (s *Scheduler) step(run *timeline) {
	s.mu.Lock()

	if s.run != run {
		// Run was abandoned via Reset.
		s.mu.Unlock()
		return
	}

	centerSlot := s.cfg.SlotCount / 2

	if run.step >= run.total {
		window := windowAt(run.strip, run.center, s.cfg.SlotCount)
		// The final frame always shows the picked name in the center
		// slot, even when the target was absent from the strip.
		window[centerSlot] = run.target

		frame := types.SpinFrame{
			Window:     window,
			CenterSlot: centerSlot,
			Step:       run.step,
			Total:      run.total,
			Final:      true,
		}

		duration := time.Since(run.started)
		s.run = nil
		s.emitStateChange(types.SpinLanded)
		s.emitStateChange(types.SpinIdle)
		s.mu.Unlock()

		s.metrics.RecordSpinComplete(duration.Seconds(), run.total)
		s.logger.Info("spin landed",
			"run_id", run.id,
			"target", run.target,
			"steps", run.total,
			"duration", duration,
		)

		if s.frameFn != nil {
			s.frameFn(frame)
		}
		if s.doneFn != nil {
			s.doneFn(run.target)
		}

		return
	}

	run.center = (run.center + 1) % len(run.strip)
	frame := types.SpinFrame{
		Window:     windowAt(run.strip, run.center, s.cfg.SlotCount),
		CenterSlot: centerSlot,
		Step:       run.step,
		Total:      run.total,
	}

	delay := stepDelay(run.step, run.total, run.minDelay, run.maxDelay)
	run.step++
	s.mu.Unlock()

	if s.frameFn != nil {
		s.frameFn(frame)
	}

	s.clock.Schedule(delay, func() { s.step(run) })
}

// emitStateChange notifies all subscribers of a state transition.
//
// Callers must hold s.mu so transitions are serialized with Start guards.
func (s *Scheduler) emitStateChange(state types.SpinState) {
	oldState := s.State()
	if oldState == state {
		return // No change, no notification needed
	}

	s.current.Store(int32(state))

	s.subscribers.Range(func(_ uint64, sub *stateSubscriber) bool {
		sub.trySend(state, s.metrics)
		return true
	})
}
