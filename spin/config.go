package spin

import (
	"fmt"
	"time"
)

// Config controls spin animation geometry and pacing.
//
// All duration fields accept standard Go duration strings like "80ms" in
// YAML form.
type Config struct {
	// SlotCount is the number of visible slots in the spin window.
	// Must be odd so a single center slot exists. Default: 7.
	SlotCount int `yaml:"slotCount"`

	// StripRepeat is how many times the roster name order is repeated to
	// form the cyclic strip. Higher values give the rotation more room;
	// every name is guaranteed at least StripRepeat occurrences. Default: 10.
	StripRepeat int `yaml:"stripRepeat"`

	// FullSpins is the number of complete strip rotations performed before
	// landing, purely for visual effect. Default: 2.
	FullSpins int `yaml:"fullSpins"`

	// Speed selects the animation pace in [0, 100], 0 slowest and 100
	// fastest. The per-step delay bounds are linearly interpolated between
	// the slow and fast delay pairs below. Default: 50.
	Speed float64 `yaml:"speed"`

	// SlowMinDelay and SlowMaxDelay are the step delay bounds at Speed 0.
	SlowMinDelay time.Duration `yaml:"slowMinDelay"`
	SlowMaxDelay time.Duration `yaml:"slowMaxDelay"`

	// FastMinDelay and FastMaxDelay are the step delay bounds at Speed 100.
	FastMinDelay time.Duration `yaml:"fastMinDelay"`
	FastMaxDelay time.Duration `yaml:"fastMaxDelay"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		SlotCount:    7,
		StripRepeat:  10,
		FullSpins:    2,
		Speed:        50,
		SlowMinDelay: 80 * time.Millisecond,
		SlowMaxDelay: 400 * time.Millisecond,
		FastMinDelay: 10 * time.Millisecond,
		FastMaxDelay: 80 * time.Millisecond,
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.SlotCount == 0 {
		cfg.SlotCount = defaults.SlotCount
	}
	if cfg.StripRepeat == 0 {
		cfg.StripRepeat = defaults.StripRepeat
	}
	if cfg.FullSpins == 0 {
		cfg.FullSpins = defaults.FullSpins
	}
	if cfg.SlowMinDelay == 0 {
		cfg.SlowMinDelay = defaults.SlowMinDelay
	}
	if cfg.SlowMaxDelay == 0 {
		cfg.SlowMaxDelay = defaults.SlowMaxDelay
	}
	if cfg.FastMinDelay == 0 {
		cfg.FastMinDelay = defaults.FastMinDelay
	}
	if cfg.FastMaxDelay == 0 {
		cfg.FastMaxDelay = defaults.FastMaxDelay
	}
	// Note: Speed 0 is a valid setting (slowest), so no default is applied.
	// DefaultConfig() carries 50 for callers starting from scratch.
}

// Validate checks configuration constraints and returns an error for invalid values.
//
// Hard Validation Rules:
//   - SlotCount >= 1 and odd (a single center slot must exist)
//   - StripRepeat >= 1 (strip must contain every name at least once)
//   - FullSpins >= 1 (landing distance math assumes at least one rotation)
//   - 0 <= Speed <= 100
//   - Delay bounds non-negative, max >= min within each pair
//   - Slow pair >= fast pair (higher speed must not slow the animation)
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.SlotCount < 1 || cfg.SlotCount%2 == 0 {
		return fmt.Errorf("SlotCount must be a positive odd number, got %d", cfg.SlotCount)
	}

	if cfg.StripRepeat < 1 {
		return fmt.Errorf("StripRepeat must be >= 1, got %d", cfg.StripRepeat)
	}

	if cfg.FullSpins < 1 {
		return fmt.Errorf("FullSpins must be >= 1, got %d", cfg.FullSpins)
	}

	if cfg.Speed < 0 || cfg.Speed > 100 {
		return fmt.Errorf("Speed must be within [0, 100], got %v", cfg.Speed)
	}

	if cfg.FastMinDelay < 0 || cfg.FastMaxDelay < 0 || cfg.SlowMinDelay < 0 || cfg.SlowMaxDelay < 0 {
		return fmt.Errorf("delay bounds must be non-negative")
	}

	if cfg.SlowMaxDelay < cfg.SlowMinDelay {
		return fmt.Errorf(
			"SlowMaxDelay (%v) must be >= SlowMinDelay (%v)",
			cfg.SlowMaxDelay, cfg.SlowMinDelay,
		)
	}

	if cfg.FastMaxDelay < cfg.FastMinDelay {
		return fmt.Errorf(
			"FastMaxDelay (%v) must be >= FastMinDelay (%v)",
			cfg.FastMaxDelay, cfg.FastMinDelay,
		)
	}

	if cfg.SlowMinDelay < cfg.FastMinDelay || cfg.SlowMaxDelay < cfg.FastMaxDelay {
		return fmt.Errorf(
			"slow delay bounds (%v/%v) must be >= fast delay bounds (%v/%v)",
			cfg.SlowMinDelay, cfg.SlowMaxDelay, cfg.FastMinDelay, cfg.FastMaxDelay,
		)
	}

	return nil
}

// TestConfig returns a configuration optimized for fast test execution.
//
// Delay bounds are shrunk so full spins complete in milliseconds on a
// real clock. Use DefaultConfig() outside of tests.
//
// Returns:
//   - Config: Configuration with fast timings for tests
func TestConfig() Config {
	cfg := DefaultConfig()

	cfg.StripRepeat = 3
	cfg.SlowMinDelay = time.Millisecond
	cfg.SlowMaxDelay = 4 * time.Millisecond
	cfg.FastMinDelay = 100 * time.Microsecond
	cfg.FastMaxDelay = time.Millisecond

	return cfg
}
