package picker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Alex-2504834/RandomStudentPicker/spin"
)

// Config is the configuration for the picker.
//
// The zero value is usable after SetDefaults; DefaultConfig returns a
// fully populated copy. Configs round-trip through YAML via
// LoadConfigFile and SaveConfigFile.
type Config struct {
	// DefaultWeight is the weight assigned to students on load (when their
	// source record carries none) and on weight resets. Default: 0.5.
	DefaultWeight float64 `yaml:"defaultWeight"`

	// WeightDecreaseAmount is the fixed per-pick weight reduction. Must be
	// positive. Default: 0.1.
	WeightDecreaseAmount float64 `yaml:"weightDecreaseAmount"`

	// SelectedClassFile is the class roster file to load on startup,
	// relative to the class directory. Empty means no saved selection.
	SelectedClassFile string `yaml:"selectedClassFile"`

	// Spinner controls the spin animation geometry and pacing.
	Spinner spin.Config `yaml:"spinner"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		DefaultWeight:        0.5,
		WeightDecreaseAmount: 0.1,
		Spinner:              spin.DefaultConfig(),
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.DefaultWeight == 0 {
		cfg.DefaultWeight = defaults.DefaultWeight
	}
	if cfg.WeightDecreaseAmount == 0 {
		cfg.WeightDecreaseAmount = defaults.WeightDecreaseAmount
	}

	spin.SetDefaults(&cfg.Spinner)
}

// Validate checks configuration constraints and returns an error for invalid values.
//
// Hard Validation Rules:
//   - DefaultWeight > 0 (students must start eligible)
//   - WeightDecreaseAmount > 0 (picks must decay weight)
//   - Spinner config valid per spin.Config.Validate
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.DefaultWeight <= 0 {
		return fmt.Errorf("%w: got %v", ErrNonPositiveWeight, cfg.DefaultWeight)
	}

	if cfg.WeightDecreaseAmount <= 0 {
		return fmt.Errorf("%w: got %v", ErrNonPositiveDecay, cfg.WeightDecreaseAmount)
	}

	if err := cfg.Spinner.Validate(); err != nil {
		return fmt.Errorf("spinner: %w", err)
	}

	return nil
}

// TestConfig returns a configuration optimized for fast test execution.
//
// Spinner delays are shrunk so animated tests complete in milliseconds.
// Use DefaultConfig() outside of tests.
//
// Returns:
//   - Config: Configuration with fast timings for tests
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.Spinner = spin.TestConfig()

	return cfg
}

// LoadConfigFile reads a YAML config file.
//
// A missing file is not an error: defaults are returned, matching
// first-run behavior. A present but malformed file is an error so a bad
// edit does not silently reset settings.
//
// Parameters:
//   - path: Config file path
//
// Returns:
//   - Config: Loaded configuration with defaults applied
//   - error: Read, parse, or validation failure
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	return cfg, nil
}

// SaveConfigFile writes the config as YAML.
//
// Parameters:
//   - path: Destination file path
//   - cfg: Configuration to persist
//
// Returns:
//   - error: Marshal or write failure
func SaveConfigFile(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}

	return nil
}
