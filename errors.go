package picker

import "errors"

// Sentinel errors returned by the Roster and configuration loading.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNonPositiveDecay is returned when a weight decrease amount <= 0 is
	// applied. The prior valid value is retained.
	ErrNonPositiveDecay = errors.New("weight decrease amount must be positive")

	// ErrNonPositiveWeight is returned when a default weight <= 0 is applied.
	ErrNonPositiveWeight = errors.New("default weight must be positive")
)
