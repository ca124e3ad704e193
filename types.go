package picker

import "github.com/Alex-2504834/RandomStudentPicker/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces via type aliases. Internal packages depend on the `types`
// subpackage directly, which avoids import cycles while users get the
// convenient `picker.Student`, `picker.Logger`, etc.
type (
	Student   = types.Student
	SpinFrame = types.SpinFrame
	SpinState = types.SpinState
)

// Re-export interfaces from the types subpackage for convenience.
type (
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
	Clock            = types.Clock
	RosterSource     = types.RosterSource
)

// Re-export SpinState constants from the types subpackage.
const (
	SpinIdle     = types.SpinIdle
	SpinSpinning = types.SpinSpinning
	SpinLanded   = types.SpinLanded
)
