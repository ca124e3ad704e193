package types

// SpinState represents the spin scheduler lifecycle state.
//
// States follow a fixed progression during a run:
//
//	SpinIdle → SpinSpinning → SpinLanded → SpinIdle
//
// Only one run may be in SpinSpinning at a time; a start request while
// spinning is rejected as a no-op rather than queued.
type SpinState int

const (
	// SpinIdle means no spin is in progress and a new one may start.
	SpinIdle SpinState = iota

	// SpinSpinning means a timeline is actively stepping.
	SpinSpinning

	// SpinLanded means the final step just completed and the center slot
	// shows the target. The scheduler returns to SpinIdle immediately after.
	SpinLanded
)

// String returns the string representation of the state.
func (s SpinState) String() string {
	switch s {
	case SpinIdle:
		return "Idle"
	case SpinSpinning:
		return "Spinning"
	case SpinLanded:
		return "Landed"
	default:
		return "Unknown"
	}
}

// SpinFrame is one rendered step of a spin animation.
//
// Window holds the names visible in each slot, in slot order. CenterSlot
// is the index into Window of the highlighted center position. On the
// final frame the center slot is forced to the target name.
type SpinFrame struct {
	// Window is the visible slot contents, len == configured slot count.
	Window []string

	// CenterSlot is the index of the highlighted slot within Window.
	CenterSlot int

	// Step is the zero-based step index of this frame.
	Step int

	// Total is the total number of steps in the run.
	Total int

	// Final reports whether this is the landing frame.
	Final bool
}
