package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods may be called from timer callbacks and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces so callers
// can implement only the concerns they care about and embed a no-op for
// the rest.
type MetricsCollector interface {
	RosterMetrics
	SpinMetrics
}

// RosterMetrics defines metrics for roster selection operations.
type RosterMetrics interface {
	// RecordPick records a successful weighted selection.
	//
	// Parameters:
	//   - name: Name of the selected student
	RecordPick(name string)

	// RecordExhausted records a pick attempt that found no eligible student.
	RecordExhausted()

	// RecordReset records a reset operation.
	//
	// Parameters:
	//   - kind: Reset kind ("full" for counts and weights, "weights" for weights only)
	RecordReset(kind string)

	// RecordRosterSize sets the current roster size (gauge metric).
	RecordRosterSize(count int)
}

// SpinMetrics defines metrics for spin scheduler operations.
type SpinMetrics interface {
	// RecordSpinStart records the start of a spin run.
	//
	// Parameters:
	//   - totalSteps: Planned number of animation steps
	RecordSpinStart(totalSteps int)

	// RecordSpinComplete records a finished spin run.
	//
	// Parameters:
	//   - duration: Wall time of the run in seconds
	//   - totalSteps: Number of steps the run executed
	RecordSpinComplete(duration float64, totalSteps int)

	// RecordSpinRejected records a start request rejected because a run
	// was already in progress.
	RecordSpinRejected()

	// RecordStateChangeDropped records a state change notification dropped
	// because a subscriber was too slow to receive it.
	RecordStateChangeDropped()
}
