// Package metrics provides the built-in types.MetricsCollector implementations.
package metrics

import "github.com/Alex-2504834/RandomStudentPicker/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RosterMetrics implementation

// RecordPick discards the pick metric.
func (n *NopMetrics) RecordPick(_ /* name */ string) {
	// No-op
}

// RecordExhausted discards the exhausted metric.
func (n *NopMetrics) RecordExhausted() {
	// No-op
}

// RecordReset discards the reset metric.
func (n *NopMetrics) RecordReset(_ /* kind */ string) {
	// No-op
}

// RecordRosterSize discards the roster size metric.
func (n *NopMetrics) RecordRosterSize(_ /* count */ int) {
	// No-op
}

// SpinMetrics implementation

// RecordSpinStart discards the spin start metric.
func (n *NopMetrics) RecordSpinStart(_ /* totalSteps */ int) {
	// No-op
}

// RecordSpinComplete discards the spin completion metric.
func (n *NopMetrics) RecordSpinComplete(_ /* duration */ float64, _ /* totalSteps */ int) {
	// No-op
}

// RecordSpinRejected discards the rejected spin metric.
func (n *NopMetrics) RecordSpinRejected() {
	// No-op
}

// RecordStateChangeDropped discards the dropped notification metric.
func (n *NopMetrics) RecordStateChangeDropped() {
	// No-op
}
