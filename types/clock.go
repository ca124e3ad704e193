package types

import "time"

// Clock schedules deferred callbacks.
//
// The spin scheduler drives its per-step timeline exclusively through
// this capability, so the timing logic stays decoupled from any concrete
// event loop. The production implementation wraps time.AfterFunc; tests
// use a manual clock that advances virtual time deterministically.
type Clock interface {
	// Schedule arranges for fn to run once after delay has elapsed.
	//
	// Implementations may invoke fn on any goroutine. Callbacks scheduled
	// with equal delays run in scheduling order.
	Schedule(delay time.Duration, fn func())
}
