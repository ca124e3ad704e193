// Package clock provides the production types.Clock implementation.
package clock

import (
	"time"

	"github.com/Alex-2504834/RandomStudentPicker/types"
)

// Real implements types.Clock using the runtime timer via time.AfterFunc.
type Real struct{}

// Compile-time assertion that Real implements Clock.
var _ types.Clock = (*Real)(nil)

// New creates a new real clock.
//
// Returns:
//   - *Real: Clock backed by time.AfterFunc
func New() *Real {
	return &Real{}
}

// Schedule runs fn once after delay on a timer goroutine.
func (c *Real) Schedule(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}
