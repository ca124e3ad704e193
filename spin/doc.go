// Package spin implements the slot-machine style reveal animation for a
// picked student.
//
// A Scheduler owns a repeating name strip built from the roster and, per
// run, a step-by-step timeline that rotates the strip forward until the
// center slot lands on the target name. Step pacing follows a quadratic
// ease-in curve between speed-derived delay bounds, so the animation
// starts fast and slows near the end.
//
// The scheduler never drives timers itself: every step is a discrete
// callback handed to a types.Clock, which lets tests run complete spins
// on a virtual clock with no real sleeping.
package spin
