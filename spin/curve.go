package spin

import "time"

// delayBounds returns the per-step min and max delays for a speed setting.
//
// Speed is clamped to [0, 100] and mapped linearly between the slow and
// fast delay pairs: speed 0 yields the slow pair, speed 100 the fast pair.
func delayBounds(cfg *Config, speed float64) (minDelay, maxDelay time.Duration) {
	if speed < 0 {
		speed = 0
	}
	if speed > 100 {
		speed = 100
	}
	t := speed / 100

	minDelay = cfg.SlowMinDelay + time.Duration(t*float64(cfg.FastMinDelay-cfg.SlowMinDelay))
	maxDelay = cfg.SlowMaxDelay + time.Duration(t*float64(cfg.FastMaxDelay-cfg.SlowMaxDelay))

	return minDelay, maxDelay
}

// stepDelay returns the delay before the step after step index i.
//
// The curve is a quadratic ease-in over run progress: delay grows from
// minDelay toward maxDelay as (i/total)^2, so early steps fire quickly
// and the strip decelerates into the landing.
func stepDelay(step, total int, minDelay, maxDelay time.Duration) time.Duration {
	if total <= 0 {
		return minDelay
	}

	progress := float64(step) / float64(total)

	return minDelay + time.Duration(progress*progress*float64(maxDelay-minDelay))
}
