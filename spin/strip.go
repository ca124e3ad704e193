package spin

// buildStrip concatenates repeat copies of names into the cyclic strip.
//
// An empty name list yields an empty strip.
func buildStrip(names []string, repeat int) []string {
	if len(names) == 0 || repeat < 1 {
		return nil
	}

	strip := make([]string, 0, len(names)*repeat)
	for range repeat {
		strip = append(strip, names...)
	}

	return strip
}

// forwardDistance returns the minimal non-negative number of forward steps
// from start to target on a cyclic strip of the given size.
func forwardDistance(target, start, size int) int {
	return ((target-start)%size + size) % size
}

// closestForward returns the minimal forward distance from start to any
// strip position holding name. The second return value is false when the
// name does not occur in the strip.
func closestForward(strip []string, name string, start int) (int, bool) {
	best := -1
	for idx, n := range strip {
		if n != name {
			continue
		}
		if d := forwardDistance(idx, start, len(strip)); best < 0 || d < best {
			best = d
		}
	}

	if best < 0 {
		return 0, false
	}

	return best, true
}

// windowAt returns the slotCount names visible around center, wrapping
// cyclically. The middle element corresponds to the center slot.
func windowAt(strip []string, center, slotCount int) []string {
	window := make([]string, slotCount)
	half := slotCount / 2
	size := len(strip)

	for slot := range slotCount {
		idx := ((center+slot-half)%size + size) % size
		window[slot] = strip[idx]
	}

	return window
}
