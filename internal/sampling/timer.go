package sampling

import "time"

// Timer is a repeating countdown advanced by host-supplied elapsed time.
type Timer struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewTimer creates a Timer that finishes every interval.
func NewTimer(interval time.Duration) Timer {
	return Timer{interval: interval}
}

// Interval returns the configured interval.
func (t *Timer) Interval() time.Duration { return t.interval }

// Elapsed returns the time accumulated since the timer last finished.
func (t *Timer) Elapsed() time.Duration { return t.elapsed }

// Tick advances the timer and reports whether it finished. A finished timer
// keeps the remainder so that long frames do not drift the schedule; it
// finishes at most once per call.
func (t *Timer) Tick(elapsed time.Duration) bool {
	if t.interval <= 0 {
		return true
	}
	if elapsed > 0 {
		t.elapsed += elapsed
	}
	if t.elapsed < t.interval {
		return false
	}
	t.elapsed %= t.interval
	return true
}

// Reset clears the accumulated time.
func (t *Timer) Reset() { t.elapsed = 0 }
