package gamestate

// Timer is a one-shot countdown sampled once per step.
type Timer struct {
	duration float64
	elapsed  float64
}

// NewTimer creates a timer that finishes after the given number of seconds.
func NewTimer(seconds float64) *Timer {
	return &Timer{duration: seconds}
}

// Tick advances the timer and reports whether it has finished.
func (t *Timer) Tick(dt float64) bool {
	if dt > 0 && t.elapsed < t.duration {
		t.elapsed += dt
	}
	return t.Finished()
}

// Finished reports whether the countdown has elapsed.
func (t *Timer) Finished() bool {
	return t.elapsed >= t.duration
}

// Remaining returns the seconds left, never negative.
func (t *Timer) Remaining() float64 {
	if r := t.duration - t.elapsed; r > 0 {
		return r
	}
	return 0
}

// Reset restarts the countdown. Only the owning state's enter hook calls it.
func (t *Timer) Reset() {
	t.elapsed = 0
}
