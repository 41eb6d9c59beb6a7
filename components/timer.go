package components

// Timer counts elapsed seconds toward a duration. A repeating timer wraps its
// elapsed value when the duration is reached, a one-shot timer stops there.
type Timer struct {
	Duration  float64
	Elapsed   float64
	Repeating bool
	finished  bool
}

func NewRepeatingTimer(seconds float64) Timer {
	return Timer{Duration: seconds, Repeating: true}
}

func NewOnceTimer(seconds float64) Timer {
	return Timer{Duration: seconds}
}

// Tick advances the timer by dt seconds.
func (t *Timer) Tick(dt float64) {
	if !t.Repeating && t.finished {
		return
	}
	t.Elapsed += dt
	t.finished = false
	if t.Elapsed < t.Duration {
		return
	}
	t.finished = true
	if !t.Repeating {
		t.Elapsed = t.Duration
		return
	}
	if t.Duration > 0 {
		for t.Elapsed >= t.Duration {
			t.Elapsed -= t.Duration
		}
	} else {
		t.Elapsed = 0
	}
}

// Finished reports whether the last Tick reached the duration.
func (t *Timer) Finished() bool {
	return t.finished
}

func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
}

// SetDuration changes the duration without touching the elapsed value.
func (t *Timer) SetDuration(seconds float64) {
	t.Duration = seconds
}
