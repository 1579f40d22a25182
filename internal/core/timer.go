package core

import "time"

// StepGate helps advance the renderer at a steady fixed interval while the
// surrounding loop runs faster (e.g. to keep window events responsive).
type StepGate struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewStepGate constructs a StepGate firing once per interval.
func NewStepGate(interval time.Duration) *StepGate {
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	sg := &StepGate{}
	sg.SetInterval(interval)
	sg.accumulator = sg.step
	return sg
}

// SetInterval changes the step interval. It is safe to call from the main loop.
func (s *StepGate) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	s.step = interval
}

// ShouldStep reports whether one step's worth of wall time has elapsed.
func (s *StepGate) ShouldStep() bool {
	now := time.Now()
	if s.last.IsZero() {
		s.last = now
	}
	delta := now.Sub(s.last)
	s.last = now
	s.accumulator += delta
	// A stall longer than one interval yields a single catch-up step;
	// the remaining backlog is dropped, never replayed as a burst.
	if s.accumulator > s.step {
		s.accumulator = s.step
	}
	if s.accumulator >= s.step {
		s.accumulator -= s.step
		return true
	}
	return false
}
