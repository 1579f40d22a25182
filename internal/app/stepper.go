package app

// stepper owns the preview's step counter. State selection uses the same
// pre-increment parity as the frame driver, so invocation k displays
// buffer A when k is even.
type stepper struct {
	step uint64
}

// advance begins the next step and returns the parity it displays.
func (s *stepper) advance() int {
	parity := int(s.step % 2)
	s.step++
	return parity
}

// count returns the number of begun steps.
func (s *stepper) count() uint64 { return s.step }
