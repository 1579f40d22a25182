package app

import "testing"

func TestFirstPreviewFrameShowsBufferA(t *testing.T) {
	var s stepper
	if got := s.advance(); got != 0 {
		t.Fatalf("first step displays buffer %c, expected A", 'A'+got)
	}
}

func TestPreviewParityMatchesInvocationIndex(t *testing.T) {
	var s stepper
	for k := 0; k < 8; k++ {
		if got := s.advance(); got != k%2 {
			t.Fatalf("invocation %d displays parity %d, expected %d", k, got, k%2)
		}
	}
	if s.count() != 8 {
		t.Fatalf("step count = %d, expected 8", s.count())
	}
}
