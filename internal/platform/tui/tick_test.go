package tui

import "testing"

func TestTickCmdFloorsNonPositiveRates(t *testing.T) {
	// A zero rate reaches tickCmd straight from the --fps flag; it must
	// produce a usable command rather than dividing by zero.
	for _, rate := range []int{60, 1, 0, -5} {
		if cmd := tickCmd(rate); cmd == nil {
			t.Errorf("tickCmd(%d) returned nil", rate)
		}
	}
}
