package state

import (
	"testing"

	"github.com/vovakirdan/tui-sketch/internal/core"
)

func TestInitialPhaseIsMenu(t *testing.T) {
	m := New()
	if m.Phase() != PhaseMenu {
		t.Errorf("Phase() = %v, expected PhaseMenu", m.Phase())
	}
}

func TestMenuConfirmStartsPlaying(t *testing.T) {
	m := New()

	phase, changed := m.Apply(core.ActionConfirm)
	if !changed {
		t.Error("Confirm from Menu should transition")
	}
	if phase != PhasePlaying {
		t.Errorf("Phase = %v, expected PhasePlaying", phase)
	}
}

func TestMenuConfirmTransitionsToNoOtherState(t *testing.T) {
	// From Menu, Confirm goes to Playing and nowhere else;
	// every other action leaves Menu unchanged.
	for a := core.ActionNone; a <= core.ActionPause; a++ {
		m := New()
		phase, changed := m.Apply(a)

		if a == core.ActionConfirm {
			if phase != PhasePlaying {
				t.Errorf("Menu + Confirm = %v, expected PhasePlaying", phase)
			}
			continue
		}
		if changed || phase != PhaseMenu {
			t.Errorf("Menu + %v = %v (changed=%v), expected unchanged Menu", a, phase, changed)
		}
	}
}

func TestUnmappedActionLeavesPhaseUnchanged(t *testing.T) {
	tests := []struct {
		name   string
		setup  []core.Action
		action core.Action
		phase  Phase
	}{
		{"menu ignores pause", nil, core.ActionPause, PhaseMenu},
		{"menu ignores restart", nil, core.ActionRestart, PhaseMenu},
		{"playing ignores confirm", []core.Action{core.ActionConfirm}, core.ActionConfirm, PhasePlaying},
		{"playing ignores spawn", []core.Action{core.ActionConfirm}, core.ActionSpawn, PhasePlaying},
		{"paused ignores confirm", []core.Action{core.ActionConfirm, core.ActionPause}, core.ActionConfirm, PhasePaused},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := New()
			for _, a := range tc.setup {
				m.Apply(a)
			}

			phase, changed := m.Apply(tc.action)
			if changed {
				t.Error("Unmapped action should not transition")
			}
			if phase != tc.phase {
				t.Errorf("Phase = %v, expected %v", phase, tc.phase)
			}
		})
	}
}

func TestPauseToggle(t *testing.T) {
	m := New()
	m.Apply(core.ActionConfirm)

	if phase, _ := m.Apply(core.ActionPause); phase != PhasePaused {
		t.Errorf("Playing + Pause = %v, expected PhasePaused", phase)
	}
	if phase, _ := m.Apply(core.ActionPause); phase != PhasePlaying {
		t.Errorf("Paused + Pause = %v, expected PhasePlaying", phase)
	}
}

func TestBackReturnsToMenu(t *testing.T) {
	m := New()
	m.Apply(core.ActionConfirm)

	if phase, _ := m.Apply(core.ActionBack); phase != PhaseMenu {
		t.Errorf("Playing + Back = %v, expected PhaseMenu", phase)
	}
}

func TestFinishAndRestart(t *testing.T) {
	m := New()
	m.Apply(core.ActionConfirm)

	m.Finish()
	if m.Phase() != PhaseDone {
		t.Fatalf("Finish from Playing should yield PhaseDone, got %v", m.Phase())
	}

	// Done is not terminal: restart re-enters Playing.
	if phase, _ := m.Apply(core.ActionRestart); phase != PhasePlaying {
		t.Errorf("Done + Restart = %v, expected PhasePlaying", phase)
	}
}

func TestFinishFromMenuIsNoOp(t *testing.T) {
	m := New()
	m.Finish()
	if m.Phase() != PhaseMenu {
		t.Errorf("Finish from Menu should be a no-op, got %v", m.Phase())
	}
}

func TestReset(t *testing.T) {
	m := New()
	m.Apply(core.ActionConfirm)
	m.Finish()

	m.Reset()
	if m.Phase() != PhaseMenu {
		t.Errorf("Reset should return to PhaseMenu, got %v", m.Phase())
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseMenu, "menu"},
		{PhasePlaying, "playing"},
		{PhasePaused, "paused"},
		{PhaseDone, "done"},
		{Phase(42), "unknown"},
	}

	for _, tc := range tests {
		if tc.phase.String() != tc.expected {
			t.Errorf("Phase(%d).String() = %q, expected %q", tc.phase, tc.phase.String(), tc.expected)
		}
	}
}
