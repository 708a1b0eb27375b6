package particles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-sketch/internal/core"
)

// pinConfig points the sketch at a fixed config so tests do not depend on
// files in the search path.
func pinConfig(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "particles.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

const testConfig = `
physics:
  gravity: 0.1
  min_speed: 0.5
  max_speed: 1.0
burst:
  count: 10
  spread: 1.0
lifetime:
  min_ticks: 20
  max_ticks: 40
limits:
  max_entities: 25
`

func newTestSketch(t *testing.T) *Sketch {
	pinConfig(t, testConfig)
	s := New()
	s.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return s
}

func spawnFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionSpawn)
	return in
}

func TestSpawnActionEmitsBurst(t *testing.T) {
	s := newTestSketch(t)

	result := s.Step(spawnFrame())

	if result.Stats.Spawned != 10 {
		t.Errorf("Spawned = %d, expected 10", result.Stats.Spawned)
	}
	if result.Stats.Alive != 10 {
		t.Errorf("Alive = %d, expected 10", result.Stats.Alive)
	}
}

func TestNoSpawnWithoutAction(t *testing.T) {
	s := newTestSketch(t)

	result := s.Step(core.NewInputFrame())

	if result.Stats.Spawned != 0 {
		t.Errorf("Spawned = %d, expected 0", result.Stats.Spawned)
	}
	if result.Stats.Ticks != 1 {
		t.Errorf("Ticks = %d, expected 1", result.Stats.Ticks)
	}
}

func TestPopulationCapDropsOldestFirst(t *testing.T) {
	s := newTestSketch(t)

	// Three bursts of 10 against a cap of 25: the third burst must evict
	// the oldest 5 particles, never the newest.
	s.Step(spawnFrame())
	s.Step(spawnFrame())
	result := s.Step(spawnFrame())

	if result.Stats.Alive > 25 {
		t.Errorf("Alive = %d, exceeds cap 25", result.Stats.Alive)
	}
	if result.Stats.Spawned != 30 {
		t.Errorf("Spawned = %d, expected 30", result.Stats.Spawned)
	}

	// The survivors with the most remaining life are from the newest burst.
	newest := 0
	for _, e := range s.world.Entities() {
		if e.Life > e.MaxLife-3 {
			newest++
		}
	}
	if newest < 10 {
		t.Errorf("newest burst should survive intact, found %d fresh particles", newest)
	}
}

func TestPointerPressMovesEmitter(t *testing.T) {
	s := newTestSketch(t)

	in := core.NewInputFrame()
	in.Press(30, 12)
	s.Step(in)

	if s.emitter.X != 30 || s.emitter.Y != 12 {
		t.Errorf("emitter = %v, expected (30, 12)", s.emitter)
	}
	if s.world.Spawned() != 10 {
		t.Errorf("pointer press should burst, Spawned = %d", s.world.Spawned())
	}
}

func TestDeterministicWithSameSeed(t *testing.T) {
	pinConfig(t, testConfig)

	run := func() []float64 {
		s := New()
		s.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
		s.Step(spawnFrame())
		velocities := make([]float64, 0, s.world.Len())
		for _, e := range s.world.Entities() {
			velocities = append(velocities, e.Vel.X)
		}
		return velocities
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("runs spawned different counts: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("velocity %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestParticlesExpire(t *testing.T) {
	s := newTestSketch(t)
	s.Step(spawnFrame())

	// Max lifetime is 40 ticks; everything must be pruned by then.
	for i := 0; i < 41; i++ {
		s.Step(core.NewInputFrame())
	}

	if s.Stats().Alive != 0 {
		t.Errorf("Alive = %d after max lifetime elapsed, expected 0", s.Stats().Alive)
	}
}

func TestRenderDoesNotPanic(t *testing.T) {
	s := newTestSketch(t)
	s.Step(spawnFrame())

	screen := core.NewScreen(80, 24)
	s.Render(screen)
}
