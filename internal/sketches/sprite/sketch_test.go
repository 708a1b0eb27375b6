package sprite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-sketch/internal/core"
)

func pinConfig(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sprite.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

const testConfig = `
movement:
  accel: 0.2
  max_speed: 1.0
  damping: 0.5
image:
  name: runner
  animate_every: 4
trail:
  enabled: true
  life_ticks: 5
`

func newTestSketch(t *testing.T) *Sketch {
	pinConfig(t, testConfig)
	s := New()
	s.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return s
}

func frameWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestResetSpawnsSprite(t *testing.T) {
	s := newTestSketch(t)

	if s.world.Len() != 1 {
		t.Fatalf("Len = %d, expected 1 sprite", s.world.Len())
	}
	e := s.world.Entities()[0]
	if e.Pos.X != 40 || e.Pos.Y != 12 {
		t.Errorf("sprite starts at %v, expected screen center", e.Pos)
	}
}

func TestSteeringAccelerates(t *testing.T) {
	s := newTestSketch(t)

	s.Step(frameWith(core.ActionRight))

	e := s.world.Entities()[0]
	if e.Vel.X != 0.2 {
		t.Errorf("Vel.X = %v, expected accel 0.2", e.Vel.X)
	}
	if e.Pos.X <= 40 {
		t.Errorf("Pos.X = %v, expected moved right of 40", e.Pos.X)
	}
}

func TestSpeedCap(t *testing.T) {
	s := newTestSketch(t)

	for i := 0; i < 50; i++ {
		s.Step(frameWith(core.ActionRight, core.ActionDown))
	}

	e := s.world.Entities()[0]
	if sq := e.Vel.LenSq(); sq > 1.0+1e-9 {
		t.Errorf("speed exceeds cap: |v|^2 = %v", sq)
	}
}

func TestDampingStopsSprite(t *testing.T) {
	s := newTestSketch(t)

	s.Step(frameWith(core.ActionRight))
	for i := 0; i < 60; i++ {
		s.Step(core.NewInputFrame())
	}

	e := s.world.Entities()[0]
	if e.Vel.LenSq() > 1e-6 {
		t.Errorf("sprite should coast to rest, |v|^2 = %v", e.Vel.LenSq())
	}
}

func TestUnmappedActionIsNoOp(t *testing.T) {
	s := newTestSketch(t)
	before := s.world.Entities()[0]

	s.Step(frameWith(core.ActionConfirm))

	after := s.world.Entities()[0]
	if after.Pos != before.Pos || after.Vel != before.Vel {
		t.Errorf("Confirm should not move the sprite: %v -> %v", before.Pos, after.Pos)
	}
}

func TestWallStopsSprite(t *testing.T) {
	s := newTestSketch(t)

	for i := 0; i < 200; i++ {
		s.Step(frameWith(core.ActionLeft))
	}

	e := s.world.Entities()[0]
	if e.Pos.X != 0 {
		t.Errorf("Pos.X = %v, expected pinned at left wall", e.Pos.X)
	}
}

func TestTrailSpawnsAndExpires(t *testing.T) {
	s := newTestSketch(t)

	s.Step(frameWith(core.ActionRight))
	s.Step(frameWith(core.ActionRight))

	if s.world.Len() < 2 {
		t.Errorf("Len = %d, expected trail particles behind sprite", s.world.Len())
	}

	// Trail life is 5 ticks; once the sprite stops the trail dies out.
	for i := 0; i < 100; i++ {
		s.Step(core.NewInputFrame())
	}
	if s.world.Len() != 1 {
		t.Errorf("Len = %d, expected only the sprite to remain", s.world.Len())
	}
}

func TestSpriteStaysFirstEntity(t *testing.T) {
	s := newTestSketch(t)

	for i := 0; i < 30; i++ {
		s.Step(frameWith(core.ActionRight))
	}

	if kind := s.world.Entities()[0].Kind.String(); kind != "sprite" {
		t.Errorf("entity 0 is %q, expected the sprite", kind)
	}
}

func TestRenderWithoutAssetsUsesFallbackGlyph(t *testing.T) {
	s := newTestSketch(t)

	screen := core.NewScreen(80, 24)
	s.Render(screen)

	e := s.world.Entities()[0]
	if screen.Get(int(e.Pos.X), int(e.Pos.Y)) != '@' {
		t.Error("fallback glyph should be drawn when no image is loaded")
	}
}
