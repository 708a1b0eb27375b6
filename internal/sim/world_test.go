package sim

import (
	"testing"

	"github.com/vovakirdan/tui-sketch/internal/core"
)

func testBounds() core.Box {
	return core.NewBox(0, 0, 80, 24)
}

func TestWorldSpawnAndLen(t *testing.T) {
	w := NewWorld(testBounds())

	if w.Len() != 0 {
		t.Errorf("New world should be empty, got %d", w.Len())
	}

	w.Spawn(Entity{Kind: KindParticle, Pos: core.Vec2{X: 10, Y: 10}, Life: 5, MaxLife: 5})
	w.Spawn(Entity{Kind: KindBall, Pos: core.Vec2{X: 20, Y: 10}})

	if w.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", w.Len())
	}
	if w.Spawned() != 2 {
		t.Errorf("Spawned() = %d, expected 2", w.Spawned())
	}
	if w.Peak() != 2 {
		t.Errorf("Peak() = %d, expected 2", w.Peak())
	}
}

func TestUpdateAppliesVelocityThenGravity(t *testing.T) {
	w := NewWorld(testBounds())
	w.Spawn(Entity{
		Kind:    KindParticle,
		Pos:     core.Vec2{X: 10, Y: 10},
		Vel:     core.Vec2{X: 1, Y: 0},
		Gravity: 0.5,
		Life:    100,
		MaxLife: 100,
	})

	w.Update()

	e := w.Entities()[0]
	// Velocity applied to position before gravity touches velocity
	if e.Pos.X != 11 || e.Pos.Y != 10 {
		t.Errorf("Pos = %v, expected (11, 10)", e.Pos)
	}
	if e.Vel.Y != 0.5 {
		t.Errorf("Vel.Y = %v, expected 0.5", e.Vel.Y)
	}
}

func TestGravityAccumulatesLinearly(t *testing.T) {
	// After N ticks with constant gravity g and zero initial velocity,
	// vertical velocity equals N*g.
	const g = 0.5
	const n = 40

	w := NewWorld(core.NewBox(0, 0, 1000, 1000))
	w.Spawn(Entity{Kind: KindBall, Pos: core.Vec2{X: 500, Y: 10}, Gravity: g})

	for i := 0; i < n; i++ {
		w.Update()
	}

	e := w.Entities()[0]
	if e.Vel.Y != n*g {
		t.Errorf("Vel.Y after %d ticks = %v, expected %v", n, e.Vel.Y, n*g)
	}
}

func TestPruneKeepsOrderAndDropsDead(t *testing.T) {
	// Entities with remaining-life [10, -1, 5, 0]: after pruning with the
	// <= 0 predicate, exactly [10, 5] remain in original relative order.
	w := NewWorld(testBounds())
	for _, life := range []float64{10, -1, 5, 0} {
		w.Spawn(Entity{
			Kind:    KindParticle,
			Pos:     core.Vec2{X: 10, Y: 10},
			Life:    life,
			MaxLife: 10,
		})
	}

	removed := w.Prune()

	if removed != 2 {
		t.Errorf("Prune removed %d, expected 2", removed)
	}
	if w.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", w.Len())
	}
	if w.Entities()[0].Life != 10 || w.Entities()[1].Life != 5 {
		t.Errorf("Survivors = [%v, %v], expected [10, 5]",
			w.Entities()[0].Life, w.Entities()[1].Life)
	}
}

func TestPruneCullsFarOutOfBounds(t *testing.T) {
	w := NewWorld(testBounds())
	w.Spawn(Entity{Kind: KindBall, Pos: core.Vec2{X: 40, Y: 12}})
	w.Spawn(Entity{Kind: KindBall, Pos: core.Vec2{X: -500, Y: 12}})

	w.Prune()

	if w.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", w.Len())
	}
	if w.Entities()[0].Pos.X != 40 {
		t.Error("In-bounds entity should survive culling")
	}
}

func TestPruneIsIdempotentOnSurvivors(t *testing.T) {
	w := NewWorld(testBounds())
	w.Spawn(Entity{Kind: KindParticle, Pos: core.Vec2{X: 5, Y: 5}, Life: 3, MaxLife: 3})

	if removed := w.Prune(); removed != 0 {
		t.Errorf("First prune removed %d, expected 0", removed)
	}
	if removed := w.Prune(); removed != 0 {
		t.Errorf("Second prune removed %d, expected 0", removed)
	}
}

func TestReflectRetainsRestitution(t *testing.T) {
	w := NewWorld(testBounds())
	w.Spawn(Entity{
		Kind:        KindBall,
		Pos:         core.Vec2{X: 40, Y: 23.5},
		Vel:         core.Vec2{X: 0, Y: 2},
		Radius:      1,
		Restitution: 0.5,
	})

	w.Update()

	e := w.Entities()[0]
	if e.Pos.Y != 23 {
		t.Errorf("Pos.Y = %v, expected clamped to 23", e.Pos.Y)
	}
	if e.Vel.Y >= 0 {
		t.Errorf("Vel.Y = %v, expected reversed (negative)", e.Vel.Y)
	}
	if e.Vel.Y != -1 {
		t.Errorf("Vel.Y = %v, expected -1 (half of 2 retained)", e.Vel.Y)
	}
}

func TestNoReflectionWithoutRestitution(t *testing.T) {
	w := NewWorld(testBounds())
	w.Spawn(Entity{
		Kind:    KindParticle,
		Pos:     core.Vec2{X: 40, Y: 25},
		Vel:     core.Vec2{X: 0, Y: 2},
		Life:    100,
		MaxLife: 100,
	})

	w.Update()

	e := w.Entities()[0]
	if e.Pos.Y != 27 {
		t.Errorf("Pos.Y = %v, expected 27 (falls through bounds)", e.Pos.Y)
	}
}

func TestLifeDecrementAndDeath(t *testing.T) {
	w := NewWorld(testBounds())
	w.Spawn(Entity{Kind: KindParticle, Pos: core.Vec2{X: 5, Y: 5}, Life: 2, MaxLife: 2})

	w.Step()
	if w.Len() != 1 {
		t.Fatalf("Entity should survive with life remaining, Len() = %d", w.Len())
	}

	w.Step()
	if w.Len() != 0 {
		t.Errorf("Entity should be pruned the tick its life reached zero, Len() = %d", w.Len())
	}
}

func TestImmortalEntityNeverDies(t *testing.T) {
	w := NewWorld(testBounds())
	w.Spawn(Entity{Kind: KindSprite, Pos: core.Vec2{X: 5, Y: 5}})

	for i := 0; i < 1000; i++ {
		w.Step()
	}

	if w.Len() != 1 {
		t.Errorf("Immortal entity should persist, Len() = %d", w.Len())
	}
}

func TestFadeLevel(t *testing.T) {
	tests := []struct {
		name     string
		entity   Entity
		expected float64
	}{
		{"full life", Entity{Life: 10, MaxLife: 10}, 1},
		{"half life", Entity{Life: 5, MaxLife: 10}, 0.5},
		{"expired clamps to zero", Entity{Life: -3, MaxLife: 10}, 0},
		{"immortal always full", Entity{}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.entity.FadeLevel(); got != tc.expected {
				t.Errorf("FadeLevel() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDropOldestPreservesOrder(t *testing.T) {
	w := NewWorld(testBounds())
	for i := 0; i < 5; i++ {
		w.Spawn(Entity{Kind: KindParticle, Pos: core.Vec2{X: float64(i), Y: 5}, Life: 10, MaxLife: 10})
	}

	w.DropOldest(2)

	if w.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", w.Len())
	}
	for i, e := range w.Entities() {
		if e.Pos.X != float64(i+2) {
			t.Errorf("entity %d has Pos.X = %v, expected %v", i, e.Pos.X, float64(i+2))
		}
	}
}

func TestDropOldestBeyondLen(t *testing.T) {
	w := NewWorld(testBounds())
	w.Spawn(Entity{Kind: KindParticle, Life: 10, MaxLife: 10})

	w.DropOldest(10)
	if w.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", w.Len())
	}

	w.DropOldest(1) // empty store is a no-op
}

func TestWorldReset(t *testing.T) {
	w := NewWorld(testBounds())
	w.Spawn(Entity{Kind: KindParticle, Pos: core.Vec2{X: 1, Y: 1}, Life: 1, MaxLife: 1})
	w.Spawn(Entity{Kind: KindParticle, Pos: core.Vec2{X: 2, Y: 2}, Life: 1, MaxLife: 1})

	w.Reset()

	if w.Len() != 0 || w.Spawned() != 0 || w.Peak() != 0 {
		t.Errorf("Reset should clear store and counters: len=%d spawned=%d peak=%d",
			w.Len(), w.Spawned(), w.Peak())
	}
}
