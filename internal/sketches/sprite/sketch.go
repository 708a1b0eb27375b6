// Package sprite implements a steered sprite sketch: a preloaded text-art
// figure accelerates under directional input, coasts with damping, and
// leaves a fading trail behind it.
package sprite

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-sketch/internal/config"
	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/registry"
	"github.com/vovakirdan/tui-sketch/internal/sim"
)

const TrailChar = '·'

// Sketch implements the steered sprite simulation.
type Sketch struct {
	world   *sim.World
	rng     *rand.Rand
	runtime core.RuntimeConfig
	cfg     config.SpriteConfig
	image   core.Image
	ticks   int
	moved   int // ticks spent moving, drives the animation frame
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new sprite sketch instance.
func New() *Sketch {
	return &Sketch{}
}

// ID returns the unique identifier for this sketch.
func (s *Sketch) ID() string {
	return "sprite"
}

// Title returns the display name for this sketch.
func (s *Sketch) Title() string {
	return "Steered Sprite"
}

// Reset initializes or restarts the sketch.
func (s *Sketch) Reset(runtime core.RuntimeConfig) {
	s.runtime = runtime

	cfg, err := config.LoadSprite(configPath)
	if err != nil {
		cfg = config.DefaultSpriteConfig()
	}
	s.cfg = cfg

	s.image = nil
	if runtime.Assets != nil {
		s.image = runtime.Assets.Image(cfg.Image.Name)
	}

	bounds := core.NewBox(0, 0, float64(runtime.ScreenW), float64(runtime.ScreenH))
	if s.world == nil {
		s.world = sim.NewWorld(bounds)
	} else {
		s.world.Bounds = bounds
		s.world.Reset()
	}

	s.rng = rand.New(rand.NewSource(runtime.Seed))
	s.ticks = 0
	s.moved = 0

	// The sprite is entity zero and immortal; order-preserving pruning
	// keeps it there for the lifetime of the run.
	s.world.Spawn(sim.Entity{
		Kind: sim.KindSprite,
		Pos:  core.Vec2{X: bounds.W / 2, Y: bounds.H / 2},
	})
}

// Step advances the simulation by one tick.
func (s *Sketch) Step(in core.InputFrame) core.StepResult {
	s.ticks++

	spr := &s.world.Entities()[0]
	s.steer(spr, in)

	moving := spr.Vel.LenSq() > 0.01
	if moving {
		s.moved++
		if s.cfg.Trail.Enabled {
			s.dropTrail(spr.Pos)
		}
	}

	s.world.Update()
	s.clampSprite(&s.world.Entities()[0])
	s.world.Prune()

	return core.StepResult{Stats: s.Stats()}
}

// steer applies directional acceleration, damping when idle, and the
// speed cap.
func (s *Sketch) steer(spr *sim.Entity, in core.InputFrame) {
	accel := s.cfg.Movement.Accel
	steered := false

	if in.Has(core.ActionLeft) {
		spr.Vel.X -= accel
		steered = true
	}
	if in.Has(core.ActionRight) {
		spr.Vel.X += accel
		steered = true
	}
	if in.Has(core.ActionUp) {
		spr.Vel.Y -= accel
		steered = true
	}
	if in.Has(core.ActionDown) {
		spr.Vel.Y += accel
		steered = true
	}

	if !steered {
		spr.Vel = spr.Vel.Scale(s.cfg.Movement.Damping)
	}

	if speed := math.Sqrt(spr.Vel.LenSq()); speed > s.cfg.Movement.MaxSpeed {
		spr.Vel = spr.Vel.Scale(s.cfg.Movement.MaxSpeed / speed)
	}
}

// clampSprite keeps the sprite inside the bounds, killing its velocity on
// the wall it hit.
func (s *Sketch) clampSprite(spr *sim.Entity) {
	w, h := 1.0, 1.0
	if s.image != nil {
		iw, ih := s.image.Size()
		w, h = float64(iw), float64(ih)
	}

	maxX := s.world.Bounds.Right() - w
	maxY := s.world.Bounds.Bottom() - h

	hit := false
	if spr.Pos.X < 0 {
		spr.Pos.X, spr.Vel.X = 0, 0
		hit = true
	} else if spr.Pos.X > maxX {
		spr.Pos.X, spr.Vel.X = maxX, 0
		hit = true
	}
	if spr.Pos.Y < 0 {
		spr.Pos.Y, spr.Vel.Y = 0, 0
		hit = true
	} else if spr.Pos.Y > maxY {
		spr.Pos.Y, spr.Vel.Y = maxY, 0
		hit = true
	}

	if hit && s.runtime.Assets != nil {
		if snd := s.runtime.Assets.Sound("thud"); snd != nil {
			snd.Play()
		}
	}
}

// dropTrail leaves one fading particle behind the sprite.
func (s *Sketch) dropTrail(at core.Vec2) {
	life := float64(s.cfg.Trail.LifeTicks)
	s.world.Spawn(sim.Entity{
		Kind:    sim.KindParticle,
		Pos:     at,
		Life:    life,
		MaxLife: life,
		Color:   core.ColorGray,
	})
}

// Render draws the current sketch state to the screen.
func (s *Sketch) Render(dst *core.Screen) {
	dst.Clear()

	entities := s.world.Entities()
	for i := 1; i < len(entities); i++ {
		e := &entities[i]
		dst.SetColored(int(e.Pos.X), int(e.Pos.Y), TrailChar, e.Color)
	}

	spr := &entities[0]
	if s.image != nil {
		frame := 0
		if s.cfg.Image.AnimateEvery > 0 {
			frame = s.moved / s.cfg.Image.AnimateEvery
		}
		for dy, row := range s.image.Frame(frame) {
			for dx, r := range []rune(row) {
				if r == ' ' {
					continue
				}
				dst.SetColored(int(spr.Pos.X)+dx, int(spr.Pos.Y)+dy, r, core.ColorBrightWhite)
			}
		}
	} else {
		dst.SetColored(int(spr.Pos.X), int(spr.Pos.Y), '@', core.ColorBrightWhite)
	}

	hud := fmt.Sprintf(" speed: %.2f ", math.Sqrt(spr.Vel.LenSq()))
	dst.DrawText(2, 0, hud)
}

// Stats returns the running counters for this sketch.
func (s *Sketch) Stats() core.SketchStats {
	return core.SketchStats{
		Ticks:   s.ticks,
		Spawned: s.world.Spawned(),
		Alive:   s.world.Len(),
		Peak:    s.world.Peak(),
	}
}

// Register the sketch with the registry
func init() {
	registry.Register("sprite", func() registry.Sketch {
		return New()
	})
}
