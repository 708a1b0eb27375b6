// Package particles implements a particle burst sketch: each spawn action
// launches a fountain of short-lived glyphs that arc under gravity and fade
// out as their life runs down.
package particles

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-sketch/internal/config"
	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/registry"
	"github.com/vovakirdan/tui-sketch/internal/sim"
)

// Fade ramp from fresh to nearly expired.
var fadeGlyphs = []rune{'@', '*', '+', '.'}

var fadeColors = []core.Color{
	core.ColorYellow,
	core.ColorOrange,
	core.ColorRed,
	core.ColorGray,
}

// Sketch implements the particle burst simulation.
type Sketch struct {
	world   *sim.World
	rng     *rand.Rand
	runtime core.RuntimeConfig
	cfg     config.ParticlesConfig
	ticks   int
	emitter core.Vec2 // where the next burst originates
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new particle sketch instance.
func New() *Sketch {
	return &Sketch{}
}

// ID returns the unique identifier for this sketch.
func (s *Sketch) ID() string {
	return "particles"
}

// Title returns the display name for this sketch.
func (s *Sketch) Title() string {
	return "Particle Burst"
}

// Reset initializes or restarts the sketch.
func (s *Sketch) Reset(runtime core.RuntimeConfig) {
	s.runtime = runtime

	cfg, err := config.LoadParticles(configPath)
	if err != nil {
		cfg = config.DefaultParticlesConfig()
	}
	s.cfg = cfg

	bounds := core.NewBox(0, 0, float64(runtime.ScreenW), float64(runtime.ScreenH))
	if s.world == nil {
		s.world = sim.NewWorld(bounds)
	} else {
		s.world.Bounds = bounds
		s.world.Reset()
	}

	s.rng = rand.New(rand.NewSource(runtime.Seed))
	s.ticks = 0
	s.emitter = core.Vec2{
		X: float64(runtime.ScreenW) / 2,
		Y: float64(runtime.ScreenH) - 2,
	}
}

// Step advances the simulation by one tick.
func (s *Sketch) Step(in core.InputFrame) core.StepResult {
	s.ticks++

	if p := in.Pressed(); p != nil {
		s.emitter = core.Vec2{X: float64(p.X), Y: float64(p.Y)}
		s.burst()
	} else if in.Has(core.ActionSpawn) {
		s.burst()
	}

	// Steering moves the emitter so bursts can be aimed without a mouse.
	if in.Has(core.ActionLeft) {
		s.emitter.X = core.ClampF(s.emitter.X-2, 0, s.world.Bounds.Right())
	}
	if in.Has(core.ActionRight) {
		s.emitter.X = core.ClampF(s.emitter.X+2, 0, s.world.Bounds.Right())
	}

	s.world.Step()

	return core.StepResult{Stats: s.Stats()}
}

// burst spawns one configured batch of particles at the emitter. When the
// population cap would be exceeded, the oldest particles are dropped first.
func (s *Sketch) burst() {
	over := s.world.Len() + s.cfg.Burst.Count - s.cfg.Limits.MaxEntities
	if over > 0 {
		s.world.DropOldest(over)
	}

	for i := 0; i < s.cfg.Burst.Count; i++ {
		// Launch cone centered straight up.
		angle := -math.Pi/2 + (s.rng.Float64()-0.5)*s.cfg.Burst.Spread
		speed := s.cfg.Physics.MinSpeed + s.rng.Float64()*(s.cfg.Physics.MaxSpeed-s.cfg.Physics.MinSpeed)
		life := float64(s.cfg.Lifetime.MinTicks + s.rng.Intn(s.cfg.Lifetime.MaxTicks-s.cfg.Lifetime.MinTicks+1))

		s.world.Spawn(sim.Entity{
			Kind:    sim.KindParticle,
			Pos:     s.emitter,
			Vel:     core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Life:    life,
			MaxLife: life,
			Gravity: s.cfg.Physics.Gravity,
		})
	}

	if s.runtime.Assets != nil {
		if snd := s.runtime.Assets.Sound("pop"); snd != nil {
			snd.Play()
		}
	}
}

// Render draws the current sketch state to the screen.
func (s *Sketch) Render(dst *core.Screen) {
	dst.Clear()

	for i := range s.world.Entities() {
		e := &s.world.Entities()[i]
		stage := fadeStage(e.FadeLevel())
		dst.SetColored(int(e.Pos.X), int(e.Pos.Y), fadeGlyphs[stage], fadeColors[stage])
	}

	// Emitter marker
	dst.SetColored(int(s.emitter.X), int(s.emitter.Y), '^', core.ColorCyan)

	hud := fmt.Sprintf(" alive: %d  peak: %d ", s.world.Len(), s.world.Peak())
	dst.DrawText(2, 0, hud)
}

// fadeStage maps remaining life to an index into the fade ramp.
func fadeStage(level float64) int {
	stage := int((1 - level) * float64(len(fadeGlyphs)))
	if stage >= len(fadeGlyphs) {
		stage = len(fadeGlyphs) - 1
	}
	return stage
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
	registry.Register("particles", func() registry.Sketch {
		return New()
	})
}
