// Package bouncer implements a bouncing balls sketch: launched balls fall
// under gravity, reflect off the screen edges and a field of static
// obstacles, and lose speed with each bounce.
package bouncer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-sketch/internal/config"
	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/registry"
	"github.com/vovakirdan/tui-sketch/internal/sim"
)

const (
	BallChar     = 'o'
	ObstacleChar = '▓'
)

var ballColors = []core.Color{
	core.ColorCyan,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorBrightRed,
}

// Sketch implements the bouncing balls simulation.
type Sketch struct {
	world     *sim.World
	obstacles []core.Box
	rng       *rand.Rand
	runtime   core.RuntimeConfig
	cfg       config.BouncerConfig
	ticks     int
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new bouncer sketch instance.
func New() *Sketch {
	return &Sketch{}
}

// ID returns the unique identifier for this sketch.
func (s *Sketch) ID() string {
	return "bouncer"
}

// Title returns the display name for this sketch.
func (s *Sketch) Title() string {
	return "Bouncing Balls"
}

// Reset initializes or restarts the sketch.
func (s *Sketch) Reset(runtime core.RuntimeConfig) {
	s.runtime = runtime

	cfg, err := config.LoadBouncer(configPath)
	if err != nil {
		cfg = config.DefaultBouncerConfig()
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
	s.placeObstacles()
}

// placeObstacles scatters the static obstacle field across the middle band
// of the screen, away from the edges where balls spawn and settle.
func (s *Sketch) placeObstacles() {
	s.obstacles = s.obstacles[:0]

	w, h := s.runtime.ScreenW, s.runtime.ScreenH
	for i := 0; i < s.cfg.Obstacles.Count; i++ {
		ow := s.cfg.Obstacles.MinWidth + s.rng.Intn(s.cfg.Obstacles.MaxWidth-s.cfg.Obstacles.MinWidth+1)
		oh := s.cfg.Obstacles.MinHeight + s.rng.Intn(s.cfg.Obstacles.MaxHeight-s.cfg.Obstacles.MinHeight+1)
		ox := s.rng.Intn(core.Max(w-ow, 1))
		oy := h/4 + s.rng.Intn(core.Max(h/2, 1))

		s.obstacles = append(s.obstacles, core.NewBox(float64(ox), float64(oy), float64(ow), float64(oh)))
	}
}

// Step advances the simulation by one tick.
func (s *Sketch) Step(in core.InputFrame) core.StepResult {
	s.ticks++

	if p := in.Pressed(); p != nil {
		s.launch(core.Vec2{X: float64(p.X), Y: float64(p.Y)})
	} else if in.Has(core.ActionSpawn) {
		s.launch(core.Vec2{X: s.world.Bounds.W / 2, Y: 2})
	}

	// Update, then the sketch-owned collision pass, then prune.
	s.world.Update()
	s.collideObstacles()
	s.world.Prune()

	return core.StepResult{Stats: s.Stats()}
}

// launch spawns one ball at the given position with a random lateral kick.
// At the population cap the launch is refused rather than evicting a ball,
// since every ball is long-lived.
func (s *Sketch) launch(at core.Vec2) {
	if s.world.Len() >= s.cfg.Balls.Max {
		return
	}

	angle := -math.Pi/2 + (s.rng.Float64()-0.5)*math.Pi/2
	speed := s.cfg.Physics.LaunchSpeed * (0.6 + 0.4*s.rng.Float64())

	s.world.Spawn(sim.Entity{
		Kind:        sim.KindBall,
		Pos:         at,
		Vel:         core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
		Radius:      s.cfg.Balls.Radius,
		Gravity:     s.cfg.Physics.Gravity,
		Restitution: s.cfg.Physics.Restitution,
		Color:       ballColors[s.world.Spawned()%len(ballColors)],
	})

	if s.runtime.Assets != nil {
		if snd := s.runtime.Assets.Sound("pop"); snd != nil {
			snd.Play()
		}
	}
}

// collideObstacles reflects every ball that overlaps a static obstacle.
// The test is circle against box: the ball collides when the distance from
// its center to the nearest point of the box is within its radius.
func (s *Sketch) collideObstacles() {
	entities := s.world.Entities()
	for i := range entities {
		e := &entities[i]
		if e.Kind != sim.KindBall {
			continue
		}

		for _, box := range s.obstacles {
			if !core.CircleBoxCollides(e.Pos, e.Radius, box) {
				continue
			}
			s.bounceOff(e, box)
		}
	}
}

// bounceOff reflects a ball off an obstacle on the axis of least
// penetration and pushes it back outside.
func (s *Sketch) bounceOff(e *sim.Entity, box core.Box) {
	cx := box.X + box.W/2
	cy := box.Y + box.H/2

	// Overlap depth on each axis decides which face was hit.
	dx := (box.W/2 + e.Radius) - math.Abs(e.Pos.X-cx)
	dy := (box.H/2 + e.Radius) - math.Abs(e.Pos.Y-cy)

	if dx < dy {
		e.Vel.X = -e.Vel.X * e.Restitution
		if e.Pos.X < cx {
			e.Pos.X -= dx
		} else {
			e.Pos.X += dx
		}
	} else {
		e.Vel.Y = -e.Vel.Y * e.Restitution
		if e.Pos.Y < cy {
			e.Pos.Y -= dy
		} else {
			e.Pos.Y += dy
		}
	}

	if s.runtime.Assets != nil {
		if snd := s.runtime.Assets.Sound("bounce"); snd != nil {
			snd.Play()
		}
	}
}

// Render draws the current sketch state to the screen.
func (s *Sketch) Render(dst *core.Screen) {
	dst.Clear()

	for _, box := range s.obstacles {
		for dy := 0; dy < int(box.H); dy++ {
			for dx := 0; dx < int(box.W); dx++ {
				dst.SetColored(int(box.X)+dx, int(box.Y)+dy, ObstacleChar, core.ColorGray)
			}
		}
	}

	for i := range s.world.Entities() {
		e := &s.world.Entities()[i]
		dst.SetColored(int(e.Pos.X), int(e.Pos.Y), BallChar, e.Color)
	}

	hud := fmt.Sprintf(" balls: %d/%d ", s.world.Len(), s.cfg.Balls.Max)
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
	registry.Register("bouncer", func() registry.Sketch {
		return New()
	})
}
