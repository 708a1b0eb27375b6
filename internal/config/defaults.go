package config

import (
	_ "embed"
)

//go:embed defaults/particles.yaml
var defaultParticlesYAML []byte

//go:embed defaults/bouncer.yaml
var defaultBouncerYAML []byte

//go:embed defaults/sprite.yaml
var defaultSpriteYAML []byte

// DefaultParticlesConfig returns the default particle sketch configuration.
func DefaultParticlesConfig() ParticlesConfig {
	return ParticlesConfig{
		Physics: ParticlesPhysics{
			Gravity:  0.04,
			MinSpeed: 0.4,
			MaxSpeed: 1.2,
		},
		Burst: ParticlesBurst{
			Count:  24,
			Spread: 1.2,
		},
		Lifetime: ParticlesLifetime{
			MinTicks: 30,
			MaxTicks: 90,
		},
		Limits: ParticlesLimits{
			MaxEntities: 512,
		},
	}
}

// DefaultBouncerConfig returns the default bouncing balls configuration.
func DefaultBouncerConfig() BouncerConfig {
	return BouncerConfig{
		Physics: BouncerPhysics{
			Gravity:     0.06,
			Restitution: 0.82,
			LaunchSpeed: 1.0,
			MaxSpeed:    2.5,
		},
		Balls: BouncerBalls{
			Radius: 0.5,
			Max:    32,
		},
		Obstacles: BouncerObstacles{
			Count:     4,
			MinWidth:  6,
			MaxWidth:  14,
			MinHeight: 1,
			MaxHeight: 2,
		},
	}
}

// DefaultSpriteConfig returns the default steered sprite configuration.
func DefaultSpriteConfig() SpriteConfig {
	return SpriteConfig{
		Movement: SpriteMovement{
			Accel:    0.15,
			MaxSpeed: 1.4,
			Damping:  0.9,
		},
		Image: SpriteImage{
			Name:         "runner",
			AnimateEvery: 8,
		},
		Trail: SpriteTrail{
			Enabled:   true,
			LifeTicks: 12,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a sketch.
func GetDefaultYAML(sketchID string) []byte {
	switch sketchID {
	case "particles":
		return defaultParticlesYAML
	case "bouncer":
		return defaultBouncerYAML
	case "sprite":
		return defaultSpriteYAML
	default:
		return nil
	}
}
