// Package config provides YAML-based sketch configuration loading for the
// sketchbook platform.
package config

// ParticlesConfig contains all configuration for the particle burst sketch.
type ParticlesConfig struct {
	Physics  ParticlesPhysics  `yaml:"physics"`
	Burst    ParticlesBurst    `yaml:"burst"`
	Lifetime ParticlesLifetime `yaml:"lifetime"`
	Limits   ParticlesLimits   `yaml:"limits"`
}

// ParticlesPhysics defines per-tick physics parameters for particles.
type ParticlesPhysics struct {
	Gravity  float64 `yaml:"gravity"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// ParticlesBurst defines the shape of one spawn burst.
type ParticlesBurst struct {
	Count  int     `yaml:"count"`
	Spread float64 `yaml:"spread"` // launch cone in radians, centered upward
}

// ParticlesLifetime defines how long particles live, in ticks.
type ParticlesLifetime struct {
	MinTicks int `yaml:"min_ticks"`
	MaxTicks int `yaml:"max_ticks"`
}

// ParticlesLimits caps the particle population.
type ParticlesLimits struct {
	MaxEntities int `yaml:"max_entities"`
}

// BouncerConfig contains all configuration for the bouncing balls sketch.
type BouncerConfig struct {
	Physics   BouncerPhysics   `yaml:"physics"`
	Balls     BouncerBalls     `yaml:"balls"`
	Obstacles BouncerObstacles `yaml:"obstacles"`
}

// BouncerPhysics defines physics parameters for bouncing balls.
type BouncerPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	Restitution float64 `yaml:"restitution"` // velocity kept per bounce, 0..1
	LaunchSpeed float64 `yaml:"launch_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
}

// BouncerBalls defines ball parameters.
type BouncerBalls struct {
	Radius float64 `yaml:"radius"`
	Max    int     `yaml:"max"`
}

// BouncerObstacles defines the static obstacle field.
type BouncerObstacles struct {
	Count     int `yaml:"count"`
	MinWidth  int `yaml:"min_width"`
	MaxWidth  int `yaml:"max_width"`
	MinHeight int `yaml:"min_height"`
	MaxHeight int `yaml:"max_height"`
}

// SpriteConfig contains all configuration for the steered sprite sketch.
type SpriteConfig struct {
	Movement SpriteMovement `yaml:"movement"`
	Image    SpriteImage    `yaml:"image"`
	Trail    SpriteTrail    `yaml:"trail"`
}

// SpriteMovement defines steering parameters.
type SpriteMovement struct {
	Accel    float64 `yaml:"accel"`
	MaxSpeed float64 `yaml:"max_speed"`
	Damping  float64 `yaml:"damping"` // velocity kept per tick without input, 0..1
}

// SpriteImage names the preloaded text-art image and its animation rate.
type SpriteImage struct {
	Name         string `yaml:"name"`
	AnimateEvery int    `yaml:"animate_every"` // ticks per animation frame
}

// SpriteTrail defines the fading trail left behind the sprite.
type SpriteTrail struct {
	Enabled   bool `yaml:"enabled"`
	LifeTicks int  `yaml:"life_ticks"`
}
