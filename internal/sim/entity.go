// Package sim implements the shared entity simulation used by all sketches:
// an ordered entity store, a per-tick kinematic update, and a lifecycle
// filter that prunes dead entities. Sketches own the collision pass between
// update and prune, since collision targets are sketch-specific.
package sim

import (
	"github.com/vovakirdan/tui-sketch/internal/core"
)

// Kind tags an entity with its variant. The set is closed; dispatch sites
// switch over it exhaustively instead of comparing strings.
type Kind int

const (
	KindParticle Kind = iota // short-lived, fades out, culled when expired
	KindBall                 // persistent, reflects off world bounds
	KindSprite               // player-steered, no gravity
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindParticle:
		return "particle"
	case KindBall:
		return "ball"
	case KindSprite:
		return "sprite"
	default:
		return "unknown"
	}
}

// Entity is one simulated object. A single polymorphic struct with a kind
// tag and kind-specific fields replaces per-kind class hierarchies; unused
// fields stay zero.
type Entity struct {
	Kind Kind

	Pos core.Vec2 // Position in sketch space
	Vel core.Vec2 // Velocity per tick

	Radius float64 // Collision radius

	// Life is the remaining lifetime in ticks; MaxLife the initial value.
	// A zero MaxLife marks an immortal entity. The ratio drives fading.
	Life    float64
	MaxLife float64

	Gravity     float64 // Per-tick vertical velocity increment
	Restitution float64 // Velocity retained on boundary reflection; 0 disables

	Glyph rune
	Color core.Color
}

// Dead reports whether the entity's death predicate holds. Mortal entities
// die when their remaining life reaches zero.
func (e *Entity) Dead() bool {
	return e.MaxLife > 0 && e.Life <= 0
}

// FadeLevel returns the remaining life as a fraction in [0, 1].
// Immortal entities always report 1.
func (e *Entity) FadeLevel() float64 {
	if e.MaxLife <= 0 {
		return 1
	}
	return core.ClampF(e.Life/e.MaxLife, 0, 1)
}
