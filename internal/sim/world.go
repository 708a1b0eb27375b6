package sim

import (
	"github.com/vovakirdan/tui-sketch/internal/core"
)

// cullMargin is how far outside the world bounds an entity may drift before
// the lifecycle filter removes it regardless of remaining life.
const cullMargin = 32.0

// World is the explicit simulation context owned by a sketch: an ordered
// entity store plus bounds. It exclusively owns its entities for their
// lifetime; nothing outside the world holds references across ticks.
type World struct {
	Bounds core.Box

	entities []Entity
	spawned  int
	peak     int
}

// NewWorld creates an empty world with the given bounds.
func NewWorld(bounds core.Box) *World {
	return &World{
		Bounds:   bounds,
		entities: make([]Entity, 0, 64),
	}
}

// Spawn appends an entity to the store. Insertion order is preserved
// through updates and pruning.
func (w *World) Spawn(e Entity) {
	w.entities = append(w.entities, e)
	w.spawned++
	if len(w.entities) > w.peak {
		w.peak = len(w.entities)
	}
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.entities)
}

// Entities returns the live entity slice for iteration and in-place
// mutation. The slice is invalidated by Spawn and Prune.
func (w *World) Entities() []Entity {
	return w.entities
}

// Spawned returns the total number of entities spawned since creation.
func (w *World) Spawned() int {
	return w.spawned
}

// Peak returns the highest concurrent entity count observed.
func (w *World) Peak() int {
	return w.peak
}

// DropOldest removes the n oldest entities, preserving the order of the
// rest. Sketches use it to enforce population caps: the oldest entries go
// first so fresh spawns are never the ones sacrificed.
func (w *World) DropOldest(n int) {
	if n <= 0 {
		return
	}
	if n >= len(w.entities) {
		w.entities = w.entities[:0]
		return
	}
	w.entities = append(w.entities[:0], w.entities[n:]...)
}

// Reset drops all entities and clears the bookkeeping counters.
func (w *World) Reset() {
	w.entities = w.entities[:0]
	w.spawned = 0
	w.peak = 0
}

// Update advances every entity by one tick: velocity is applied to
// position, then the per-kind rule runs (gravity increment, boundary
// reflection, life decrement). Each entity is a pure function of its own
// prior state; there is no cross-entity interaction here.
func (w *World) Update() {
	for i := range w.entities {
		e := &w.entities[i]

		e.Pos = e.Pos.Add(e.Vel)
		e.Vel.Y += e.Gravity

		if e.Restitution > 0 {
			w.reflect(e)
		}
		if e.MaxLife > 0 {
			e.Life--
		}
	}
}

// reflect bounces an entity off the world bounds, retaining Restitution of
// its speed on the reflected axis and clamping it back inside.
func (w *World) reflect(e *Entity) {
	left := w.Bounds.X + e.Radius
	right := w.Bounds.Right() - e.Radius
	top := w.Bounds.Y + e.Radius
	bottom := w.Bounds.Bottom() - e.Radius

	if e.Pos.X < left {
		e.Pos.X = left
		e.Vel.X = -e.Vel.X * e.Restitution
	} else if e.Pos.X > right {
		e.Pos.X = right
		e.Vel.X = -e.Vel.X * e.Restitution
	}

	if e.Pos.Y < top {
		e.Pos.Y = top
		e.Vel.Y = -e.Vel.Y * e.Restitution
	} else if e.Pos.Y > bottom {
		e.Pos.Y = bottom
		e.Vel.Y = -e.Vel.Y * e.Restitution
	}
}

// Prune removes every entity whose death predicate holds, plus strays far
// outside the bounds, preserving relative order. It filters in place with a
// write index over a single forward pass, so no survivor is skipped the way
// forward deletion by index would. No dead entity survives the tick it
// died in.
func (w *World) Prune() int {
	cull := core.Box{
		X: w.Bounds.X - cullMargin,
		Y: w.Bounds.Y - cullMargin,
		W: w.Bounds.W + 2*cullMargin,
		H: w.Bounds.H + 2*cullMargin,
	}

	kept := w.entities[:0]
	for i := range w.entities {
		e := &w.entities[i]
		if e.Dead() || !cull.Contains(e.Pos) {
			continue
		}
		kept = append(kept, *e)
	}

	removed := len(w.entities) - len(kept)
	w.entities = kept
	return removed
}

// Step runs one full tick: Update then Prune. Sketches that need a
// collision pass against their static geometry call Update, collide, then
// Prune themselves.
func (w *World) Step() int {
	w.Update()
	return w.Prune()
}
