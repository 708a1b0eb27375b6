// Package registry provides a global registry for sketch factories.
// Sketches register themselves in init() functions, allowing the platform
// to discover and instantiate sketches without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-sketch/internal/core"
)

// Sketch is the core interface every sketch must implement.
// Sketches contain pure simulation logic with no external dependencies
// (especially no Bubble Tea). The platform handles input mapping, timing,
// and terminal rendering.
type Sketch interface {
	// ID returns a unique identifier for this sketch (e.g., "particles").
	// Used for CLI commands and the session journal.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the sketch state.
	// Called once at start and again when restarting.
	// The RuntimeConfig provides screen dimensions, RNG seed and assets.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Spawn, Left, etc.).
	Step(in core.InputFrame) core.StepResult

	// Render draws the current sketch state into the provided screen buffer.
	// The sketch clears the buffer itself before drawing.
	Render(dst *core.Screen)

	// Stats returns the running counters for this sketch.
	Stats() core.SketchStats
}

// SketchInfo contains metadata about a registered sketch.
type SketchInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a sketch.
type Factory func() Sketch

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a sketch factory to the registry.
// Typically called from a sketch's init() function.
// Panics if a sketch with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: sketch %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	s := f()
	titles[id] = s.Title()
}

// List returns information about all registered sketches, sorted by ID.
func List() []SketchInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SketchInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SketchInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new sketch by its ID.
// Returns an error if the sketch ID is not registered.
func Create(id string) (Sketch, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown sketch %q", id)
	}

	return f(), nil
}

// Exists checks if a sketch with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
