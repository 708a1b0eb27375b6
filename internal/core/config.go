package core

// Sound is a preloaded audio handle. Play is fire-and-forget; the platform's
// audio backend mixes it without a completion callback.
type Sound interface {
	Play()
}

// Image is a preloaded text-art image, possibly with multiple frames.
type Image interface {
	// Frames returns the number of animation frames.
	Frames() int
	// Frame returns the rows of the i-th frame.
	Frame(i int) []string
	// Size returns the width and height in cells of a frame.
	Size() (w, h int)
}

// Assets is the preloaded asset collaborator handed to sketches.
// The preload barrier guarantees every named asset resolved before the
// first tick, so lookups never return nil during simulation.
type Assets interface {
	Image(name string) Image
	Sound(name string) Sound
}

// RuntimeConfig contains configuration passed to sketches at initialization.
// Sketches use it to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Seed     int64  // RNG seed for deterministic runs
	Assets   Assets // Preloaded assets; non-nil once the preload barrier passed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// Assets must still be attached by the driver after preload.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// SketchStats reports a sketch's bookkeeping to the platform after each
// tick. The session journal persists the final values.
type SketchStats struct {
	Ticks   int  // Ticks simulated since reset
	Spawned int  // Total entities spawned
	Alive   int  // Entities currently alive
	Peak    int  // Peak concurrent entity count
	Done    bool // Whether the sketch reached a terminal condition
}

// StepResult is returned by Sketch.Step after each simulation tick.
type StepResult struct {
	Stats SketchStats
}
