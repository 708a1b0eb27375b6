package core

// Action represents a semantic sketch action, abstracted from physical key
// presses. Sketches work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move up
	ActionDown           // S, Down arrow - move down
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionSpawn          // Space - emit entities (particle burst, serve)
	ActionConfirm        // Enter - confirm selection / start sketch
	ActionBack           // B, Escape - back to menu
	ActionRestart        // R - restart current sketch
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSpawn:
		return "Spawn"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Pointer is a pointer-press event in cell coordinates, delivered to
// sketches that spawn entities at the press location.
type Pointer struct {
	X, Y int
}

// InputFrame represents the input state for a single simulation tick.
// Actions form a set, so duplicate simultaneous presses of the same key
// coalesce into one action per tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer holds the pointer press for this frame, if any.
	Pointer *Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Press records a pointer press at the given cell coordinates.
func (f *InputFrame) Press(x, y int) {
	f.Pointer = &Pointer{X: x, Y: y}
}

// Pressed returns the pointer press for this frame, or nil.
func (f InputFrame) Pressed() *Pointer {
	return f.Pointer
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = nil
}
