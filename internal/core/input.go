package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - confirm selection
	ActionBack           // B, Escape - go back
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
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

// Click is a pointer press in screen cell coordinates. The game converts
// cells to field coordinates when it applies the click to the waypoint.
type Click struct {
	X, Y int
}

// InputFrame represents the input state for a single simulation tick:
// all actions that were triggered this frame plus any pointer clicks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Clicks are pointer presses received since the previous tick, oldest
	// first. Only the waypoint cares about these.
	Clicks []Click
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

// AddClick records a pointer press for this frame.
func (f *InputFrame) AddClick(x, y int) {
	f.Clicks = append(f.Clicks, Click{X: x, Y: y})
}

// Clear resets all actions and clicks for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Clicks = append(clone.Clicks, f.Clicks...)
	return clone
}
