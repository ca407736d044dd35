package core

// Action represents a semantic game action, abstracted from physical input.
// This allows games to work with high-level intents rather than raw
// joystick/keyboard events.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Move/lane-switch left
	ActionRight           // Move/lane-switch right
	ActionPrimary         // Primary button press edge (launch, flap, jump)
	ActionRelease         // Primary button release edge (clears flap cooldown)
	ActionPause           // Pause/unpause
	ActionRestart         // Restart after game over
	ActionQuit            // Exit the game loop
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPrimary:
		return "Primary"
	case ActionRelease:
		return "Release"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// DefaultDeadzone is the axis magnitude below which input sources should
// report zero. Matches the joystick deadzone of the original panel games.
const DefaultDeadzone = 0.1

// InputFrame represents all input gathered for a single simulation tick:
// the set of triggered actions plus an analog axis value. Distinct actions
// raised by several sources in the same tick are unioned; the axis is
// last-write-wins.
type InputFrame struct {
	actions map[Action]bool
	axis    float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.actions == nil {
		f.actions = make(map[Action]bool)
	}
	f.actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.actions == nil {
		return false
	}
	return f.actions[a]
}

// SetAxis records the horizontal axis value, clamped to [-1, 1].
// Callers apply their deadzone before setting.
func (f *InputFrame) SetAxis(v float64) {
	f.axis = ClampF(v, -1, 1)
}

// Axis returns the horizontal axis value for this frame.
func (f InputFrame) Axis() float64 {
	return f.axis
}

// Clear resets all actions and the axis for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.actions {
		delete(f.actions, k)
	}
	f.axis = 0
}

// Merge unions another frame's actions into this one. The other frame's
// axis wins when it is non-zero.
func (f *InputFrame) Merge(other InputFrame) {
	for a, on := range other.actions {
		if on {
			f.Set(a)
		}
	}
	if other.axis != 0 {
		f.axis = other.axis
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Merge(f)
	return clone
}
