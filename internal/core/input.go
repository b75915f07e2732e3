package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionStart               // Enter - leave the title screen and start a round
	ActionInstructions        // I - show the instructions screen
	ActionRestart             // R - rebuild the scene and start over
	ActionPower               // Space - trigger the flying projectile's power
	ActionBack                // B - return from instructions to the title screen
	ActionQuit                // Esc, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionInstructions:
		return "Instructions"
	case ActionRestart:
		return "Restart"
	case ActionPower:
		return "Power"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes pointer events.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerUp
	PointerMove
)

// String returns a human-readable name for the pointer kind.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "Down"
	case PointerUp:
		return "Up"
	case PointerMove:
		return "Move"
	default:
		return "Unknown"
	}
}

// PointerEvent is a mouse event already translated into world coordinates.
type PointerEvent struct {
	Kind PointerKind
	Pos  Vec2
}

// InputFrame represents the input collected during one simulation tick.
// Actions are unordered; pointer events keep their arrival order.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer holds mouse events in the order they arrived.
	Pointer []PointerEvent
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

// Push appends a pointer event.
func (f *InputFrame) Push(kind PointerKind, pos Vec2) {
	f.Pointer = append(f.Pointer, PointerEvent{Kind: kind, Pos: pos})
}

// Clear resets all actions and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Pointer) > 0 {
		clone.Pointer = append([]PointerEvent(nil), f.Pointer...)
	}
	return clone
}
