package core

// Action represents a semantic game action, abstracted from physical key presses.
// Keyboard keys and mouse clicks are both mapped to actions by the platform.
type Action int

const (
	ActionNone    Action = iota
	ActionLetter         // A-Z - letter entry, carries Event.Letter
	ActionLeft           // Left arrow - previous cell
	ActionRight          // Right arrow - next cell
	ActionUp             // Up arrow - previous row (match grid)
	ActionDown           // Down arrow - next row (match grid)
	ActionDelete         // Backspace, Delete - clear the focused cell
	ActionConfirm        // Enter, Space - select / next verse when solved
	ActionHint           // Tab, ? - reveal a letter or word
	ActionReset          // Ctrl+R - restart the current verse
	ActionBack           // Escape - back to menu
	ActionQuit           // Ctrl+C - exit game/session
	ActionClick          // Mouse left click, carries Event.X/Event.Y
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLetter:
		return "Letter"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionDelete:
		return "Delete"
	case ActionConfirm:
		return "Confirm"
	case ActionHint:
		return "Hint"
	case ActionReset:
		return "Reset"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionClick:
		return "Click"
	default:
		return "Unknown"
	}
}

// Event is a single input event. Letter is set for ActionLetter,
// X and Y (screen cells) for ActionClick.
type Event struct {
	Action Action
	Letter rune
	X, Y   int
}

// InputFrame holds the input events received during one simulation tick.
// Events keep their arrival order so that two quick key presses in the same
// tick are applied one after the other.
type InputFrame struct {
	events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an event to the frame.
func (f *InputFrame) Push(e Event) {
	if e.Action == ActionNone {
		return
	}
	f.events = append(f.events, e)
}

// Set appends a plain action to the frame.
func (f *InputFrame) Set(a Action) {
	f.Push(Event{Action: a})
}

// Type appends a letter entry. Callers pass uppercase A-Z.
func (f *InputFrame) Type(letter rune) {
	f.Push(Event{Action: ActionLetter, Letter: letter})
}

// Click appends a click at screen cell (x, y).
func (f *InputFrame) Click(x, y int) {
	f.Push(Event{Action: ActionClick, X: x, Y: y})
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.events {
		if e.Action == a {
			return true
		}
	}
	return false
}

// Events returns the frame's events in arrival order.
func (f InputFrame) Events() []Event {
	return f.events
}

// Len returns the number of events in the frame.
func (f InputFrame) Len() int {
	return len(f.events)
}

// Clear resets all events for the next frame.
func (f *InputFrame) Clear() {
	f.events = f.events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{events: make([]Event, len(f.events))}
	copy(clone.events, f.events)
	return clone
}
