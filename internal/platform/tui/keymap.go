package tui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcislaughter/bible-cryptogram/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game event.
// Letters are always entry, so only Ctrl+C quits from inside a game.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (ev core.Event, isQuit bool) {
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		r := msg.Runes[0]
		if r <= unicode.MaxASCII && unicode.IsLetter(r) {
			return core.Event{Action: core.ActionLetter, Letter: unicode.ToUpper(r)}, false
		}
	}

	switch msg.String() {
	case "ctrl+c":
		return core.Event{Action: core.ActionQuit}, true
	case "left":
		return core.Event{Action: core.ActionLeft}, false
	case "right":
		return core.Event{Action: core.ActionRight}, false
	case "up":
		return core.Event{Action: core.ActionUp}, false
	case "down":
		return core.Event{Action: core.ActionDown}, false
	case "backspace", "delete":
		return core.Event{Action: core.ActionDelete}, false
	case "enter", " ":
		return core.Event{Action: core.ActionConfirm}, false
	case "tab", "?":
		return core.Event{Action: core.ActionHint}, false
	case "ctrl+r":
		return core.Event{Action: core.ActionReset}, false
	case "esc":
		return core.Event{Action: core.ActionBack}, false
	}

	return core.Event{}, false
}

// MapMouse translates a left button press to a click event.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.Event, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.Event{}, false
	}
	return core.Event{Action: core.ActionClick, X: msg.X, Y: msg.Y}, true
}

// MapKeyToFrame appends the event for a key message to an input frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	ev, isQuit := km.MapKey(msg)
	if !isQuit {
		frame.Push(ev)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
