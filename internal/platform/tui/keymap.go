package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gemfall/internal/core"
)

// KeyMapper translates Bubble Tea input messages to game input.
// This centralizes key and mouse bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse translates a mouse message to a pointer event kind. Only the
// left button generates press and release events; any motion, dragging or
// not, maps to a move so the engine can track an in-flight drag.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (kind core.PointerKind, ok bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return core.PointerNone, false
		}
		return core.PointerDown, true
	case tea.MouseActionMotion:
		return core.PointerMove, true
	case tea.MouseActionRelease:
		return core.PointerUp, true
	}
	return core.PointerNone, false
}

// MapMouseToFrame appends a mouse message to an input frame's pointer
// queue. Multiple mouse messages between two ticks all reach the game.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if kind, ok := km.MapMouse(msg); ok {
		frame.AddPointer(kind, msg.X, msg.Y)
	}
}
