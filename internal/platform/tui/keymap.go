package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zwovieracht/internal/config"
	"github.com/vovakirdan/zwovieracht/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// Bindings come from the config file, so they are resolved once up front.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a key mapper from configured bindings.
// The bindings are expected to have passed config validation.
func NewKeyMapper(kb config.KeyBindings) *KeyMapper {
	km := &KeyMapper{bindings: make(map[string]core.Action)}
	km.bind(core.ActionLeft, kb.Left)
	km.bind(core.ActionUp, kb.Up)
	km.bind(core.ActionRight, kb.Right)
	km.bind(core.ActionDown, kb.Down)
	km.bind(core.ActionRestart, kb.Restart)
	km.bind(core.ActionQuit, kb.Quit)
	km.bind(core.ActionBack, kb.Back)
	return km
}

// DefaultKeyMapper uses the built-in bindings.
func DefaultKeyMapper() *KeyMapper {
	return NewKeyMapper(config.Default().Keys)
}

func (km *KeyMapper) bind(a core.Action, keys []string) {
	for _, k := range keys {
		km.bindings[k] = a
	}
}

// MapKey translates a key message to an action.
// Unbound keys map to ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	if a, ok := km.bindings[msg.String()]; ok {
		return a
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return action == core.ActionQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
// Enter and space always select; everything else follows the game bindings.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "enter", " ":
		return MenuActionSelect
	}

	switch km.MapKey(msg) {
	case core.ActionUp:
		return MenuActionUp
	case core.ActionDown:
		return MenuActionDown
	case core.ActionBack:
		return MenuActionBack
	case core.ActionQuit:
		return MenuActionQuit
	}
	return MenuActionNone
}
