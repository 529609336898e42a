package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-climber/internal/core"
)

type gameBinding struct {
	key    key.Binding
	action core.Action
}

type menuBinding struct {
	key    key.Binding
	action MenuAction
}

// KeyMapper turns key messages into game and menu actions. Bindings are
// checked in order, so quit always wins.
type KeyMapper struct {
	game []gameBinding
	menu []menuBinding
}

// NewKeyMapper returns the default bindings. Arrows, WASD and hjkl all
// work; boost shares its keys with menu up.
func NewKeyMapper() *KeyMapper {
	quit := key.NewBinding(key.WithKeys("ctrl+c", "q"))
	back := key.NewBinding(key.WithKeys("b", "esc"))
	left := key.NewBinding(key.WithKeys("a", "left", "h"))
	right := key.NewBinding(key.WithKeys("d", "right", "l"))

	return &KeyMapper{
		game: []gameBinding{
			{quit, core.ActionQuit},
			{left, core.ActionLeft},
			{right, core.ActionRight},
			{key.NewBinding(key.WithKeys(" ", "w", "up")), core.ActionBoost},
			{key.NewBinding(key.WithKeys("enter")), core.ActionConfirm},
			{back, core.ActionBack},
			{key.NewBinding(key.WithKeys("p")), core.ActionPause},
			{key.NewBinding(key.WithKeys("r")), core.ActionRestart},
		},
		menu: []menuBinding{
			{quit, MenuActionQuit},
			{key.NewBinding(key.WithKeys("w", "up", "k")), MenuActionUp},
			{key.NewBinding(key.WithKeys("s", "down", "j")), MenuActionDown},
			{left, MenuActionLeft},
			{right, MenuActionRight},
			{key.NewBinding(key.WithKeys("enter", " ")), MenuActionSelect},
			{back, MenuActionBack},
			{key.NewBinding(key.WithKeys("tab")), MenuActionScoreboard},
		},
	}
}

// MapKey returns the game action for a key (ActionNone when unbound) and
// whether it asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.game {
		if key.Matches(msg, b.key) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame adds the key's action to frame and reports a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Set(action)
	return isQuit
}

// MenuAction is an input understood by the mode picker.
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

// MapKeyToMenuAction returns the menu action for a key.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	for _, b := range km.menu {
		if key.Matches(msg, b.key) {
			return b.action
		}
	}
	return MenuActionNone
}
