package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// DefaultHoldTicks is how long a movement key counts as held after its
// last key event. Terminals report presses and auto-repeats but never
// releases, so holding is synthesized.
const DefaultHoldTicks = 9

// KeyAction is a platform-level command that is not a pad button.
type KeyAction int

const (
	KeyNone KeyAction = iota
	KeyQuit           // leave the program
	KeyBack           // leave the current screen
	KeyPause
	KeyScreenshot
)

// MapKey translates a key message to a pad button or a platform action.
func MapKey(msg tea.KeyMsg) (core.Button, KeyAction) {
	switch msg.String() {
	case "ctrl+c":
		return 0, KeyQuit
	case "q", "esc":
		return 0, KeyBack
	case "p":
		return 0, KeyPause
	case "ctrl+s":
		return 0, KeyScreenshot
	case "left", "a", "h":
		return core.ButtonLeft, KeyNone
	case "right", "d", "l":
		return core.ButtonRight, KeyNone
	case "up", "w", "k":
		return core.ButtonUp, KeyNone
	case "down", "s", "j":
		return core.ButtonDown, KeyNone
	case " ", "z":
		return core.ButtonA, KeyNone
	case "x":
		return core.ButtonB, KeyNone
	case "enter":
		return core.ButtonStart, KeyNone
	}
	return 0, KeyNone
}

// HeldKeys turns discrete key events into a held-button mask per tick.
// Left and right stay down for a hold window and cancel each other; every
// other button is a one-tick pulse, so each key event is a fresh press.
type HeldKeys struct {
	holdTicks int
	remaining [8]int
}

// NewHeldKeys creates a tracker. holdTicks below 1 uses DefaultHoldTicks.
func NewHeldKeys(holdTicks int) *HeldKeys {
	if holdTicks < 1 {
		holdTicks = DefaultHoldTicks
	}
	return &HeldKeys{holdTicks: holdTicks}
}

// Press records a key event for b.
func (h *HeldKeys) Press(b core.Button) {
	switch b {
	case core.ButtonLeft:
		h.set(core.ButtonRight, 0)
		h.set(b, h.holdTicks)
	case core.ButtonRight:
		h.set(core.ButtonLeft, 0)
		h.set(b, h.holdTicks)
	case 0:
	default:
		h.set(b, 1)
	}
}

// Tick returns the mask for this tick and ages every button by one tick.
func (h *HeldKeys) Tick() core.Buttons {
	var held core.Buttons
	for i := range h.remaining {
		if h.remaining[i] > 0 {
			held = held.With(core.Button(1 << i))
			h.remaining[i]--
		}
	}
	return held
}

// Release drops every button.
func (h *HeldKeys) Release() {
	h.remaining = [8]int{}
}

func (h *HeldKeys) set(b core.Button, ticks int) {
	for i := range h.remaining {
		if b == core.Button(1<<i) {
			h.remaining[i] = ticks
			return
		}
	}
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
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
