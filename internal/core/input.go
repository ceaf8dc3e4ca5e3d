package core

import "strings"

// Button is one digital control of the virtual pad, used as a bit in a mask.
type Button uint8

const (
	ButtonUp Button = 1 << iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA // primary fire / confirm
	ButtonB // secondary fire / confirm
	ButtonStart
)

// AllButtons lists every button in mask order.
var AllButtons = []Button{
	ButtonUp, ButtonDown, ButtonLeft, ButtonRight, ButtonA, ButtonB, ButtonStart,
}

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonStart:
		return "Start"
	default:
		return "Unknown"
	}
}

// Buttons is a set of buttons.
type Buttons uint8

// Has reports whether every button in b is in the set.
func (s Buttons) Has(b Button) bool {
	return s&Buttons(b) == Buttons(b) && b != 0
}

// Any reports whether the set is non-empty.
func (s Buttons) Any() bool {
	return s != 0
}

// With returns the set with b added.
func (s Buttons) With(b Button) Buttons {
	return s | Buttons(b)
}

// String lists the set members, e.g. "Left+A".
func (s Buttons) String() string {
	var names []string
	for _, b := range AllButtons {
		if s.Has(b) {
			names = append(names, b.String())
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}

// InputFrame is the input snapshot for a single simulation tick:
// the buttons currently held and the ones that went down this tick.
type InputFrame struct {
	Held    Buttons
	Pressed Buttons
}

// NewInputFrame derives a frame from the held mask of this tick and the previous one.
func NewInputFrame(held, prev Buttons) InputFrame {
	return InputFrame{Held: held, Pressed: held &^ prev}
}

// IsHeld reports whether b is down this tick.
func (f InputFrame) IsHeld(b Button) bool {
	return f.Held.Has(b)
}

// JustPressed reports whether b went down this tick.
func (f InputFrame) JustPressed(b Button) bool {
	return f.Pressed.Has(b)
}

// AxisX returns -1, 0 or 1 from the left/right buttons. Opposing buttons cancel.
func (f InputFrame) AxisX() int {
	dx := 0
	if f.IsHeld(ButtonLeft) {
		dx--
	}
	if f.IsHeld(ButtonRight) {
		dx++
	}
	return dx
}

// InputTracker turns a stream of held masks into frames with edge sets.
type InputTracker struct {
	prev Buttons
}

// Next returns the frame for held and remembers it for the following tick.
func (t *InputTracker) Next(held Buttons) InputFrame {
	f := NewInputFrame(held, t.prev)
	t.prev = held
	return f
}

// Reset forgets the previous mask, so a button still held counts as a new press.
func (t *InputTracker) Reset() {
	t.prev = 0
}
